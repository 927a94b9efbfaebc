package transcription

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// Chunks shorter than this never auto-promote into the note log.
const autoNoteMinLength = 18

var (
	speakerPrefixRe = regexp.MustCompile(`^([^:]{1,40}):\s*(.+)$`)
	autoNoteCueRe   = regexp.MustCompile(`(?i)(agenda|decision|decide|action|todo|next step|deadline|follow up|owner)`)
)

// SplitSpeakerAndText peels a leading "Speaker:" prefix off raw chunk text,
// falling back to the provided speaker when no prefix is present.
func SplitSpeakerAndText(rawText, fallbackSpeaker string) (speaker, text string) {
	text = strings.TrimSpace(rawText)
	m := speakerPrefixRe.FindStringSubmatch(text)
	if m == nil {
		return fallbackSpeaker, text
	}
	speaker = strings.TrimSpace(m[1])
	if speaker == "" {
		speaker = fallbackSpeaker
	}
	return speaker, strings.TrimSpace(m[2])
}

// AddChunk appends a chunk to the session, attributing the speaker and
// defaulting confidence and source.
func AddChunk(session *entities.TranscriptionSession, rawText, speaker string, confidence *float64, source entities.ChunkSource) entities.TranscriptChunk {
	if speaker == "" {
		speaker = entities.DefaultSpeaker
	}
	parsedSpeaker, parsedText := SplitSpeakerAndText(rawText, speaker)

	conf := entities.DefaultChunkConfidence
	if confidence != nil {
		conf = *confidence
	}
	if source == "" {
		source = entities.ChunkSourceMic
	}

	chunk := entities.TranscriptChunk{
		ID:         uuid.New(),
		Speaker:    parsedSpeaker,
		Text:       parsedText,
		Confidence: conf,
		Source:     source,
		Timestamp:  time.Now().UTC(),
	}
	session.Chunks = append(session.Chunks, chunk)
	return chunk
}

// TranscriptText renders the session as a numbered plain-text transcript.
func TranscriptText(session *entities.TranscriptionSession) string {
	if session == nil || len(session.Chunks) == 0 {
		return "No transcript chunks captured."
	}

	lines := make([]string, 0, len(session.Chunks))
	for i, chunk := range session.Chunks {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s: %s", i+1, chunk.Timestamp.Format(time.RFC3339), chunk.Speaker, chunk.Text))
	}
	return strings.Join(lines, "\n")
}

// ShouldCaptureAsNote decides whether a chunk is promoted into the note
// log: long enough and carrying obligation/decision/agenda language.
func ShouldCaptureAsNote(chunk entities.TranscriptChunk) bool {
	if chunk.Text == "" {
		return false
	}
	text := strings.ToLower(chunk.Text)
	if len(text) < autoNoteMinLength {
		return false
	}
	return autoNoteCueRe.MatchString(text)
}

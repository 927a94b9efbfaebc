package mom

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// Section placeholders rendered when a section has no data. The section
// order and headers are part of the document contract.
const (
	noSummaryLine    = "- No summary available."
	noAgendaLine     = "- Agenda was not explicitly captured."
	noDecisionLine   = "- No explicit decisions detected."
	noActionLine     = "- No action items detected."
	noSpeakerLine    = "- No speaker stats available."
	noAttendanceLine = "- No attendance events captured."
	noNotesLine      = "No notes captured."
)

func formatTime(t *time.Time) string {
	if t == nil {
		return "null"
	}
	return t.Format(time.RFC3339)
}

func bulletBlock(lines []string, placeholder string) string {
	if len(lines) == 0 {
		return placeholder
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, "- "+line)
	}
	return strings.Join(out, "\n")
}

// Synthesize renders the canonical Minutes of Meeting text from the meeting
// aggregate and its already-computed derivations. Deterministic: the same
// inputs always produce byte-identical output.
func Synthesize(meeting *entities.Meeting, insights entities.Insights, mood entities.MoodAssessment, attendance entities.AttendanceSummary) string {
	summaryBlock := bulletBlock(insights.Summary, noSummaryLine)
	agendaBlock := bulletBlock(insights.Agenda, noAgendaLine)
	decisionBlock := bulletBlock(insights.Decisions, noDecisionLine)

	actionLines := make([]string, 0, len(insights.ActionItems))
	for _, item := range insights.ActionItems {
		actionLines = append(actionLines, fmt.Sprintf("%s (Owner: %s, Status: %s)", item.Item, item.Owner, item.Status))
	}
	actionBlock := bulletBlock(actionLines, noActionLine)

	speakerLines := make([]string, 0, len(insights.SpeakerStats))
	for _, s := range insights.SpeakerStats {
		speakerLines = append(speakerLines, fmt.Sprintf("%s: %d notes, %d words", s.Speaker, s.Notes, s.Words))
	}
	speakerBlock := bulletBlock(speakerLines, noSpeakerLine)

	attendanceLines := make([]string, 0, len(attendance.Participants))
	for _, p := range attendance.Participants {
		label := p.Name
		if p.Email != "" {
			label = fmt.Sprintf("%s (%s)", p.Name, p.Email)
		}
		attendanceLines = append(attendanceLines, fmt.Sprintf("%s: joins=%d, leaves=%d", label, p.Joins, p.Leaves))
	}
	attendanceBlock := bulletBlock(attendanceLines, noAttendanceLine)

	noteLines := make([]string, 0, len(meeting.Notes))
	for i, n := range meeting.Notes {
		speaker := n.Speaker
		if speaker == "" {
			speaker = entities.DefaultSpeaker
		}
		noteLines = append(noteLines, fmt.Sprintf("%d. [%s] %s: %s", i+1, n.Timestamp.Format(time.RFC3339), speaker, n.Text))
	}
	noteBlock := strings.Join(noteLines, "\n")
	if noteBlock == "" {
		noteBlock = noNotesLine
	}

	meetingLink := meeting.MeetingLink
	if meetingLink == "" {
		meetingLink = "Not provided"
	}

	return fmt.Sprintf(`Minutes of Meeting

Overall Meeting Mood: %s (confidence %v)
Mood Rationale: %s

Title: %s
Meeting ID: %s
Start: %s
End: %s
Attendees: %s
Platform: %s
Meeting Link: %s

Executive Summary:
%s

Agenda Highlights:
%s

Decisions:
%s

Action Items:
%s

Speaker Participation:
%s

Attendance Map:
%s

Discussion Notes:
%s`,
		mood.Label, mood.Confidence, mood.Rationale,
		meeting.Title, meeting.ID, meeting.StartedAt.Format(time.RFC3339), formatTime(meeting.EndedAt),
		strings.Join(meeting.Attendees, ", "), meeting.Platform, meetingLink,
		summaryBlock, agendaBlock, decisionBlock, actionBlock, speakerBlock, attendanceBlock, noteBlock)
}

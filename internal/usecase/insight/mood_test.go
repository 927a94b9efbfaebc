package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

func TestAnalyzeMoodFallbackOnEmptyLog(t *testing.T) {
	mood := AnalyzeMood(nil)

	assert.Equal(t, entities.MoodNeutral, mood.Label)
	assert.Equal(t, 0.5, mood.Confidence)
}

func TestAnalyzeMoodFallbackWithoutLexiconHits(t *testing.T) {
	mood := AnalyzeMood([]entities.Note{
		note("PM", "the quarterly numbers look unchanged"),
	})

	assert.Equal(t, entities.MoodNeutral, mood.Label)
	assert.Equal(t, 0.5, mood.Confidence)
}

func TestAnalyzeMoodPositive(t *testing.T) {
	mood := AnalyzeMood([]entities.Note{
		note("PM", "great progress, thanks everyone"),
		note("Dev1", "the migration is done and resolved"),
	})

	assert.Equal(t, entities.MoodPositive, mood.Label)
	assert.Greater(t, mood.Confidence, 0.5)
}

func TestAnalyzeMoodConcerned(t *testing.T) {
	mood := AnalyzeMood([]entities.Note{
		note("Dev1", "we are blocked on the vendor delay"),
		note("QA", "another issue surfaced, this is urgent"),
	})

	assert.Equal(t, entities.MoodConcerned, mood.Label)
}

func TestAnalyzeMoodTieDefaultsToNeutral(t *testing.T) {
	// One positive and one neutral signal cancel to the neutral label.
	mood := AnalyzeMood([]entities.Note{
		note("PM", "great agenda"),
	})

	assert.Equal(t, entities.MoodNeutral, mood.Label)
	assert.Equal(t, 0.5, mood.Confidence)
}

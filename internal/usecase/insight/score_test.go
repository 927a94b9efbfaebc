package insight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

func meetingWithNotes(count int) *entities.Meeting {
	m := entities.NewMeeting("Sprint Review", []string{"pm@example.com"}, "", "manual", entities.MeetingSourceManual)
	for i := 0; i < count; i++ {
		m.AppendNote(fmt.Sprintf("note %d", i), "PM", entities.NoteSourceManual)
	}
	return m
}

func TestComputeMeetingScoreEmptyMeeting(t *testing.T) {
	m := meetingWithNotes(0)

	score := ComputeMeetingScore(m, entities.Insights{}, entities.MoodAssessment{Label: entities.MoodNeutral})

	assert.Zero(t, score.Score)
	assert.Equal(t, entities.ScoreBandNeedsWork, score.Band)
	assert.Zero(t, score.Factors.Engagement)
	assert.Zero(t, score.Factors.Coverage)
}

func TestComputeMeetingScoreHighPerformance(t *testing.T) {
	m := meetingWithNotes(20)
	insights := entities.Insights{
		Decisions: []string{"d1", "d2", "d3", "d4"},
		ActionItems: []entities.ActionItem{
			{Item: "a1"}, {Item: "a2"}, {Item: "a3"}, {Item: "a4"}, {Item: "a5"},
		},
		SpeakerStats: []entities.SpeakerStat{
			{Speaker: "A"}, {Speaker: "B"}, {Speaker: "C"}, {Speaker: "D"}, {Speaker: "E"},
		},
	}

	score := ComputeMeetingScore(m, insights, entities.MoodAssessment{Label: entities.MoodPositive})

	assert.Equal(t, 100.0, score.Score)
	assert.Equal(t, entities.ScoreBandHighPerformance, score.Band)
	assert.Equal(t, 100.0, score.Factors.Engagement)
	assert.Equal(t, 100.0, score.Factors.Actionability)
	assert.Equal(t, 100.0, score.Factors.Decisiveness)
	assert.Equal(t, 100.0, score.Factors.Coverage)
}

func TestComputeMeetingScoreConcernedMoodDampens(t *testing.T) {
	m := meetingWithNotes(20)
	insights := entities.Insights{
		Decisions:    []string{"d1", "d2", "d3", "d4"},
		ActionItems:  []entities.ActionItem{{Item: "a1"}, {Item: "a2"}, {Item: "a3"}, {Item: "a4"}, {Item: "a5"}},
		SpeakerStats: []entities.SpeakerStat{{Speaker: "A"}, {Speaker: "B"}, {Speaker: "C"}, {Speaker: "D"}, {Speaker: "E"}},
	}

	positive := ComputeMeetingScore(m, insights, entities.MoodAssessment{Label: entities.MoodPositive})
	concerned := ComputeMeetingScore(m, insights, entities.MoodAssessment{Label: entities.MoodConcerned})

	assert.Less(t, concerned.Score, positive.Score)
	assert.Equal(t, 70.0, concerned.Score)
}

func TestComputeMeetingScoreHealthyBand(t *testing.T) {
	m := meetingWithNotes(20)
	insights := entities.Insights{
		Decisions:    []string{"d1", "d2", "d3", "d4"},
		ActionItems:  []entities.ActionItem{{Item: "a1"}, {Item: "a2"}, {Item: "a3"}, {Item: "a4"}, {Item: "a5"}},
		SpeakerStats: []entities.SpeakerStat{{Speaker: "A"}, {Speaker: "B"}, {Speaker: "C"}, {Speaker: "D"}, {Speaker: "E"}},
	}

	score := ComputeMeetingScore(m, insights, entities.MoodAssessment{Label: entities.MoodNeutral})

	assert.Equal(t, 85.0, score.Score)
	assert.Equal(t, entities.ScoreBandHighPerformance, score.Band)

	// Fewer speakers pulls engagement down into the healthy band.
	insights.SpeakerStats = insights.SpeakerStats[:2]
	score = ComputeMeetingScore(m, insights, entities.MoodAssessment{Label: entities.MoodNeutral})
	assert.Equal(t, entities.ScoreBandHealthy, score.Band)
}

package insight

import "github.com/johnquangdev/mom-ai/internal/domain/entities"

// Factor weights and mood multipliers for the composite score.
const (
	weightEngagement    = 0.28
	weightActionability = 0.28
	weightDecisiveness  = 0.24
	weightCoverage      = 0.20

	moodWeightPositive  = 1.0
	moodWeightNeutral   = 0.85
	moodWeightConcerned = 0.7
)

// ComputeMeetingScore derives the 0-100 health metric from already-computed
// insights and mood. Pure over its inputs.
func ComputeMeetingScore(meeting *entities.Meeting, insights entities.Insights, mood entities.MoodAssessment) entities.MeetingScore {
	noteCount := float64(len(meeting.Notes))
	speakerCount := float64(len(insights.SpeakerStats))
	decisionCount := float64(len(insights.Decisions))
	actionCount := float64(len(insights.ActionItems))

	engagement := clamp(speakerCount/5*100, 0, 100)
	actionability := clamp(actionCount/max1(noteCount/4)*100, 0, 100)
	decisiveness := clamp(decisionCount/max1(noteCount/5)*100, 0, 100)
	coverage := clamp(noteCount/20*100, 0, 100)

	moodWeight := moodWeightNeutral
	switch mood.Label {
	case entities.MoodPositive:
		moodWeight = moodWeightPositive
	case entities.MoodConcerned:
		moodWeight = moodWeightConcerned
	}

	raw := (engagement*weightEngagement + actionability*weightActionability +
		decisiveness*weightDecisiveness + coverage*weightCoverage) * moodWeight
	score := clamp(raw, 0, 100)

	band := entities.ScoreBandNeedsWork
	if score >= 75 {
		band = entities.ScoreBandHighPerformance
	} else if score >= 55 {
		band = entities.ScoreBandHealthy
	}

	return entities.MeetingScore{
		Score: round2(score),
		Band:  band,
		Factors: entities.ScoreFactors{
			Engagement:    round2(engagement),
			Actionability: round2(actionability),
			Decisiveness:  round2(decisiveness),
			Coverage:      round2(coverage),
		},
	}
}

func max1(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}

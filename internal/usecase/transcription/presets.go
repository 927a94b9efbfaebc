package transcription

// DefaultPreset is used when a simulation request names no preset.
const DefaultPreset = "daily-standup"

var presetChunks = map[string][]string{
	"daily-standup": {
		"PM: Agenda: status updates and blockers",
		"Dev1: I completed the API endpoint for notifications",
		"Dev2: Decision: keep the existing auth middleware",
		"PM: Action: Dev2 should publish the rollout checklist by Friday",
		"QA: Next step is regression testing before release",
	},
	"planning": {
		"Manager: Agenda: finalize sprint scope for next two weeks",
		"Lead: We decided to prioritize onboarding flow improvements",
		"Manager: Action: Rahul will estimate the analytics tasks",
		"Designer: Follow up on updated Figma review by tomorrow",
		"Lead: Deadline for final plan is Thursday EOD",
	},
}

// PresetChunks returns the scripted chunk sequence for a preset, falling
// back to the daily standup script for unknown names.
func PresetChunks(preset string) []string {
	if chunks, ok := presetChunks[preset]; ok {
		return chunks
	}
	return presetChunks[DefaultPreset]
}

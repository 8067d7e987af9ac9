package domain

// Stage names the pipeline phase a narration event belongs to.
type Stage string

const (
	StageListening Stage = "listening"
	StageExact     Stage = "exact"
	StageApprox    Stage = "approximate"
	StageAdvisory  Stage = "advisory"
	StageExecute   Stage = "execute"
	StageOutcome   Stage = "outcome"
)

// Emotion names the face shown on the robot's display while a line is
// spoken. The vocabulary matches the display collaborator.
type Emotion string

const (
	EmotionNeutral       Emotion = "neutral"
	EmotionListening     Emotion = "listening"
	EmotionConcentration Emotion = "concentration"
	EmotionDetermination Emotion = "determination"
	EmotionConfusion     Emotion = "confusion"
	EmotionSadness       Emotion = "sadness"
	EmotionSatisfaction  Emotion = "satisfaction"
)

// NarrationEvent is one spoken status line. Events are fire-and-forget:
// emitting one must never block a tier transition.
type NarrationEvent struct {
	Stage   Stage
	Text    string
	Emotion Emotion
}

package interviews

// Question categories. A generated batch always holds 8 questions:
// 3 technical, 3 project and 2 behavioral.
const (
	TypeTechnical  = "technical"
	TypeBehavioral = "behavioral"
	TypeProject    = "project"
)

// Question is a single generated interview question.
type Question struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Type     string `json:"type"`
}

// QuestionBatch is the decoded output of one generation call. Questions are
// held only by the caller's session; nothing here is persisted.
type QuestionBatch struct {
	Questions []Question `json:"questions"`
}

// QuestionFeedback is the model's per-question evaluation.
type QuestionFeedback struct {
	QuestionID             int    `json:"question_id"`
	Score                  int    `json:"score"`
	Feedback               string `json:"feedback"`
	ImprovementSuggestions string `json:"improvement_suggestions"`
}

// OverallFeedback is the model's whole-interview evaluation.
type OverallFeedback struct {
	OverallScore      int    `json:"overall_score"`
	Strengths         string `json:"strengths"`
	ImprovementAreas  string `json:"improvement_areas"`
	PreparationAdvice string `json:"preparation_advice"`
}

// FeedbackReport is the decoded output of one feedback call.
type FeedbackReport struct {
	QuestionFeedback []QuestionFeedback `json:"question_feedback"`
	OverallFeedback  OverallFeedback    `json:"overall_feedback"`
}

// DegradedFeedback carries the model's raw output when it could not be
// decoded into a FeedbackReport. It is returned as a 200 so the caller can
// at least see the text.
type DegradedFeedback struct {
	Error       string `json:"error"`
	RawFeedback string `json:"raw_feedback"`
}

// FeedbackResult holds exactly one of a structured report or its degraded
// fallback.
type FeedbackResult struct {
	Report   *FeedbackReport
	Degraded *DegradedFeedback
}

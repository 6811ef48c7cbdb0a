package interviews

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/shekharkalshetti/interview-pal-backend/internal/llm"
)

//go:embed prompts/questions_system.txt
var questionsSystemPrompt string

//go:embed prompts/feedback_system.txt
var feedbackSystemPrompt string

// noAnswerPlaceholder stands in for questions the candidate skipped. The
// feedback prompt substitutes it only when the answer map has no entry for a
// question id; a present-but-empty answer is sent as-is so the model can
// score it.
const noAnswerPlaceholder = "No answer provided"

// BuildQuestionPrompt renders the system and user turns for question
// generation. Resume text and job description are interpolated verbatim,
// with no truncation or sanitization.
func BuildQuestionPrompt(resumeText, jobDescription string) []llm.Message {
	user := fmt.Sprintf(
		"Please generate interview questions based on the following:\n\nRESUME:\n%s\n\nJOB DESCRIPTION:\n%s",
		resumeText, jobDescription,
	)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: questionsSystemPrompt},
		{Role: llm.RoleUser, Content: user},
	}
}

// BuildFeedbackPrompt renders the system and user turns for feedback
// generation. Answers are keyed by the decimal string form of the question
// id.
func BuildFeedbackPrompt(questions []Question, answers map[string]string, jobDescription string) []llm.Message {
	var qa strings.Builder
	for _, q := range questions {
		answer, ok := answers[strconv.Itoa(q.ID)]
		if !ok {
			answer = noAnswerPlaceholder
		}
		fmt.Fprintf(&qa, "Question ID: %d\nQuestion Type: %s\nQuestion: %s\nAnswer: %s\n\n", q.ID, q.Type, q.Question, answer)
	}

	user := fmt.Sprintf(
		"Please evaluate the following interview responses:\n\nJOB DESCRIPTION:\n%s\n\nQUESTIONS AND ANSWERS:\n%s",
		jobDescription, qa.String(),
	)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: feedbackSystemPrompt},
		{Role: llm.RoleUser, Content: user},
	}
}

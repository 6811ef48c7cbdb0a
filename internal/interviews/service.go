package interviews

import (
	"context"

	"github.com/shekharkalshetti/interview-pal-backend/internal/llm"
)

// Generation temperatures. Question generation runs hotter for variety;
// feedback runs cooler for consistent scoring.
const (
	questionTemperature = 0.7
	feedbackTemperature = 0.5
)

// ResumeContentFetcher looks up the stored resume text for a user.
type ResumeContentFetcher interface {
	ContentByUser(ctx context.Context, userID string) (string, bool, error)
}

// Service drives question and feedback generation against the chat
// completion endpoint. It is stateless; the caller carries questions and
// answers between the two operations.
type Service struct {
	Resumes ResumeContentFetcher
	LLM     llm.Client
}

// ResumeContent returns the stored resume text for a user, with found=false
// when none exists.
func (s *Service) ResumeContent(ctx context.Context, userID string) (string, bool, error) {
	return s.Resumes.ContentByUser(ctx, userID)
}

// GenerateQuestions asks the model for an 8-question batch tailored to the
// resume and job description. Output that cannot be decoded is an error;
// there is no partial batch.
func (s *Service) GenerateQuestions(ctx context.Context, resumeText, jobDescription string) (QuestionBatch, error) {
	raw, err := s.LLM.Complete(ctx, BuildQuestionPrompt(resumeText, jobDescription), llm.Options{
		Temperature: questionTemperature,
	})
	if err != nil {
		return QuestionBatch{}, err
	}
	return parseQuestions(raw)
}

// GenerateFeedback asks the model to evaluate the given answers. A transport
// or API failure is an error; undecodable model output is not, and comes
// back as a degraded result instead.
func (s *Service) GenerateFeedback(ctx context.Context, questions []Question, answers map[string]string, jobDescription string) (FeedbackResult, error) {
	raw, err := s.LLM.Complete(ctx, BuildFeedbackPrompt(questions, answers, jobDescription), llm.Options{
		Temperature: feedbackTemperature,
	})
	if err != nil {
		return FeedbackResult{}, err
	}
	return parseFeedback(raw), nil
}

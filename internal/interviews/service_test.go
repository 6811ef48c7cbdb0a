package interviews

import (
	"context"
	"errors"
	"testing"

	"github.com/shekharkalshetti/interview-pal-backend/internal/llm"
)

type fakeLLM struct {
	reply    string
	err      error
	messages []llm.Message
	opts     llm.Options
}

func (f *fakeLLM) Complete(_ context.Context, messages []llm.Message, opts llm.Options) (string, error) {
	f.messages = messages
	f.opts = opts
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeResumes struct {
	content string
	found   bool
	err     error
}

func (f *fakeResumes) ContentByUser(context.Context, string) (string, bool, error) {
	return f.content, f.found, f.err
}

func TestGenerateQuestions(t *testing.T) {
	client := &fakeLLM{reply: `Sure: {"questions":[{"id":1,"question":"What's a goroutine?","type":"technical"}]}`}
	svc := &Service{LLM: client}

	batch, err := svc.GenerateQuestions(context.Background(), "resume text", "job text")
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}
	if len(batch.Questions) != 1 || batch.Questions[0].ID != 1 {
		t.Fatalf("batch = %+v", batch)
	}
	if client.opts.Temperature != questionTemperature {
		t.Fatalf("temperature = %v", client.opts.Temperature)
	}
	if len(client.messages) != 2 || client.messages[0].Role != llm.RoleSystem {
		t.Fatalf("messages = %+v", client.messages)
	}
}

func TestGenerateQuestionsPropagatesParseFailure(t *testing.T) {
	svc := &Service{LLM: &fakeLLM{reply: "no structured output at all"}}

	_, err := svc.GenerateQuestions(context.Background(), "resume", "job")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected malformed response, got %v", err)
	}
}

func TestGenerateQuestionsPropagatesAPIError(t *testing.T) {
	apiErr := &llm.APIError{StatusCode: 503}
	svc := &Service{LLM: &fakeLLM{err: apiErr}}

	_, err := svc.GenerateQuestions(context.Background(), "resume", "job")
	if !errors.Is(err, error(apiErr)) {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestGenerateFeedbackDegradesOnParseFailure(t *testing.T) {
	client := &fakeLLM{reply: "free-form critique without JSON"}
	svc := &Service{LLM: client}

	result, err := svc.GenerateFeedback(context.Background(), []Question{{ID: 1, Question: "Q", Type: TypeTechnical}}, map[string]string{}, "job")
	if err != nil {
		t.Fatalf("GenerateFeedback: %v", err)
	}
	if result.Degraded == nil {
		t.Fatal("expected degraded result")
	}
	if result.Degraded.RawFeedback != client.reply {
		t.Fatalf("raw_feedback = %q", result.Degraded.RawFeedback)
	}
	if client.opts.Temperature != feedbackTemperature {
		t.Fatalf("temperature = %v", client.opts.Temperature)
	}
}

func TestGenerateFeedbackPropagatesAPIError(t *testing.T) {
	svc := &Service{LLM: &fakeLLM{err: &llm.APIError{StatusCode: 500}}}

	_, err := svc.GenerateFeedback(context.Background(), nil, map[string]string{}, "job")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestResumeContent(t *testing.T) {
	svc := &Service{Resumes: &fakeResumes{content: "stored text", found: true}}

	text, ok, err := svc.ResumeContent(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ResumeContent: %v", err)
	}
	if !ok || text != "stored text" {
		t.Fatalf("text = %q, ok = %v", text, ok)
	}
}

package interviews

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject cuts the substring spanning the first '{' through the
// last '}' of text. Chat models often wrap their JSON in prose or code
// fences; this strips that framing without balancing braces, so trailing
// noise that contains a '}' is left for the decoder to reject.
func ExtractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("%w: no JSON object in model output", ErrMalformedResponse)
	}
	return text[start : end+1], nil
}

func parseQuestions(raw string) (QuestionBatch, error) {
	doc, err := ExtractJSONObject(raw)
	if err != nil {
		return QuestionBatch{}, err
	}
	var batch QuestionBatch
	if err := json.Unmarshal([]byte(doc), &batch); err != nil {
		return QuestionBatch{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return batch, nil
}

// parseFeedback never fails: output that cannot be decoded degrades to the
// raw text so the caller still gets something to show.
func parseFeedback(raw string) FeedbackResult {
	doc, err := ExtractJSONObject(raw)
	if err != nil {
		return degradedResult(raw)
	}
	var report FeedbackReport
	if err := json.Unmarshal([]byte(doc), &report); err != nil {
		return degradedResult(raw)
	}
	return FeedbackResult{Report: &report}
}

func degradedResult(raw string) FeedbackResult {
	return FeedbackResult{Degraded: &DegradedFeedback{
		Error:       "Failed to generate structured feedback",
		RawFeedback: raw,
	}}
}

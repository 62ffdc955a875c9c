package gemini

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// generateCall records one GenerateContent invocation.
type generateCall struct {
	Model    string
	Contents []*genai.Content
	Config   *genai.GenerateContentConfig
}

// mockModels implements contentGenerator. Responses and errors are consumed
// in call order; once exhausted the last entry repeats.
type mockModels struct {
	mu        sync.Mutex
	calls     []generateCall
	responses []*genai.GenerateContentResponse
	errs      []error
}

func (m *mockModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := len(m.calls)
	m.calls = append(m.calls, generateCall{Model: model, Contents: contents, Config: config})

	if err := pick(m.errs, idx); err != nil {
		return nil, err
	}
	if len(m.responses) == 0 {
		return nil, nil
	}
	if idx < len(m.responses) {
		return m.responses[idx], nil
	}
	return m.responses[len(m.responses)-1], nil
}

func pick(errs []error, idx int) error {
	if len(errs) == 0 {
		return nil
	}
	if idx < len(errs) {
		return errs[idx]
	}
	return errs[len(errs)-1]
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

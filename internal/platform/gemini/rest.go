package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/phrazzld/seobrief-api/internal/generation"
)

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 2048

type restPart struct {
	Text string `json:"text"`
}

type restContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []restPart `json:"parts"`
}

type restGenerationConfig struct {
	Temperature     *float32 `json:"temperature,omitempty"`
	MaxOutputTokens int32    `json:"maxOutputTokens,omitempty"`
}

type restRequest struct {
	Contents         []restContent        `json:"contents"`
	GenerationConfig restGenerationConfig `json:"generationConfig"`
}

// generateREST posts a generateContent request directly to the REST API,
// bypassing the SDK's request builder. The decoded body is returned as a
// generic map.
func (c *Client) generateREST(ctx context.Context, prompt string, opts generationOptions) (interface{}, error) {
	body, err := json.Marshal(restRequest{
		Contents: []restContent{{Role: "user", Parts: []restPart{{Text: prompt}}}},
		GenerationConfig: restGenerationConfig{
			Temperature:     opts.temperature,
			MaxOutputTokens: opts.maxOutputTokens,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimSuffix(c.config.APIBaseURL, "/"), url.PathEscape(c.config.ModelName))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Header rather than query parameter keeps the key out of error messages.
	req.Header.Set("x-goog-api-key", c.config.GeminiAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(ctx, "failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, classify(&StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(errBody))})
	}

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if !hasCandidateText(decoded) {
		return nil, fmt.Errorf("%w: REST response has no candidate text", generation.ErrInvalidResponse)
	}
	return decoded, nil
}

// hasCandidateText reports whether the first candidate of a decoded
// generateContent body holds any text.
func hasCandidateText(body map[string]interface{}) bool {
	candidates, _ := body["candidates"].([]interface{})
	if len(candidates) == 0 {
		return false
	}
	first, _ := candidates[0].(map[string]interface{})
	switch content := first["content"].(type) {
	case string:
		return content != ""
	case map[string]interface{}:
		parts, _ := content["parts"].([]interface{})
		for _, p := range parts {
			part, _ := p.(map[string]interface{})
			if text, _ := part["text"].(string); text != "" {
				return true
			}
		}
	}
	return false
}

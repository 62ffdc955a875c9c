package gemini

import (
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Response wraps an SDK response for text extraction.
type Response struct {
	raw *genai.GenerateContentResponse
}

// NewResponse wraps raw.
func NewResponse(raw *genai.GenerateContentResponse) *Response {
	return &Response{raw: raw}
}

// Text returns the concatenated text parts of the first candidate.
func (r *Response) Text() string {
	contents := r.CandidateContents()
	if len(contents) == 0 {
		return ""
	}
	return contents[0]
}

// CandidateContents returns the text of every candidate, in order.
func (r *Response) CandidateContents() []string {
	if r == nil || r.raw == nil {
		return nil
	}
	out := make([]string, 0, len(r.raw.Candidates))
	for _, c := range r.raw.Candidates {
		if c == nil {
			out = append(out, "")
			continue
		}
		out = append(out, contentText(c.Content))
	}
	return out
}

// summary describes a response that carries no text.
func (r *Response) summary() string {
	if r == nil || r.raw == nil {
		return ""
	}
	reasons := make([]string, 0, len(r.raw.Candidates))
	for _, c := range r.raw.Candidates {
		if c != nil {
			reasons = append(reasons, string(c.FinishReason))
		}
	}
	return fmt.Sprintf("no text in %d candidate(s), finish reasons [%s]",
		len(r.raw.Candidates), strings.Join(reasons, ", "))
}

func contentText(c *genai.Content) string {
	if c == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range c.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

package extract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoText is returned when a response carries no text at all.
var ErrNoText = errors.New("no text found in model response")

// Response shapes probed by Text, highest priority first. A response may
// implement several; the first that yields a non-empty value wins.
type (
	// Texter exposes the generated text directly.
	Texter interface{ Text() string }
	// OutputTexter is an alternate direct text accessor.
	OutputTexter interface{ OutputText() string }
	// Resulter exposes a generic result string.
	Resulter interface{ Result() string }
	// CandidateLister exposes the content of each candidate.
	CandidateLister interface{ CandidateContents() []string }
	// GenerationLister exposes the text of each generation.
	GenerationLister interface{ GenerationTexts() []string }
	// OutputLister exposes a list of output items.
	OutputLister interface{ Output() []interface{} }
)

// Text returns the generated text carried by resp.
//
// Shapes are checked in this order:
//  1. Texter
//  2. OutputTexter
//  3. Resulter
//  4. first CandidateLister content
//  5. first GenerationLister text
//  6. first OutputLister item, when it is a map with a "content" key
//  7. resp itself as a map: "candidates"[0].content, then "output_text"
//  8. fmt.Sprint(resp)
//
// The order matters: some clients populate several shapes and the earlier
// ones are the most specific.
func Text(resp interface{}) (string, error) {
	if resp == nil {
		return "", ErrNoText
	}

	if text := probe(resp); text != "" {
		return text, nil
	}

	text := fmt.Sprint(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

func probe(resp interface{}) string {
	if r, ok := resp.(Texter); ok {
		if text := r.Text(); text != "" {
			return text
		}
	}
	if r, ok := resp.(OutputTexter); ok {
		if text := r.OutputText(); text != "" {
			return text
		}
	}
	if r, ok := resp.(Resulter); ok {
		if text := r.Result(); text != "" {
			return text
		}
	}
	if r, ok := resp.(CandidateLister); ok {
		if contents := r.CandidateContents(); len(contents) > 0 && contents[0] != "" {
			return contents[0]
		}
	}
	if r, ok := resp.(GenerationLister); ok {
		if texts := r.GenerationTexts(); len(texts) > 0 && texts[0] != "" {
			return texts[0]
		}
	}
	if r, ok := resp.(OutputLister); ok {
		if items := r.Output(); len(items) > 0 {
			if item, ok := items[0].(map[string]interface{}); ok {
				if content, ok := item["content"]; ok {
					if text := stringify(content); text != "" {
						return text
					}
				}
			}
		}
	}
	if m, ok := resp.(map[string]interface{}); ok {
		return fromMap(m)
	}
	return ""
}

// fromMap handles a response decoded from JSON into a generic map, as the
// REST endpoint returns it.
func fromMap(m map[string]interface{}) string {
	if candidates, ok := m["candidates"].([]interface{}); ok && len(candidates) > 0 {
		if first, ok := candidates[0].(map[string]interface{}); ok {
			if text := stringify(first["content"]); text != "" {
				return text
			}
		}
	}
	if text, ok := m["output_text"].(string); ok {
		return text
	}
	return ""
}

// stringify renders a content value as text. Plain strings are returned as
// is; a {"parts": [{"text": ...}]} object has its text parts concatenated.
func stringify(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case map[string]interface{}:
		parts, ok := c["parts"].([]interface{})
		if !ok {
			return fmt.Sprint(c)
		}
		var sb strings.Builder
		for _, p := range parts {
			if part, ok := p.(map[string]interface{}); ok {
				if text, ok := part["text"].(string); ok {
					sb.WriteString(text)
				}
			}
		}
		return sb.String()
	default:
		return fmt.Sprint(c)
	}
}

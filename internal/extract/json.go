package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNoJSONObject is returned when the text contains no brace-delimited block.
	ErrNoJSONObject = errors.New("no JSON object found in model response")

	// ErrInvalidJSON is returned when the recovered block does not parse.
	ErrInvalidJSON = errors.New("invalid JSON in model response")
)

var (
	// A ``` or ```json fence, any case, around the shortest {...} block.
	fencedJSONRegex = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	// First { to last }, across lines.
	braceBlockRegex = regexp.MustCompile(`(?s)\{.*\}`)
)

// JSONObject recovers a JSON object from model output.
//
// A fenced code block is preferred; otherwise the span from the first "{"
// to the last "}" is used. The result is not checked against any schema.
func JSONObject(text string) (map[string]interface{}, error) {
	var candidate string
	if m := fencedJSONRegex.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	} else if block := braceBlockRegex.FindString(text); block != "" {
		candidate = block
	} else {
		return nil, ErrNoJSONObject
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return obj, nil
}

package domain

import "strings"

// Brief field names the prompt asks the model to return.
const (
	FieldTitle                      = "title"
	FieldMetaDescription            = "meta_description"
	FieldSearchIntent               = "search_intent"
	FieldTargetAudience             = "target_audience"
	FieldTone                       = "tone"
	FieldWordCount                  = "word_count"
	FieldH2Headings                 = "h2_headings"
	FieldUniqueAngle                = "unique_angle"
	FieldContentGaps                = "content_gaps"
	FieldInternalLinkingSuggestions = "internal_linking_suggestions"
	FieldCTASuggestion              = "cta_suggestion"
)

// BriefFields lists the expected brief keys in prompt order.
var BriefFields = []string{
	FieldTitle,
	FieldMetaDescription,
	FieldSearchIntent,
	FieldTargetAudience,
	FieldTone,
	FieldWordCount,
	FieldH2Headings,
	FieldUniqueAngle,
	FieldContentGaps,
	FieldInternalLinkingSuggestions,
	FieldCTASuggestion,
}

// Brief is an SEO content brief as returned by the model. Its shape is
// whatever JSON object the model produced; it is not checked against
// BriefFields before being handed back to the caller.
type Brief map[string]interface{}

// MissingFields returns the expected keys absent from b, in BriefFields order.
func (b Brief) MissingFields() []string {
	var missing []string
	for _, f := range BriefFields {
		if _, ok := b[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// ValidateKeyword rejects empty or whitespace-only keywords. The keyword is
// otherwise used verbatim.
func ValidateKeyword(keyword string) error {
	if strings.TrimSpace(keyword) == "" {
		return NewValidationError("keyword", "is required", ErrEmptyKeyword)
	}
	return nil
}

// ValidateBrief rejects a missing brief. An empty object is accepted.
func ValidateBrief(b Brief) error {
	if b == nil {
		return NewValidationError("brief", "is required", ErrMissingBrief)
	}
	return nil
}

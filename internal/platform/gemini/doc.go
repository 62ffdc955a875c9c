// Package gemini adapts Google's Gemini API to the generation package.
//
// This package is an infrastructure adapter: it turns the configured
// google.golang.org/genai client into an ordered list of
// generation.Strategy values, each submitting the prompt with a different
// call shape:
//
//  1. positional: prompt as text contents, with generation options
//  2. positional_no_options: prompt as text contents, no options
//  3. user_message: prompt as an explicit user-role message
//  4. system_instruction: prompt as the system instruction
//  5. rest_request: a raw request object POSTed to the REST endpoint
//  6. fallback_model: the fallback model with conservative options
//
// Errors the API returns for a rejected request shape (HTTP 400 and 404)
// are reported as generation.ErrSignatureMismatch so the next strategy is
// tried. Network, authentication, quota and server errors are returned
// unchanged and end the invocation.
//
// SDK responses are wrapped in a Response whose Text method concatenates
// the text parts of the first candidate; the REST strategy returns the
// decoded JSON body as a map.
package gemini

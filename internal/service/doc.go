// Package service implements the brief and article use cases.
//
// SEOService renders a prompt, submits it to the language model and turns
// the model's raw response into either a brief (a JSON object recovered
// from the response text) or markdown returned unchanged. It holds no
// per-request state; one instance is shared by all handlers.
package service

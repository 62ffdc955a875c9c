// Package domain contains the request-scoped entities of the SEO content
// pipeline: the keyword a caller submits, the brief the model produces and
// the article written from it. Nothing here outlives a single request.
package domain

// Package app assembles the service: it builds the language model handle,
// the prompt builder and the SEO service from configuration, and exposes
// the chi router that both the server and the Cloud Function entry points
// serve.
package app

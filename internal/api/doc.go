// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the brief and article endpoints to
// service.SEOService and maps service errors to status codes and the
// {"detail": ...} error body.
package api

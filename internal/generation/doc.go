// Package generation provides the boundary between the application and the
// external generative-language (LLM) client.
//
// The external SDK has changed its call conventions across versions, so a
// prompt is submitted through an ordered list of named Strategy values. A
// strategy that reports ErrSignatureMismatch is skipped in favour of the
// next one; any other failure ends the invocation immediately. This is not
// a retry policy: nothing is attempted twice and there is no backoff.
//
// Model wraps an Invoker in an explicit configured/unconfigured variant so
// that a service started without credentials can still answer requests
// with a clear "not configured" error.
package generation

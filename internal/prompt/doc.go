// Package prompt renders the instructions sent to the language model.
//
// Templates are plain text/template files: the keyword and brief are
// interpolated verbatim, with no HTML or other escaping. Default templates
// are embedded in the binary and can be replaced at startup from files.
package prompt

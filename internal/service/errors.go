package service

import (
	"errors"
	"fmt"
)

// ErrNilDependency is returned by constructors given a nil collaborator.
var ErrNilDependency = errors.New("required dependency is nil")

// Pipeline stages reported in ServiceError.Stage.
const (
	StageValidate = "validate"
	StagePrompt   = "build_prompt"
	StageInvoke   = "invoke_model"
	StageExtract  = "extract_text"
	StageRecover  = "recover_json"
)

// ServiceError wraps the error that stopped a use case.
type ServiceError struct {
	// Operation is the use case that failed ("generate_brief", "generate_article").
	Operation string
	// Stage is the pipeline step that failed.
	Stage string
	// Err is the underlying error.
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed at %s: %v", e.Operation, e.Stage, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newBriefError(stage string, err error) error {
	return &ServiceError{Operation: "generate_brief", Stage: stage, Err: err}
}

func newArticleError(stage string, err error) error {
	return &ServiceError{Operation: "generate_article", Stage: stage, Err: err}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn      = errors.New("required column not found")
	ErrInvalidPattern     = errors.New("invalid pattern")
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrUnknownMatchMode   = errors.New("unknown match mode")
	ErrUnknownSourceKind  = errors.New("unknown reference source")
	ErrReferenceNotLoaded = errors.New("reference set not loaded")

	ErrInvalidJsonPayload = errors.New("invalid JSON payload")
	ErrEmptyTitles        = errors.New("titles cannot be empty")
	ErrTooManyTitles      = errors.New("too many titles")
	ErrMissingTitle       = errors.New("title is required")
)

// configError reports a malformed reference component. It is only ever
// produced while building keyword tables, severity indexes or rule sets.
type configError struct {
	Component string
	Reason    string
	Err       error
}

func (e *configError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Component, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Component, e.Reason)
}

func (e *configError) Unwrap() error {
	return e.Err
}

func NewConfigError(component, reason string, err error) error {
	return &configError{
		Component: component,
		Reason:    reason,
		Err:       err,
	}
}

func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var cfgErr *configError
	return errors.As(err, &cfgErr)
}

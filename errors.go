package voxnova

import (
	"errors"
	"fmt"
)

// ErrMissingTranslation indicates that no catalog in the fallback chain
// resolved the key. Translate degrades to returning the key instead of
// surfacing this error; Resolve reports it directly.
var ErrMissingTranslation = errors.New("voxnova: missing translation")

// TypeMismatchError reports an argument whose runtime kind does not match
// its placeholder's declared type.
type TypeMismatchError struct {
	Param    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("voxnova: parameter %q expects a %s value, got %s", e.Param, e.Expected, e.Actual)
}

// MissingOptionsError reports a plural placeholder with no plural rule set
// declared in the message's parameter options.
type MissingOptionsError struct {
	Param string
}

func (e *MissingOptionsError) Error() string {
	return fmt.Sprintf("voxnova: parameter %q has no plural options declared", e.Param)
}

// CatalogError reports a structurally invalid catalog entry found during
// construction-time validation.
type CatalogError struct {
	Locale string
	Key    string
	Reason string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("voxnova: catalog %s: key %q: %s", e.Locale, e.Key, e.Reason)
}

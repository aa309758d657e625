package model

import "fmt"

// SchemaMismatchError reports a feature vector whose length disagrees with
// the fitted scaler or classifier.
type SchemaMismatchError struct {
	Expected int
	Got      int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("expected %d features, got %d", e.Expected, e.Got)
}

// ArtifactLoadError reports a missing or corrupt model artifact. It is fatal
// at start-up.
type ArtifactLoadError struct {
	Path string
	Err  error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("failed to load artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error {
	return e.Err
}

// FieldTypeError reports a request field that is neither a number nor a boolean.
type FieldTypeError struct {
	Field string
	Value any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q must be a number or boolean, got %T", e.Field, e.Value)
}

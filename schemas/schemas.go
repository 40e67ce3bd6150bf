// Package schemas holds the JSON Schema contract for structured resumes and
// match analyses and validates documents against it.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed resume.schema.json
	resumeSchema string

	//go:embed analysis.schema.json
	analysisSchema string

	//go:embed renderable.schema.json
	renderableSchema string
)

// Kind names a schema in the contract
type Kind string

const (
	// KindResume is the normalized StructuredResume
	KindResume Kind = "resume"
	// KindAnalysis is the normalized MatchAnalysis
	KindAnalysis Kind = "analysis"
	// KindRenderable is the minimum a resume needs to be rendered to PDF
	KindRenderable Kind = "renderable"
)

var sources = map[Kind]*string{
	KindResume:     &resumeSchema,
	KindAnalysis:   &analysisSchema,
	KindRenderable: &renderableSchema,
}

var (
	compileOnce sync.Once
	compiled    map[Kind]*gojsonschema.Schema
	compileErr  error
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Kind   Kind
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s validation failed:\n", ve.Kind))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or compiling a schema itself
type SchemaLoadError struct {
	Kind  Kind
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load %s schema: %v", e.Kind, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func compileAll() {
	compiled = make(map[Kind]*gojsonschema.Schema, len(sources))
	for kind, src := range sources {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(*src))
		if err != nil {
			compileErr = &SchemaLoadError{Kind: kind, Cause: err}
			return
		}
		compiled[kind] = schema
	}
}

// Validate checks a Go value (anything encoding/json can marshal) against
// the schema of the given kind.
func Validate(kind Kind, document any) error {
	compileOnce.Do(compileAll)
	if compileErr != nil {
		return compileErr
	}

	schema, ok := compiled[kind]
	if !ok {
		return fmt.Errorf("unknown schema kind %q", kind)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("failed to load %s document: %w", kind, err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Kind:   kind,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

// Source returns the raw schema document for a kind.
func Source(kind Kind) (string, bool) {
	src, ok := sources[kind]
	if !ok {
		return "", false
	}
	return *src, true
}

// Package schemas checks profile documents against the embedded JSON Schema
// before they are stored.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// ProfileSchema is the schema of a saved profile.
const ProfileSchema = "profile.schema.json"

// FieldError is one violation at a JSON path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation of a document against its schema.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d problem(s)", e.Schema, len(e.Errors))
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// DecodeError means the document could not be read as JSON at all.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("document is not valid JSON: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// SchemaLoadError means an embedded schema is missing or does not compile.
// It is a programming error, never the caller's fault.
type SchemaLoadError struct {
	Path  string
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("schema %s unusable: %v", e.Path, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error { return e.Cause }

var compiled sync.Map // name -> *compiledSchema

type compiledSchema struct {
	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

// compile parses an embedded schema once and keeps the result.
func compile(name string) (*gojsonschema.Schema, error) {
	v, _ := compiled.LoadOrStore(name, &compiledSchema{})
	c := v.(*compiledSchema)
	c.once.Do(func() {
		raw, err := schemaFiles.ReadFile(name)
		if err != nil {
			c.err = &SchemaLoadError{Path: name, Cause: err}
			return
		}
		c.schema, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			c.err = &SchemaLoadError{Path: name, Cause: err}
		}
	})
	return c.schema, c.err
}

// Validate checks document against the named embedded schema.
func Validate(name string, document []byte) error {
	schema, err := compile(name)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &DecodeError{Cause: err}
	}
	if result.Valid() {
		return nil
	}

	out := &ValidationError{Schema: name}
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "" {
			field = "(root)"
		}
		out.Errors = append(out.Errors, FieldError{Field: field, Message: re.Description()})
	}
	return out
}

// ValidateProfile checks a saved profile document.
func ValidateProfile(document []byte) error {
	return Validate(ProfileSchema, document)
}

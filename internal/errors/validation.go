package errors

import (
	"fmt"
	"sort"
	"strings"
)

// MetaValidation holds the per-field messages of a validation failure.
const MetaValidation = "validation_errors"

// ValidationError lists problems per field. Field names print sorted so
// messages are stable.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (v *ValidationError) Error() string {
	if !v.HasErrors() {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", name, strings.Join(v.Fields[name], ", "))
	}
	return b.String()
}

// AddFieldError records one problem with field.
func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors reports whether any field failed.
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts v to a CodeInvalidArgument *Error, or nil when v is empty.
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta(MetaValidation, v.Fields)
}

// ValidationBuilder collects field problems for a Config.Validate method.
//
//	vb := errors.NewValidationBuilder()
//	if c.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
type ValidationBuilder struct {
	v *ValidationError
}

// NewValidationBuilder starts an empty builder.
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{v: NewValidationError()}
}

// Field records a problem with field.
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.v.AddFieldError(field, message)
	return vb
}

// Fieldf records a formatted problem with field.
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records that field is missing.
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns nil when nothing was recorded.
func (vb *ValidationBuilder) Build() error {
	if !vb.v.HasErrors() {
		return nil
	}
	return vb.v.ToError()
}

// ValidateEnum records a problem unless value is one of allowed.
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if a == value {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

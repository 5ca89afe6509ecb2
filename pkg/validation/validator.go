package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formctl/pkg/model"
)

// Result is the outcome of validating one field.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func pass() Result {
	return Result{Valid: true}
}

func fail(message string) Result {
	return Result{Message: message}
}

// Validator evaluates field rules. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New constructs a Validator with the form rules registered.
func New() (*Validator, error) {
	v := validator.New()
	if err := registerRules(v); err != nil {
		return nil, fmt.Errorf("validation: register rules: %w", err)
	}
	return &Validator{validate: v}, nil
}

// MustNew is New for package-level initialisation; it panics on error.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Engine exposes the underlying validator so callers can validate tagged
// structs with the form tags.
func (v *Validator) Engine() *validator.Validate {
	return v.validate
}

// Field validates field. form supplies the radio siblings and may be nil for
// non-radio fields.
func (v *Validator) Field(form *model.Form, field model.Field) Result {
	switch field.Type {
	case model.FieldTypeRadio:
		if form != nil && form.GroupChecked(field.Name) {
			return pass()
		}
		if form == nil && field.Checked {
			return pass()
		}
		return fail(MessageSelectOption)
	case model.FieldTypeCheckbox:
		if field.Checked {
			return pass()
		}
		return fail(MessageAcceptTerms)
	}

	if field.Required && !v.check(field.Value, TagRequired) {
		return fail(MessageRequired)
	}
	if field.Type == model.FieldTypeEmail && field.Value != "" && !v.check(field.Value, TagEmail) {
		return fail(MessageEmail)
	}
	if field.Type == model.FieldTypeTel && field.Value != "" && !v.check(field.Value, TagPhone) {
		return fail(MessagePhone)
	}
	return pass()
}

func (v *Validator) check(value, tag string) bool {
	return v.validate.Var(value, tag) == nil
}

// Form validates every field without side effects. Radio groups are reported
// once under the group name.
func (v *Validator) Form(form *model.Form) Report {
	report := NewReport()
	for _, field := range form.Fields() {
		report.Add(*field, v.Field(form, *field))
	}
	return report
}

package model

// FieldType identifies the kind of input a field represents. Values mirror the
// HTML input type attribute.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
)

// DefaultCheckboxValue is submitted for a checked checkbox without an explicit
// value, matching browser behaviour.
const DefaultCheckboxValue = "on"

// TextLike reports whether the type holds free-form text. Every type other
// than radio and checkbox is text-like, including unknown ones.
func (t FieldType) TextLike() bool {
	return t != FieldTypeRadio && t != FieldTypeCheckbox
}

// Checkable reports whether the field state is carried by Checked.
func (t FieldType) Checkable() bool {
	return !t.TextLike()
}

// Field models one input participating in validation. For radio members Value
// holds the option value; for text-like fields it holds the user input. Options
// lists the values a select field accepts.
type Field struct {
	Name     string    `json:"name" yaml:"name"`
	Type     FieldType `json:"type" yaml:"type"`
	Label    string    `json:"label,omitempty" yaml:"label,omitempty"`
	Required bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Value    string    `json:"value,omitempty" yaml:"value,omitempty"`
	Checked  bool      `json:"checked,omitempty" yaml:"checked,omitempty"`
	Options  []string  `json:"options,omitempty" yaml:"options,omitempty"`
}

// DisplayLabel returns the label, falling back to the value for radio members
// and to the name otherwise.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	if f.Type == FieldTypeRadio && f.Value != "" {
		return f.Value
	}
	return f.Name
}

// Payload is the flat name/value mapping sent on submit.
type Payload map[string]string

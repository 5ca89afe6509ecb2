package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Form is an ordered field collection. It is not safe for concurrent use;
// callers that share a Form across goroutines must synchronise access.
type Form struct {
	ID     string
	fields []*Field
}

// NewForm copies the provided fields into a new Form. Names and types are
// trimmed and types lower-cased; an empty type becomes text.
func NewForm(id string, fields ...Field) *Form {
	form := &Form{
		ID:     strings.TrimSpace(id),
		fields: make([]*Field, 0, len(fields)),
	}
	for _, field := range fields {
		form.Add(field)
	}
	return form
}

// Add appends a copy of field to the collection.
func (f *Form) Add(field Field) {
	field.Name = strings.TrimSpace(field.Name)
	field.Type = FieldType(strings.ToLower(strings.TrimSpace(string(field.Type))))
	if field.Type == "" {
		field.Type = FieldTypeText
	}
	f.fields = append(f.fields, &field)
}

// Fields returns the live field pointers in document order.
func (f *Form) Fields() []*Field {
	if f == nil {
		return nil
	}
	return f.fields
}

// Snapshot returns copies of every field in document order.
func (f *Form) Snapshot() []Field {
	if f == nil {
		return nil
	}
	return lo.Map(f.fields, func(field *Field, _ int) Field {
		out := *field
		out.Options = slices.Clone(field.Options)
		return out
	})
}

// Field returns the first non-radio field with the given name.
func (f *Form) Field(name string) (*Field, error) {
	field, ok := lo.Find(f.Fields(), func(candidate *Field) bool {
		return candidate.Name == name && candidate.Type != FieldTypeRadio
	})
	if !ok {
		if len(f.Group(name)) > 0 {
			return nil, fmt.Errorf("%w: %q is a radio group", ErrFieldType, name)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return field, nil
}

// Group returns the radio members sharing name, in document order.
func (f *Form) Group(name string) []*Field {
	return lo.Filter(f.Fields(), func(candidate *Field, _ int) bool {
		return candidate.Type == FieldTypeRadio && candidate.Name == name
	})
}

// GroupChecked reports whether any member of the radio group is checked.
func (f *Form) GroupChecked(name string) bool {
	return lo.SomeBy(f.Group(name), func(member *Field) bool {
		return member.Checked
	})
}

// Choose checks the radio member of group name whose value matches and
// unchecks its siblings.
func (f *Form) Choose(name, value string) (*Field, error) {
	members := f.Group(name)
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: radio group %q", ErrUnknownField, name)
	}
	chosen, ok := lo.Find(members, func(member *Field) bool {
		return member.Value == value
	})
	if !ok {
		return nil, fmt.Errorf("%w: radio group %q has no option %q", ErrUnknownField, name, value)
	}
	for _, member := range members {
		member.Checked = member == chosen
	}
	return chosen, nil
}

// Payload derives the submission mapping. Text-like fields always contribute
// their value; radio members and checkboxes contribute only when checked.
// Later fields overwrite earlier ones with the same name and unnamed fields
// are skipped.
func (f *Form) Payload() Payload {
	payload := make(Payload, len(f.Fields()))
	for _, field := range f.Fields() {
		if field.Name == "" {
			continue
		}
		switch {
		case field.Type.TextLike():
			payload[field.Name] = field.Value
		case field.Checked:
			value := field.Value
			if value == "" {
				value = DefaultCheckboxValue
			}
			payload[field.Name] = value
		}
	}
	return payload
}

// Reset clears text values and unchecks every radio member and checkbox.
// Option values of checkable fields are preserved.
func (f *Form) Reset() {
	for _, field := range f.Fields() {
		if field.Type.TextLike() {
			field.Value = ""
			continue
		}
		field.Checked = false
	}
}

// Package definition loads form fields from declarative sources: a YAML
// definition file or the request body schema of an OpenAPI operation.
package definition

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formctl/pkg/model"
)

// Choice is one option of a radio field.
type Choice struct {
	Value   string `yaml:"value" json:"value"`
	Label   string `yaml:"label,omitempty" json:"label,omitempty"`
	Checked bool   `yaml:"checked,omitempty" json:"checked,omitempty"`
}

// FieldSpec declares one field. Radio fields list their options and expand
// into one member per option.
type FieldSpec struct {
	Name     string          `yaml:"name" json:"name"`
	Type     model.FieldType `yaml:"type,omitempty" json:"type,omitempty"`
	Label    string          `yaml:"label,omitempty" json:"label,omitempty"`
	Required bool            `yaml:"required,omitempty" json:"required,omitempty"`
	Value    string          `yaml:"value,omitempty" json:"value,omitempty"`
	Checked  bool            `yaml:"checked,omitempty" json:"checked,omitempty"`
	Options  []Choice        `yaml:"options,omitempty" json:"options,omitempty"`
}

// Document is a parsed form definition.
type Document struct {
	ID       string      `yaml:"id" json:"id"`
	Endpoint string      `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	Fields   []FieldSpec `yaml:"fields" json:"fields"`
}

// Parse decodes a YAML (or JSON) definition. Unknown keys are rejected.
func Parse(raw []byte) (Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, ErrEmptyDocument
	}
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("definition: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadFile reads and parses the definition at path.
func LoadFile(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return doc, nil
}

// Validate checks that every field can become a form field.
func (d Document) Validate() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("%w: document %q declares no fields", ErrInvalidField, d.ID)
	}
	for i, spec := range d.Fields {
		if strings.TrimSpace(spec.Name) == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidField, i)
		}
		switch radio := isRadio(spec.Type); {
		case radio && len(spec.Options) == 0:
			return fmt.Errorf("%w: radio field %q has no options", ErrInvalidField, spec.Name)
		case !radio && len(spec.Options) > 0:
			return fmt.Errorf("%w: field %q of type %q cannot declare options", ErrInvalidField, spec.Name, spec.Type)
		}
	}
	return nil
}

// Form builds the field collection in declaration order.
func (d Document) Form() (*model.Form, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	form := model.NewForm(d.ID)
	for _, spec := range d.Fields {
		if !isRadio(spec.Type) {
			form.Add(model.Field{
				Name:     spec.Name,
				Type:     spec.Type,
				Label:    spec.Label,
				Required: spec.Required,
				Value:    spec.Value,
				Checked:  spec.Checked,
			})
			continue
		}
		for _, choice := range spec.Options {
			form.Add(model.Field{
				Name:     spec.Name,
				Type:     model.FieldTypeRadio,
				Label:    choice.Label,
				Required: spec.Required,
				Value:    choice.Value,
				Checked:  choice.Checked,
			})
		}
	}
	return form, nil
}

func isRadio(t model.FieldType) bool {
	return strings.EqualFold(strings.TrimSpace(string(t)), string(model.FieldTypeRadio))
}

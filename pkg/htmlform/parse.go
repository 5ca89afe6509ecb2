// Package htmlform discovers a form's field collection from page markup. The
// page is expected to follow the form controller's DOM contract: a form
// element with a known id whose inputs sit in `.form-group > .input-wrapper`
// containers.
package htmlform

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-formctl/pkg/model"
)

// DefaultFormID is the id of the form element looked up when none is given.
const DefaultFormID = "referralForm"

// ErrFormNotFound is returned when the document has no form with the id.
var ErrFormNotFound = errors.New("htmlform: form not found")

// Controls are the elements read as fields.
const Controls = "input, textarea, select"

var skippedInputTypes = map[string]struct{}{
	"submit": {},
	"button": {},
	"reset":  {},
	"image":  {},
	"file":   {},
}

// Parse reads markup from r and extracts the fields of form formID.
func Parse(r io.Reader, formID string) (*model.Form, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("htmlform: parse document: %w", err)
	}
	return FromDocument(doc, formID)
}

// FromDocument extracts the fields of form formID from a parsed document.
func FromDocument(doc *goquery.Document, formID string) (*model.Form, error) {
	formID = strings.TrimSpace(formID)
	if formID == "" {
		formID = DefaultFormID
	}
	formSel := FindForm(doc, formID)
	if formSel.Length() == 0 {
		return nil, fmt.Errorf("%w: #%s", ErrFormNotFound, formID)
	}

	form := model.NewForm(formID)
	formSel.Find(Controls).Each(func(_ int, s *goquery.Selection) {
		field, ok := fieldFromSelection(doc, s)
		if ok {
			form.Add(field)
		}
	})
	return form, nil
}

// FindForm returns the form element with id formID.
func FindForm(doc *goquery.Document, formID string) *goquery.Selection {
	return doc.Find("form").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == formID
	}).First()
}

func fieldFromSelection(doc *goquery.Document, s *goquery.Selection) (model.Field, bool) {
	name := strings.TrimSpace(s.AttrOr("name", ""))
	_, disabled := s.Attr("disabled")
	if disabled {
		return model.Field{}, false
	}

	field := model.Field{
		Name:  name,
		Label: labelFor(doc, s),
	}
	_, field.Required = s.Attr("required")

	switch goquery.NodeName(s) {
	case "textarea":
		field.Type = model.FieldTypeTextarea
		field.Value = s.Text()
	case "select":
		field.Type = model.FieldTypeSelect
		field.Value = selectedOption(s)
		field.Options = s.Find("option").Map(func(_ int, option *goquery.Selection) string {
			return optionValue(option)
		})
	default:
		typ := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "")))
		if typ == "" {
			typ = string(model.FieldTypeText)
		}
		if _, skip := skippedInputTypes[typ]; skip {
			return model.Field{}, false
		}
		field.Type = model.FieldType(typ)
		field.Value = s.AttrOr("value", "")
		if field.Type.Checkable() {
			_, field.Checked = s.Attr("checked")
		}
	}
	return field, true
}

func selectedOption(s *goquery.Selection) string {
	option := s.Find("option[selected]").First()
	if option.Length() == 0 {
		option = s.Find("option").First()
	}
	if option.Length() == 0 {
		return ""
	}
	return optionValue(option)
}

// optionValue is the value attribute, or the trimmed text when it is absent.
func optionValue(option *goquery.Selection) string {
	if value, ok := option.Attr("value"); ok {
		return value
	}
	return strings.TrimSpace(option.Text())
}

// labelFor resolves a label from `label[for=id]`, an enclosing label, or the
// group's first label, in that order.
func labelFor(doc *goquery.Document, s *goquery.Selection) string {
	if id := strings.TrimSpace(s.AttrOr("id", "")); id != "" {
		label := doc.Find("label").FilterFunction(func(_ int, l *goquery.Selection) bool {
			return l.AttrOr("for", "") == id
		}).First()
		if label.Length() > 0 {
			return cleanText(label.Text())
		}
	}
	if enclosing := s.Closest("label"); enclosing.Length() > 0 {
		return cleanText(enclosing.Text())
	}
	if s.AttrOr("type", "") == string(model.FieldTypeRadio) {
		return ""
	}
	if group := s.Closest(".form-group"); group.Length() > 0 {
		return cleanText(group.Find("label").First().Text())
	}
	return ""
}

func cleanText(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

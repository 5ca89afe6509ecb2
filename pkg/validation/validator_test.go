package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/validation"
)

func TestField_RequiredRejectsBlank(t *testing.T) {
	v := validation.MustNew()
	for _, value := range []string{"", " ", "\t\n", "   "} {
		for _, typ := range []model.FieldType{model.FieldTypeText, model.FieldTypeEmail, model.FieldTypeTel, "textarea"} {
			got := v.Field(nil, model.Field{Name: "f", Type: typ, Required: true, Value: value})
			want := validation.Result{Message: validation.MessageRequired}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("type %q value %q (-want +got):\n%s", typ, value, diff)
			}
		}
	}
}

func TestField_OptionalEmptyPasses(t *testing.T) {
	v := validation.MustNew()
	for _, typ := range []model.FieldType{model.FieldTypeText, model.FieldTypeEmail, model.FieldTypeTel} {
		if got := v.Field(nil, model.Field{Name: "f", Type: typ}); !got.Valid {
			t.Fatalf("expected optional empty %q to pass, got %+v", typ, got)
		}
	}
}

func TestField_Email(t *testing.T) {
	v := validation.MustNew()
	cases := map[string]bool{
		"a@b.co":            true,
		"ada@example.com":   true,
		"first.last@a.b.c":  true,
		"a@b":               false,
		"@b.co":             false,
		"a b@c.de":          false,
		"a@@b.co":           false,
		"plainaddress":      false,
		"trailing@domain.":  false,
	}
	for value, valid := range cases {
		got := v.Field(nil, model.Field{Name: "email", Type: model.FieldTypeEmail, Value: value})
		if got.Valid != valid {
			t.Fatalf("email %q: expected valid=%v, got %+v", value, valid, got)
		}
		if !valid && got.Message != validation.MessageEmail {
			t.Fatalf("email %q: unexpected message %q", value, got.Message)
		}
	}
}

func TestField_Phone(t *testing.T) {
	v := validation.MustNew()
	cases := map[string]bool{
		"+1 234 5678":   true,
		"12345678":      true,
		"555-123-4567":  true,
		"123":           false,
		"+1234567":      false,
		"++12345678":    false,
		"1234abcd5678":  false,
	}
	for value, valid := range cases {
		got := v.Field(nil, model.Field{Name: "phone", Type: model.FieldTypeTel, Value: value})
		if got.Valid != valid {
			t.Fatalf("phone %q: expected valid=%v, got %+v", value, valid, got)
		}
		if !valid && got.Message != validation.MessagePhone {
			t.Fatalf("phone %q: unexpected message %q", value, got.Message)
		}
	}
}

func TestField_RequiredWinsOverFormat(t *testing.T) {
	v := validation.MustNew()
	got := v.Field(nil, model.Field{Name: "email", Type: model.FieldTypeEmail, Required: true, Value: "  "})
	if got.Message != validation.MessageRequired {
		t.Fatalf("expected required message first, got %q", got.Message)
	}
}

func TestField_RadioGroup(t *testing.T) {
	v := validation.MustNew()
	form := model.NewForm("f",
		model.Field{Name: "source", Type: model.FieldTypeRadio, Value: "friend"},
		model.Field{Name: "source", Type: model.FieldTypeRadio, Value: "ad"},
	)
	member := *form.Group("source")[0]

	got := v.Field(form, member)
	if diff := cmp.Diff(validation.Result{Message: validation.MessageSelectOption}, got); diff != "" {
		t.Fatalf("unchecked group (-want +got):\n%s", diff)
	}

	if _, err := form.Choose("source", "ad"); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if got := v.Field(form, member); !got.Valid {
		t.Fatalf("expected group to be valid once a sibling is checked, got %+v", got)
	}
}

func TestField_Checkbox(t *testing.T) {
	v := validation.MustNew()
	got := v.Field(nil, model.Field{Name: "consent", Type: model.FieldTypeCheckbox})
	if got.Message != validation.MessageAcceptTerms {
		t.Fatalf("expected terms message, got %+v", got)
	}
	if got := v.Field(nil, model.Field{Name: "consent", Type: model.FieldTypeCheckbox, Checked: true}); !got.Valid {
		t.Fatalf("expected checked box to pass, got %+v", got)
	}
}

func TestForm_Report(t *testing.T) {
	v := validation.MustNew()
	form := model.NewForm("f",
		model.Field{Name: "name", Required: true},
		model.Field{Name: "email", Type: model.FieldTypeEmail, Value: "nope"},
		model.Field{Name: "source", Type: model.FieldTypeRadio, Value: "friend"},
		model.Field{Name: "source", Type: model.FieldTypeRadio, Value: "ad"},
		model.Field{Name: "phone", Type: model.FieldTypeTel, Value: "+44 20 7946 0958"},
	)

	report := v.Form(form)
	want := validation.Report{
		Issues: []validation.Issue{
			{Field: "name", Type: model.FieldTypeText, Message: validation.MessageRequired},
			{Field: "email", Type: model.FieldTypeEmail, Message: validation.MessageEmail},
			{Field: "source", Type: model.FieldTypeRadio, Message: validation.MessageSelectOption},
		},
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	if got := report.Messages()["source"]; got != validation.MessageSelectOption {
		t.Fatalf("unexpected source message %q", got)
	}
}

func TestEngine_TaggedStruct(t *testing.T) {
	v := validation.MustNew()
	type contact struct {
		Email string `validate:"form_required,form_email"`
		Phone string `validate:"form_phone"`
	}
	if err := v.Engine().Struct(contact{Email: "a@b.co", Phone: "0123 456 789"}); err != nil {
		t.Fatalf("expected tagged struct to validate, got %v", err)
	}
	if err := v.Engine().Struct(contact{Email: "a@b", Phone: "0123 456 789"}); err == nil {
		t.Fatalf("expected invalid email to fail")
	}
}

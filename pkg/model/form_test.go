package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formctl/pkg/model"
)

func referralForm() *model.Form {
	return model.NewForm("referralForm",
		model.Field{Name: "name", Type: "TEXT ", Required: true, Value: "Ada"},
		model.Field{Name: "email", Type: model.FieldTypeEmail, Value: "ada@example.com"},
		model.Field{Name: "notes"},
		model.Field{Name: "source", Type: model.FieldTypeRadio, Value: "friend"},
		model.Field{Name: "source", Type: model.FieldTypeRadio, Value: "ad", Checked: true},
		model.Field{Name: "consent", Type: model.FieldTypeCheckbox, Checked: true},
		model.Field{Name: "newsletter", Type: model.FieldTypeCheckbox, Value: "yes"},
		model.Field{Type: model.FieldTypeText, Value: "anonymous"},
	)
}

func TestNewForm_NormalisesTypes(t *testing.T) {
	form := referralForm()
	fields := form.Snapshot()

	if fields[0].Type != model.FieldTypeText {
		t.Fatalf("expected trimmed lower-case type, got %q", fields[0].Type)
	}
	if fields[2].Type != model.FieldTypeText {
		t.Fatalf("expected empty type to default to text, got %q", fields[2].Type)
	}
	if len(fields) != 8 {
		t.Fatalf("expected 8 fields, got %d", len(fields))
	}
}

func TestForm_SnapshotCopiesOptions(t *testing.T) {
	form := model.NewForm("f", model.Field{Name: "country", Type: model.FieldTypeSelect, Options: []string{"uk", "fr"}})

	snapshot := form.Snapshot()
	snapshot[0].Options[0] = "de"

	if diff := cmp.Diff([]string{"uk", "fr"}, form.Snapshot()[0].Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_Payload(t *testing.T) {
	form := referralForm()

	want := model.Payload{
		"name":    "Ada",
		"email":   "ada@example.com",
		"notes":   "",
		"source":  "ad",
		"consent": model.DefaultCheckboxValue,
	}
	if diff := cmp.Diff(want, form.Payload()); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestForm_PayloadLaterFieldsWin(t *testing.T) {
	form := model.NewForm("f",
		model.Field{Name: "ref", Value: "first"},
		model.Field{Name: "ref", Value: "second"},
	)
	if got := form.Payload()["ref"]; got != "second" {
		t.Fatalf("expected later field to win, got %q", got)
	}
}

func TestForm_Groups(t *testing.T) {
	form := referralForm()

	if got := len(form.Group("source")); got != 2 {
		t.Fatalf("expected 2 source members, got %d", got)
	}
	if !form.GroupChecked("source") {
		t.Fatalf("expected source group to be checked")
	}

	chosen, err := form.Choose("source", "friend")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if chosen.Value != "friend" || !chosen.Checked {
		t.Fatalf("unexpected chosen member: %+v", chosen)
	}
	checked := 0
	for _, member := range form.Group("source") {
		if member.Checked {
			checked++
		}
	}
	if checked != 1 {
		t.Fatalf("expected exactly one checked member, got %d", checked)
	}

	if _, err := form.Choose("source", "billboard"); !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for missing option, got %v", err)
	}
	if _, err := form.Choose("missing", "x"); !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField for missing group, got %v", err)
	}
}

func TestForm_FieldLookup(t *testing.T) {
	form := referralForm()

	field, err := form.Field("email")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if field.Type != model.FieldTypeEmail {
		t.Fatalf("unexpected field: %+v", field)
	}

	if _, err := form.Field("source"); !errors.Is(err, model.ErrFieldType) {
		t.Fatalf("expected ErrFieldType for radio group, got %v", err)
	}
	if _, err := form.Field("phone"); !errors.Is(err, model.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestForm_Reset(t *testing.T) {
	form := referralForm()
	form.Reset()

	for _, field := range form.Snapshot() {
		if field.Type.TextLike() && field.Value != "" {
			t.Fatalf("expected %q to be empty, got %q", field.Name, field.Value)
		}
		if field.Type.Checkable() && field.Checked {
			t.Fatalf("expected %q to be unchecked", field.Name)
		}
	}

	members := form.Group("source")
	if members[0].Value != "friend" || members[1].Value != "ad" {
		t.Fatalf("expected radio option values to survive reset")
	}
}

func TestField_DisplayLabel(t *testing.T) {
	cases := []struct {
		field model.Field
		want  string
	}{
		{model.Field{Name: "name", Label: "Full name"}, "Full name"},
		{model.Field{Name: "source", Type: model.FieldTypeRadio, Value: "ad"}, "ad"},
		{model.Field{Name: "phone", Type: model.FieldTypeTel}, "phone"},
	}
	for _, tc := range cases {
		if got := tc.field.DisplayLabel(); got != tc.want {
			t.Fatalf("DisplayLabel(%+v) = %q, want %q", tc.field, got, tc.want)
		}
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/model"
)

// readValues decodes a flat JSON object of field values. Numbers are kept as
// json.Number so they keep their literal digits.
func readValues(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formctl: read values: %w", err)
	}
	var values map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("formctl: decode values %s: %w", path, err)
	}
	return values, nil
}

// applyValues feeds values through the controller as user edits, in name
// order. Radio values pick the member with that value; checkbox values are
// truthy unless false, empty, "0", "off" or "false".
func applyValues(ctrl *controller.Controller, values map[string]any) error {
	types := make(map[string]model.FieldType)
	for _, field := range ctrl.Snapshot() {
		if _, seen := types[field.Name]; !seen {
			types[field.Name] = field.Type
		}
	}

	names := lo.Keys(values)
	sort.Strings(names)
	for _, name := range names {
		value := values[name]
		typ, ok := types[name]
		if !ok {
			return fmt.Errorf("formctl: %w: %s", model.ErrUnknownField, name)
		}
		var err error
		switch typ {
		case model.FieldTypeRadio:
			_, err = ctrl.Choose(name, valueString(value))
		case model.FieldTypeCheckbox:
			err = ctrl.Check(name, truthy(value))
		default:
			err = ctrl.Input(name, valueString(value))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case nil:
		return false
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "0", "off", "false", "no":
			return false
		}
		return true
	default:
		return true
	}
}

// valueString formats a decoded JSON value as the text a user would type.
func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

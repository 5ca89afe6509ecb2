package definition

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formctl/pkg/model"
)

// Extension keys read from property schemas.
const (
	InputTypeExtensionKey = "x-input-type"
	LabelExtensionKey     = "x-label"
)

// FromOpenAPI derives a definition from the JSON request body of the
// operation with id operationID. An empty id selects the document's only
// operation that accepts a body. Properties map to fields in name order:
// booleans become checkboxes, enums become radio groups, and the email and
// tel formats (or x-input-type) select the matching text-like types.
func FromOpenAPI(ctx context.Context, raw []byte, operationID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Document{}, ErrEmptyDocument
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return Document{}, fmt.Errorf("definition: load openapi document: %w", err)
	}

	path, op, err := findOperation(spec, operationID)
	if err != nil {
		return Document{}, err
	}
	schema := requestSchema(op)
	if schema == nil {
		return Document{}, fmt.Errorf("%w: %q has no JSON request body", ErrOperationNotFound, op.OperationID)
	}

	doc := Document{
		ID:       op.OperationID,
		Endpoint: endpoint(spec, path),
	}
	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		doc.Fields = append(doc.Fields, fieldFromSchema(name, ref.Value, required[name]))
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func findOperation(spec *openapi3.T, operationID string) (string, *openapi3.Operation, error) {
	if spec.Paths == nil {
		return "", nil, fmt.Errorf("%w: document has no paths", ErrOperationNotFound)
	}
	paths := make([]string, 0, spec.Paths.Len())
	for path := range spec.Paths.Map() {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var (
		foundPath string
		found     *openapi3.Operation
		matches   int
	)
	for _, path := range paths {
		item := spec.Paths.Value(path)
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op == nil {
				continue
			}
			if operationID != "" {
				if op.OperationID == operationID {
					return path, op, nil
				}
				continue
			}
			if requestSchema(op) != nil {
				foundPath, found = path, op
				matches++
			}
		}
	}
	if operationID == "" && matches == 1 {
		return foundPath, found, nil
	}
	if operationID == "" {
		return "", nil, fmt.Errorf("%w: %d operations accept a body, pass an operation id", ErrOperationNotFound, matches)
	}
	return "", nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	mt := op.RequestBody.Value.Content.Get("application/json")
	if mt == nil || mt.Schema == nil || mt.Schema.Value == nil {
		return nil
	}
	if len(mt.Schema.Value.Properties) == 0 {
		return nil
	}
	return mt.Schema.Value
}

func endpoint(spec *openapi3.T, path string) string {
	if len(spec.Servers) == 0 || spec.Servers[0] == nil {
		return path
	}
	return strings.TrimRight(spec.Servers[0].URL, "/") + path
}

func fieldFromSchema(name string, schema *openapi3.Schema, required bool) FieldSpec {
	spec := FieldSpec{
		Name:     name,
		Type:     model.FieldTypeText,
		Label:    stringExtension(schema.Extensions, LabelExtensionKey),
		Required: required,
	}
	if spec.Label == "" {
		spec.Label = schema.Title
	}

	if firstSchemaType(schema.Type) == openapi3.TypeBoolean {
		spec.Type = model.FieldTypeCheckbox
		return spec
	}
	if len(schema.Enum) > 0 {
		spec.Type = model.FieldTypeRadio
		def := fmt.Sprint(schema.Default)
		for _, value := range schema.Enum {
			v := fmt.Sprint(value)
			spec.Options = append(spec.Options, Choice{Value: v, Checked: schema.Default != nil && v == def})
		}
		return spec
	}

	switch strings.ToLower(schema.Format) {
	case "email":
		spec.Type = model.FieldTypeEmail
	case "tel", "phone":
		spec.Type = model.FieldTypeTel
	}
	if override := model.FieldType(strings.ToLower(stringExtension(schema.Extensions, InputTypeExtensionKey))); override != "" && override.TextLike() {
		spec.Type = override
	}
	if schema.Default != nil {
		spec.Value = fmt.Sprint(schema.Default)
	}
	return spec
}

func stringExtension(ext map[string]any, key string) string {
	if value, ok := ext[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

package validation

import "github.com/goliatone/go-formctl/pkg/model"

// Issue describes one failing field.
type Issue struct {
	Field   string          `json:"field"`
	Type    model.FieldType `json:"type"`
	Message string          `json:"message"`
}

// Report collects the outcome of a full validation pass.
type Report struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// NewReport returns an empty, valid report.
func NewReport() Report {
	return Report{Valid: true}
}

// Add records result for field. The first issue per field name wins so radio
// groups validated once per member appear only once.
func (r *Report) Add(field model.Field, result Result) {
	if result.Valid {
		return
	}
	r.Valid = false
	for _, issue := range r.Issues {
		if issue.Field == field.Name {
			return
		}
	}
	r.Issues = append(r.Issues, Issue{
		Field:   field.Name,
		Type:    field.Type,
		Message: result.Message,
	})
}

// Messages returns the issues keyed by field name.
func (r Report) Messages() map[string]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Issues))
	for _, issue := range r.Issues {
		out[issue.Field] = issue.Message
	}
	return out
}

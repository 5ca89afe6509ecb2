package dom

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

const chromeTemplate = `<div class="{{ spinner_class }}">
	<div class="spinner"></div>
</div>
<div class="{{ feedback_class }}"></div>
`

var (
	chromeOnce sync.Once
	chromeTpl  *pongo2.Template
	chromeErr  error
)

func chromeMarkup(spinnerClass, feedbackClass string) (string, error) {
	chromeOnce.Do(func() {
		chromeTpl, chromeErr = pongo2.FromString(chromeTemplate)
	})
	if chromeErr != nil {
		return "", fmt.Errorf("dom: parse chrome template: %w", chromeErr)
	}
	out, err := chromeTpl.Execute(pongo2.Context{
		"spinner_class":  spinnerClass,
		"feedback_class": feedbackClass,
	})
	if err != nil {
		return "", fmt.Errorf("dom: render chrome: %w", err)
	}
	return out, nil
}

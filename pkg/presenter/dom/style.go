package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// setStyle sets one inline CSS property on every element of s, preserving the
// other declarations in order.
func setStyle(s *goquery.Selection, property, value string) {
	s.Each(func(_ int, el *goquery.Selection) {
		decls := parseStyle(el.AttrOr("style", ""))
		replaced := false
		for i := range decls {
			if decls[i][0] == property {
				decls[i][1] = value
				replaced = true
			}
		}
		if !replaced {
			decls = append(decls, [2]string{property, value})
		}
		el.SetAttr("style", formatStyle(decls))
	})
}

// styleOf returns the inline value of property on the first element of s.
func styleOf(s *goquery.Selection, property string) string {
	for _, decl := range parseStyle(s.First().AttrOr("style", "")) {
		if decl[0] == property {
			return decl[1]
		}
	}
	return ""
}

func parseStyle(raw string) [][2]string {
	var decls [][2]string
	for _, part := range strings.Split(raw, ";") {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		decls = append(decls, [2]string{key, strings.TrimSpace(value)})
	}
	return decls
}

func formatStyle(decls [][2]string) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl[0]+": "+decl[1])
	}
	return strings.Join(parts, "; ")
}

package render

import (
	"html/template"
	"strings"
	"time"

	"github.com/usmansaleem/blog-static-generator/internal/markup"
)

// FuncMap returns the helpers available to every template.
func FuncMap(md *markup.Converter) template.FuncMap {
	return template.FuncMap{
		// safeHTML marks a post body as trusted markup.
		"safeHTML": func(s string) template.HTML { return template.HTML(s) }, // #nosec G203 -- bodies are authored by the site owner
		"markdown": func(s string) (template.HTML, error) {
			out, err := md.Convert([]byte(s))
			return template.HTML(out), err // #nosec G203
		},
		"date": func(layout string, t time.Time) string { return t.Format(layout) },
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
	}
}

package web

import (
	"embed"
	"errors"
	"html/template"
	"strings"

	"github.com/worknest/staff/internal/forms"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are the helpers available to every page template.
var Funcs = template.FuncMap{
	"label": forms.Label,
	"fieldError": func(errs forms.FieldErrors, field string) string {
		if errs == nil {
			return ""
		}
		return errs[field]
	},
	"upper": strings.ToUpper,
	"dict":  dict,
}

func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict needs an even number of arguments")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict keys must be strings")
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

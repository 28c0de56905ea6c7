package render

import (
	"bytes"
	"strings"
	"text/template"
)

func TemplateToString(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func joinStr[T ~string](s []T, prefix, sep string) string {
	parts := make([]string, len(s))
	for i, s := range s {
		parts[i] = prefix + string(s)
	}
	return strings.Join(parts, sep)
}

func NewTemplate(name, content string) *template.Template {
	tmpl, err := template.New(name).Funcs(
		template.FuncMap{"joinStr": joinStr[string]}).Parse(content)
	if err != nil {
		panic(err)
	}
	return tmpl
}

package render

var factsTemplate = NewTemplate("facts", `
{{- range . -}}
{{ . }}.
{{ end -}}
`)

var programTemplate = NewTemplate("program", `
{{- range .Dynamic -}}
:- dynamic({{ . }}).
{{ end }}
{{- range .Background -}}
{{ . }}.
{{ end }}
{{- if .Hypothesis }}
{{ .Hypothesis }}
{{ end -}}
`)

var summaryTemplate = NewTemplate("summary", `
{{- with .Document -}}
problem: {{ .Name }}
target: {{ .Target }}
extensional: {{ joinStr .Extensional "" ", " }}
constants: {{ joinStr .Constants "" ", " }}
{{ with .Template -}}
auxiliary: {{ joinStr .Auxiliary "" ", " }}
steps: {{ .Steps }}
rules:
{{ range .Rules -}}
{{ "  " }}{{ .Predicate }}: {{ template "slot" .First }}{{ with .Second }}, {{ template "slot" . }}{{ else }}, -{{ end }}
{{ end -}}
{{ end -}}
{{ end }}
background_axioms
 {{ joinStr .Document.Background "" ", " }}

positive_examples
 {{ joinStr .Document.Positive "" ", " }}

negative_examples
 {{ joinStr .Document.Negative "" ", " }}
{{ if .Components }}
constant_components: {{ len .Components }}
{{ range .Components -}}
{{ "  " }}{{ joinStr . "" " " }}
{{ end -}}
{{ end -}}
{{- define "slot" }}(existential={{ .Existential }}, intensional={{ .Intensional }}){{ end -}}
`)

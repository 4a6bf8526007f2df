package prd

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed prd.md.tmpl
var markdownTemplate string

var tmpl = template.Must(template.New("prd").Parse(markdownTemplate))

// RenderMarkdown produces the human-readable form of the document.
func RenderMarkdown(doc Document) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

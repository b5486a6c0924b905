package chart

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"nyiyui.ca/hato/kaiki/fit"
)

const (
	DefaultTitle   = `{{ .Fit }} (R² = {{ printf "%.4f" .R2 }})`
	DefaultCaption = `{{ .N }} samples from {{ base .Path }}, solver {{ .Solver }}`
)

// LabelData is available to title and caption templates.
type LabelData struct {
	Fit    fit.Polynomial
	R2     float64
	N      int
	Path   string
	Solver string
}

// Label executes the text/template tmpl (with sprig functions) on d.
func Label(tmpl string, d LabelData) (string, error) {
	t, err := template.New("label").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse label: %w", err)
	}
	b := new(strings.Builder)
	err = t.Execute(b, d)
	if err != nil {
		return "", fmt.Errorf("execute label: %w", err)
	}
	return b.String(), nil
}

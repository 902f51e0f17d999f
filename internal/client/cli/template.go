package cli

import (
	"fmt"
	"text/template"
	"time"
)

var templateFuncs = template.FuncMap{
	"price": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}

const productTemplate = `
=== {{.Product.Name}} ===

ID:       {{.Product.ID}}
Price:    {{price .Product.Price}}
Stock:    {{.Product.Stock}}
{{- if .Product.Category }}
Category: {{.Product.Category.Name}}
{{- end}}
{{- if .Favorite }}
★ In favorites
{{- end}}
{{- if .Product.Description }}

{{.Product.Description}}
{{- end}}
{{- range .Product.Images }}
Image:    {{.}}
{{- end}}
`

const cartTemplate = `
=== Cart #{{.ID}} ===
{{ range .Items }}
[{{.ID}}] {{.ProductName}} x{{.Quantity}}  {{price .Price}}
{{- else }}
Your cart is empty.
{{- end }}

Total: {{price .TotalPrice}}
`

const orderTemplate = `
=== Order #{{.ID}} ===

Status:  {{.Status}}
Created: {{date .CreatedAt}}
{{- with .Address }}
Address: {{.Street}}, {{.City}}, {{.PostalCode}}, {{.Country}}
{{- end }}
{{ range .Items }}
{{.ProductName}} x{{.Quantity}}  {{price .Price}}
{{- end }}

Total: {{price .TotalPrice}}
`

const userTemplate = `
=== {{.FirstName}} {{.LastName}} ===

ID:    {{.ID}}
Email: {{.Email}}
{{- if .Role }}
Role:  {{.Role}}
{{- end }}
{{- range .Addresses }}
Address #{{.ID}}: {{.Street}}, {{.City}}, {{.PostalCode}}, {{.Country}}
{{- end }}
`

// render печатает data по шаблону через IO
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

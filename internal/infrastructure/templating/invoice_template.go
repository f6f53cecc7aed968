package templating

import (
	"bytes"
	"embed"
	"html/template"
	"os"

	"gst_invoice/internal/domain/entities"
	"gst_invoice/internal/usecase/interfaces"
)

//go:embed templates/invoice.html
var templatesFS embed.FS

const defaultTemplateName = "templates/invoice.html"

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// InvoiceTemplate renders the invoice view model with html/template.
// The parsed template is immutable and safe for concurrent use.
type InvoiceTemplate struct {
	tmpl *template.Template
}

var _ interfaces.IHTMLRenderer = (*InvoiceTemplate)(nil)

// NewInvoiceTemplate parses the template at path, or the embedded default
// when path is empty.
func NewInvoiceTemplate(path string) (*InvoiceTemplate, error) {
	if path == "" {
		src, err := templatesFS.ReadFile(defaultTemplateName)
		if err != nil {
			return nil, err
		}
		return ParseInvoiceTemplate(string(src))
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseInvoiceTemplate(string(src))
}

func ParseInvoiceTemplate(src string) (*InvoiceTemplate, error) {
	tmpl, err := template.New("invoice").Funcs(funcs).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, err
	}
	return &InvoiceTemplate{tmpl: tmpl}, nil
}

func (t *InvoiceTemplate) RenderHTML(inv entities.Invoice) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, inv); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package renderer

import (
	"bytes"
	"html/template"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
)

var pageTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} ({{.Status}})</title>
</head>
<body>
<h1>{{.Name}} ({{.Status}})</h1>
<p>{{.Message}}</p>
{{- if .Chain}}
<h2>Caused by</h2>
<ul>
{{- range .Chain}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- if .Stack}}
<h2>Stack trace</h2>
<pre>{{.Stack}}</pre>
{{- end}}
</body>
</html>
`))

type pageData struct {
	Name    string
	Status  int
	Message string
	Chain   []string
	Stack   string
}

func (h *ErrorHandler) page(f *fault.Fault) string {
	data := pageData{Name: f.Name(), Status: f.Status, Message: f.Message}
	if !f.IsUser() && !h.Debug {
		data.Message = InternalTextMessage
	}
	if h.Debug {
		data.Chain = f.Chain()
		data.Stack = string(f.Stack)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "<pre>" + template.HTMLEscapeString(h.String(f)) + "</pre>"
	}
	return buf.String()
}

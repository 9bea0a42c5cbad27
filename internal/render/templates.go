package render

import (
	"embed"
	"html/template"

	"io.winapps.florafauna/internal/catalog"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ConfigPage is the configuration prompt
type ConfigPage struct {
	EndpointURL string
	Error       string
	Status      catalog.ConnStatus
}

// NotFoundPage is shown for unknown entry ids
type NotFoundPage struct {
	ID     string
	Status catalog.ConnStatus
}

// DetailPage wraps a Detail with the connection status for the header
type DetailPage struct {
	Detail Detail
	Status catalog.ConnStatus
}

var funcs = template.FuncMap{
	"statusLabel": statusLabel,
}

func statusLabel(s catalog.ConnStatus) string {
	switch s {
	case catalog.StatusConnected:
		return "Connected"
	case catalog.StatusUnconfigured:
		return "Not configured"
	}
	return "Disconnected"
}

// Templates parses the embedded page templates. Every user-supplied value
// goes through html/template's contextual escaping.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
}

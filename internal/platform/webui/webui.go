// Package webui renders the browser entry form used by lab technicians to
// key in patient details and test results without touching the JSON API.
package webui

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const resultFieldPrefix = "result__"

// TestView is a single result row on the entry form.
type TestView struct {
	Name       string
	Unit       string
	NormalText string
	Section    string
	Field      string
}

// PanelView is one selectable panel with its test rows.
type PanelView struct {
	Code           string
	Name           string
	Tests          []TestView
	InstrumentNote string
}

// EntryFormData is the model behind the entry form template.
type EntryFormData struct {
	LabName string
	Panels  []PanelView
	Error   string
}

// PreviewRow is one classified result line in the preview fragment.
type PreviewRow struct {
	Test       string
	Result     string
	Unit       string
	NormalText string
	Flag       string
	Bold       bool
}

// PreviewPanel groups the classified rows of one selected panel.
type PreviewPanel struct {
	Code string
	Name string
	Rows []PreviewRow
}

// PreviewData is the model behind the classification preview fragment.
type PreviewData struct {
	PatientName string
	Panels      []PreviewPanel
	Error       string
}

// UI renders the embedded templates and scrubs form input before it
// reaches the intake layer.
type UI struct {
	tmpl   *template.Template
	policy *bluemonday.Policy
	logger *slog.Logger
}

func New(logger *slog.Logger) (*UI, error) {
	tmpl, err := template.ParseFS(embeddedTemplates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse entry form templates: %w", err)
	}
	return &UI{
		tmpl:   tmpl,
		policy: bluemonday.StrictPolicy(),
		logger: resolveLogger(logger),
	}, nil
}

func (u *UI) RenderEntryForm(w io.Writer, data EntryFormData) error {
	if err := u.tmpl.ExecuteTemplate(w, "entry_form.tmpl", data); err != nil {
		u.logger.Error("entry form render failed",
			slog.String("event", "webui.render_failed"),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("render entry form: %w", err)
	}
	return nil
}

// RenderPreview writes the classification preview as an HTML fragment so
// the entry form can show flags before a PDF is generated.
func (u *UI) RenderPreview(w io.Writer, data PreviewData) error {
	if err := u.tmpl.ExecuteTemplate(w, "preview.tmpl", data); err != nil {
		u.logger.Error("preview render failed",
			slog.String("event", "webui.render_failed"),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("render preview: %w", err)
	}
	return nil
}

// Sanitize strips markup from a submitted form value. Values land in PDF
// cells verbatim, so anything that is not plain text gets dropped here.
func (u *UI) Sanitize(value string) string {
	return strings.TrimSpace(u.policy.Sanitize(value))
}

// ResultField returns the input name carrying the result for one test of
// one panel. Test names are used as-is; they never contain the separator.
func ResultField(panelCode, testName string) string {
	return resultFieldPrefix + panelCode + "__" + testName
}

// ParseResults extracts per-panel result values from a submitted form.
// Blank values are kept so the intake layer can clear stale entries.
func ParseResults(form url.Values) map[string]map[string]string {
	results := make(map[string]map[string]string)
	for key, values := range form {
		if !strings.HasPrefix(key, resultFieldPrefix) {
			continue
		}
		parts := strings.SplitN(strings.TrimPrefix(key, resultFieldPrefix), "__", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		value := ""
		if len(values) > 0 {
			value = values[0]
		}
		panelResults, ok := results[parts[0]]
		if !ok {
			panelResults = make(map[string]string)
			results[parts[0]] = panelResults
		}
		panelResults[parts[1]] = value
	}
	return results
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

package render

import (
	"encoding/json"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/jonathan/argo-timeline/internal/argo"
)

// Meta describes the report context shown in the document header.
type Meta struct {
	Title       string
	WindowStart time.Time
	WindowEnd   time.Time
	GeneratedAt time.Time
}

// runRow is the JSON shape handed to the embedded timeline script.
type runRow struct {
	Name    string  `json:"name"`
	RunID   string  `json:"run"`
	Phase   string  `json:"phase"`
	Start   string  `json:"start"`
	End     string  `json:"end,omitempty"`
	Seconds float64 `json:"seconds,omitempty"`
	Owner   string  `json:"owner,omitempty"`
	SA      string  `json:"sa,omitempty"`
}

// templateData is the root object the document template executes against.
type templateData struct {
	Title       string
	WindowStart string
	WindowEnd   string
	GeneratedAt string
	Count       int
	JSONData    template.JS
}

// Render produces one self-contained HTML document with a timeline row per
// run. Zero runs renders a valid document with an empty-state notice instead
// of failing.
func Render(runs []argo.WorkflowRun, meta Meta) (string, error) {
	rows := make([]runRow, 0, len(runs))
	for _, run := range runs {
		row := runRow{
			Name:  run.Name,
			RunID: run.RunID,
			Phase: string(run.Phase),
			Start: run.StartedAt.UTC().Format(time.RFC3339),
			Owner: ownerLabel(run),
			SA:    run.ServiceAccount,
		}
		if d, ok := run.Duration(); ok {
			row.End = run.FinishedAt.UTC().Format(time.RFC3339)
			row.Seconds = d.Seconds()
		}
		rows = append(rows, row)
	}

	encoded, err := json.Marshal(rows)
	if err != nil {
		return "", &RenderError{Message: "failed to encode run data", Cause: err}
	}

	tmpl, err := template.New("timeline").Parse(tmplTimeline)
	if err != nil {
		return "", &RenderError{Message: "failed to parse timeline template", Cause: err}
	}

	data := templateData{
		Title:       meta.Title,
		WindowStart: meta.WindowStart.Format("2006-01-02 15:04"),
		WindowEnd:   meta.WindowEnd.Format("2006-01-02 15:04"),
		GeneratedAt: meta.GeneratedAt.UTC().Format(time.RFC3339),
		Count:       len(rows),
		// json.Marshal escapes <, > and & inside strings, so the payload is
		// safe to embed in a script block.
		JSONData: template.JS(encoded),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", &RenderError{Message: "failed to execute timeline template", Cause: err}
	}
	return sb.String(), nil
}

// WriteFile renders the document and writes it to path. The file is the
// local source of truth for the report; callers keep it even when a later
// publish step fails.
func WriteFile(path string, runs []argo.WorkflowRun, meta Meta) error {
	doc, err := Render(runs, meta)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return &RenderError{Message: "failed to write " + path, Cause: err}
	}
	return nil
}

func ownerLabel(run argo.WorkflowRun) string {
	if run.OwnerName == "" {
		return ""
	}
	if run.OwnerKind == "" {
		return run.OwnerName
	}
	return run.OwnerKind + "/" + run.OwnerName
}

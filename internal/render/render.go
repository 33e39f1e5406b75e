// Package render turns a categorized digest into the static HTML page. It is
// the presentation boundary: nothing here feeds back into scoring or
// categorization.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/politico94/infradigest/internal/config"
	"github.com/politico94/infradigest/internal/digest"
)

//go:embed templates/digest.html.tmpl
var templates embed.FS

// SectionView is one section prepared for the template, in rule order.
type SectionView struct {
	ID    string
	Label string
	Items []digest.Item
}

type pageData struct {
	Title        string
	Pulse        string
	Outlook      string
	Sections     []SectionView
	TotalSources string
	GeneratedAt  string
	DateDisplay  string
}

// Renderer renders the digest page from the embedded template.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/digest.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse digest template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the digest HTML for a run. Empty sections are kept out of
// the page entirely.
func (r *Renderer) Render(res *digest.Result, pulse, outlook string, meta config.Metadata, now time.Time) ([]byte, error) {
	sections := make([]SectionView, 0, len(res.Sections()))
	for _, s := range res.ActiveSections() {
		sections = append(sections, SectionView{
			ID:    s.ID,
			Label: s.Label,
			Items: res.Items(s.ID),
		})
	}

	title := meta.Title
	if title == "" {
		title = "Global Infrastructure Intelligence Digest"
	}
	totalSources := meta.TotalSources
	if totalSources == "" {
		totalSources = "85+"
	}

	data := pageData{
		Title:        title,
		Pulse:        pulse,
		Outlook:      outlook,
		Sections:     sections,
		TotalSources: totalSources,
		GeneratedAt:  now.UTC().Format("January 02, 2006 at 15:04 UTC"),
		DateDisplay:  now.UTC().Format("Monday, January 02, 2006"),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render digest: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the page and writes it to <dir>/index.html.
func (r *Renderer) WriteFile(dir string, res *digest.Result, pulse, outlook string, meta config.Metadata, now time.Time) (string, error) {
	html, err := r.Render(res, pulse, outlook, meta, now)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return "", fmt.Errorf("failed to write digest page: %w", err)
	}
	return path, nil
}

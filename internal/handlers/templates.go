package handlers

import (
	"fmt"
	"html/template"
	"io/fs"

	"drmind/internal/models"
)

// ParseTemplates loads the page templates with the helpers they use.
func ParseTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"moodEmoji": models.MoodEmoji,
		"score": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}).ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("template parse failed: %w", err)
	}
	return tmpl, nil
}

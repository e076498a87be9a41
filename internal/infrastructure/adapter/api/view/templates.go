package view

import (
	"embed"
	"html/template"
)

// ProfileTemplate is the name of the profile page template
const ProfileTemplate = "profile.html"

//go:embed templates/*.html
var files embed.FS

// Load parses the embedded page templates
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}

package web

import (
	"embed"
	"io/fs"
	"path"
)

const templateRoot = "templates"

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS serves the 'templates' directory of an embed.FS as its root.
type templateEmbedFS struct {
	content embed.FS
}

// Open opens the named file from the 'templates' directory.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join(templateRoot, name))
}

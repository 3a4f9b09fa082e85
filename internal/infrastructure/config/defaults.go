package config

import (
	"embed"
	"io/fs"
)

//go:embed defaults/config.cfg defaults/enemies.yaml
var defaultFiles embed.FS

// DefaultLoader reads the configuration bundled with the binary
func DefaultLoader() *Loader {
	sub, err := fs.Sub(defaultFiles, "defaults")
	if err != nil {
		// defaults is a literal embed path
		panic(err)
	}
	return NewFSLoader(sub, "embedded")
}

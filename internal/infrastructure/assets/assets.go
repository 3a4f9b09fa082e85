// Package assets loads sprites and hands them out by name.
package assets

import (
	"fmt"
	"image/color"
	_ "image/png" // register the PNG decoder
	"io/fs"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NullKey is the sprite returned for unknown names
const NullKey = "null"

const placeholderSize = 16

var placeholderColor = color.RGBA{255, 0, 255, 255}

// Provider maps sprite names to images
type Provider struct {
	images      map[string]*ebiten.Image
	placeholder *ebiten.Image
	missing     map[string]bool
	logger      *log.Logger
}

// NewProvider creates an empty provider
func NewProvider(logger *log.Logger) *Provider {
	return &Provider{
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
		logger:  logger,
	}
}

// Load reads every *.png under dir, keyed by file name without extension.
// Later files with the same name replace earlier ones.
func Load(fsys fs.FS, dir string, logger *log.Logger) (*Provider, error) {
	p := NewProvider(logger)

	err := fs.WalkDir(fsys, dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(name), ".png") {
			return nil
		}
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to load sprite %s: %w", name, err)
		}
		key := strings.TrimSuffix(path.Base(name), path.Ext(name))
		p.Add(key, img)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("sprites loaded", "dir", dir, "count", p.Len())
	return p, nil
}

// Add registers img under key
func (p *Provider) Add(key string, img *ebiten.Image) {
	p.images[key] = img
}

// Has reports whether key was loaded
func (p *Provider) Has(key string) bool {
	_, ok := p.images[key]
	return ok
}

// Len returns the number of loaded sprites
func (p *Provider) Len() int { return len(p.images) }

// Get returns the sprite for key. Unknown keys get the "null" sprite, or a
// generated placeholder when no "null" sprite was loaded.
func (p *Provider) Get(key string) *ebiten.Image {
	if img, ok := p.images[key]; ok {
		return img
	}
	if !p.missing[key] {
		p.missing[key] = true
		p.logger.Warn("missing sprite, using fallback", "sprite", key)
	}
	if img, ok := p.images[NullKey]; ok {
		return img
	}
	if p.placeholder == nil {
		p.placeholder = ebiten.NewImage(placeholderSize, placeholderSize)
		p.placeholder.Fill(placeholderColor)
	}
	return p.placeholder
}

package tui

import (
	"image"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/snapsphere/internal/photo"
	"github.com/javiermolinar/snapsphere/internal/preview"
)

const (
	thumbLoadingLabel = "loading…"
	thumbMissingLabel = "no preview"
)

type thumbKey struct {
	id   string
	w, h int
	bg   lipgloss.Color
}

// thumbCache keeps downloaded thumbnails and their rendered cells. It is
// shared by model copies and only touched from Update and View.
type thumbCache struct {
	images   map[string]image.Image
	failed   map[string]bool
	rendered map[thumbKey]string
}

func newThumbCache() *thumbCache {
	return &thumbCache{
		images:   make(map[string]image.Image),
		failed:   make(map[string]bool),
		rendered: make(map[thumbKey]string),
	}
}

func (c *thumbCache) store(id string, img image.Image) {
	c.images[id] = img
	delete(c.failed, id)
}

func (c *thumbCache) fail(id string) {
	if _, ok := c.images[id]; !ok {
		c.failed[id] = true
	}
}

// has reports whether id needs no further download.
func (c *thumbCache) has(id string) bool {
	_, ok := c.images[id]
	return ok || c.failed[id]
}

// missing returns the photos whose thumbnails have not been loaded yet.
func (c *thumbCache) missing(photos []photo.Photo) []photo.Photo {
	out := make([]photo.Photo, 0, len(photos))
	for _, p := range photos {
		if !c.has(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// retain drops everything not belonging to photos.
func (c *thumbCache) retain(photos []photo.Photo) {
	keep := make(map[string]bool, len(photos))
	for _, p := range photos {
		keep[p.ID] = true
	}
	for id := range c.images {
		if !keep[id] {
			delete(c.images, id)
		}
	}
	for id := range c.failed {
		if !keep[id] {
			delete(c.failed, id)
		}
	}
	for key := range c.rendered {
		if !keep[key.id] {
			delete(c.rendered, key)
		}
	}
}

func (c *thumbCache) resetRendered() {
	c.rendered = make(map[thumbKey]string)
}

// render returns the w x h cell block for id. Until the image is available
// a placeholder label is drawn on placeBg.
func (c *thumbCache) render(id string, w, h int, bg, placeBg, fg lipgloss.Color) string {
	img, ok := c.images[id]
	if !ok {
		label := thumbLoadingLabel
		if c.failed[id] {
			label = thumbMissingLabel
		}
		return preview.Placeholder(w, h, label, string(fg), string(placeBg))
	}

	key := thumbKey{id: id, w: w, h: h, bg: bg}
	if s, ok := c.rendered[key]; ok {
		return s
	}
	s := preview.Render(img, w, h, string(bg))
	c.rendered[key] = s
	return s
}

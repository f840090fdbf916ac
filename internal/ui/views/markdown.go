package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"

	"folio/internal/logger"
)

// Markdown renders markdown for the terminal and caches the output per
// theme and width, since glamour is slow relative to a frame
type Markdown struct {
	rendered  *cache.Cache
	renderers map[string]*glamour.TermRenderer
}

func NewMarkdown() *Markdown {
	return &Markdown{
		rendered:  cache.New(10*time.Minute, 20*time.Minute),
		renderers: make(map[string]*glamour.TermRenderer),
	}
}

// Render returns md as styled text. On failure the source is returned.
func (m *Markdown) Render(md string, width int, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	key := cacheKey(md, width, dark)
	if out, ok := m.rendered.Get(key); ok {
		return out.(string)
	}

	r, err := m.renderer(width, dark)
	if err != nil {
		logger.Warn("Markdown: renderer: %v", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Warn("Markdown: render: %v", err)
		return md
	}
	out = strings.Trim(out, "\n")
	m.rendered.Set(key, out, cache.DefaultExpiration)
	return out
}

func cacheKey(md string, width int, dark bool) string {
	return fmt.Sprintf("%t/%d/%s", dark, width, md)
}

// Flush drops every cached rendering, e.g. after content reloads
func (m *Markdown) Flush() {
	m.rendered.Flush()
}

func (m *Markdown) renderer(width int, dark bool) (*glamour.TermRenderer, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	key := fmt.Sprintf("%s/%d", style, width)
	if r, ok := m.renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderers[key] = r
	return r, nil
}

package view

import (
	"net/http"
	"strconv"
	"strings"
)

// NarrowViewportWidth is the CSS breakpoint below which the filter sidebar
// collapses behind a toggle.
const NarrowViewportWidth = 768

// Viewport is the only environment capability the view consults.
type Viewport interface {
	IsNarrowViewport() bool
}

type StaticViewport bool

func (v StaticViewport) IsNarrowViewport() bool {
	return bool(v)
}

// ClientHintViewport reads the width client hints a browser sends after the
// server advertised Accept-CH. Without hints it falls back to the mobile hint
// and finally assumes a wide viewport.
type ClientHintViewport struct {
	header http.Header
}

func NewClientHintViewport(r *http.Request) ClientHintViewport {
	return ClientHintViewport{header: r.Header}
}

func (v ClientHintViewport) IsNarrowViewport() bool {
	for _, name := range []string{"Sec-CH-Viewport-Width", "Viewport-Width"} {
		raw := strings.TrimSpace(v.header.Get(name))
		if raw == "" {
			continue
		}
		if width, err := strconv.ParseFloat(raw, 64); err == nil && width > 0 {
			return width < NarrowViewportWidth
		}
	}
	return strings.TrimSpace(v.header.Get("Sec-CH-UA-Mobile")) == "?1"
}

// AcceptClientHints lists the hints IsNarrowViewport understands.
const AcceptClientHints = "Sec-CH-Viewport-Width, Viewport-Width, Sec-CH-UA-Mobile"

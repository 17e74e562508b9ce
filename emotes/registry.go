package emotes

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/tokenplay/config"
)

// ErrNotFound is returned when an emote id is not in the registry.
var ErrNotFound = errors.New("emote not found")

// Definition describes one configured emote. Immutable during a
// playback: the coordinator copies what it needs at trigger time.
type Definition struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ImagePath string  `json:"imagePath"`
	OffsetX   float64 `json:"offsetX"`
	OffsetY   float64 `json:"offsetY"`
	Scale     float64 `json:"scale"`
	Duration  float32 `json:"durationSec"`
	FadeIn    float32 `json:"fadeInSec"`
	FadeOut   float32 `json:"fadeOutSec"`
}

// Registry holds the configured emote definitions in a stable order.
type Registry struct {
	order []string
	byID  map[string]Definition
}

func NewRegistry(defs []Definition) *Registry {
	r := &Registry{
		byID: make(map[string]Definition, len(defs)),
	}
	for _, d := range defs {
		r.put(d)
	}
	return r
}

// DefaultRegistry builds a registry from the config default emote set.
func DefaultRegistry() *Registry {
	defs := make([]Definition, 0, len(cfg.Emote.Defaults))
	for _, e := range cfg.Emote.Defaults {
		defs = append(defs, Definition{
			ID:        e.ID,
			Name:      e.Name,
			ImagePath: e.ImagePath,
			OffsetX:   e.OffsetX,
			OffsetY:   e.OffsetY,
			Scale:     e.Scale,
			Duration:  e.Duration,
			FadeIn:    e.FadeIn,
			FadeOut:   e.FadeOut,
		})
	}
	return NewRegistry(defs)
}

func (r *Registry) put(d Definition) {
	if d.ID == "" {
		return
	}
	normalize(&d)
	if _, exists := r.byID[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	r.byID[d.ID] = d
}

// normalize fills omitted timing/scale fields with config defaults so a
// hand-edited stored list can leave them out.
func normalize(d *Definition) {
	if d.Duration <= 0 {
		d.Duration = cfg.Emote.DefaultDuration
	}
	if d.FadeIn <= 0 {
		d.FadeIn = cfg.Emote.DefaultFadeIn
	}
	if d.FadeOut <= 0 {
		d.FadeOut = cfg.Emote.DefaultFadeOut
	}
	if d.Scale <= 0 {
		d.Scale = cfg.Emote.DefaultScale
	}
}

// Lookup returns the definition for id.
func (r *Registry) Lookup(id string) (Definition, error) {
	d, ok := r.byID[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return d, nil
}

// At returns the definition at a hotkey index (0-based), in insertion
// order.
func (r *Registry) At(index int) (Definition, bool) {
	if index < 0 || index >= len(r.order) {
		return Definition{}, false
	}
	return r.byID[r.order[index]], true
}

// All returns the definitions in insertion order.
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

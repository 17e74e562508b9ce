package systems

import (
	"log"

	"github.com/automoto/tokenplay/assets"
	"github.com/automoto/tokenplay/components"
	cfg "github.com/automoto/tokenplay/config"
	"github.com/automoto/tokenplay/emotes"
	"github.com/automoto/tokenplay/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaybackKey identifies one (token, emote) playback. At most one
// overlay exists per key at any time; duplicate triggers while a key is
// active collapse into the playback already running.
type PlaybackKey struct {
	TokenID string
	EmoteID string
}

// ImageLoadFunc loads an emote icon. Injectable so tests (and a failed
// disk read) exercise the abort path without a graphics context.
type ImageLoadFunc func(path string) (*ebiten.Image, error)

// EmotePlayback coordinates emote overlay lifecycles. It owns the
// active-playback registry: entries are added when an overlay spawns
// and removed on every exit path, so a key can never stay suppressed
// after its overlay is gone.
type EmotePlayback struct {
	registry *emotes.Registry
	load     ImageLoadFunc
	active   map[PlaybackKey]donburi.Entity
}

func NewEmotePlayback(registry *emotes.Registry, load ImageLoadFunc) *EmotePlayback {
	if load == nil {
		load = assets.LoadImage
	}
	return &EmotePlayback{
		registry: registry,
		load:     load,
		active:   make(map[PlaybackKey]donburi.Entity),
	}
}

// Registry exposes the emote definitions backing this coordinator.
func (p *EmotePlayback) Registry() *emotes.Registry {
	return p.registry
}

// Play starts an emote playback on a token. Off-scene requests, unknown
// emotes, unknown tokens and icon load failures are terminal no-ops for
// this call; a playback already running for the same key absorbs the
// trigger.
func (p *EmotePlayback) Play(ecs *ecs.ECS, sceneID, tokenID, emoteID string) {
	if sceneID != ActiveSceneID(ecs) {
		if cfg.Debug.LogPlayback {
			log.Printf("[emote] ignoring %s/%s for scene %s (not viewing)", tokenID, emoteID, sceneID)
		}
		return
	}

	def, err := p.registry.Lookup(emoteID)
	if err != nil {
		log.Printf("[emote] %v", err)
		return
	}

	key := PlaybackKey{TokenID: tokenID, EmoteID: emoteID}
	if _, running := p.active[key]; running {
		return
	}

	token, ok := FindToken(ecs, sceneID, tokenID)
	if !ok {
		log.Printf("[emote] token %s not on scene %s", tokenID, sceneID)
		return
	}

	img, err := p.load(def.ImagePath)
	if err != nil {
		log.Printf("[emote] icon for %s unavailable: %v", emoteID, err)
		return
	}

	overlay := factory.CreateEmoteOverlay(ecs, token, def, img)
	p.active[key] = overlay.Entity()

	if cfg.Debug.LogPlayback {
		log.Printf("[emote] playing %s on %s", emoteID, tokenID)
	}
}

// Update advances every active playback by one frame: opacity follows
// the fade sequence, the overlay tracks its token's bounds, and
// finished or orphaned playbacks are torn down. A scene change cancels
// playbacks for the scene left behind instead of letting their
// overlays linger unseen.
func (p *EmotePlayback) Update(ecs *ecs.ECS) {
	sceneID := ActiveSceneID(ecs)

	var done []PlaybackKey
	for key, entity := range p.active {
		if !ecs.World.Valid(entity) {
			done = append(done, key)
			continue
		}
		entry := ecs.World.Entry(entity)
		ov := components.EmoteOverlay.Get(entry)

		if ov.SceneID != sceneID {
			done = append(done, key)
			continue
		}

		token, ok := FindToken(ecs, ov.SceneID, ov.TokenID)
		if !ok {
			done = append(done, key)
			continue
		}

		value, _, finished := ov.Seq.Update(frameDt)
		ov.Opacity = clampOpacity(value)

		// Tokens move; keep the icon pinned above the current bounds.
		obj := components.Object.Get(entry)
		tokenObj := components.Object.Get(token)
		obj.X, obj.Y = factory.AnchorAboveToken(tokenObj.Object, obj.W, obj.H, ov.OffsetX, ov.OffsetY)

		if finished {
			done = append(done, key)
		}
	}

	for _, key := range done {
		p.remove(ecs, key)
	}
}

// Playing reports whether a playback is active for the pair.
func (p *EmotePlayback) Playing(tokenID, emoteID string) bool {
	_, ok := p.active[PlaybackKey{TokenID: tokenID, EmoteID: emoteID}]
	return ok
}

// ActiveCount returns the number of live playbacks.
func (p *EmotePlayback) ActiveCount() int {
	return len(p.active)
}

// CancelAll tears down every active playback, e.g. when leaving the
// table.
func (p *EmotePlayback) CancelAll(ecs *ecs.ECS) {
	for key := range p.active {
		p.remove(ecs, key)
	}
}

// remove is the single teardown path: overlay entity and registry entry
// go together, unconditionally.
func (p *EmotePlayback) remove(ecs *ecs.ECS, key PlaybackKey) {
	entity, ok := p.active[key]
	if !ok {
		return
	}
	delete(p.active, key)

	if ecs.World.Valid(entity) {
		ecs.World.Entry(entity).Remove()
	}
}

func clampOpacity(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

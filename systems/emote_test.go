package systems

import (
	"errors"
	"testing"

	"github.com/automoto/tokenplay/components"
	"github.com/automoto/tokenplay/emotes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nilLoader(string) (*ebiten.Image, error) {
	return nil, nil
}

func failingLoader(string) (*ebiten.Image, error) {
	return nil, errors.New("file missing")
}

func newTestPlayback(load ImageLoadFunc) *EmotePlayback {
	return NewEmotePlayback(emotes.DefaultRegistry(), load)
}

func TestPlayCreatesOverlay(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "heart")

	require.Equal(t, 1, p.ActiveCount())
	assert.True(t, p.Playing("tok-1", "heart"))

	overlay, ok := firstOverlay(e)
	require.True(t, ok)
	ov := components.EmoteOverlay.Get(overlay)
	assert.Equal(t, "tok-1", ov.TokenID)
	assert.Equal(t, "heart", ov.EmoteID)
	assert.Equal(t, "tavern", ov.SceneID)
	assert.Zero(t, ov.Opacity)
}

func TestDuplicateTriggerCollapses(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "heart")
	p.Play(e, "tavern", "tok-1", "heart")
	p.Play(e, "tavern", "tok-1", "heart")

	assert.Equal(t, 1, p.ActiveCount())
	assert.Equal(t, 1, countOverlays(e))
}

func TestDifferentEmotesOnSameTokenCoexist(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "heart")
	p.Play(e, "tavern", "tok-1", "skull")

	assert.Equal(t, 2, p.ActiveCount())
	assert.Equal(t, 2, countOverlays(e))
}

func TestPlaybackCompletesAndUnregisters(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "heart")

	// heart: 0.2s fade-in + 1.5s hold + 0.2s fade-out = 1.9s = 114 ticks
	for i := 0; i < 100; i++ {
		p.Update(e)
	}
	assert.Equal(t, 1, p.ActiveCount(), "still holding before the fade-out ends")

	for i := 0; i < 20; i++ {
		p.Update(e)
	}
	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 0, countOverlays(e))

	// The key must be free for a fresh playback.
	p.Play(e, "tavern", "tok-1", "heart")
	assert.Equal(t, 1, p.ActiveCount())
}

func TestOpacityFollowsFadeSequence(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "heart")

	overlay, ok := firstOverlay(e)
	require.True(t, ok)
	ov := components.EmoteOverlay.Get(overlay)

	// Halfway through the 0.2s fade-in.
	for i := 0; i < 6; i++ {
		p.Update(e)
	}
	assert.InDelta(t, 0.5, ov.Opacity, 0.1)

	// Well inside the hold phase.
	for i := 0; i < 40; i++ {
		p.Update(e)
	}
	assert.InDelta(t, 1.0, ov.Opacity, 0.01)
}

func TestLoadFailureAbortsCleanly(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(failingLoader)
	p.Play(e, "tavern", "tok-1", "heart")

	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 0, countOverlays(e))

	// A failed start must not suppress later attempts.
	p.load = nilLoader
	p.Play(e, "tavern", "tok-1", "heart")
	assert.Equal(t, 1, p.ActiveCount())
}

func TestUnknownEmoteIsNoOp(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "confetti")

	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 0, countOverlays(e))
}

func TestUnknownTokenIsNoOp(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "ghost", "heart")

	assert.Equal(t, 0, p.ActiveCount())
}

func TestOffSceneRequestHasNoEffect(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "crypt", "tok-9", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "crypt", "tok-9", "heart")

	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 0, countOverlays(e))
}

func TestSceneChangeCancelsPlayback(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "heart")
	for i := 0; i < 10; i++ {
		p.Update(e)
	}
	require.Equal(t, 1, p.ActiveCount())

	SetActiveScene(e, "crypt")
	p.Update(e)

	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 0, countOverlays(e))
}

func TestTokenRemovalCancelsPlayback(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	token := spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "heart")
	require.Equal(t, 1, p.ActiveCount())

	token.Remove()
	p.Update(e)

	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 0, countOverlays(e))
}

func TestOverlayFollowsMovingToken(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	token := spawnTestToken(e, "tavern", "tok-1", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "heart")

	overlay, ok := firstOverlay(e)
	require.True(t, ok)
	before := components.Object.Get(overlay).X

	components.Object.Get(token).X += 200
	p.Update(e)

	after := components.Object.Get(overlay).X
	assert.InDelta(t, before+200, after, 0.001)
}

func TestCancelAllTearsDownEverything(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "")
	spawnTestToken(e, "tavern", "tok-2", "")

	p := newTestPlayback(nilLoader)
	p.Play(e, "tavern", "tok-1", "heart")
	p.Play(e, "tavern", "tok-2", "skull")
	require.Equal(t, 2, p.ActiveCount())

	p.CancelAll(e)

	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 0, countOverlays(e))
}

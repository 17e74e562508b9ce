package emotes

import (
	"testing"

	cfg "github.com/automoto/tokenplay/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownEmote(t *testing.T) {
	r := DefaultRegistry()

	def, err := r.Lookup("heart")
	require.NoError(t, err)
	assert.Equal(t, "heart", def.ID)
	assert.Equal(t, "Heart", def.Name)
	assert.Equal(t, cfg.Emote.DefaultDuration, def.Duration)
}

func TestLookupUnknownEmote(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.Lookup("confetti")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizeFillsOmittedFields(t *testing.T) {
	r := NewRegistry([]Definition{
		{ID: "wave", Name: "Wave", ImagePath: "emotes/wave.png"},
	})

	def, err := r.Lookup("wave")
	require.NoError(t, err)
	assert.Equal(t, cfg.Emote.DefaultDuration, def.Duration)
	assert.Equal(t, cfg.Emote.DefaultFadeIn, def.FadeIn)
	assert.Equal(t, cfg.Emote.DefaultFadeOut, def.FadeOut)
	assert.Equal(t, cfg.Emote.DefaultScale, def.Scale)
}

func TestExplicitTimingsAreKept(t *testing.T) {
	r := NewRegistry([]Definition{
		{ID: "slow", Duration: 4, FadeIn: 1, FadeOut: 1, Scale: 2},
	})

	def, err := r.Lookup("slow")
	require.NoError(t, err)
	assert.Equal(t, float32(4), def.Duration)
	assert.Equal(t, float32(1), def.FadeIn)
	assert.Equal(t, 2.0, def.Scale)
}

func TestAtFollowsInsertionOrder(t *testing.T) {
	r := NewRegistry([]Definition{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	})

	def, ok := r.At(1)
	require.True(t, ok)
	assert.Equal(t, "b", def.ID)

	_, ok = r.At(3)
	assert.False(t, ok)
	_, ok = r.At(-1)
	assert.False(t, ok)
}

func TestDuplicateIDKeepsPositionTakesLatest(t *testing.T) {
	r := NewRegistry([]Definition{
		{ID: "a", Name: "First"},
		{ID: "b"},
		{ID: "a", Name: "Second"},
	})

	assert.Equal(t, 2, r.Len())
	def, ok := r.At(0)
	require.True(t, ok)
	assert.Equal(t, "Second", def.Name)
}

func TestEmptyIDIsDropped(t *testing.T) {
	r := NewRegistry([]Definition{{Name: "nameless"}})
	assert.Equal(t, 0, r.Len())
}

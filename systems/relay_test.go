package systems

import (
	"testing"

	"github.com/automoto/tokenplay/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sendRecorder captures published emote events in place of a live
// connection.
type sendRecorder struct {
	sent []messages.PlayEmoteEvent
}

func (s *sendRecorder) send(msg any) error {
	if evt, ok := msg.(messages.PlayEmoteEvent); ok {
		s.sent = append(s.sent, evt)
	}
	return nil
}

func TestTriggerPlaysLocallyAndPublishes(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	SetLocalPlayer(e, "alice", false)
	spawnTestToken(e, "tavern", "tok-1", "alice")

	rec := &sendRecorder{}
	playback := newTestPlayback(nilLoader)
	relay := NewEmoteRelay(playback, rec.send, nil)

	relay.Trigger(e, "tok-1", "heart")

	assert.Equal(t, 1, playback.ActiveCount())
	require.Len(t, rec.sent, 1)
	assert.Equal(t, messages.PlayEmoteEvent{
		SceneID: "tavern",
		TokenID: "tok-1",
		EmoteID: "heart",
	}, rec.sent[0])
}

func TestTriggerSelectedPublishesPerToken(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	SetLocalPlayer(e, "alice", false)
	first := spawnTestToken(e, "tavern", "tok-1", "alice")
	second := spawnTestToken(e, "tavern", "tok-2", "")
	SelectOnly(e, first)
	ToggleSelect(second)

	rec := &sendRecorder{}
	relay := NewEmoteRelay(newTestPlayback(nilLoader), rec.send, nil)

	relay.TriggerSelected(e, "laugh")

	assert.Len(t, rec.sent, 2)
	assert.Equal(t, 2, countOverlays(e))
}

func TestTriggerSelectedSkipsNonOwnedTokens(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	SetLocalPlayer(e, "bob", false)
	mine := spawnTestToken(e, "tavern", "tok-mine", "bob")
	theirs := spawnTestToken(e, "tavern", "tok-alice", "alice")
	SelectOnly(e, mine)
	ToggleSelect(theirs)

	rec := &sendRecorder{}
	playback := newTestPlayback(nilLoader)
	relay := NewEmoteRelay(playback, rec.send, nil)

	relay.TriggerSelected(e, "heart")

	require.Len(t, rec.sent, 1)
	assert.Equal(t, "tok-mine", rec.sent[0].TokenID)
	assert.True(t, playback.Playing("tok-mine", "heart"))
	assert.False(t, playback.Playing("tok-alice", "heart"))
	assert.NotEmpty(t, toastLines(e))
}

func TestTriggerSelectedUnknownEmoteSendsNothing(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	SetLocalPlayer(e, "alice", false)
	token := spawnTestToken(e, "tavern", "tok-1", "alice")
	SelectOnly(e, token)

	rec := &sendRecorder{}
	playback := newTestPlayback(nilLoader)
	relay := NewEmoteRelay(playback, rec.send, nil)

	relay.TriggerSelected(e, "confetti")

	assert.Empty(t, rec.sent)
	assert.Equal(t, 0, playback.ActiveCount())
	assert.NotEmpty(t, toastLines(e))
}

func TestOfflineTriggerPlaysLocally(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	SetLocalPlayer(e, "alice", false)
	spawnTestToken(e, "tavern", "tok-1", "alice")

	relay := NewEmoteRelay(newTestPlayback(nilLoader), nil, nil)
	relay.Trigger(e, "tok-1", "heart")

	assert.Equal(t, 1, countOverlays(e))
}

func TestReceivedEventPlaysWithoutEcho(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "tavern", "tok-1", "alice")

	incoming := []messages.PlayEmoteEvent{
		{SceneID: "tavern", TokenID: "tok-1", EmoteID: "skull"},
	}
	drained := false
	drain := func() []messages.PlayEmoteEvent {
		if drained {
			return nil
		}
		drained = true
		return incoming
	}

	rec := &sendRecorder{}
	playback := newTestPlayback(nilLoader)
	relay := NewEmoteRelay(playback, rec.send, drain)

	relay.Update(e)

	assert.True(t, playback.Playing("tok-1", "skull"))
	assert.Empty(t, rec.sent, "received events must not be re-published")
}

func TestReceivedOffSceneEventIgnored(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	spawnTestToken(e, "crypt", "tok-9", "")

	drain := func() []messages.PlayEmoteEvent {
		return []messages.PlayEmoteEvent{
			{SceneID: "crypt", TokenID: "tok-9", EmoteID: "heart"},
		}
	}

	playback := newTestPlayback(nilLoader)
	relay := NewEmoteRelay(playback, nil, drain)

	relay.Update(e)

	assert.Equal(t, 0, playback.ActiveCount())
	assert.Equal(t, 0, countOverlays(e))
}

func TestLocalAndRemoteDuplicateCollapse(t *testing.T) {
	e := newTestECS()
	SetActiveScene(e, "tavern")
	SetLocalPlayer(e, "alice", false)
	spawnTestToken(e, "tavern", "tok-1", "alice")

	drain := func() []messages.PlayEmoteEvent {
		return []messages.PlayEmoteEvent{
			{SceneID: "tavern", TokenID: "tok-1", EmoteID: "heart"},
		}
	}

	playback := newTestPlayback(nilLoader)
	relay := NewEmoteRelay(playback, nil, drain)

	relay.Trigger(e, "tok-1", "heart")
	relay.Update(e)

	assert.Equal(t, 1, playback.ActiveCount())
	assert.Equal(t, 1, countOverlays(e))
}

package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tokenplay/assets"
	"github.com/automoto/tokenplay/components"
	cfg "github.com/automoto/tokenplay/config"
	"github.com/automoto/tokenplay/emotes"
	"github.com/automoto/tokenplay/network"
	"github.com/automoto/tokenplay/systems"
	"github.com/automoto/tokenplay/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tableFelt = color.RGBA{34, 54, 42, 255}

// TableScene is the tabletop view: tokens on a table, flip/bounce/emote
// actions, and (when connected) emote broadcast through the relay.
// Its exported PlayEmote/FlipSelectedTokens/BounceSelectedTokens
// methods are the scripting surface for macros and external tooling.
type TableScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client // nil when offline
	playerName   string
	gm           bool

	playback *systems.EmotePlayback
	animator *systems.TokenAnimator
	relay    *systems.EmoteRelay

	tables    []assets.Table
	activeIdx int
	once      sync.Once
}

func NewTableScene(sc SceneChanger, client *network.Client, playerName string, gm bool) *TableScene {
	return &TableScene{
		sceneChanger: sc,
		netClient:    client,
		playerName:   playerName,
		gm:           gm,
	}
}

func (ts *TableScene) Update() {
	ts.once.Do(ts.configure)

	if ts.netClient != nil {
		state := ts.netClient.State()
		if state == network.StateDisconnected || state == network.StateError {
			log.Println("[table] connection lost, returning to menu")
			ts.leave()
			return
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ts.leave()
		return
	}

	ts.ecsWorld.Update()
}

func (ts *TableScene) Draw(screen *ebiten.Image) {
	screen.Fill(tableFelt)

	if ts.ecsWorld == nil {
		return
	}

	if bg := ts.tables[ts.activeIdx].Background; bg != nil {
		screen.DrawImage(bg, nil)
	}

	ts.ecsWorld.Draw(screen)
}

// PlayEmote plays an emote on every selected controlled token and
// broadcasts it. Part of the scripting API.
func (ts *TableScene) PlayEmote(emoteID string) {
	if ts.ecsWorld == nil {
		return
	}
	ts.relay.TriggerSelected(ts.ecsWorld, emoteID)
}

// FlipSelectedTokens flips the selected tokens. Part of the scripting
// API.
func (ts *TableScene) FlipSelectedTokens(axis components.FlipAxis) {
	if ts.ecsWorld == nil {
		return
	}
	ts.animator.FlipSelected(ts.ecsWorld, axis)
}

// BounceSelectedTokens bounces the selected tokens. Part of the
// scripting API.
func (ts *TableScene) BounceSelectedTokens() {
	if ts.ecsWorld == nil {
		return
	}
	ts.animator.BounceSelected(ts.ecsWorld)
}

func (ts *TableScene) configure() {
	ts.ecsWorld = ecs.NewECS(donburi.NewWorld())

	tables, err := assets.LoadTables(cfg.C.TablesDir)
	if err != nil {
		log.Printf("[table] %v, using built-in tables", err)
		tables = assets.BuiltinTables()
	}
	ts.tables = tables

	var storage emotes.ItemStorage
	if m := systems.Storage(); m != nil {
		storage = m
	}
	registry := emotes.NewStore(storage).Load()

	ts.playback = systems.NewEmotePlayback(registry, nil)
	ts.animator = systems.NewTokenAnimator()

	var send systems.SendFunc
	var drain systems.DrainFunc
	if ts.netClient != nil {
		send = func(msg any) error {
			if ts.netClient.State() != network.StateJoined {
				return nil
			}
			return ts.netClient.SendMessage(msg)
		}
		drain = ts.netClient.DrainEmoteEvents
	}
	ts.relay = systems.NewEmoteRelay(ts.playback, send, drain)

	systems.SetLocalPlayer(ts.ecsWorld, ts.playerName, ts.gm)
	systems.SetActiveScene(ts.ecsWorld, ts.tables[0].ID)

	for _, table := range ts.tables {
		for _, spawn := range table.Tokens {
			factory.CreateToken(ts.ecsWorld, table.ID, spawn)
		}
	}

	input := systems.NewTableInput(ts.animator, ts.relay, ts.cycleScene)
	ts.ecsWorld.AddSystem(input.Update)
	ts.ecsWorld.AddSystem(ts.relay.Update)
	ts.ecsWorld.AddSystem(ts.playback.Update)
	ts.ecsWorld.AddSystem(ts.animator.Update)
	ts.ecsWorld.AddSystem(systems.UpdateToasts)

	ts.ecsWorld.AddRenderer(cfg.Default, systems.DrawTokens)
	ts.ecsWorld.AddRenderer(cfg.Default, systems.DrawEmoteOverlays)
	ts.ecsWorld.AddRenderer(cfg.Default, systems.DrawToasts)

	systems.ShowInfo(ts.ecsWorld, "Viewing "+ts.tables[0].Name)
}

// cycleScene switches to the next table. In-flight playbacks for the
// scene left behind cancel on the next coordinator update.
func (ts *TableScene) cycleScene() {
	if len(ts.tables) < 2 {
		return
	}
	ts.activeIdx = (ts.activeIdx + 1) % len(ts.tables)
	systems.SetActiveScene(ts.ecsWorld, ts.tables[ts.activeIdx].ID)
	systems.ClearSelection(ts.ecsWorld)
	systems.ShowInfo(ts.ecsWorld, "Viewing "+ts.tables[ts.activeIdx].Name)
}

func (ts *TableScene) leave() {
	if ts.playback != nil {
		ts.playback.CancelAll(ts.ecsWorld)
	}
	if ts.netClient != nil {
		ts.netClient.Disconnect()
		ts.netClient = nil
	}
	ts.sceneChanger.ChangeScene(NewMenuScene(ts.sceneChanger))
}

package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/tokenplay/config"
	"github.com/automoto/tokenplay/network"
	"github.com/automoto/tokenplay/systems"
	"github.com/automoto/tokenplay/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// LocalGM reports whether the local user runs as GM (set from the
// -gm flag in main).
var LocalGM bool

// MenuScene is the start screen: pick a name, then join, browse, or
// play offline.
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	netClient    *network.Client
	once         sync.Once
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	// Hand off once the join handshake completes; surface failures.
	if ms.netClient != nil {
		switch ms.netClient.State() {
		case network.StateJoined:
			client := ms.netClient
			ms.netClient = nil
			ms.sceneChanger.ChangeScene(NewTableScene(ms.sceneChanger, client, ms.savedName(), LocalGM))
		case network.StateError:
			if err := ms.netClient.LastError(); err != nil {
				ms.menuUI.SetStatus(err.Error())
			}
			ms.netClient.Disconnect()
			ms.netClient = nil
		}
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ms.menuUI != nil {
		ms.menuUI.UI.Draw(screen)
	}
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(ms.onJoin, ms.onBrowse, ms.onOffline)

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		ms.menuUI.SetDefaults(saved.PlayerName, saved.LastAddress)
	}
}

func (ms *MenuScene) onJoin(name, address string) {
	ms.rememberPlayer(name, address)
	ms.menuUI.SetStatus("connecting to " + address + "...")

	ms.netClient = network.NewClient()
	ms.netClient.Connect(address, cfg.C.Version, name)
}

func (ms *MenuScene) onBrowse(name string) {
	ms.rememberPlayer(name, "")
	ms.sceneChanger.ChangeScene(NewBrowserScene(ms.sceneChanger, name))
}

func (ms *MenuScene) onOffline(name string) {
	ms.rememberPlayer(name, "")
	ms.sceneChanger.ChangeScene(NewTableScene(ms.sceneChanger, nil, name, LocalGM))
}

func (ms *MenuScene) rememberPlayer(name, address string) {
	saved, _ := systems.LoadSettings()
	if saved == nil {
		saved = &systems.SavedSettings{}
	}
	saved.PlayerName = name
	if address != "" {
		saved.LastAddress = address
	}
	if err := systems.SaveSettings(saved); err != nil {
		log.Printf("[menu] could not save settings: %v", err)
	}
}

func (ms *MenuScene) savedName() string {
	if saved, _ := systems.LoadSettings(); saved != nil && saved.PlayerName != "" {
		return saved.PlayerName
	}
	return "player"
}

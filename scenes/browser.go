package scenes

import (
	"encoding/json"
	"fmt"
	"image/color"
	"net/http"
	"sync"
	"time"

	cfg "github.com/automoto/tokenplay/config"
	"github.com/automoto/tokenplay/network"
	"github.com/automoto/tokenplay/systems"
	"github.com/automoto/tokenplay/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultMasterURL is the table directory queried by the browser.
// Overridable from the -master flag in main.
var DefaultMasterURL = "http://localhost:8080"

type directoryEntry struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Players int    `json:"players"`
}

// BrowserScene lists public tables from the directory service and
// joins one on click.
type BrowserScene struct {
	sceneChanger SceneChanger
	browserUI    *ui.BrowserUI
	netClient    *network.Client
	playerName   string
	httpClient   *http.Client
	once         sync.Once

	mu        sync.Mutex
	fetched   []ui.TableEntry
	fetchErr  error
	fetchDone bool
}

func NewBrowserScene(sc SceneChanger, playerName string) *BrowserScene {
	return &BrowserScene{
		sceneChanger: sc,
		playerName:   playerName,
		httpClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (bs *BrowserScene) Update() {
	bs.once.Do(bs.configure)

	bs.browserUI.Update()

	// Apply fetch results on the main goroutine
	bs.mu.Lock()
	if bs.fetchDone {
		entries := bs.fetched
		err := bs.fetchErr
		bs.fetchDone = false
		bs.fetched = nil
		bs.fetchErr = nil
		bs.mu.Unlock()

		bs.browserUI.SetRefreshing(false)
		if err != nil {
			bs.browserUI.SetStatus(err.Error())
		} else {
			bs.browserUI.SetTableList(entries)
			bs.browserUI.SetStatus("")
		}
	} else {
		bs.mu.Unlock()
	}

	if bs.netClient != nil {
		switch bs.netClient.State() {
		case network.StateJoined:
			client := bs.netClient
			bs.netClient = nil
			bs.sceneChanger.ChangeScene(NewTableScene(bs.sceneChanger, client, bs.playerName, LocalGM))
		case network.StateError:
			if err := bs.netClient.LastError(); err != nil {
				bs.browserUI.SetStatus(err.Error())
			}
			bs.netClient.Disconnect()
			bs.netClient = nil
		}
	}
}

func (bs *BrowserScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if bs.browserUI != nil {
		bs.browserUI.UI.Draw(screen)
	}
}

func (bs *BrowserScene) configure() {
	bs.browserUI = ui.NewBrowserUI(bs.onJoin, bs.refresh, bs.goBack)
	bs.refresh()
}

func (bs *BrowserScene) onJoin(address string) {
	bs.browserUI.SetStatus("connecting to " + address + "...")

	saved, _ := systems.LoadSettings()
	if saved == nil {
		saved = &systems.SavedSettings{}
	}
	saved.LastAddress = address
	_ = systems.SaveSettings(saved)

	bs.netClient = network.NewClient()
	bs.netClient.Connect(address, cfg.C.Version, bs.playerName)
}

func (bs *BrowserScene) refresh() {
	bs.browserUI.SetRefreshing(true)
	bs.browserUI.SetStatus("fetching table list...")

	go func() {
		entries, err := bs.fetchTables()

		bs.mu.Lock()
		bs.fetched = entries
		bs.fetchErr = err
		bs.fetchDone = true
		bs.mu.Unlock()
	}()
}

func (bs *BrowserScene) fetchTables() ([]ui.TableEntry, error) {
	resp, err := bs.httpClient.Get(DefaultMasterURL + "/tables")
	if err != nil {
		return nil, fmt.Errorf("directory unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned %s", resp.Status)
	}

	var raw []directoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("bad directory response: %w", err)
	}

	entries := make([]ui.TableEntry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, ui.TableEntry{
			Name:    e.Name,
			Address: e.Address,
			Players: e.Players,
		})
	}
	return entries, nil
}

func (bs *BrowserScene) goBack() {
	if bs.netClient != nil {
		bs.netClient.Disconnect()
		bs.netClient = nil
	}
	bs.sceneChanger.ChangeScene(NewMenuScene(bs.sceneChanger))
}

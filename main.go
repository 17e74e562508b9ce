package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tokenplay/config"
	"github.com/automoto/tokenplay/fonts"
	"github.com/automoto/tokenplay/scenes"
	"github.com/automoto/tokenplay/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewTableScene(g, nil, "host", true)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	gm := flag.Bool("gm", false, "join with game master privileges")
	tablesDir := flag.String("tables", config.C.TablesDir, "directory containing .tmx table maps")
	master := flag.String("master", "", "table directory URL")
	skipMenu := flag.Bool("skipmenu", false, "jump straight into an offline table")
	flag.Parse()

	scenes.LocalGM = *gm
	config.C.TablesDir = *tablesDir
	config.Debug.SkipMenu = *skipMenu

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		if saved.MasterURL != "" {
			scenes.DefaultMasterURL = saved.MasterURL
		}
		ebiten.SetFullscreen(saved.Fullscreen)
	}
	if *master != "" {
		scenes.DefaultMasterURL = *master
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

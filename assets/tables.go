package assets

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// TokenSpawn is one token placement parsed from a table map.
type TokenSpawn struct {
	ID        string
	Name      string
	Owner     string
	ImagePath string
	X, Y      float64
	W, H      float64
}

// Table is a loaded scene: a rendered background plus token spawns.
type Table struct {
	ID         string
	Name       string
	Width      int
	Height     int
	Background *ebiten.Image
	Tokens     []TokenSpawn
}

// LoadTables loads every .tmx map in dir as a table. The map's
// "Tokens" object layer defines the tokens; object properties "owner"
// and "image" are optional.
func LoadTables(dir string) ([]Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read tables dir: %w", err)
	}

	var tables []Table
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".tmx" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		table, err := loadTable(path)
		if err != nil {
			log.Printf("[assets] skipping table %s: %v", path, err)
			continue
		}
		tables = append(tables, table)
	}

	if len(tables) == 0 {
		return nil, fmt.Errorf("no usable .tmx tables in %s", dir)
	}
	return tables, nil
}

func loadTable(path string) (Table, error) {
	tableMap, err := tiled.LoadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("parse map: %w", err)
	}

	id := tableMap.Properties.GetString("id")
	if id == "" {
		base := filepath.Base(path)
		id = base[:len(base)-len(filepath.Ext(base))]
	}

	table := Table{
		ID:     id,
		Name:   id,
		Width:  tableMap.Width * tableMap.TileWidth,
		Height: tableMap.Height * tableMap.TileHeight,
	}
	if name := tableMap.Properties.GetString("name"); name != "" {
		table.Name = name
	}

	table.Background = renderBackground(tableMap)

	dir := filepath.Dir(path)
	for _, og := range tableMap.ObjectGroups {
		if og.Name != "Tokens" {
			continue
		}
		for _, o := range og.Objects {
			spawn := TokenSpawn{
				ID:    fmt.Sprintf("%s:%d", id, o.ID),
				Name:  o.Name,
				Owner: o.Properties.GetString("owner"),
				X:     o.X,
				Y:     o.Y,
				W:     o.Width,
				H:     o.Height,
			}
			if img := o.Properties.GetString("image"); img != "" {
				spawn.ImagePath = filepath.Join(dir, img)
			}
			table.Tokens = append(table.Tokens, spawn)
		}
	}

	return table, nil
}

func renderBackground(tableMap *tiled.Map) *ebiten.Image {
	bg := ebiten.NewImage(tableMap.Width*tableMap.TileWidth, tableMap.Height*tableMap.TileHeight)

	renderer, err := render.NewRenderer(tableMap)
	if err != nil {
		log.Printf("[assets] map renderer unavailable: %v", err)
		return bg
	}

	for i, layer := range tableMap.Layers {
		if !layer.Visible {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("[assets] layer %d not rendered: %v", i, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		if layer.Opacity > 0 && layer.Opacity < 1 {
			op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		}
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return bg
}

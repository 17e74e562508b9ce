package fonts

import (
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Small   FontName = "small"
)

var fonts = map[FontName]font.Face{}

func (f FontName) Get() font.Face {
	if face, ok := fonts[f]; ok {
		return face
	}
	return basicfont.Face7x13
}

// LoadDefaults parses the bundled Go font at the sizes the HUD uses.
func LoadDefaults() {
	loadFace(Regular, 14)
	loadFace(Bold, 18)
	loadFace(Small, 11)
}

func loadFace(name FontName, size float64) {
	fontData, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("[fonts] parse failed, using fallback face: %v", err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts       = map[FontName]font.Face{}
	defaultOnce sync.Once
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size, Hinting: font.HintingFull})
	return nil
}

// LoadDefaults registers the bundled Go fonts under every FontName.
func LoadDefaults() {
	defaultOnce.Do(func() {
		mustLoad(Regular, goregular.TTF, 20)
		mustLoad(Small, goregular.TTF, 14)
		mustLoad(Bold, gobold.TTF, 24)
		mustLoad(Title, gobold.TTF, 48)
	})
}

func mustLoad(name FontName, ttf []byte, size float64) {
	if err := LoadFontWithSize(name, ttf, size); err != nil {
		panic(err)
	}
}

func getFont(name FontName) font.Face {
	LoadDefaults()
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

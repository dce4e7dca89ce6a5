package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// Load parses the bundled Go Regular face at the sizes the app uses. Must
// run before any Get.
func Load() {
	loadWithSize(Regular, 12)
	loadWithSize(Title, 18)
	loadWithSize(Small, 10)
}

func loadWithSize(name FontName, size float64) {
	fontData, _ := truetype.Parse(goregular.TTF)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

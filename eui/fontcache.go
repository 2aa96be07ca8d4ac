package eui

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	faceSource  *text.GoTextFaceSource
	faceCache   = map[float64]*text.GoTextFace{}
	faceCacheMu sync.Mutex

	titleCaser = cases.Title(language.English)
	upperCaser = cases.Upper(language.Und)
)

// EnsureFontSource initializes the font source from ttf data if needed. A
// nil ttf uses the bundled Go Regular face.
func EnsureFontSource(ttf []byte) error {
	faceCacheMu.Lock()
	defer faceCacheMu.Unlock()
	if faceSource != nil {
		return nil
	}
	if ttf == nil {
		ttf = goregular.TTF
	}
	s, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return err
	}
	faceSource = s
	faceCache = map[float64]*text.GoTextFace{}
	return nil
}

func textFace(size float32) *text.GoTextFace {
	faceCacheMu.Lock()
	defer faceCacheMu.Unlock()
	s := float64(size)
	if f, ok := faceCache[s]; ok {
		return f
	}
	f := &text.GoTextFace{Source: faceSource, Size: s}
	faceCache[s] = f
	return f
}

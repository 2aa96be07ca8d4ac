package eui

import (
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"colorpicker/hsb"
	"colorpicker/logger"
)

// maxCachedPlanes limits how many plane images are kept. Dragging along the
// hue strip visits at most 361 fills, most of them once.
const maxCachedPlanes = 48

type rasterKey struct {
	fill hsb.RGB
	w, h int
}

// rasterCache keeps plane images by fill color and size, evicting the
// oldest entry when full.
type rasterCache struct {
	mu     sync.Mutex
	images map[rasterKey]*ebiten.Image
	order  []rasterKey
	bytes  uint64
}

func newRasterCache() *rasterCache {
	return &rasterCache{images: make(map[rasterKey]*ebiten.Image)}
}

// plane returns the cached plane image, painting it on a miss.
func (c *rasterCache) plane(fill hsb.RGB, w, h int, radius float64) *ebiten.Image {
	key := rasterKey{fill: fill, w: w, h: h}
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.images[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(planePixels(w, h, fill, radius))

	if len(c.order) >= maxCachedPlanes {
		old := c.order[0]
		c.order = c.order[1:]
		if o := c.images[old]; o != nil {
			o.Deallocate()
		}
		delete(c.images, old)
		c.bytes -= uint64(old.w * old.h * 4)
	}
	c.images[key] = img
	c.order = append(c.order, key)
	c.bytes += uint64(w * h * 4)
	logger.Log.Debug("plane cached",
		zap.String("fill", hsb.ToHex(fill)),
		zap.Int("entries", len(c.order)),
		zap.String("size", humanize.Bytes(c.bytes)))
	return img
}

// clear disposes every cached image.
func (c *rasterCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, img := range c.images {
		img.Deallocate()
	}
	c.images = make(map[rasterKey]*ebiten.Image)
	c.order = nil
	c.bytes = 0
}

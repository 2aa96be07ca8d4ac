package eui

import (
	"math"
	"runtime"

	"github.com/remeh/sizedwaitgroup"

	"colorpicker/hsb"
)

// Use a 4x4 grid of subpixel samples for smoother rounded corners.
var subOffsets = []float64{0.125, 0.375, 0.625, 0.875}

// rasterWorkers bounds the goroutines used to fill a raster.
var rasterWorkers = runtime.NumCPU()

// roundRectCoverage returns how much of the pixel at (x, y) lies inside a
// w by h rectangle with corner radius r.
func roundRectCoverage(x, y int, w, h, r float64) float64 {
	fx, fy := float64(x), float64(y)
	if r <= 0 || (fx >= r && fx+1 <= w-r) || (fy >= r && fy+1 <= h-r) {
		return 1
	}
	var inside int
	for _, oy := range subOffsets {
		for _, ox := range subOffsets {
			px, py := fx+ox, fy+oy
			cx := math.Min(math.Max(px, r), w-r)
			cy := math.Min(math.Max(py, r), h-r)
			if math.Hypot(px-cx, py-cy) <= r {
				inside++
			}
		}
	}
	return float64(inside) / float64(len(subOffsets)*len(subOffsets))
}

// rasterize fills a premultiplied RGBA buffer, one goroutine per band of
// rows. shade returns the color at the pixel center (u, v) in [0,1].
func rasterize(w, h int, radius float64, shade func(u, v float64) (r, g, b float64)) []byte {
	if w <= 0 || h <= 0 {
		return nil
	}
	pix := make([]byte, w*h*4)
	band := (h + rasterWorkers - 1) / rasterWorkers
	if band < 1 {
		band = 1
	}
	swg := sizedwaitgroup.New(rasterWorkers)
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		swg.Add()
		go func(y0, y1 int) {
			defer swg.Done()
			for y := y0; y < y1; y++ {
				v := (float64(y) + 0.5) / float64(h)
				for x := 0; x < w; x++ {
					cov := roundRectCoverage(x, y, float64(w), float64(h), radius)
					idx := 4 * (y*w + x)
					if cov == 0 {
						continue
					}
					r, g, b := shade((float64(x)+0.5)/float64(w), v)
					pix[idx+0] = uint8(r*cov + 0.5)
					pix[idx+1] = uint8(g*cov + 0.5)
					pix[idx+2] = uint8(b*cov + 0.5)
					pix[idx+3] = uint8(255*cov + 0.5)
				}
			}
		}(y0, y1)
	}
	swg.Wait()
	return pix
}

// planePixels paints the saturation/brightness plane: the hue's fill under
// a white overlay fading out to the right and a black overlay fading in
// towards the bottom.
func planePixels(w, h int, fill hsb.RGB, radius float64) []byte {
	fr, fg, fb := float64(fill.R), float64(fill.G), float64(fill.B)
	return rasterize(w, h, radius, func(u, v float64) (float64, float64, float64) {
		white := 1 - u
		dark := 1 - v
		return (fr*u + 255*white) * dark, (fg*u + 255*white) * dark, (fb*u + 255*white) * dark
	})
}

// stripPixels paints the hue strip from the gradient stops.
func stripPixels(w, h int, stops []hsb.Stop, radius float64) []byte {
	return rasterize(w, h, radius, func(u, _ float64) (float64, float64, float64) {
		c := hsb.HueAt(stops, u)
		return float64(c.R), float64(c.G), float64(c.B)
	})
}

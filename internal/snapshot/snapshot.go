// Package snapshot exports the wheel as a PNG image.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"tipstr/internal/wheel"
)

const (
	DefaultSize   = 480
	captionHeight = 48
	labelRadius   = 0.62
	hubRadius     = 0.08
)

var ErrNoSegments = errors.New("wheel has no segments")

// Wheel is what gets drawn: the segments in wheel order, the rotation in
// degrees and an optional caption line below the wheel.
type Wheel struct {
	Percentages []int
	Colors      []color.Color
	Rotation    float64
	Caption     string
}

// Render draws w on a size x size canvas plus a caption band.
func Render(w Wheel, size int) (image.Image, error) {
	dc, err := draw(w, size)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// Save writes w to dir as tipwheel-<timestamp>.png and returns the path.
func Save(dir string, w Wheel, now time.Time) (string, error) {
	dc, err := draw(w, DefaultSize)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("tipwheel-%s.png", now.Format("20060102-150405")))
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("save snapshot: %w", err)
	}
	return path, nil
}

func draw(w Wheel, size int) (*gg.Context, error) {
	n := len(w.Percentages)
	if n == 0 {
		return nil, ErrNoSegments
	}
	if size <= 0 {
		size = DefaultSize
	}

	dc := gg.NewContext(size, size+captionHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(size) / 24,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	cx, cy := float64(size)/2, float64(size)/2
	r := float64(size)/2 - float64(size)/12
	seg := wheel.SegmentAngle(n)

	for i := 0; i < n; i++ {
		start := float64(i)*seg + w.Rotation
		dc.SetColor(segmentColor(w.Colors, i))
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, r, screenRadians(start), screenRadians(start+seg))
		dc.ClosePath()
		dc.Fill()
	}

	dc.SetColor(color.Black)
	dc.SetLineWidth(2)
	dc.DrawCircle(cx, cy, r)
	dc.Stroke()

	for i, p := range w.Percentages {
		x, y := polar(cx, cy, r*labelRadius, wheel.SegmentCenter(i, w.Rotation, n))
		dc.SetColor(color.White)
		dc.DrawStringAnchored(fmt.Sprintf("%d%%", p), x, y, 0.5, 0.5)
	}

	dc.SetColor(color.Black)
	dc.DrawCircle(cx, cy, r*hubRadius)
	dc.Fill()

	// Pointer at 12 o'clock, tip touching the rim.
	top := cy - r
	half := float64(size) / 30
	dc.MoveTo(cx, top+half)
	dc.LineTo(cx-half, top-half)
	dc.LineTo(cx+half, top-half)
	dc.ClosePath()
	dc.Fill()

	if w.Caption != "" {
		dc.DrawStringAnchored(w.Caption, cx, float64(size)+captionHeight/2, 0.5, 0.5)
	}
	return dc, nil
}

// screenRadians converts a clockwise-from-12 angle to gg's clockwise-from-3.
func screenRadians(deg float64) float64 {
	return gg.Radians(deg - 90)
}

func polar(cx, cy, radius, deg float64) (float64, float64) {
	a := screenRadians(deg)
	return cx + radius*math.Cos(a), cy + radius*math.Sin(a)
}

func segmentColor(colors []color.Color, i int) color.Color {
	if len(colors) == 0 {
		return color.Gray{Y: uint8(80 + (i%4)*40)}
	}
	return colors[i%len(colors)]
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mapview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/danielhkuo/disaster-verify/models"
)

var iconColors = map[models.Category]color.RGBA{
	models.CategoryFlooding:       {R: 0x1e, G: 0x6f, B: 0xd9, A: 0xff},
	models.CategoryFire:           {R: 0xe0, G: 0x3a, B: 0x1e, A: 0xff},
	models.CategoryEarthquake:     {R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff},
	models.CategoryStorm:          {R: 0x5b, G: 0x4b, B: 0x9e, A: 0xff},
	models.CategoryLandslide:      {R: 0x6b, G: 0x6b, B: 0x47, A: 0xff},
	models.CategoryInfrastructure: {R: 0xf2, G: 0x9d, B: 0x12, A: 0xff},
	models.CategoryMedical:        {R: 0xd6, G: 0x1f, B: 0x69, A: 0xff},
	models.CategoryOther:          {R: 0x55, G: 0x55, B: 0x55, A: 0xff},
}

// IconPNG draws the placeholder marker for a category: a filled circle
// with a white rim, IconSize pixels square.
func IconPNG(c models.Category) ([]byte, error) {
	fill, ok := iconColors[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownCategory, c)
	}

	img := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))
	r := float64(IconSize) / 2
	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			d := dx*dx + dy*dy
			switch {
			case d <= (r-3)*(r-3):
				img.SetRGBA(x, y, fill)
			case d <= r*r:
				img.SetRGBA(x, y, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}
	return buf.Bytes(), nil
}

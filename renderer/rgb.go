// renderer/rgb.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmp/knobs/math"
)

///////////////////////////////////////////////////////////////////////////
// RGB

type RGB struct {
	R, G, B float32
}

type RGBA struct {
	R, G, B, A float32
}

// RGBFromHex converts a packed integer color value to an RGB where the low
// 8 bits give blue, the next 8 give green, and then the next 8 give red.
func RGBFromHex(c int) RGB {
	r, g, b := (c>>16)&255, (c>>8)&255, c&255
	return RGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

// RGBAFromUInt8 is the equivalent of imgui's IM_COL32 macro.
func RGBAFromUInt8(r, g, b, a uint8) RGBA {
	return RGBA{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: float32(a) / 255}
}

var (
	White = RGBA{R: 1, G: 1, B: 1, A: 1}
	Black = RGBA{A: 1}
)

func quantize(v float32) uint32 {
	return uint32(math.Clamp(v, 0, 1)*255 + 0.5)
}

// U32 packs the color into the 32-bit layout that imgui's draw lists use:
// red in the low byte, then green, blue, and alpha in the high byte.
func (c RGBA) U32() uint32 {
	return quantize(c.A)<<24 | quantize(c.B)<<16 | quantize(c.G)<<8 | quantize(c.R)
}

// RGBAFromU32 is the inverse of RGBA.U32.
func RGBAFromU32(v uint32) RGBA {
	return RGBAFromUInt8(uint8(v), uint8(v>>8), uint8(v>>16), uint8(v>>24))
}

// Hex returns the color formatted as #rrggbbaa.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", quantize(c.R), quantize(c.G), quantize(c.B), quantize(c.A))
}

// ParseRGBA parses colors of the form #rrggbb or #rrggbbaa; the leading #
// is optional.  Colors without an alpha component are opaque.
func ParseRGBA(s string) (RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return RGBA{}, fmt.Errorf("%q: color must be #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return RGBAFromUInt8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func (c RGBA) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

func (c *RGBA) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseRGBA(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// knob/style.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package knob

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/mmp/knobs/math"
	"github.com/mmp/knobs/renderer"

	"github.com/brunoga/deep"
)

// Type selects which parts of a knob are drawn.
type Type int

const (
	// Blank knobs draw only the base circle.
	Blank Type = iota
	// Basic knobs draw the base circle, the indicator, and the cover.
	Basic
)

func (t Type) String() string {
	switch t {
	case Blank:
		return "blank"
	case Basic:
		return "basic"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t Type) MarshalText() ([]byte, error) {
	if t != Blank && t != Basic {
		return nil, fmt.Errorf("%d: invalid knob type", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	switch string(b) {
	case "blank":
		*t = Blank
	case "basic":
		*t = Basic
	default:
		return fmt.Errorf("%q: unknown knob type", string(b))
	}
	return nil
}

type Circle struct {
	Color  renderer.RGBA
	Radius float32
	// Segments is the number of segments used to tessellate the circle;
	// zero leaves it up to the draw list.
	Segments int
}

func (c Circle) draw(dl DrawList, center [2]float32) {
	dl.AddCircleFilled(center, math.Max(c.Radius, 0), c.Color, math.Max(c.Segments, 0))
}

type Line struct {
	Color     renderer.RGBA
	Thickness float32
}

// Style describes how a knob is drawn.  A Style owns its Indicator; use
// Clone rather than plain assignment when a copy will be modified
// independently.
type Style struct {
	Type      Type
	Base      Circle
	Indicator Indicator
	// Cover is drawn over the indicator, centered on the knob, so that
	// the inner end of the indicator is hidden.
	Cover Circle
}

// DefaultStyle returns a basic knob of radius 20 in the theme's frame
// background color with a white line indicator and a radius 8 cover.
func DefaultStyle(th Theme) Style {
	bg := th.FrameBackground()
	return Style{
		Type:      Basic,
		Base:      Circle{Color: bg, Radius: 20},
		Indicator: NewLineIndicator(),
		Cover:     Circle{Color: bg, Radius: 8},
	}
}

// Clone returns a deep copy of the style, including its indicator.
func (s Style) Clone() Style {
	return deep.MustCopy(s)
}

///////////////////////////////////////////////////////////////////////////
// Serialization

type indicatorKind struct {
	name string
	typ  reflect.Type
	make func() Indicator
}

var (
	indicatorKindsMu sync.Mutex
	indicatorKinds   []indicatorKind
)

func init() {
	RegisterIndicator("line", func() Indicator { return NewLineIndicator() })
	RegisterIndicator("dot", func() Indicator { return NewIndicatorDot() })
}

// RegisterIndicator makes an Indicator implementation available for
// serialization under the given kind name.  fn must return a pointer to
// a freshly initialized value; it is used both when decoding and to learn
// the Go type that corresponds to kind.
func RegisterIndicator(kind string, fn func() Indicator) {
	indicatorKindsMu.Lock()
	defer indicatorKindsMu.Unlock()

	typ := reflect.TypeOf(fn())
	for _, k := range indicatorKinds {
		if k.name == kind || k.typ == typ {
			panic(fmt.Sprintf("knob: indicator kind %q registered twice", kind))
		}
	}
	indicatorKinds = append(indicatorKinds, indicatorKind{name: kind, typ: typ, make: fn})
}

// IndicatorKinds returns the names of all registered indicator kinds in
// registration order.
func IndicatorKinds() []string {
	indicatorKindsMu.Lock()
	defer indicatorKindsMu.Unlock()

	var names []string
	for _, k := range indicatorKinds {
		names = append(names, k.name)
	}
	return names
}

func lookupIndicatorKind(match func(indicatorKind) bool) (indicatorKind, bool) {
	indicatorKindsMu.Lock()
	defer indicatorKindsMu.Unlock()

	if idx := slices.IndexFunc(indicatorKinds, match); idx != -1 {
		return indicatorKinds[idx], true
	}
	return indicatorKind{}, false
}

// IndicatorKind returns the registered kind name for ind.
func IndicatorKind(ind Indicator) (string, bool) {
	typ := reflect.TypeOf(ind)
	k, ok := lookupIndicatorKind(func(k indicatorKind) bool { return k.typ == typ })
	return k.name, ok
}

// NewIndicator returns a default-initialized indicator of the given kind.
func NewIndicator(kind string) (Indicator, error) {
	k, ok := lookupIndicatorKind(func(k indicatorKind) bool { return k.name == kind })
	if !ok {
		return nil, fmt.Errorf("%q: unknown indicator kind", kind)
	}
	return k.make(), nil
}

type serializedIndicator struct {
	Kind   string
	Params json.RawMessage
}

type serializedStyle struct {
	Type      Type
	Base      Circle
	Indicator *serializedIndicator `json:",omitempty"`
	Cover     Circle
}

func (s Style) MarshalJSON() ([]byte, error) {
	ss := serializedStyle{Type: s.Type, Base: s.Base, Cover: s.Cover}
	if s.Indicator != nil {
		kind, ok := IndicatorKind(s.Indicator)
		if !ok {
			return nil, fmt.Errorf("%T: indicator type not registered", s.Indicator)
		}
		params, err := json.Marshal(s.Indicator)
		if err != nil {
			return nil, err
		}
		ss.Indicator = &serializedIndicator{Kind: kind, Params: params}
	}
	return json.Marshal(ss)
}

func (s *Style) UnmarshalJSON(b []byte) error {
	var ss serializedStyle
	if err := json.Unmarshal(b, &ss); err != nil {
		return err
	}

	*s = Style{Type: ss.Type, Base: ss.Base, Cover: ss.Cover}
	if ss.Indicator != nil {
		ind, err := NewIndicator(ss.Indicator.Kind)
		if err != nil {
			return err
		}
		if len(ss.Indicator.Params) > 0 {
			if err := json.Unmarshal(ss.Indicator.Params, ind); err != nil {
				return fmt.Errorf("%s indicator: %w", ss.Indicator.Kind, err)
			}
		}
		s.Indicator = ind
	}
	return nil
}

package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Params is the full set of user-adjustable view parameters. Angles are in
// radians, translations in world units. Scale multiplies the fixed
// PixelsPerUnit factor and Perspective is the distance-like divisor of the
// perspective divide.
type Params struct {
	RotX, RotY, RotZ       float64
	TransX, TransY, TransZ float64
	Scale                  float64
	Perspective            float64
}

// DefaultParams returns the startup view, also restored by Reset.
func DefaultParams() Params {
	return Params{
		RotX: 0.73, RotY: 1.2, RotZ: 0.92,
		TransX: 1.45, TransY: 1.8, TransZ: 1.4,
		Scale:       1.6,
		Perspective: 5,
	}
}

// ParamID names one field of Params, in slider order.
type ParamID uint8

const (
	ParamRotX ParamID = iota
	ParamRotY
	ParamRotZ
	ParamTransX
	ParamTransY
	ParamTransZ
	ParamScale
	ParamPerspective

	NumParams = int(ParamPerspective) + 1
)

// SliderRange mirrors the bounds of a range input.
type SliderRange struct {
	Min, Max, Step float64
}

type paramInfo struct {
	key   string
	rng   SliderRange
	field func(p *Params) *float64
}

var paramTable = [NumParams]paramInfo{
	ParamRotX:        {"rotX", SliderRange{-2 * math.Pi, 2 * math.Pi, 0.01}, func(p *Params) *float64 { return &p.RotX }},
	ParamRotY:        {"rotY", SliderRange{-2 * math.Pi, 2 * math.Pi, 0.01}, func(p *Params) *float64 { return &p.RotY }},
	ParamRotZ:        {"rotZ", SliderRange{-2 * math.Pi, 2 * math.Pi, 0.01}, func(p *Params) *float64 { return &p.RotZ }},
	ParamTransX:      {"transX", SliderRange{-5, 5, 0.05}, func(p *Params) *float64 { return &p.TransX }},
	ParamTransY:      {"transY", SliderRange{-5, 5, 0.05}, func(p *Params) *float64 { return &p.TransY }},
	ParamTransZ:      {"transZ", SliderRange{-5, 5, 0.05}, func(p *Params) *float64 { return &p.TransZ }},
	ParamScale:       {"scale", SliderRange{0.1, 5, 0.1}, func(p *Params) *float64 { return &p.Scale }},
	ParamPerspective: {"persp", SliderRange{1, 20, 0.5}, func(p *Params) *float64 { return &p.Perspective }},
}

func (id ParamID) valid() bool { return int(id) < NumParams }

// String returns the control key ("rotX", ..., "persp").
func (id ParamID) String() string {
	if !id.valid() {
		return fmt.Sprintf("ParamID(%d)", uint8(id))
	}
	return paramTable[id].key
}

// Range returns the slider bounds for id.
func (id ParamID) Range() SliderRange {
	if !id.valid() {
		return SliderRange{}
	}
	return paramTable[id].rng
}

// ParseParamID maps a control key back to its ParamID.
func ParseParamID(key string) (ParamID, bool) {
	for i := range paramTable {
		if paramTable[i].key == key {
			return ParamID(i), true
		}
	}
	return 0, false
}

// ParseAssignment parses a "key=value" parameter override such as
// "rotX=0.5". Keys are the control keys; values must be finite.
func ParseAssignment(s string) (ParamID, float64, error) {
	key, val, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("parameter %q: want key=value", s)
	}
	id, ok := ParseParamID(strings.TrimSpace(key))
	if !ok {
		return 0, 0, fmt.Errorf("parameter %q: unknown key %q", s, key)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parameter %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0, fmt.Errorf("parameter %q: value must be finite", s)
	}
	return id, v, nil
}

// Get returns the value of one parameter.
func (p Params) Get(id ParamID) float64 {
	if !id.valid() {
		return 0
	}
	return *paramTable[id].field(&p)
}

// Set overwrites one parameter. Values are taken as-is.
func (p *Params) Set(id ParamID, v float64) {
	if !id.valid() {
		return
	}
	*paramTable[id].field(p) = v
}

// Label formats a value the way the slider readouts show it.
func Label(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func (r SliderRange) clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

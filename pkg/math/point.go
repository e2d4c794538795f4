package math

import (
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Point3 is anything that can report x, y and z coordinates.
// FromTo3 accepts any Point3 but only *Vector3 passes its check.
type Point3 interface {
	Components() (x, y, z float64)
}

// Record is a loosely typed point such as a decoded JSON or YAML object.
// Keys are matched case-insensitively, an exact key winning; numeric strings and booleans are
// converted, anything else reads as 0.
type Record map[string]any

// Components implements Point3.
func (r Record) Components() (x, y, z float64) {
	return r.component("x"), r.component("y"), r.component("z")
}

// component prefers an exact key, then the first case-insensitive match in
// sorted key order.
func (r Record) component(name string) float64 {
	raw, ok := r[name]
	if !ok {
		keys := make([]string, 0, len(r))
		for k := range r {
			if strings.EqualFold(k, name) {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			return 0
		}
		sort.Strings(keys)
		raw = r[keys[0]]
	}

	var f float64
	if err := mapstructure.WeakDecode(raw, &f); err != nil {
		return 0
	}
	return f
}

func components(p Point3) (x, y, z float64) {
	if p == nil {
		return 0, 0, 0
	}
	return p.Components()
}

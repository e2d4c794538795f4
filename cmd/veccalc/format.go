package main

import (
	"strconv"
	"strings"
)

// result is a scalar when it holds one value and a vector otherwise.
type result []float64

func scalarResult(f float64) result { return result{f} }

func vec3Result(x, y, z float64) result { return result{x, y, z} }

func vec4Result(x, y, z, w float64) result { return result{x, y, z, w} }

func (r result) format(precision int) string {
	if len(r) == 1 {
		return formatFloat(r[0], precision)
	}
	parts := make([]string, len(r))
	for i, f := range r {
		parts[i] = formatFloat(f, precision)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatFloat(f float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}

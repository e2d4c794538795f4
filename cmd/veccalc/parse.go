package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/vecmath/pkg/math"
)

var errBadVector = errors.New("vector must have 3 or 4 comma separated components")

// parseVector reads "x,y,z" as a *math.Vector3 and "x,y,z,w" as a
// *math.Vector4. Non-finite components become 0 as with the constructors.
func parseVector(s string) (any, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("%q: %w", s, errBadVector)
	}

	c := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: component %d: %w", s, i+1, err)
		}
		c[i] = f
	}

	if len(c) == 3 {
		return math.NewVector3(c[0], c[1], c[2]), nil
	}
	return math.NewVector4(c[0], c[1], c[2], c[3]), nil
}

func parseVectors(args []string) ([]any, error) {
	vs := make([]any, len(args))
	for i, s := range args {
		v, err := parseVector(s)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

func parseScalar(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("scalar %q: %w", s, err)
	}
	return f, nil
}

// asVector3s requires every operand to be a 3D vector.
func asVector3s(op string, vs []any) ([]*math.Vector3, error) {
	out := make([]*math.Vector3, len(vs))
	for i, v := range vs {
		v3, ok := v.(*math.Vector3)
		if !ok {
			return nil, fmt.Errorf("%s: operand %d is not a 3D vector", op, i+1)
		}
		out[i] = v3
	}
	return out, nil
}

// asVector4s requires every operand to be a 4D vector.
func asVector4s(op string, vs []any) ([]*math.Vector4, error) {
	out := make([]*math.Vector4, len(vs))
	for i, v := range vs {
		v4, err := math.AsVector4(v)
		if err != nil {
			return nil, fmt.Errorf("%s: operand %d: %w", op, i+1, err)
		}
		out[i] = v4
	}
	return out, nil
}

// asPoint3 passes 3D vectors through and hands anything else to the math
// package as a loose record of its leading components.
func asPoint3(v any) math.Point3 {
	switch vv := v.(type) {
	case *math.Vector3:
		return vv
	case *math.Vector4:
		return math.Record{"x": vv.X, "y": vv.Y, "z": vv.Z, "w": vv.W}
	}
	return nil
}

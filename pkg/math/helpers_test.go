package math

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-6

func approx(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, tol)
}

func approxVec3(a, b *Vector3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func approxVec4(a, b *Vector4) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z) && approx(a.W, b.W)
}

// observeDiagnostics routes the package logger into an in-memory sink for
// the duration of the test.
func observeDiagnostics(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

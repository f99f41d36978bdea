// Package linear implements the vector and matrix math used to place
// scene objects and cameras.
package linear

import (
	"math"
)

// V3 is a 3-component vector of float32.
type V3 [3]float32

// SubV3 returns v - w.
func SubV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float32, v V3) (u V3) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
func LenV3(v V3) float32 {
	return float32(math.Sqrt(float64(DotV3(v, v))))
}

// NormV3 returns v normalized.
// The zero vector is returned unchanged.
func NormV3(v V3) V3 {
	l := LenV3(v)
	if l == 0 {
		return v
	}
	return ScaleV3(1/l, v)
}

// Cross returns v × w.
func Cross(v, w V3) (u V3) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// V4 is a 4-component vector of float32.
type V4 [4]float32

// Point returns v extended with w = 1.
func Point(v V3) V4 { return V4{v[0], v[1], v[2], 1} }

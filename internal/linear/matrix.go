package linear

import "math"

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	var n M4
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// MulV4 returns m ⋅ v.
func (m *M4) MulV4(v V4) (u V4) {
	for i := range u {
		for k := range v {
			u[i] += m[k][i] * v[k]
		}
	}
	return
}

// Translate sets m to contain a translation by t.
func (m *M4) Translate(t V3) {
	m.I()
	m[3] = V4{t[0], t[1], t[2], 1}
}

// LookAt sets m to contain a right-handed view transform
// for an eye at eye looking towards center.
// up must not be parallel to center - eye.
func (m *M4) LookAt(eye, center, up V3) {
	f := NormV3(SubV3(center, eye))
	s := NormV3(Cross(f, up))
	u := Cross(s, f)
	*m = M4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-DotV3(s, eye), -DotV3(u, eye), DotV3(f, eye), 1},
	}
}

// Perspective sets m to contain a right-handed perspective
// projection with a [0, 1] depth range.
// fovy is in radians.
func (m *M4) Perspective(fovy, aspect, znear, zfar float32) {
	ct := float32(1 / math.Tan(float64(fovy)/2))
	*m = M4{
		{ct / aspect},
		{0, ct},
		{0, 0, zfar / (znear - zfar), -1},
		{0, 0, (znear * zfar) / (znear - zfar), 0},
	}
}

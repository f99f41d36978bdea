package linear

import (
	"math"
	"testing"
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func nearV4(v, w V4) bool {
	for i := range v {
		if !near(v[i], w[i]) {
			return false
		}
	}
	return true
}

func TestV3(t *testing.T) {
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	if u := SubV3(v, w); u != (V3{1, 3, 2}) {
		t.Fatalf("SubV3\nhave %v\nwant [1 3 2]", u)
	}
	if u := ScaleV3(-1, v); u != (V3{-1, -2, -4}) {
		t.Fatalf("ScaleV3\nhave %v\nwant [-1 -2 -4]", u)
	}
	if d := DotV3(v, w); d != 6 {
		t.Fatalf("DotV3\nhave %v\nwant 6", d)
	}
	if l := LenV3(v); l != float32(math.Sqrt(21)) {
		t.Fatalf("LenV3\nhave %v\nwant %v", l, math.Sqrt(21))
	}
	if u := NormV3(V3{0, 0, -2}); u != (V3{0, 0, -1}) {
		t.Fatalf("NormV3\nhave %v\nwant [0 0 -1]", u)
	}
	if u := NormV3(V3{}); u != (V3{}) {
		t.Fatalf("NormV3\nhave %v\nwant [0 0 0]", u)
	}
	if u := Cross(V3{0, 0, -1}, V3{0, 1, 0}); u != (V3{1, 0, 0}) {
		t.Fatalf("Cross\nhave %v\nwant [1 0 0]", u)
	}
	if p := Point(v); p != (V4{1, 2, 4, 1}) {
		t.Fatalf("Point\nhave %v\nwant [1 2 4 1]", p)
	}
}

func TestM4(t *testing.T) {
	var i, m, n M4
	i.I()
	m.Translate(V3{1, 2, 3})
	if n.Mul(&i, &m); n != m {
		t.Fatalf("M4.Mul\nhave %v\nwant %v", n, m)
	}
	if p := m.MulV4(V4{1, 1, 1, 1}); p != (V4{2, 3, 4, 1}) {
		t.Fatalf("M4.MulV4\nhave %v\nwant [2 3 4 1]", p)
	}
	// In-place multiplication must not corrupt the result.
	m.Mul(&m, &m)
	if p := m.MulV4(V4{0, 0, 0, 1}); p != (V4{2, 4, 6, 1}) {
		t.Fatalf("M4.Mul (aliased)\nhave %v\nwant [2 4 6 1]", p)
	}
}

func TestLookAt(t *testing.T) {
	var m M4
	eye := V3{0, 5, -5}
	m.LookAt(eye, V3{}, V3{0, 1, 0})
	if p := m.MulV4(Point(eye)); !nearV4(p, V4{0, 0, 0, 1}) {
		t.Fatalf("M4.LookAt: eye\nhave %v\nwant [0 0 0 1]", p)
	}
	// The target lies straight ahead, along -z in view space.
	d := LenV3(eye)
	if p := m.MulV4(V4{0, 0, 0, 1}); !nearV4(p, V4{0, 0, -d, 1}) {
		t.Fatalf("M4.LookAt: center\nhave %v\nwant [0 0 %v 1]", p, -d)
	}
}

func TestPerspective(t *testing.T) {
	var m M4
	m.Perspective(math.Pi/2, 1, 0.1, 100)
	if p := m.MulV4(V4{0, 0, -0.1, 1}); !near(p[2]/p[3], 0) {
		t.Fatalf("M4.Perspective: near plane depth\nhave %v\nwant 0", p[2]/p[3])
	}
	if p := m.MulV4(V4{0, 0, -100, 1}); !near(p[2]/p[3], 1) {
		t.Fatalf("M4.Perspective: far plane depth\nhave %v\nwant 1", p[2]/p[3])
	}
}

package mathx

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 1e-6

func approxVec(a, b Vec3) bool {
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}

func TestVec3_Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	if got := a.Add(b); got != V3(5, -3, 9) {
		t.Errorf("Add = %v, want (5,-3,9)", got)
	}
	if got := a.Sub(b); got != V3(-3, 7, -3) {
		t.Errorf("Sub = %v, want (-3,7,-3)", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale = %v, want (2,4,6)", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
	// operands are values; nothing above may have changed them
	if a != V3(1, 2, 3) || b != V3(4, -5, 6) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"parallel", V3(2, 2, 2), V3(1, 1, 1), V3(0, 0, 0)},
		{"general", V3(1, 2, 3), V3(4, 5, 6), V3(-3, 6, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.want {
				t.Errorf("Cross = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3_LengthAndNormalize(t *testing.T) {
	v := V3(3, 4, 0)
	if got := v.Length(); got != 5 {
		t.Fatalf("Length = %v, want 5", got)
	}
	if got := v.Normalize(); !approxVec(got, V3(0.6, 0.8, 0)) {
		t.Errorf("Normalize = %v, want (0.6,0.8,0)", got)
	}
	if got := V3(0, 0, 0).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero vector", got)
	}
	if got := V3(0, -7, 0).Normalize(); got != V3(0, -1, 0) {
		t.Errorf("Normalize = %v, want (0,-1,0)", got)
	}
}

func TestVec3_Mod(t *testing.T) {
	got := V3(370, -370, 359.5).Mod(360)
	if !approxVec(got, V3(10, -10, 359.5)) {
		t.Errorf("Mod = %v, want (10,-10,359.5)", got)
	}
}

func TestVec3_Components(t *testing.T) {
	v := V3(1, 2, 3)
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		t.Run(a.String(), func(t *testing.T) {
			w := v.WithComponent(a, 9)
			if w.Component(a) != 9 {
				t.Errorf("Component(%v) = %v, want 9", a, w.Component(a))
			}
			if v.Component(a) == 9 {
				t.Errorf("WithComponent mutated receiver")
			}
			u := Unit(a, -1)
			if u.Component(a) != -1 || u.Length() != 1 {
				t.Errorf("Unit(%v, -1) = %v", a, u)
			}
		})
	}
}

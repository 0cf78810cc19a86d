package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3_BasicArithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	sum := a.Add(b)
	if sum != (Vec3{5, -3, 9}) {
		t.Errorf("Add: expected {5 -3 9}, got %v", sum)
	}

	diff := a.Subtract(b)
	if diff != (Vec3{-3, 7, -3}) {
		t.Errorf("Subtract: expected {-3 7 -3}, got %v", diff)
	}

	scaled := a.Multiply(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Multiply: expected {2 4 6}, got %v", scaled)
	}

	dot := a.Dot(b)
	if dot != 4-10+18 {
		t.Errorf("Dot: expected 12, got %f", dot)
	}
}

func TestVec3_Length(t *testing.T) {
	v := NewVec3(3, 4, 0)
	if math.Abs(v.Length()-5.0) > 1e-12 {
		t.Errorf("Expected length 5, got %f", v.Length())
	}
	if math.Abs(v.LengthSquared()-25.0) > 1e-12 {
		t.Errorf("Expected squared length 25, got %f", v.LengthSquared())
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis aligned", NewVec3(0, 0, 7)},
		{"arbitrary", NewVec3(1.5, -2.25, 0.75)},
		{"tiny", NewVec3(1e-9, 1e-9, 1e-9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if math.Abs(n.Length()-1.0) > 1e-9 {
				t.Errorf("Expected unit length, got %f", n.Length())
			}
			// Direction must be preserved
			if n.Dot(tt.v) <= 0 {
				t.Errorf("Normalize flipped direction: %v -> %v", tt.v, n)
			}
		})
	}
}

func TestVec3_NormalizeZeroVectorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when normalizing zero-length vector")
		}
	}()
	NewVec3(0, 0, 0).Normalize()
}

func TestVec3_Reflect(t *testing.T) {
	// 45-degree incidence onto a ground plane flips the vertical component
	incident := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	reflected := incident.Reflect(normal)
	expected := NewVec3(1, 1, 0).Normalize()

	if reflected.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, reflected)
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(random)
		if p.Length() >= 1.0 {
			t.Fatalf("Sample %d outside unit sphere: %v (length %f)", i, p, p.Length())
		}
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 1))

	if ray.At(0) != ray.Origin {
		t.Errorf("Expected At(0) to be the origin, got %v", ray.At(0))
	}

	p := ray.At(2.5)
	expected := NewVec3(1, 2, 5.5)
	if p != expected {
		t.Errorf("Expected %v, got %v", expected, p)
	}
}

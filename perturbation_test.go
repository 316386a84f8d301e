package mh

import (
	"math"
	"math/rand"
	"testing"
)

func TestArithmeticCrossoverClampsToBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	x1 := []float64{0, 0, 0}
	x2 := []float64{10, 10, 10}
	off1, off2 := ArithmeticCrossover(x1, x2, 0, 10, rng)

	for i := range off1 {
		if off1[i] < 0 || off1[i] > 10 {
			t.Fatalf("off1[%d] = %v out of bounds", i, off1[i])
		}
		if off2[i] < 0 || off2[i] > 10 {
			t.Fatalf("off2[%d] = %v out of bounds", i, off2[i])
		}
	}
}

func TestGaussianMutateMutatesExpectedCount(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	x := make([]float64, 20)
	y := GaussianMutate(x, 0.5, -1, 1, rng)

	changed := 0
	for i := range x {
		if x[i] != y[i] {
			changed++
		}
	}
	if changed != 10 {
		t.Fatalf("expected ceil(0.5*20) = 10 mutated genes, got %d", changed)
	}
	for _, v := range y {
		if v < -1 || v > 1 {
			t.Fatalf("mutated value %v out of bounds", v)
		}
	}
}

func TestCauchyStepIsFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		v := CauchyStep(0, 1, rng)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("CauchyStep produced a non-finite value: %v", v)
		}
	}
}

func TestCauchyMutateClampsLargeSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	x := make([]float64, 10)
	y := CauchyMutate(x, 1.0, -1, 1, rng)
	for _, v := range y {
		if v < -1 || v > 1 {
			t.Fatalf("CauchyMutate value %v out of [-1, 1]", v)
		}
	}
}

func TestLevyStepIsFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		v := LevyStep(1.5, 1.0, rng)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("LevyStep produced a non-finite value: %v", v)
		}
	}
}

func TestLogisticMapStaysInUnitInterval(t *testing.T) {
	lm := NewLogisticMap(0.37)
	for i := 0; i < 1000; i++ {
		v := lm.Next()
		if v <= 0 || v >= 1 {
			t.Fatalf("LogisticMap.Next() = %v, want in (0, 1)", v)
		}
	}
}

func TestLogisticMapResetNormalizesOutOfRangeSeed(t *testing.T) {
	lm := NewLogisticMap(5.0)
	if c := lm.Current(); c <= 0 || c >= 1 {
		t.Fatalf("expected normalized seed in (0,1), got %v", c)
	}
}

func TestLogisticMapDeterministic(t *testing.T) {
	lm1 := NewLogisticMap(0.83)
	lm2 := NewLogisticMap(0.83)
	for i := 0; i < 100; i++ {
		if a, b := lm1.Next(), lm2.Next(); a != b {
			t.Fatalf("diverged at step %d: %v != %v", i, a, b)
		}
	}
}

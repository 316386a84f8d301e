package mh

import (
	"math/rand"
	"testing"
)

func TestAnnealingScheduleExponentialCools(t *testing.T) {
	a := NewAnnealingSchedule(100, 0.9, CoolingExponential)
	prev := a.Temperature()
	for i := 0; i < 10; i++ {
		a.Update()
		if a.Temperature() >= prev {
			t.Fatalf("expected strictly decreasing temperature, got %v >= %v at step %d", a.Temperature(), prev, i)
		}
		prev = a.Temperature()
	}
}

func TestAnnealingScheduleLinearFloors(t *testing.T) {
	a := NewAnnealingSchedule(1, 10, CoolingLinear)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	if a.Temperature() < 0.01 {
		t.Fatalf("expected linear schedule to floor at 0.01, got %v", a.Temperature())
	}
}

func TestAnnealingScheduleReset(t *testing.T) {
	a := NewAnnealingSchedule(50, 0.5, CoolingExponential)
	a.Update()
	a.Update()
	a.Reset()
	if a.Temperature() != 50 {
		t.Fatalf("Reset() temperature = %v, want 50", a.Temperature())
	}
}

func TestAcceptanceProbabilityAlwaysAcceptsImprovement(t *testing.T) {
	if p := acceptanceProbability(Minimize, 10, 5, 1); p != 1.0 {
		t.Fatalf("improving move should have probability 1, got %v", p)
	}
	if p := acceptanceProbability(Maximize, 5, 10, 1); p != 1.0 {
		t.Fatalf("improving move (maximize) should have probability 1, got %v", p)
	}
}

func TestAcceptanceProbabilityDecreasesWithWorseningAndCooling(t *testing.T) {
	hot := acceptanceProbability(Minimize, 5, 10, 100)
	cold := acceptanceProbability(Minimize, 5, 10, 0.01)
	if cold >= hot {
		t.Fatalf("expected a colder temperature to reduce acceptance probability: hot=%v cold=%v", hot, cold)
	}
	if hot <= 0 || hot >= 1 {
		t.Fatalf("expected hot probability in (0,1), got %v", hot)
	}
}

func TestShouldAcceptDeterministic(t *testing.T) {
	rng1 := rand.New(rand.NewSource(33))
	rng2 := rand.New(rand.NewSource(33))
	for i := 0; i < 50; i++ {
		a := shouldAccept(Minimize, 5, 6, 2, rng1)
		b := shouldAccept(Minimize, 5, 6, 2, rng2)
		if a != b {
			t.Fatalf("shouldAccept diverged at draw %d given identical seeds", i)
		}
	}
}

package vmath

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	if got := Normalize(5, 0, 10, 0, 100); got != 50 {
		t.Errorf("Normalize midpoint = %v, want 50", got)
	}
	if got := Normalize(1, 0, 6, -3, 3); got != -2 {
		t.Errorf("Normalize(1, 0, 6, -3, 3) = %v, want -2", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(7.0 / 9.0); got != 0.8 {
		t.Errorf("Round1(7/9) = %v, want 0.8", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}

func TestRandBetweenInclusive(t *testing.T) {
	r := NewFastRand(99)
	for i := 0; i < 5000; i++ {
		v := r.RandBetween(25, 226)
		if v < 25 || v > 226 || v != math.Round(v) {
			t.Fatalf("RandBetween produced %v", v)
		}
	}
}

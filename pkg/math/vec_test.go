package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("zero Normalize() = %v, want zero", z)
	}
}

func TestVec2MinMax(t *testing.T) {
	a := Vec2{1, 5}
	b := Vec2{3, 2}
	if got, want := a.Min(b), (Vec2{1, 2}); got != want {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec2{3, 5}); got != want {
		t.Errorf("Max() = %v, want %v", got, want)
	}
}

func TestClampLerp(t *testing.T) {
	if got := Clamp(25, 1, 20); got != 20 {
		t.Errorf("Clamp(25) = %v, want 20", got)
	}
	if got := Clamp(-1, 1, 20); got != 1 {
		t.Errorf("Clamp(-1) = %v, want 1", got)
	}
	if got := Lerp(1, 20, 0.5); got != 10.5 {
		t.Errorf("Lerp(1, 20, 0.5) = %v, want 10.5", got)
	}
}

package utils

import (
	"math"
	"testing"

	"github.com/gonewx/vrroom/pkg/types"
)

// TestEaseOutSine 测试正弦缓出函数
func TestEaseOutSine(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, math.Sqrt2 / 2},
		{"终点", 1.0, 1.0},
		{"负数钳制", -0.3, 0.0},
		{"超出钳制", 1.7, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutSine(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutSine(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0.0, 0.0},
		{0.5, 0.875},
		{1.0, 1.0},
	}

	for _, tt := range tests {
		if result := EaseOutCubic(tt.input); math.Abs(result-tt.expected) > 0.001 {
			t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
		}
	}
}

// TestLerpColor 测试颜色插值（湿润度 25% 时的地面颜色）
func TestLerpColor(t *testing.T) {
	dry := types.Color{R: 0.4, G: 0.25, B: 0.1, A: 1}
	lush := types.Color{R: 0, G: 1, B: 0, A: 1}

	got := LerpColor(dry, lush, 0.25)
	want := types.Color{R: 0.3, G: 0.4375, B: 0.075, A: 1}
	if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 ||
		math.Abs(got.B-want.B) > 1e-9 || math.Abs(got.A-want.A) > 1e-9 {
		t.Errorf("LerpColor(0.25) = %+v, 期望 %+v", got, want)
	}

	if LerpColor(dry, lush, -1) != dry {
		t.Error("LerpColor should clamp t below 0 to the start color")
	}
	if LerpColor(dry, lush, 3) != lush {
		t.Error("LerpColor should clamp t above 1 to the end color")
	}
}

// TestClamp01 测试钳制
func TestClamp01(t *testing.T) {
	cases := map[float64]float64{-2: 0, 0: 0, 0.4: 0.4, 1: 1, 9: 1}
	for in, want := range cases {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", in, got, want)
		}
	}
}

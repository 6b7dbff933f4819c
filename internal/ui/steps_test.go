package ui

import (
	"testing"

	"mosaic/internal/core"
)

func TestNextInt(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 5, HasMin: true, HasMax: true}
	if got, ok := nextInt(ctrl, 3, 1); !ok || got != 4 {
		t.Fatalf("nextInt(3, +1) = %d,%v, expected 4,true", got, ok)
	}
	if _, ok := nextInt(ctrl, 5, 1); ok {
		t.Fatalf("nextInt(5, +1) should be rejected at the max")
	}
	if _, ok := nextInt(ctrl, 1, -1); ok {
		t.Fatalf("nextInt(1, -1) should be rejected at the min")
	}
	if _, ok := nextInt(ctrl, 3, 0); ok {
		t.Fatalf("zero direction should not adjust")
	}
	loose := core.ParameterControl{Type: core.ParamTypeInt}
	if got, _ := nextInt(loose, -7, -1); got != -8 {
		t.Fatalf("unbounded step = %d, expected -8", got)
	}
}

func TestNextFloat(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.05, Min: 0.2, Max: 2, HasMin: true, HasMax: true}
	if got, ok := nextFloat(ctrl, 0.7, 1); !ok || got < 0.7499 || got > 0.7501 {
		t.Fatalf("nextFloat(0.7, +1) = %v,%v, expected 0.75,true", got, ok)
	}
	if got, ok := nextFloat(ctrl, 0.22, -1); !ok || got != 0.2 {
		t.Fatalf("nextFloat(0.22, -1) = %v,%v, expected snap to 0.2", got, ok)
	}
	if _, ok := nextFloat(ctrl, 2, 1); ok {
		t.Fatalf("nextFloat at max should be rejected")
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		step float64
		v    float64
		want string
	}{
		{step: 0.05, v: 0.7, want: "0.70"},
		{step: 1, v: 10, want: "10.0"},
		{step: 0.005, v: 0.125, want: "0.125"},
		{step: 0, v: 3, want: "3.00"},
	}
	for _, tc := range cases {
		got := formatFloat(core.ParameterControl{Step: tc.step}, tc.v)
		if got != tc.want {
			t.Fatalf("formatFloat(step=%v, %v) = %q, expected %q", tc.step, tc.v, got, tc.want)
		}
	}
}

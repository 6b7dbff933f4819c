package ui

import (
	"math"
	"strconv"

	"mosaic/internal/core"
)

// nextInt applies one step of ctrl in direction to cur. ok is false when the
// result would leave the control's range or not change at all.
func nextInt(ctrl core.ParameterControl, cur, direction int) (int, bool) {
	if direction == 0 {
		return cur, false
	}
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := cur + direction*step
	if ctrl.HasMin && target < int(math.Round(ctrl.Min)) {
		return cur, false
	}
	if ctrl.HasMax && target > int(math.Round(ctrl.Max)) {
		return cur, false
	}
	return target, true
}

// nextFloat is nextInt for floating point controls. Targets past a bound
// snap to it unless the value already sits there.
func nextFloat(ctrl core.ParameterControl, cur float64, direction int) (float64, bool) {
	if direction == 0 {
		return cur, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := cur + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if math.Abs(target-cur) < 1e-9 {
		return cur, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

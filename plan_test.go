package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"diveplan/model"
)

func TestPrintResult(t *testing.T) {
	result := model.PlanResult{
		Tanks: []model.TankResult{
			{Label: "1. Air/15/200", Size: 15, StartPressure: 200, EndPressure: 123, Consumed: 77, Reserve: 76, PercentsRemaining: 62, HasReserve: true},
			{Label: "2. EAN50/11/200", Size: 11, StartPressure: 200, EndPressure: 170, Consumed: 30, Reserve: 180},
		},
		MaxTime:       19,
		TimeToSurface: 10,
		AverageDepth:  20.39,
		Duration:      19.17,
		Events: []model.EventDto{
			{Type: "gasSwitch", Message: "Switch to EAN50", Depth: 21, Time: 14},
		},
	}

	var out bytes.Buffer
	assert.NoError(t, printResult(&out, result))

	text := out.String()
	assert.Contains(t, text, "1. Air/15/200")
	assert.Contains(t, text, "3,000")
	assert.Contains(t, text, "180 !")
	assert.Contains(t, text, "max bottom time 19 min, time to surface 10 min")
	assert.Contains(t, text, "average depth 20.39 m")
	assert.Contains(t, text, "Switch to EAN50")
}

package sensor_test

import (
	"testing"

	"github.com/sghaida/principles/sensor"
	"github.com/stretchr/testify/assert"
)

func TestDecisionRules_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      float64
		wantAlert sensor.Category
		wantTemp  sensor.Category
	}{
		{name: "well above threshold", data: 40, wantAlert: sensor.CategoryAlert, wantTemp: sensor.CategoryHot},
		{name: "just above threshold", data: 25.0001, wantAlert: sensor.CategoryAlert, wantTemp: sensor.CategoryHot},
		{name: "exactly threshold", data: 25, wantAlert: sensor.CategoryOK, wantTemp: sensor.CategoryCold},
		{name: "below threshold", data: 10, wantAlert: sensor.CategoryOK, wantTemp: sensor.CategoryCold},
		{name: "negative", data: -3.5, wantAlert: sensor.CategoryOK, wantTemp: sensor.CategoryCold},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := sensor.Reading{ID: "x", Data: tc.data}
			assert.Equal(t, tc.wantAlert, sensor.AlertOrOK(r))
			assert.Equal(t, tc.wantTemp, sensor.HotOrCold(r))
			assert.Equal(t, tc.data > 25, sensor.Exceeds(r))
		})
	}
}

func TestReading_IsZeroAndString(t *testing.T) {
	t.Parallel()

	assert.True(t, sensor.Reading{}.IsZero())
	assert.False(t, sensor.Reading{ID: "a"}.IsZero())
	assert.False(t, sensor.Reading{Data: 1}.IsZero())

	assert.Equal(t, "acdc1: 40", sensor.Reading{ID: "acdc1", Data: 40}.String())
	assert.Equal(t, "acdc1: 12.5", sensor.Reading{ID: "acdc1", Data: 12.5}.String())
}

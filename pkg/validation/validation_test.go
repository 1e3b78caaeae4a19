package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		lat     float64
		lon     float64
		success bool
	}{
		{"Plain", "37.8651,-119.5383", 37.8651, -119.5383, true},
		{"Spaces", " 11.2588 , 75.7804 ", 11.2588, 75.7804, true},
		{"Integers", "0,0", 0, 0, true},
		{"Bounds", "-90,180", -90, 180, true},
		{"LatitudeOutOfRange", "91,10", 0, 0, false},
		{"LongitudeOutOfRange", "10,-181", 0, 0, false},
		{"Name", "Yosemite", 0, 0, false},
		{"SingleNumber", "42", 0, 0, false},
		{"Empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, ok := ParseCoordinates(tt.input)
			assert.Equal(t, tt.success, ok)
			assert.Equal(t, tt.lat, lat)
			assert.Equal(t, tt.lon, lon)
		})
	}
}

func TestLooksLikeCoordinates(t *testing.T) {
	assert.True(t, LooksLikeCoordinates("95,200"))
	assert.False(t, LooksLikeCoordinates("Paris, France"))
}

func TestTrimAndValidate(t *testing.T) {
	value, ok := TrimAndValidate("  hiking  ")
	assert.True(t, ok)
	assert.Equal(t, "hiking", value)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
}

func TestStruct(t *testing.T) {
	type sample struct {
		Name string  `validate:"required"`
		Lat  float64 `validate:"min=-90,max=90"`
	}

	require.NoError(t, Struct(sample{Name: "x", Lat: 10}))

	err := Struct(sample{Lat: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name failed on 'required'")
	assert.Contains(t, err.Error(), "Lat failed on 'max'")
}

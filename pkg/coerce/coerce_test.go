package coerce

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsString(t *testing.T) {
	assert.Equal(t, "", AsString(nil))
	assert.Equal(t, "Recepção", AsString("Recepção"))
	assert.Equal(t, "Hall", AsString([]byte("Hall")))
	assert.Equal(t, "42", AsString(int64(42)))
	assert.Equal(t, "", AsString((*string)(nil)))
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{name: "nil", input: nil, expected: 0},
		{name: "int64", input: int64(4698), expected: 4698},
		{name: "int32", input: int32(12), expected: 12},
		{name: "float rounds half to even down", input: 2.5, expected: 2},
		{name: "float rounds half to even up", input: 3.5, expected: 4},
		{name: "float rounds nearest", input: 49.6, expected: 50},
		{name: "decimal bytes", input: []byte("50.00"), expected: 50},
		{name: "numeric string", input: " 260 ", expected: 260},
		{name: "garbage", input: "abc", expected: 0},
		{name: "bool", input: true, expected: 1},
		{name: "float above int range", input: 1e300, expected: 0},
		{name: "float below int range", input: -1e300, expected: 0},
		{name: "numeric string above int range", input: "9.3e18", expected: 0},
		{name: "infinity", input: math.Inf(1), expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AsInt(tt.input))
		})
	}
}

func TestAsFloat(t *testing.T) {
	assert.Equal(t, 0.0, AsFloat(nil))
	assert.Equal(t, 1250.75, AsFloat([]byte("1250.75")))
	assert.Equal(t, 3.0, AsFloat(int64(3)))
	assert.Equal(t, 0.0, AsFloat("n/a"))
}

func TestAsTime(t *testing.T) {
	ts := time.Date(2019, 3, 4, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, ts, AsTime(ts))
	assert.True(t, AsTime(nil).IsZero())
	assert.True(t, AsTime("").IsZero())
	assert.True(t, AsTime("not a date").IsZero())
	assert.Equal(t, 2019, AsTime("2019-03-04").Year())
}

func TestAsClock(t *testing.T) {
	assert.Nil(t, AsClock(nil))
	assert.Nil(t, AsClock(""))
	assert.Nil(t, AsClock("later"))

	d := AsClock(time.Date(1, 1, 1, 7, 30, 0, 0, time.UTC))
	require.NotNil(t, d)
	assert.Equal(t, 7*time.Hour+30*time.Minute, *d)

	d = AsClock("18:15")
	require.NotNil(t, d)
	assert.Equal(t, 18*time.Hour+15*time.Minute, *d)

	d = AsClock("06:00:30")
	require.NotNil(t, d)
	assert.Equal(t, 6*time.Hour+30*time.Second, *d)

	d = AsClock(90 * time.Minute)
	require.NotNil(t, d)
	assert.Equal(t, 90*time.Minute, *d)
}

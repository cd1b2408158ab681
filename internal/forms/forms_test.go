package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRegNr(t *testing.T) {
	assert.Equal(t, "AB12345", NormalizeRegNr("  ab12345 "))
	assert.Equal(t, "", NormalizeRegNr("   "))
}

func TestOptionalFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *float64
		wantErr bool
	}{
		{name: "empty is absent", in: "", want: nil},
		{name: "blank is absent", in: "   ", want: nil},
		{name: "plain number", in: "150000", want: floatPtr(150000)},
		{name: "decimal", in: "99.5", want: floatPtr(99.5)},
		{name: "garbage", in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OptionalFloat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatOrZero(t *testing.T) {
	got, err := FloatOrZero("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = FloatOrZero("500")
	require.NoError(t, err)
	assert.Equal(t, 500.0, got)

	_, err = FloatOrZero("five hundred")
	require.Error(t, err)
}

func TestIntOrZero(t *testing.T) {
	got, err := IntOrZero("")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = IntOrZero("10000")
	require.NoError(t, err)
	assert.Equal(t, 10000, got)

	_, err = IntOrZero("10000.5")
	require.Error(t, err)
}

func TestDateOrToday(t *testing.T) {
	got, err := DateOrToday("2024-03-17")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), got)

	got, err = DateOrToday("")
	require.NoError(t, err)
	now := time.Now().UTC()
	assert.Equal(t, now.Year(), got.Year())
	assert.Equal(t, now.YearDay(), got.YearDay())

	_, err = DateOrToday("17.03.2024")
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "service", Default("", "service"))
	assert.Equal(t, "service", Default("   ", "service"))
	assert.Equal(t, "repair", Default(" repair ", "service"))
}

func floatPtr(f float64) *float64 { return &f }

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		format      ImageFormat
		wantErr     bool
		wantMessage string
	}{
		{contentType: "image/png", format: FormatPNG},
		{contentType: "image/jpeg", format: FormatJPEG},
		{contentType: "image/jpg", format: FormatJPEG},
		{contentType: "image/gif", wantErr: true, wantMessage: "Solo se permiten archivos PNG y JPG"},
		{contentType: "text/plain", wantErr: true, wantMessage: "El archivo debe ser una imagen"},
		{contentType: "", wantErr: true, wantMessage: "El archivo debe ser una imagen"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			format, err := FormatFromContentType(tt.contentType)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, ReasonInvalidMediaType, verr.Reason)
				assert.Equal(t, tt.wantMessage, verr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestSplitSpecResolve_ByPixel(t *testing.T) {
	for _, row := range []int{1, 25, 99} {
		got, err := ByPixel(row).Resolve(100)
		require.NoError(t, err)
		assert.Equal(t, row, got)
	}
}

func TestSplitSpecResolve_ByPixelOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		pixel  int
		height int
	}{
		{name: "negative", pixel: -1, height: 100},
		{name: "equal to height", pixel: 50, height: 50},
		{name: "beyond height", pixel: 200, height: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ByPixel(tt.pixel).Resolve(tt.height)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, ReasonOutOfRange, verr.Reason)
			assert.Contains(t, verr.Message, "entre 0 y 49")
		})
	}
}

func TestSplitSpecResolve_PixelZeroIsDegenerate(t *testing.T) {
	// Row 0 passes the range check but would leave an empty header.
	_, err := ByPixel(0).Resolve(100)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonDegenerateSplit, verr.Reason)
}

func TestSplitSpecResolve_ByPercentage(t *testing.T) {
	tests := []struct {
		percentage float64
		height     int
		want       int
	}{
		{percentage: 0.5, height: 100, want: 50},
		{percentage: 0.3, height: 100, want: 30},
		{percentage: 0.33, height: 100, want: 33},
		{percentage: 0.5, height: 101, want: 50},
		{percentage: 0.999, height: 100, want: 99},
	}

	for _, tt := range tests {
		got, err := ByPercentage(tt.percentage).Resolve(tt.height)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "percentage %v of height %d", tt.percentage, tt.height)
	}
}

func TestSplitSpecResolve_PercentageOutOfRange(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1, 2.0} {
		_, err := ByPercentage(p).Resolve(100)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, ReasonOutOfRange, verr.Reason)
		assert.Equal(t, "El porcentaje debe estar entre 0.0 y 1.0", verr.Message)
	}
}

func TestSplitSpecResolve_PercentageBoundsAreDegenerate(t *testing.T) {
	// 0.0 and 1.0 are inside the accepted range but always produce an
	// empty slice, so they must fail as degenerate, not out of range.
	for _, p := range []float64{0.0, 1.0} {
		_, err := ByPercentage(p).Resolve(100)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, ReasonDegenerateSplit, verr.Reason)
	}
}

func TestSplitSpecResolve_Default(t *testing.T) {
	row, err := DefaultSplit().Resolve(200)
	require.NoError(t, err)
	assert.Equal(t, 100, row)

	// Odd heights floor
	row, err = DefaultSplit().Resolve(101)
	require.NoError(t, err)
	assert.Equal(t, 50, row)
}

func TestSplitSpecResolve_DefaultOnOneRowImage(t *testing.T) {
	// height/2 == 0, impossible to produce two non-empty slices
	_, err := DefaultSplit().Resolve(1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ReasonDegenerateSplit, verr.Reason)
}

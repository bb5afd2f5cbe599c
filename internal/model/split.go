package model

import (
	"fmt"
	"strings"
)

// ImageFormat is the encoding format used for both output slices.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
)

// Ext returns the file extension used for archive entries.
func (f ImageFormat) Ext() string {
	return string(f)
}

// acceptedTypes maps declared content types to the output format.
// Validation is on the declared type only; mismatched content surfaces
// later as a decode error.
var acceptedTypes = map[string]ImageFormat{
	"image/png":  FormatPNG,
	"image/jpeg": FormatJPEG,
	"image/jpg":  FormatJPEG,
}

// FormatFromContentType validates the declared content type and returns
// the format both slices will be encoded in.
func FormatFromContentType(contentType string) (ImageFormat, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", NewValidationError(ReasonInvalidMediaType, "El archivo debe ser una imagen")
	}
	format, ok := acceptedTypes[contentType]
	if !ok {
		return "", NewValidationError(ReasonInvalidMediaType, "Solo se permiten archivos PNG y JPG")
	}
	return format, nil
}

// ImageUpload is the raw payload of one request.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// SplitMode discriminates how the split row is chosen.
type SplitMode int

const (
	// SplitDefault divides the image at half its height.
	SplitDefault SplitMode = iota
	// SplitByPixel divides at an explicit row.
	SplitByPixel
	// SplitByPercentage divides at a fraction of the height.
	SplitByPercentage
)

// SplitSpec is the resolved split configuration for one request.
// Pixel is meaningful only for SplitByPixel, Percentage only for
// SplitByPercentage.
type SplitSpec struct {
	Mode       SplitMode
	Pixel      int
	Percentage float64
}

// ByPixel splits at an explicit pixel row from the top.
func ByPixel(row int) SplitSpec {
	return SplitSpec{Mode: SplitByPixel, Pixel: row}
}

// ByPercentage splits at a fraction of the image height.
func ByPercentage(p float64) SplitSpec {
	return SplitSpec{Mode: SplitByPercentage, Percentage: p}
}

// DefaultSplit divides the image in half.
func DefaultSplit() SplitSpec {
	return SplitSpec{Mode: SplitDefault}
}

// Resolve computes the split row for an image of the given height.
// Both output slices must end up with at least one row, so a resolved
// row of 0 or height is rejected regardless of how it was produced.
func (s SplitSpec) Resolve(height int) (int, error) {
	var row int
	switch s.Mode {
	case SplitByPixel:
		if s.Pixel < 0 || s.Pixel >= height {
			return 0, NewValidationError(ReasonOutOfRange,
				fmt.Sprintf("El punto de división debe estar entre 0 y %d píxeles", height-1))
		}
		row = s.Pixel
	case SplitByPercentage:
		if s.Percentage < 0.0 || s.Percentage > 1.0 {
			return 0, NewValidationError(ReasonOutOfRange,
				"El porcentaje debe estar entre 0.0 y 1.0")
		}
		row = int(float64(height) * s.Percentage)
	default:
		row = height / 2
	}

	if row <= 0 || row >= height {
		return 0, NewValidationError(ReasonDegenerateSplit,
			"El punto de división no permite crear dos imágenes válidas")
	}
	return row, nil
}

// SplitResult holds both encoded slices before archiving.
type SplitResult struct {
	Header []byte
	Body   []byte
	Format ImageFormat
}

// Archive is the finished zip, ready to hand to the response writer.
type Archive struct {
	Data     []byte
	Filename string
}

package service

import (
	"archive/zip"
	"bytes"
	"context"
	"image"
	"path/filepath"
	"strings"

	"github.com/ezselltranscript-SG/cropLetter/internal/config"
	"github.com/ezselltranscript-SG/cropLetter/internal/model"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// SplitService divides an uploaded image into a header and a body slice
// and packages both into a zip archive. It holds no per-request state.
type SplitService struct {
	config *config.Config
	logger *zap.Logger
}

// NewSplitService creates a new split service
func NewSplitService(config *config.Config, logger *zap.Logger) *SplitService {
	return &SplitService{
		config: config,
		logger: logger,
	}
}

// Split validates the upload, resolves the split row, crops the image and
// returns the finished archive. Validation failures come back as
// *model.ValidationError, everything past validation as
// *model.ProcessingError.
func (s *SplitService) Split(ctx context.Context, upload model.ImageUpload, spec model.SplitSpec) (*model.Archive, error) {
	format, err := model.FormatFromContentType(upload.ContentType)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(upload.Data))
	if err != nil {
		return nil, model.NewProcessingError("failed to decode image", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	row, err := spec.Resolve(height)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Resolved split row",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("row", row),
	)

	// Header covers rows [0,row), body covers [row,height). imaging.Crop
	// copies the region into a fresh NRGBA regardless of the source color
	// model, so the original image is never mutated.
	header := imaging.Crop(img, image.Rect(0, 0, width, row))
	body := imaging.Crop(img, image.Rect(0, row, width, height))

	result := model.SplitResult{Format: format}
	if result.Header, err = encodeImage(header, format); err != nil {
		return nil, model.NewProcessingError("failed to encode header", err)
	}
	if result.Body, err = encodeImage(body, format); err != nil {
		return nil, model.NewProcessingError("failed to encode body", err)
	}

	data, err := buildArchive(result)
	if err != nil {
		return nil, model.NewProcessingError("failed to build archive", err)
	}

	return &model.Archive{
		Data:     data,
		Filename: archiveName(upload.Filename),
	}, nil
}

// encodeImage re-encodes a slice in the format the upload declared.
func encodeImage(img image.Image, format model.ImageFormat) ([]byte, error) {
	var buf bytes.Buffer
	encoding := imaging.PNG
	if format == model.FormatJPEG {
		encoding = imaging.JPEG
	}
	if err := imaging.Encode(&buf, img, encoding); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildArchive writes both slices into an in-memory deflate zip with the
// fixed entry names image_header.<ext> and image_body.<ext>.
func buildArchive(result model.SplitResult) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name string
		data []byte
	}{
		{"image_header." + result.Format.Ext(), result.Header},
		{"image_body." + result.Format.Ext(), result.Body},
	}
	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(entry.data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// archiveName derives the attachment filename from the uploaded name:
// base name minus extension, suffixed with _cropped.zip. Uploads without
// a filename fall back to image_cropped.zip.
func archiveName(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "image"
	}
	return base + "_cropped.zip"
}

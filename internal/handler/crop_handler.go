package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ezselltranscript-SG/cropLetter/internal/config"
	"github.com/ezselltranscript-SG/cropLetter/internal/model"
	"github.com/ezselltranscript-SG/cropLetter/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CropHandler handles image splitting HTTP requests
type CropHandler struct {
	splitService *service.SplitService
	config       *config.Config
	logger       *zap.Logger
}

// NewCropHandler creates a new crop handler
func NewCropHandler(splitService *service.SplitService, config *config.Config, logger *zap.Logger) *CropHandler {
	return &CropHandler{
		splitService: splitService,
		config:       config,
		logger:       logger,
	}
}

// cropForm carries the optional split coordinates. Pointer fields
// distinguish "absent" from zero values.
type cropForm struct {
	SplitPoint      *int     `form:"split_point"`
	SplitPercentage *float64 `form:"split_percentage"`
}

// splitSpecFrom picks the split mode for a request. When both fields are
// supplied the pixel value wins, matching the documented precedence.
func splitSpecFrom(form cropForm) model.SplitSpec {
	switch {
	case form.SplitPoint != nil:
		return model.ByPixel(*form.SplitPoint)
	case form.SplitPercentage != nil:
		return model.ByPercentage(*form.SplitPercentage)
	default:
		return model.DefaultSplit()
	}
}

// Crop splits an uploaded image into header and body slices
// POST /crop-image/
func (h *CropHandler) Crop(c *gin.Context) {
	// Parse multipart form
	if err := c.Request.ParseMultipartForm(h.config.Upload.MaxMultipartMemory); err != nil {
		h.logger.Error("Failed to parse multipart form", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No se pudo leer el formulario"})
		return
	}

	var form cropForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Error("Failed to bind request parameters", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Parámetros de división inválidos"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.logger.Error("Failed to get file from form", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Se requiere el campo 'file'"})
		return
	}
	defer file.Close()

	if header.Size > h.config.Upload.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": fmt.Sprintf("El archivo supera el tamaño máximo de %d bytes", h.config.Upload.MaxFileSize),
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error procesando la imagen: " + err.Error()})
		return
	}

	upload := model.ImageUpload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}

	archive, err := h.splitService.Split(c.Request.Context(), upload, splitSpecFrom(form))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", archive.Filename))
	c.Data(http.StatusOK, "application/zip", archive.Data)
}

// writeError maps the error taxonomy onto status codes: validation
// failures are the client's fault, everything else is ours.
func (h *CropHandler) writeError(c *gin.Context, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": verr.Message})
		return
	}

	var perr *model.ProcessingError
	if errors.As(err, &perr) {
		h.logger.Error("Failed to process image", zap.Error(perr))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error procesando la imagen: " + perr.Error()})
		return
	}

	h.logger.Error("Unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error procesando la imagen: " + err.Error()})
}

// Info describes the service, its parameters and usage examples
// GET /
func (h *CropHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Image Cropping Service",
		"endpoints": gin.H{
			"POST /crop-image/": "Divide una imagen en header y body",
		},
		"parameters": gin.H{
			"file":             "Imagen PNG o JPG (requerido)",
			"split_point":      "Punto de división en píxeles desde arriba (opcional)",
			"split_percentage": "Punto de división como porcentaje 0.0-1.0 (opcional)",
		},
		"examples": gin.H{
			"split_by_pixels":     "split_point=300 (divide a 300px desde arriba)",
			"split_by_percentage": "split_percentage=0.3 (divide al 30% de la altura)",
			"default":             "Sin parámetros = divide por la mitad",
		},
	})
}

package resumes

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shekharkalshetti/interview-pal-backend/internal/extract"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/server/respond"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume/:userId", h.get)
	rg.POST("/resume", h.upload)
	rg.DELETE("/resume/:userId", h.delete)
}

func (h *Handler) get(c *gin.Context) {
	userID := c.Param("userId")

	res, ok, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "Failed to fetch resume")
		return
	}
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found")
		return
	}

	respond.OK(c, gin.H{"data": toResponse(res)})
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file provided")
		return
	}

	userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "User ID is required")
		return
	}

	if fileHeader.Filename == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file selected")
		return
	}
	filename, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file selected")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !extract.Supported(contentType) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid file type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Unable to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Unable to read file")
		return
	}

	res, err := h.Svc.Upload(c.Request.Context(), userID, filename, contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "Failed to upload resume")
		}
		return
	}

	respond.OK(c, gin.H{
		"message": "Resume uploaded successfully",
		"data":    toResponse(res),
	})
}

func (h *Handler) delete(c *gin.Context) {
	userID := c.Param("userId")

	if err := h.Svc.Delete(c.Request.Context(), userID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "Failed to delete resume")
		return
	}

	respond.OK(c, gin.H{"message": "Resume deleted successfully"})
}

package interviews

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interview/generate-questions", h.generateQuestions)
	rg.POST("/interview/feedback", h.feedback)
}

type generateQuestionsRequest struct {
	UserID         string `json:"user_id"`
	JobDescription string `json:"job_description"`
}

func (h *Handler) generateQuestions(c *gin.Context) {
	var req generateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields: user_id and job_description")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields: user_id and job_description")
		return
	}

	resumeText, ok, err := h.Svc.ResumeContent(c.Request.Context(), req.UserID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "Failed to fetch resume")
		return
	}
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", fmt.Sprintf("No resume found for user_id: %s", req.UserID))
		return
	}

	batch, err := h.Svc.GenerateQuestions(c.Request.Context(), resumeText, req.JobDescription)
	if err != nil {
		code := "llm_error"
		if errors.Is(err, ErrMalformedResponse) {
			code = "llm_schema_mismatch"
		}
		respond.Error(c, http.StatusInternalServerError, code, "Failed to generate interview questions")
		return
	}

	respond.OK(c, batch)
}

type feedbackRequest struct {
	Questions      []Question        `json:"questions"`
	Answers        map[string]string `json:"answers"`
	JobDescription string            `json:"job_description"`
}

func (h *Handler) feedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields: answers and questions")
		return
	}
	// job_description may be empty; questions and answers must be present.
	if req.Questions == nil || req.Answers == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields: answers and questions")
		return
	}

	result, err := h.Svc.GenerateFeedback(c.Request.Context(), req.Questions, req.Answers, req.JobDescription)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "llm_error", "Failed to generate feedback")
		return
	}

	if result.Degraded != nil {
		respond.OK(c, result.Degraded)
		return
	}
	respond.OK(c, result.Report)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhvuq/planora/internal/model"
	"github.com/minhvuq/planora/internal/service"
	"github.com/minhvuq/planora/pkg/gemini"
)

// GeminiHandler handles the prompt relay endpoint
type GeminiHandler struct {
	relayService *service.RelayService
}

func NewGeminiHandler(relayService *service.RelayService) *GeminiHandler {
	return &GeminiHandler{relayService: relayService}
}

// Generate godoc
// @Summary Relay a prompt to the Gemini API
// @Description Forwards the caller's prompt to the generative-language API and returns the first candidate's text
// @Tags Gemini
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.PromptRequest true "Prompt request"
// @Success 200 {object} model.PromptResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/gemini [post]
func (h *GeminiHandler) Generate(c *gin.Context) {
	var req model.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Prompt is required"})
		return
	}

	message, err := h.relayService.Relay(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: relayErrorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, model.PromptResponse{Message: message})
}

// relayErrorMessage maps relay failures onto the client-facing error strings
func relayErrorMessage(err error) string {
	switch {
	case errors.Is(err, gemini.ErrNoAPIKey):
		return "API key not configured"
	case errors.Is(err, gemini.ErrMalformedResponse):
		return "Invalid response from Gemini API"
	default:
		return "Failed to communicate with Gemini API"
	}
}

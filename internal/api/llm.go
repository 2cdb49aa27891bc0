package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/service"
	"github.com/fridgechef/backend/internal/types"
)

// LLMHandler serves the recipe-generation proxy.
type LLMHandler struct {
	llm *service.LLMService
}

func NewLLMHandler(llm *service.LLMService) *LLMHandler {
	return &LLMHandler{llm: llm}
}

// Generate handles POST /recipes: forward the prompt to the upstream
// provider and reshape its response into {choices: [{text}]}.
func (h *LLMHandler) Generate(c *gin.Context) {
	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, apperrors.NewValidationError().Add("body", "invalid request body"))
		return
	}

	text, err := h.llm.Generate(c.Request.Context(), req)
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, types.GenerateResponse{
		Choices: []types.GenerateChoice{{Text: text}},
	})
}

package handlers

import (
	"net/http"

	"talentscout_backend/internal/services"
	"talentscout_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	*BaseHandler
	aiService services.AIService
}

func NewAIHandler(base *BaseHandler, aiService services.AIService) *AIHandler {
	return &AIHandler{
		BaseHandler: base,
		aiService:   aiService,
	}
}

func (h *AIHandler) RegisterRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	ai := rg.Group("/ai", guard)
	{
		ai.GET("/key", h.GetKey)
		ai.POST("/score-resume", h.ScoreResume)
	}
}

func (h *AIHandler) GetKey(c *gin.Context) {
	user, ok := h.RequireCurrentUser(c)
	if !ok {
		return
	}

	key, err := h.aiService.IssueKey(h.GetDB(c), user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, key)
}

func (h *AIHandler) ScoreResume(c *gin.Context) {
	if _, ok := h.RequireCurrentUser(c); !ok {
		return
	}

	var req dto.ResumeScoreRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.aiService.ScoreResume(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

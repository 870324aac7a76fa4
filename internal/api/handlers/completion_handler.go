package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/chatrelay/internal/services"
	"github.com/yoockh/chatrelay/internal/utils"
)

type CompletionHandler struct {
	svc services.CompletionService
}

func NewCompletionHandler(svc services.CompletionService) *CompletionHandler {
	return &CompletionHandler{svc: svc}
}

type CompletionRequest struct {
	Prompt      string   `json:"prompt" binding:"required"`
	Temperature *float64 `json:"temperature"`
}

func (h *CompletionHandler) Complete(c *gin.Context) {
	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeValidation, "CompletionHandler.Complete", "invalid request body", err))
		return
	}

	res, err := h.svc.Complete(c.Request.Context(), req.Prompt, req.Temperature)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

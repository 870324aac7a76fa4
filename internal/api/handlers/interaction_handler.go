package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/chatrelay/internal/services"
	"github.com/yoockh/chatrelay/internal/utils"
)

type InteractionHandler struct {
	svc services.RecorderService
}

func NewInteractionHandler(svc services.RecorderService) *InteractionHandler {
	return &InteractionHandler{svc: svc}
}

type LogRequest struct {
	Email             string `json:"email" binding:"required"`
	TotalInputTokens  *int64 `json:"total_input_tokens" binding:"required,gte=0"`
	TotalOutputTokens *int64 `json:"total_output_tokens" binding:"required,gte=0"`
}

type LogResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *InteractionHandler) Log(c *gin.Context) {
	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeValidation, "InteractionHandler.Log", "invalid request body", err))
		return
	}

	_, err := h.svc.Record(c.Request.Context(), services.RecordInput{
		Email:             req.Email,
		TotalInputTokens:  req.TotalInputTokens,
		TotalOutputTokens: req.TotalOutputTokens,
		RequestID:         requestID(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, LogResponse{Status: "success", Message: "Log entry created"})
}

package notification

import (
	"net/http"

	"github.com/nuriddinovv/furniAsia/internal/pkg/apperror"
	"github.com/nuriddinovv/furniAsia/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) List(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	res, err := h.service.List(ctx, cardCode)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) MarkRead(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	if err := h.service.MarkRead(ctx, cardCode, ctx.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, nil, "Notification marked as read")
}

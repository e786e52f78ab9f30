package profile

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

func (h *Handler) Get(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	res, err := h.service.Get(ctx, cardCode)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) QR(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	res, err := h.service.QR(ctx, cardCode)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) History(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	res, err := h.service.History(ctx, cardCode)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) SendFeedback(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")
	phone := ctx.GetString("phone")

	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidFeedback)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if err := h.service.SendFeedback(ctx, cardCode, phone, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, nil, "Feedback received")
}

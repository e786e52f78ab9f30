package order

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

func (h *Handler) Checkout(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")
	phone := ctx.GetString("phone")

	var req CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(ErrInvalidDeliveryMethod)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.Checkout(ctx, cardCode, phone, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, res, "Order placed")
}

func (h *Handler) List(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")
	activeOnly := ctx.Query("isActive") == "true"

	res, err := h.service.List(ctx, cardCode, activeOnly)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) Detail(ctx *gin.Context) {
	docEntry, err := parseDocEntry(ctx.Param("docEntry"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.Detail(ctx, docEntry)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

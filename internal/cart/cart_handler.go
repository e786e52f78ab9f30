package cart

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

func (h *Handler) Detail(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	res, err := h.service.Detail(ctx, cardCode)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) Count(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	count, err := h.service.Count(ctx, cardCode)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, CartCountResponse{Count: count}, nil)
}

func (h *Handler) AddItem(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")
	itemCode := ctx.Param("itemCode")

	res, err := h.service.AddItem(ctx, cardCode, itemCode)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusCreated, res, nil)
}

func (h *Handler) Increment(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	res, err := h.service.Increment(ctx, cardCode, ctx.Param("itemCode"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) Decrement(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	res, err := h.service.Decrement(ctx, cardCode, ctx.Param("itemCode"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) SetQuantity(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	var req SetQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := h.service.SetQuantity(ctx, cardCode, ctx.Param("itemCode"), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) RemoveItem(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	res, err := h.service.RemoveItem(ctx, cardCode, ctx.Param("itemCode"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) SetDeliveryLocation(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	var req SetDeliveryLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	if err := h.service.SetDeliveryLocation(ctx, cardCode, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, nil, nil)
}

func (h *Handler) Clear(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	if err := h.service.Clear(ctx, cardCode); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, nil, nil)
}

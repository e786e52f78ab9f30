package catalog

import (
	"net/http"
	"strconv"

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

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	query := ctx.Query("q")

	res, err := h.service.List(ctx, cardCode, page, query)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, res, nil)
}

func (h *Handler) Detail(ctx *gin.Context) {
	cardCode := ctx.GetString("card_code_validated")

	item, err := h.service.GetItem(ctx, cardCode, ctx.Param("itemCode"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, item, nil)
}

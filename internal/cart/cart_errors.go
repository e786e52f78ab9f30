package cart

import (
	"net/http"

	"github.com/nuriddinovv/furniAsia/internal/pkg/apperror"
)

var (
	ErrLineNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not in cart",
		http.StatusNotFound,
	)

	ErrMaxQuantityReached = apperror.New(
		apperror.CodeConflict,
		"Stock limit reached for this item",
		http.StatusConflict,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid quantity",
		http.StatusBadRequest,
	)

	ErrInvalidLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid delivery location",
		http.StatusBadRequest,
	)

	ErrCartStoreFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to access cart storage",
		http.StatusInternalServerError,
	)
)

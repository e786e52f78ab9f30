package profile

import (
	"net/http"

	"github.com/nuriddinovv/furniAsia/internal/pkg/apperror"
)

var (
	ErrInvalidFeedback = apperror.New(
		apperror.CodeInvalidInput,
		"Feedback type or text is invalid",
		http.StatusBadRequest,
	)

	ErrProfileBlocked = apperror.New(
		apperror.CodeForbidden,
		"Loyalty card is blocked",
		http.StatusForbidden,
	)
)

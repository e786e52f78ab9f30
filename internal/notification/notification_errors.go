package notification

import (
	"net/http"

	"github.com/nuriddinovv/furniAsia/internal/pkg/apperror"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification not found",
		http.StatusNotFound,
	)

	ErrFeedStoreFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to access notification feed",
		http.StatusInternalServerError,
	)
)

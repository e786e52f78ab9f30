package erp

import (
	"net/http"

	"github.com/nuriddinovv/furniAsia/internal/pkg/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Item not found",
		http.StatusNotFound,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Loyalty card not found",
		http.StatusNotFound,
	)

	ErrUpstreamUnavailable = apperror.New(
		apperror.CodeUpstreamError,
		"Backend is unavailable, try again later",
		http.StatusBadGateway,
	)

	ErrUpstreamRejected = apperror.New(
		apperror.CodeUpstreamError,
		"Backend rejected the request",
		http.StatusBadGateway,
	)

	ErrLoginFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Backend login failed",
		http.StatusBadGateway,
	)
)

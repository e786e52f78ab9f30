package order

import (
	"net/http"

	"github.com/nuriddinovv/furniAsia/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"Cart is empty",
		http.StatusBadRequest,
	)

	ErrPickupShopRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Pickup shop must be selected",
		http.StatusBadRequest,
	)

	ErrDeliveryLocationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Delivery location must be selected",
		http.StatusBadRequest,
	)

	ErrInvalidDeliveryMethod = apperror.New(
		apperror.CodeInvalidInput,
		"Delivery method must be pickup or delivery",
		http.StatusBadRequest,
	)

	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order id",
		http.StatusBadRequest,
	)
)

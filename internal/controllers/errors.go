package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "office-inventory/pkg/errors"
)

// httpError maps a service error onto a status code. fallback is the
// message shown for unexpected failures.
func httpError(err error, fallback string, context map[string]interface{}) error {
	var invalid *apperrors.InvalidInputError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &invalid), errors.As(err, &validationErrs):
		return err
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NewHttpError(http.StatusNotFound, "Record not found", nil, context)
	case errors.Is(err, apperrors.ErrEquipmentIssued):
		return apperrors.NewHttpError(http.StatusConflict, apperrors.ErrEquipmentIssued.Error(), nil, context)
	case errors.Is(err, apperrors.ErrAlreadyIssued):
		return apperrors.NewHttpError(http.StatusConflict, apperrors.ErrAlreadyIssued.Error(), nil, context)
	case errors.Is(err, apperrors.ErrConfirmationInvalid):
		return apperrors.NewHttpError(http.StatusBadRequest, apperrors.ErrConfirmationInvalid.Error(), nil, context)
	case errors.Is(err, apperrors.ErrSectionMismatch):
		return apperrors.NewHttpError(http.StatusBadRequest, apperrors.ErrSectionMismatch.Error(), nil, context)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), nil, context)
	case errors.Is(err, apperrors.ErrUnauthorized):
		return apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Error(), nil, context)
	}
	return apperrors.NewHttpError(http.StatusInternalServerError, fallback, err, context)
}

func badRequest(message string, err error) error {
	return apperrors.NewHttpError(http.StatusBadRequest, message, err, nil)
}

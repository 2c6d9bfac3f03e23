package domain

import "errors"

// Error types with HTTP status codes
type AppError struct {
	Message string
	Code    int
}

func (e *AppError) Error() string {
	return e.Message
}

// Custom error types
var (
	ErrRFQNotFound = &AppError{
		Message: "rfq not found",
		Code:    404, // StatusNotFound
	}
	ErrSupplierNotFound = &AppError{
		Message: "supplier not found",
		Code:    404, // StatusNotFound
	}
	ErrSupplierNameRequired = &AppError{
		Message: "supplier name is required",
		Code:    400, // StatusBadRequest
	}
	ErrLineItemNotFound = &AppError{
		Message: "line item does not belong to this rfq",
		Code:    422, // StatusUnprocessableEntity
	}
	ErrUnitPriceInvalid = &AppError{
		Message: "unit price must be greater than zero",
		Code:    400, // StatusBadRequest
	}
	ErrFactTextRequired = &AppError{
		Message: "fact text is required",
		Code:    400, // StatusBadRequest
	}
	ErrInvalidID = &AppError{
		Message: "invalid id",
		Code:    400, // StatusBadRequest
	}
)

// Standard error types for repositories
var (
	ErrNotFound = errors.New("not found")
)

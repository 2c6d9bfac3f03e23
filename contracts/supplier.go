// Package contracts contains request and response contracts for the RFQ desk HTTP API
package contracts

import (
	"time"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// CreateSupplierRequest represents the request payload for creating a supplier
type CreateSupplierRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=255"`
	Welfare       string   `json:"welfare,omitempty" validate:"omitempty,max=255"`
	Certs         string   `json:"certs,omitempty" validate:"omitempty,max=255"`
	Sizes         string   `json:"sizes,omitempty" validate:"omitempty,max=255"`
	PackFormats   string   `json:"pack_formats,omitempty" validate:"omitempty,max=255"`
	MOQTrays      *int     `json:"moq_trays,omitempty" validate:"omitempty,gte=0"`
	DeliveryDays  string   `json:"delivery_days,omitempty" validate:"omitempty,max=255"`
	DeliveryAreas string   `json:"delivery_areas,omitempty" validate:"omitempty,max=255"`
	Email         string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string   `json:"phone,omitempty" validate:"omitempty,max=50"`
	WhatsApp      string   `json:"whatsapp,omitempty" validate:"omitempty,max=50"`
	StoryPDFURL   string   `json:"story_pdf_url,omitempty" validate:"omitempty,url"`
	PriceBandLow  *float64 `json:"price_band_low,omitempty" validate:"omitempty,gte=0"`
	PriceBandHigh *float64 `json:"price_band_high,omitempty" validate:"omitempty,gte=0"`
	Notes         string   `json:"notes,omitempty" validate:"omitempty,max=4000"`
}

// UpdateSupplierRequest represents the request payload for updating a supplier
type UpdateSupplierRequest struct {
	ID            string   `json:"id" validate:"required,ulid"`
	Name          string   `json:"name" validate:"required,min=1,max=255"`
	Welfare       string   `json:"welfare,omitempty" validate:"omitempty,max=255"`
	Certs         string   `json:"certs,omitempty" validate:"omitempty,max=255"`
	Sizes         string   `json:"sizes,omitempty" validate:"omitempty,max=255"`
	PackFormats   string   `json:"pack_formats,omitempty" validate:"omitempty,max=255"`
	MOQTrays      *int     `json:"moq_trays,omitempty" validate:"omitempty,gte=0"`
	DeliveryDays  string   `json:"delivery_days,omitempty" validate:"omitempty,max=255"`
	DeliveryAreas string   `json:"delivery_areas,omitempty" validate:"omitempty,max=255"`
	Email         string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string   `json:"phone,omitempty" validate:"omitempty,max=50"`
	WhatsApp      string   `json:"whatsapp,omitempty" validate:"omitempty,max=50"`
	StoryPDFURL   string   `json:"story_pdf_url,omitempty" validate:"omitempty,url"`
	PriceBandLow  *float64 `json:"price_band_low,omitempty" validate:"omitempty,gte=0"`
	PriceBandHigh *float64 `json:"price_band_high,omitempty" validate:"omitempty,gte=0"`
	Notes         string   `json:"notes,omitempty" validate:"omitempty,max=4000"`
}

// GetSupplierByIDRequest represents the request for getting a supplier by ID
type GetSupplierByIDRequest struct {
	ID string `validate:"required,ulid"`
}

// SupplierResponse represents the response payload for a supplier
type SupplierResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Welfare       string   `json:"welfare"`
	Certs         string   `json:"certs"`
	Sizes         string   `json:"sizes"`
	PackFormats   string   `json:"pack_formats"`
	MOQTrays      *int     `json:"moq_trays,omitempty"`
	DeliveryDays  string   `json:"delivery_days"`
	DeliveryAreas string   `json:"delivery_areas"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	WhatsApp      string   `json:"whatsapp"`
	StoryPDFURL   string   `json:"story_pdf_url"`
	PriceBandLow  *float64 `json:"price_band_low,omitempty"`
	PriceBandHigh *float64 `json:"price_band_high,omitempty"`
	Notes         string   `json:"notes"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// SuppliersListResponse represents the response payload for listing suppliers
type SuppliersListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ImportSuppliersResponse represents the outcome of a CSV import
type ImportSuppliersResponse struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// CreateSupplierRequestToModel converts CreateSupplierRequest to model.Supplier
func CreateSupplierRequestToModel(req *CreateSupplierRequest) *model.Supplier {
	return &model.Supplier{
		Name:          req.Name,
		Welfare:       req.Welfare,
		Certs:         req.Certs,
		Sizes:         req.Sizes,
		PackFormats:   req.PackFormats,
		MOQTrays:      req.MOQTrays,
		DeliveryDays:  req.DeliveryDays,
		DeliveryAreas: req.DeliveryAreas,
		Email:         req.Email,
		Phone:         req.Phone,
		WhatsApp:      req.WhatsApp,
		StoryPDFURL:   req.StoryPDFURL,
		PriceBandLow:  req.PriceBandLow,
		PriceBandHigh: req.PriceBandHigh,
		Notes:         req.Notes,
	}
}

// UpdateSupplierRequestToModel converts UpdateSupplierRequest to model.Supplier
func UpdateSupplierRequestToModel(req *UpdateSupplierRequest) *model.Supplier {
	return &model.Supplier{
		ID:            req.ID,
		Name:          req.Name,
		Welfare:       req.Welfare,
		Certs:         req.Certs,
		Sizes:         req.Sizes,
		PackFormats:   req.PackFormats,
		MOQTrays:      req.MOQTrays,
		DeliveryDays:  req.DeliveryDays,
		DeliveryAreas: req.DeliveryAreas,
		Email:         req.Email,
		Phone:         req.Phone,
		WhatsApp:      req.WhatsApp,
		StoryPDFURL:   req.StoryPDFURL,
		PriceBandLow:  req.PriceBandLow,
		PriceBandHigh: req.PriceBandHigh,
		Notes:         req.Notes,
	}
}

// SupplierModelToResponse converts model.Supplier to SupplierResponse
func SupplierModelToResponse(supplier *model.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:            supplier.ID,
		Name:          supplier.Name,
		Welfare:       supplier.Welfare,
		Certs:         supplier.Certs,
		Sizes:         supplier.Sizes,
		PackFormats:   supplier.PackFormats,
		MOQTrays:      supplier.MOQTrays,
		DeliveryDays:  supplier.DeliveryDays,
		DeliveryAreas: supplier.DeliveryAreas,
		Email:         supplier.Email,
		Phone:         supplier.Phone,
		WhatsApp:      supplier.WhatsApp,
		StoryPDFURL:   supplier.StoryPDFURL,
		PriceBandLow:  supplier.PriceBandLow,
		PriceBandHigh: supplier.PriceBandHigh,
		Notes:         supplier.Notes,
		CreatedAt:     supplier.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     supplier.UpdatedAt.Format(time.RFC3339),
	}
}

// SupplierModelsToResponses converts a slice of model.Supplier to responses
func SupplierModelsToResponses(suppliers []*model.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		responses[i] = *SupplierModelToResponse(supplier)
	}
	return responses
}

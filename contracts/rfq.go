// Package contracts contains request and response contracts for the RFQ desk HTTP API
package contracts

import (
	"time"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// LineItemRequest represents one requested line within an RFQ payload
type LineItemRequest struct {
	Kind        string `json:"kind" validate:"required,min=1,max=20"`
	Size        string `json:"size" validate:"required,min=1,max=10"`
	Pack        string `json:"pack" validate:"required,min=1,max=10"`
	QtyWeek     int    `json:"qty_week" validate:"gte=0"`
	TargetPrice string `json:"target_price,omitempty" validate:"omitempty,max=20"`
}

// CreateRFQRequest represents the request payload for creating an RFQ.
// IntakeText is the buyer's raw message; areas, welfare, delivery windows
// and payment terms are extracted from it and the text itself is kept as
// the RFQ notes.
type CreateRFQRequest struct {
	ClientName string            `json:"client_name,omitempty" validate:"omitempty,max=255"`
	IntakeText string            `json:"intake_text,omitempty" validate:"omitempty,max=4000"`
	Items      []LineItemRequest `json:"items,omitempty" validate:"omitempty,dive"`
}

// DraftRFQRequest represents the request payload for an intake extraction preview
type DraftRFQRequest struct {
	IntakeText string `json:"intake_text" validate:"required,max=4000"`
}

// GetRFQByIDRequest represents the request for getting an RFQ by ID
type GetRFQByIDRequest struct {
	ID string `validate:"required,ulid"`
}

// GetSharedRFQRequest represents the request for the public share view
type GetSharedRFQRequest struct {
	ID    string `validate:"required,ulid"`
	Token string `validate:"required,min=1,max=64"`
}

// LineItemResponse represents the response payload for a line item
type LineItemResponse struct {
	Key         string `json:"key,omitempty"`
	Kind        string `json:"kind"`
	Size        string `json:"size"`
	Pack        string `json:"pack"`
	QtyWeek     int    `json:"qty_week"`
	TargetPrice string `json:"target_price,omitempty"`
}

// RFQResponse represents the response payload for an RFQ
type RFQResponse struct {
	ID              string             `json:"id"`
	ClientName      string             `json:"client_name"`
	Areas           string             `json:"areas"`
	Welfare         string             `json:"welfare"`
	DeliveryWindows string             `json:"delivery_windows"`
	PaymentTerms    string             `json:"payment_terms"`
	Notes           string             `json:"notes"`
	ShareToken      string             `json:"share_token"`
	Items           []LineItemResponse `json:"items"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

// DraftRFQResponse represents the extraction preview for an intake message
type DraftRFQResponse struct {
	Areas           string             `json:"areas"`
	Welfare         string             `json:"welfare"`
	DeliveryWindows string             `json:"delivery_windows"`
	PaymentTerms    string             `json:"payment_terms"`
	TargetPrice     string             `json:"target_price"`
	Items           []LineItemResponse `json:"items"`
}

// ShareRowResponse represents one proposed option on the client share view
type ShareRowResponse struct {
	SupplierName  string  `json:"supplier_name"`
	ItemLabel     string  `json:"item_label"`
	UnitPrice     float64 `json:"unit_price"`
	DeliveryCost  float64 `json:"delivery_cost"`
	LandedPerUnit float64 `json:"landed_per_unit"`
	StoryPDFURL   string  `json:"story_pdf_url,omitempty"`
}

// ShareResponse represents the trimmed client-facing view behind a share token
type ShareResponse struct {
	ClientName      string             `json:"client_name"`
	Areas           string             `json:"areas"`
	DeliveryWindows string             `json:"delivery_windows"`
	Items           []LineItemResponse `json:"items"`
	Rows            []ShareRowResponse `json:"rows"`
}

// CreateRFQRequestToModel converts CreateRFQRequest to model.RFQ
func CreateRFQRequestToModel(req *CreateRFQRequest) *model.RFQ {
	rfq := &model.RFQ{
		ClientName: req.ClientName,
		Notes:      req.IntakeText,
	}
	for i, item := range req.Items {
		rfq.Items = append(rfq.Items, model.LineItem{
			Position:    i,
			Kind:        item.Kind,
			Size:        item.Size,
			Pack:        item.Pack,
			QtyWeek:     item.QtyWeek,
			TargetPrice: item.TargetPrice,
		})
	}
	return rfq
}

// LineItemModelToResponse converts model.LineItem to LineItemResponse
func LineItemModelToResponse(item *model.LineItem) *LineItemResponse {
	return &LineItemResponse{
		Key:         item.ID,
		Kind:        item.Kind,
		Size:        item.Size,
		Pack:        item.Pack,
		QtyWeek:     item.QtyWeek,
		TargetPrice: item.TargetPrice,
	}
}

// LineItemModelsToResponses converts a slice of model.LineItem to responses
func LineItemModelsToResponses(items []model.LineItem) []LineItemResponse {
	responses := make([]LineItemResponse, len(items))
	for i := range items {
		responses[i] = *LineItemModelToResponse(&items[i])
	}
	return responses
}

// RFQModelToResponse converts model.RFQ to RFQResponse
func RFQModelToResponse(rfq *model.RFQ) *RFQResponse {
	return &RFQResponse{
		ID:              rfq.ID,
		ClientName:      rfq.ClientName,
		Areas:           rfq.Areas,
		Welfare:         rfq.Welfare,
		DeliveryWindows: rfq.DeliveryWindows,
		PaymentTerms:    rfq.PaymentTerms,
		Notes:           rfq.Notes,
		ShareToken:      rfq.ShareToken,
		Items:           LineItemModelsToResponses(rfq.Items),
		CreatedAt:       rfq.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       rfq.UpdatedAt.Format(time.RFC3339),
	}
}

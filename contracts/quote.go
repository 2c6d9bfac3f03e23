// Package contracts contains request and response contracts for the RFQ desk HTTP API
package contracts

import (
	"time"

	"github.com/eggmansigma/zuckmyeggs/domain/costing"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// AddQuoteRequest represents the request payload for recording a supplier quote.
// UnitPrice is GBP per tray or box; DeliveryCost is GBP per drop.
type AddQuoteRequest struct {
	SupplierID   string  `json:"supplier_id" validate:"required,ulid"`
	LineItemKey  string  `json:"line_item_key" validate:"required,ulid"`
	UnitPrice    float64 `json:"unit_price" validate:"required,gt=0"`
	DeliveryCost float64 `json:"delivery_cost" validate:"gte=0"`
	LeadTimeDays *int    `json:"lead_time_days,omitempty" validate:"omitempty,gte=0"`
	HoldWeeks    *int    `json:"hold_weeks,omitempty" validate:"omitempty,gte=0"`
	Remarks      string  `json:"remarks,omitempty" validate:"omitempty,max=2000"`
}

// QuoteResponse represents the response payload for a quote
type QuoteResponse struct {
	ID           string  `json:"id"`
	RFQID        string  `json:"rfq_id"`
	SupplierID   string  `json:"supplier_id"`
	SupplierName string  `json:"supplier_name,omitempty"`
	LineItemKey  string  `json:"line_item_key"`
	UnitPrice    float64 `json:"unit_price"`
	DeliveryCost float64 `json:"delivery_cost"`
	LeadTimeDays *int    `json:"lead_time_days,omitempty"`
	HoldWeeks    *int    `json:"hold_weeks,omitempty"`
	Remarks      string  `json:"remarks,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// QuotesListResponse represents the response payload for listing quotes
type QuotesListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// ComparisonRowResponse represents one quote normalised to a landed cost
type ComparisonRowResponse struct {
	SupplierName    string  `json:"supplier_name"`
	ItemLabel       string  `json:"item_label"`
	QtyWeek         int     `json:"qty_week"`
	UnitPrice       float64 `json:"unit_price"`
	DeliveryCost    float64 `json:"delivery_cost"`
	DeliveryPerUnit float64 `json:"delivery_per_unit"`
	LandedPerUnit   float64 `json:"landed_per_unit"`
	LeadTimeDays    *int    `json:"lead_time_days,omitempty"`
	HoldWeeks       *int    `json:"hold_weeks,omitempty"`
	Remarks         string  `json:"remarks,omitempty"`
	StoryPDFURL     string  `json:"story_pdf_url,omitempty"`
}

// ComparisonResponse represents the landed-cost comparison for an RFQ
type ComparisonResponse struct {
	RFQID string                  `json:"rfq_id"`
	Rows  []ComparisonRowResponse `json:"rows"`
}

// AddQuoteRequestToModel converts AddQuoteRequest to model.Quote
func AddQuoteRequestToModel(req *AddQuoteRequest, rfqID string) *model.Quote {
	return &model.Quote{
		RFQID:        rfqID,
		SupplierID:   req.SupplierID,
		LineItemKey:  req.LineItemKey,
		UnitPrice:    req.UnitPrice,
		DeliveryCost: req.DeliveryCost,
		LeadTimeDays: req.LeadTimeDays,
		HoldWeeks:    req.HoldWeeks,
		Remarks:      req.Remarks,
	}
}

// QuoteModelToResponse converts model.Quote to QuoteResponse
func QuoteModelToResponse(quote *model.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:           quote.ID,
		RFQID:        quote.RFQID,
		SupplierID:   quote.SupplierID,
		SupplierName: quote.Supplier.Name,
		LineItemKey:  quote.LineItemKey,
		UnitPrice:    quote.UnitPrice,
		DeliveryCost: quote.DeliveryCost,
		LeadTimeDays: quote.LeadTimeDays,
		HoldWeeks:    quote.HoldWeeks,
		Remarks:      quote.Remarks,
		CreatedAt:    quote.CreatedAt.Format(time.RFC3339),
	}
}

// QuoteModelsToResponses converts a slice of model.Quote to responses
func QuoteModelsToResponses(quotes []*model.Quote) []QuoteResponse {
	responses := make([]QuoteResponse, len(quotes))
	for i, quote := range quotes {
		responses[i] = *QuoteModelToResponse(quote)
	}
	return responses
}

// CostingRowToResponse converts costing.Row to ComparisonRowResponse
func CostingRowToResponse(row costing.Row) ComparisonRowResponse {
	return ComparisonRowResponse{
		SupplierName:    row.SupplierName,
		ItemLabel:       row.ItemLabel,
		QtyWeek:         row.QtyWeek,
		UnitPrice:       row.UnitPrice,
		DeliveryCost:    row.DeliveryCost,
		DeliveryPerUnit: row.DeliveryPerUnit,
		LandedPerUnit:   row.LandedPerUnit,
		LeadTimeDays:    row.LeadTimeDays,
		HoldWeeks:       row.HoldWeeks,
		Remarks:         row.Remarks,
		StoryPDFURL:     row.StoryPDFURL,
	}
}

// CostingRowsToResponses converts a slice of costing.Row to responses
func CostingRowsToResponses(rows []costing.Row) []ComparisonRowResponse {
	responses := make([]ComparisonRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = CostingRowToResponse(row)
	}
	return responses
}

// CostingRowToShareRow converts costing.Row to the trimmed share view row
func CostingRowToShareRow(row costing.Row) ShareRowResponse {
	return ShareRowResponse{
		SupplierName:  row.SupplierName,
		ItemLabel:     row.ItemLabel,
		UnitPrice:     row.UnitPrice,
		DeliveryCost:  row.DeliveryCost,
		LandedPerUnit: row.LandedPerUnit,
		StoryPDFURL:   row.StoryPDFURL,
	}
}

// CostingRowsToShareRows converts a slice of costing.Row to share view rows
func CostingRowsToShareRows(rows []costing.Row) []ShareRowResponse {
	responses := make([]ShareRowResponse, len(rows))
	for i, row := range rows {
		responses[i] = CostingRowToShareRow(row)
	}
	return responses
}

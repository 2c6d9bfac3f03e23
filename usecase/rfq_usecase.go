// Package usecase contains the business logic of the egg desk
package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/extract"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// RFQUseCase defines the interface for rfq-related business operations
type RFQUseCase interface {
	// CreateRFQ persists a new rfq. The intake text arrives as the rfq's
	// notes; areas, welfare, delivery windows and payment terms are
	// extracted from it before saving.
	CreateRFQ(ctx context.Context, rfq *model.RFQ) error
	// GetRFQByID retrieves an rfq with its line items
	GetRFQByID(ctx context.Context, id string) (*model.RFQ, error)
	// GetSharedRFQ retrieves an rfq for the public share view; a wrong
	// token behaves like a missing rfq
	GetSharedRFQ(ctx context.Context, id, token string) (*model.RFQ, error)
	// DraftRFQ previews the extraction for an intake message without
	// persisting anything. The draft carries one default line item with
	// the extracted target price.
	DraftRFQ(ctx context.Context, text string) (*model.RFQ, error)
	// ExportCSV renders an rfq as a CSV attachment and returns the bytes
	// with a suggested filename
	ExportCSV(ctx context.Context, id string) ([]byte, string, error)
}

// rfqUseCase implements the RFQUseCase interface
type rfqUseCase struct {
	// rfqRepo is the repository interface for rfq database operations
	rfqRepo repository.RFQ
	// extractor pulls structured meta out of free intake text
	extractor extract.Extractor
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewRFQUseCase creates a new instance of rfqUseCase
func NewRFQUseCase(rfqRepo repository.RFQ, extractor extract.Extractor, appLogger logger.LoggerInterface) RFQUseCase {
	return &rfqUseCase{
		rfqRepo:   rfqRepo,
		extractor: extractor,
		logger:    appLogger,
	}
}

// CreateRFQ persists a new rfq with extracted meta and normalized line items
func (uc *rfqUseCase) CreateRFQ(ctx context.Context, rfq *model.RFQ) error {
	uc.logger.InfoContext(ctx, "Creating rfq in usecase", "client", rfq.ClientName, "items", len(rfq.Items))

	rfq.ClientName = strings.TrimSpace(rfq.ClientName)

	meta := uc.extractor.Extract(rfq.Notes)
	rfq.Areas = strings.Join(meta.Areas, ",")
	rfq.Welfare = meta.Welfare
	rfq.DeliveryWindows = meta.DeliveryWindows
	rfq.PaymentTerms = meta.PaymentTerms
	rfq.ShareToken = uuid.NewString()

	for i := range rfq.Items {
		item := &rfq.Items[i]
		item.Position = i
		item.Kind = strings.ToLower(strings.TrimSpace(item.Kind))
		item.Size = strings.ToUpper(strings.TrimSpace(item.Size))
		item.Pack = strings.ToLower(strings.TrimSpace(item.Pack))
		item.TargetPrice = strings.TrimSpace(item.TargetPrice)
	}

	if err := uc.rfqRepo.Create(ctx, rfq); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create rfq in repository", "client", rfq.ClientName, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "RFQ created successfully in usecase", "id", rfq.ID, "areas", rfq.Areas)
	return nil
}

// GetRFQByID retrieves an rfq with its line items
func (uc *rfqUseCase) GetRFQByID(ctx context.Context, id string) (*model.RFQ, error) {
	uc.logger.InfoContext(ctx, "Getting rfq by ID in usecase", "id", id)
	if id == "" {
		uc.logger.WarnContext(ctx, "Invalid rfq ID provided", "id", id)
		return nil, domain.ErrInvalidID
	}

	rfq, err := uc.rfqRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "RFQ not found", "id", id)
			return nil, domain.ErrRFQNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting rfq by ID", "id", id, "error", err)
		return nil, fmt.Errorf("error getting rfq: %w", err)
	}

	uc.logger.InfoContext(ctx, "RFQ retrieved by ID in usecase", "id", rfq.ID)
	return rfq, nil
}

// GetSharedRFQ retrieves an rfq for the public share view
func (uc *rfqUseCase) GetSharedRFQ(ctx context.Context, id, token string) (*model.RFQ, error) {
	uc.logger.InfoContext(ctx, "Getting shared rfq in usecase", "id", id)
	if id == "" || token == "" {
		uc.logger.WarnContext(ctx, "Invalid share reference provided", "id", id)
		return nil, domain.ErrInvalidID
	}

	rfq, err := uc.rfqRepo.GetByShareToken(ctx, id, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Shared rfq not found or token mismatch", "id", id)
			return nil, domain.ErrRFQNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting shared rfq", "id", id, "error", err)
		return nil, fmt.Errorf("error getting shared rfq: %w", err)
	}

	uc.logger.InfoContext(ctx, "Shared rfq retrieved in usecase", "id", rfq.ID)
	return rfq, nil
}

// DraftRFQ previews the extraction for an intake message
func (uc *rfqUseCase) DraftRFQ(ctx context.Context, text string) (*model.RFQ, error) {
	uc.logger.InfoContext(ctx, "Drafting rfq from intake text", "length", len(text))

	meta := uc.extractor.Extract(text)
	draft := &model.RFQ{
		Areas:           strings.Join(meta.Areas, ","),
		Welfare:         meta.Welfare,
		DeliveryWindows: meta.DeliveryWindows,
		PaymentTerms:    meta.PaymentTerms,
		Notes:           text,
		Items: []model.LineItem{
			{Kind: "wholesale", Size: "L", Pack: "tray", QtyWeek: 120, TargetPrice: meta.TargetPrice},
		},
	}

	uc.logger.InfoContext(ctx, "RFQ draft composed", "areas", draft.Areas, "welfare", draft.Welfare)
	return draft, nil
}

// ExportCSV renders an rfq as a CSV attachment
func (uc *rfqUseCase) ExportCSV(ctx context.Context, id string) ([]byte, string, error) {
	rfq, err := uc.GetRFQByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Client", "Postcodes", "Delivery", "Terms", "Notes"},
		{rfq.ClientName, rfq.Areas, rfq.DeliveryWindows, rfq.PaymentTerms, strings.ReplaceAll(rfq.Notes, "\n", " ")},
		{},
		{"Items: kind", "size", "pack", "qty/week", "target £"},
	}
	for _, item := range rfq.Items {
		records = append(records, []string{item.Kind, item.Size, item.Pack, strconv.Itoa(item.QtyWeek), item.TargetPrice})
	}

	if err := w.WriteAll(records); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to write rfq csv", "id", id, "error", err)
		return nil, "", fmt.Errorf("failed to write rfq csv: %w", err)
	}

	filename := fmt.Sprintf("rfq_%s.csv", rfq.ID)
	uc.logger.InfoContext(ctx, "RFQ exported to csv", "id", rfq.ID, "bytes", buf.Len())
	return buf.Bytes(), filename, nil
}

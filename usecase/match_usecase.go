package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/domain/matching"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
	"github.com/eggmansigma/zuckmyeggs/pkg/outreach"
)

// OutreachMessage is a composed introduction for one supplier, with
// ready-to-open contact links for the channels the supplier has
type OutreachMessage struct {
	Subject  string
	Body     string
	Mailto   string
	WhatsApp string
	Tel      string
}

// RankedSupplier is one shortlist entry with its outreach message
type RankedSupplier struct {
	Supplier model.Supplier
	Score    int
	Outreach OutreachMessage
}

// MatchUseCase defines the interface for shortlisting suppliers
type MatchUseCase interface {
	// Shortlist ranks the suppliers that can serve an rfq and composes an
	// outreach message for each. An empty shortlist is a normal outcome.
	Shortlist(ctx context.Context, rfqID string) ([]RankedSupplier, error)
}

// matchUseCase implements the MatchUseCase interface
type matchUseCase struct {
	// rfqRepo is the repository interface for rfq database operations
	rfqRepo repository.RFQ
	// supplierRepo provides the supplier roster to rank
	supplierRepo repository.Supplier
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewMatchUseCase creates a new instance of matchUseCase
func NewMatchUseCase(rfqRepo repository.RFQ, supplierRepo repository.Supplier, appLogger logger.LoggerInterface) MatchUseCase {
	return &matchUseCase{
		rfqRepo:      rfqRepo,
		supplierRepo: supplierRepo,
		logger:       appLogger,
	}
}

// Shortlist ranks the suppliers that can serve an rfq
func (uc *matchUseCase) Shortlist(ctx context.Context, rfqID string) ([]RankedSupplier, error) {
	uc.logger.InfoContext(ctx, "Shortlisting suppliers in usecase", "rfqID", rfqID)

	rfq, err := uc.rfqRepo.GetByID(ctx, rfqID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "RFQ not found for shortlist", "rfqID", rfqID)
			return nil, domain.ErrRFQNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting rfq for shortlist", "rfqID", rfqID, "error", err)
		return nil, fmt.Errorf("error getting rfq: %w", err)
	}

	suppliers, err := uc.supplierRepo.List(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error listing suppliers for shortlist", "rfqID", rfqID, "error", err)
		return nil, fmt.Errorf("error listing suppliers: %w", err)
	}

	roster := make([]model.Supplier, len(suppliers))
	for i, s := range suppliers {
		roster[i] = *s
	}

	matches := matching.Rank(*rfq, roster)

	ranked := make([]RankedSupplier, len(matches))
	for i, m := range matches {
		ranked[i] = RankedSupplier{
			Supplier: m.Supplier,
			Score:    m.Score,
			Outreach: composeOutreach(rfq, m.Supplier),
		}
	}

	uc.logger.InfoContext(ctx, "Shortlist composed in usecase", "rfqID", rfqID, "matches", len(ranked))
	return ranked, nil
}

// composeOutreach builds the subject, body and contact links for one supplier
func composeOutreach(rfq *model.RFQ, supplier model.Supplier) OutreachMessage {
	subject := fmt.Sprintf("RFQ #%s", rfq.ID)
	if len(rfq.Items) > 0 {
		first := rfq.Items[0]
		subject = fmt.Sprintf("RFQ #%s - %d %s / week", rfq.ID, first.QtyWeek, first.Pack)
	}

	itemLines := make([]string, 0, len(rfq.Items))
	for _, item := range rfq.Items {
		line := fmt.Sprintf("- %s %s %s x %d/week", item.Kind, item.Size, item.Pack, item.QtyWeek)
		if item.TargetPrice != "" {
			line += fmt.Sprintf(" (target %s)", item.TargetPrice)
		}
		itemLines = append(itemLines, line)
	}

	body := fmt.Sprintf(`Hi %s,

We have a buyer request:
Client: %s
Areas: %s
Delivery: %s
Items:
%s

Notes: %s

Please reply with unit £/tray or box and delivery £/drop, lead time and hold period.
`, supplier.Name, orDash(rfq.ClientName), rfq.Areas, orDash(rfq.DeliveryWindows), strings.Join(itemLines, "\n"), orDash(rfq.Notes))

	msg := OutreachMessage{Subject: subject, Body: body}
	if supplier.Email != "" {
		msg.Mailto = outreach.MailtoLink(supplier.Email, subject, body)
	}
	if supplier.WhatsApp != "" {
		msg.WhatsApp = outreach.WhatsAppLink(supplier.WhatsApp, body)
	}
	if supplier.Phone != "" {
		msg.Tel = outreach.TelLink(supplier.Phone)
	}
	return msg
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

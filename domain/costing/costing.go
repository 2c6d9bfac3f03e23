// Package costing normalises supplier quotes into per-unit landed costs so
// offers with different delivery charges can be compared on one number.
package costing

import (
	"math"
	"sort"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// Row is one quote flattened for comparison. Money fields are in GBP;
// DeliveryPerUnit and LandedPerUnit are rounded to four decimal places.
type Row struct {
	SupplierName    string
	ItemLabel       string
	QtyWeek         int
	UnitPrice       float64
	DeliveryCost    float64
	DeliveryPerUnit float64
	LandedPerUnit   float64
	LeadTimeDays    *int
	HoldWeeks       *int
	Remarks         string
	StoryPDFURL     string
}

// Rows resolves each quote against the RFQ's line items, spreads the
// delivery charge across the weekly quantity, and orders the result
// cheapest landed cost first. A quote whose line item key no longer
// resolves still yields a row with zero quantity so the offer is not
// silently dropped. The sort is stable, so equal landed costs keep the
// caller's order.
func Rows(items []model.LineItem, quotes []model.Quote) []Row {
	byKey := make(map[string]model.LineItem, len(items))
	for _, it := range items {
		byKey[it.ID] = it
	}

	rows := make([]Row, 0, len(quotes))
	for _, q := range quotes {
		var qty int
		var kind, size, pack string
		if it, ok := byKey[q.LineItemKey]; ok {
			qty = it.QtyWeek
			kind, size, pack = it.Kind, it.Size, it.Pack
		}

		deliveryPerUnit := 0.0
		if qty > 0 {
			deliveryPerUnit = q.DeliveryCost / float64(qty)
		}

		rows = append(rows, Row{
			SupplierName:    q.Supplier.Name,
			ItemLabel:       kind + " " + size + " " + pack,
			QtyWeek:         qty,
			UnitPrice:       q.UnitPrice,
			DeliveryCost:    q.DeliveryCost,
			DeliveryPerUnit: round4(deliveryPerUnit),
			LandedPerUnit:   round4(q.UnitPrice + deliveryPerUnit),
			LeadTimeDays:    q.LeadTimeDays,
			HoldWeeks:       q.HoldWeeks,
			Remarks:         q.Remarks,
			StoryPDFURL:     q.Supplier.StoryPDFURL,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].LandedPerUnit < rows[j].LandedPerUnit
	})

	return rows
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

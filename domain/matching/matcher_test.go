package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// trayRFQ builds a single-item request that traySupplier can serve.
func trayRFQ() model.RFQ {
	return model.RFQ{
		ClientName:      "Cafe Bruno",
		Areas:           "BN1, RH10",
		Welfare:         "free-range",
		DeliveryWindows: "Tue/Fri",
		Items: []model.LineItem{
			{Kind: "hen", Size: "L", Pack: "tray", QtyWeek: 120, TargetPrice: "£2.40"},
		},
	}
}

func traySupplier(name string) model.Supplier {
	return model.Supplier{
		Name:          name,
		Welfare:       "Free-Range",
		Sizes:         "L,XL",
		PackFormats:   "tray,box",
		MOQTrays:      intPtr(40),
		DeliveryDays:  "Tue,Fri",
		DeliveryAreas: "BN,RH",
		PriceBandLow:  floatPtr(2.1),
		PriceBandHigh: floatPtr(2.8),
	}
}

func TestRank_AreaFilter(t *testing.T) {
	tests := []struct {
		name          string
		rfqAreas      string
		supplierAreas string
		wantKept      bool
	}{
		{
			name:          "rfq area starts with supplier prefix",
			rfqAreas:      "BN1, RH10",
			supplierAreas: "BN",
			wantKept:      true,
		},
		{
			name:          "no prefix matches",
			rfqAreas:      "BN1",
			supplierAreas: "RH",
			wantKept:      false,
		},
		{
			name:          "match is case-insensitive",
			rfqAreas:      "bn1",
			supplierAreas: "BN",
			wantKept:      true,
		},
		{
			name:          "supplier without delivery areas never matches",
			rfqAreas:      "BN1",
			supplierAreas: "",
			wantKept:      false,
		},
		{
			name:          "rfq without areas never matches",
			rfqAreas:      "",
			supplierAreas: "BN",
			wantKept:      false,
		},
		{
			name:          "any pair of codes is enough",
			rfqAreas:      "RH10, BN1",
			supplierAreas: "XX, RH",
			wantKept:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rfq := trayRFQ()
			rfq.Areas = tt.rfqAreas
			supplier := traySupplier("Orchard Eggs")
			supplier.DeliveryAreas = tt.supplierAreas

			got := Rank(rfq, []model.Supplier{supplier})

			if tt.wantKept {
				assert.Len(t, got, 1, "supplier should pass the area filter")
			} else {
				assert.Empty(t, got, "supplier should be filtered out on area")
			}
		})
	}
}

func TestRank_WelfareFilter(t *testing.T) {
	tests := []struct {
		name            string
		rfqWelfare      string
		supplierWelfare string
		wantKept        bool
	}{
		{
			name:            "empty requirement keeps everyone",
			rfqWelfare:      "",
			supplierWelfare: "barn",
			wantKept:        true,
		},
		{
			name:            "blank requirement keeps everyone",
			rfqWelfare:      "   ",
			supplierWelfare: "barn",
			wantKept:        true,
		},
		{
			name:            "substring match ignoring case",
			rfqWelfare:      " Free-Range ",
			supplierWelfare: "FREE-RANGE, Organic",
			wantKept:        true,
		},
		{
			name:            "requirement missing from supplier",
			rfqWelfare:      "organic",
			supplierWelfare: "free-range",
			wantKept:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rfq := trayRFQ()
			rfq.Welfare = tt.rfqWelfare
			supplier := traySupplier("Orchard Eggs")
			supplier.Welfare = tt.supplierWelfare

			got := Rank(rfq, []model.Supplier{supplier})

			if tt.wantKept {
				assert.Len(t, got, 1, "supplier should pass the welfare filter")
			} else {
				assert.Empty(t, got, "supplier should be filtered out on welfare")
			}
		})
	}
}

func TestRank_Coverage(t *testing.T) {
	t.Run("size and pack must both match", func(t *testing.T) {
		rfq := trayRFQ()
		rfq.Items = []model.LineItem{
			{Kind: "hen", Size: "S", Pack: "tray", QtyWeek: 120},
		}

		got := Rank(rfq, []model.Supplier{traySupplier("Orchard Eggs")})

		assert.Empty(t, got, "supplier without the size should cover nothing")
	})

	t.Run("mixed size matches any supplier sizes", func(t *testing.T) {
		rfq := trayRFQ()
		rfq.Items = []model.LineItem{
			{Kind: "hen", Size: "mixed", Pack: "tray", QtyWeek: 120},
		}
		supplier := traySupplier("Orchard Eggs")
		supplier.Sizes = "M"

		got := Rank(rfq, []model.Supplier{supplier})

		assert.Len(t, got, 1, "mixed line items are size-agnostic")
	})

	t.Run("tray line below the supplier MOQ is skipped", func(t *testing.T) {
		rfq := trayRFQ()
		supplier := traySupplier("Orchard Eggs")
		supplier.MOQTrays = intPtr(200)

		got := Rank(rfq, []model.Supplier{supplier})

		assert.Empty(t, got, "tray quantity under the MOQ should not count as coverage")
	})

	t.Run("MOQ does not gate box lines", func(t *testing.T) {
		rfq := trayRFQ()
		rfq.Items = []model.LineItem{
			{Kind: "hen", Size: "L", Pack: "box", QtyWeek: 5},
		}
		supplier := traySupplier("Orchard Eggs")
		supplier.MOQTrays = intPtr(500)

		got := Rank(rfq, []model.Supplier{supplier})

		assert.Len(t, got, 1, "box lines ignore the tray MOQ")
	})

	t.Run("missing MOQ counts as zero", func(t *testing.T) {
		rfq := trayRFQ()
		rfq.Items[0].QtyWeek = 1
		supplier := traySupplier("Orchard Eggs")
		supplier.MOQTrays = nil

		got := Rank(rfq, []model.Supplier{supplier})

		assert.Len(t, got, 1, "suppliers without an MOQ accept any tray quantity")
	})

	t.Run("MOQ failure drops the item not the supplier", func(t *testing.T) {
		rfq := trayRFQ()
		rfq.DeliveryWindows = ""
		rfq.Items = []model.LineItem{
			{Kind: "hen", Size: "L", Pack: "tray", QtyWeek: 10},
			{Kind: "hen", Size: "L", Pack: "box", QtyWeek: 10},
		}
		supplier := traySupplier("Orchard Eggs")
		supplier.MOQTrays = intPtr(40)
		supplier.PriceBandLow = nil

		got := Rank(rfq, []model.Supplier{supplier})

		require.Len(t, got, 1, "the box line keeps the supplier in")
		assert.Equal(t, 12, got[0].Score, "score should count one covered item plus the day baseline")
	})
}

func TestRank_Score(t *testing.T) {
	t.Run("full score with coverage days and band", func(t *testing.T) {
		got := Rank(trayRFQ(), []model.Supplier{traySupplier("Orchard Eggs")})

		require.Len(t, got, 1)
		// 10 for the covered item, 2x2 for Tue and Fri, 2 for the band
		assert.Equal(t, 16, got[0].Score)
	})

	t.Run("rfq without days gets a single overlap", func(t *testing.T) {
		rfq := trayRFQ()
		rfq.DeliveryWindows = ""

		got := Rank(rfq, []model.Supplier{traySupplier("Orchard Eggs")})

		require.Len(t, got, 1)
		assert.Equal(t, 14, got[0].Score, "baseline overlap of one should apply")
	})

	t.Run("disjoint days score zero overlap", func(t *testing.T) {
		supplier := traySupplier("Orchard Eggs")
		supplier.DeliveryDays = "Mon,Wed"

		got := Rank(trayRFQ(), []model.Supplier{supplier})

		require.Len(t, got, 1)
		assert.Equal(t, 12, got[0].Score)
	})

	t.Run("band bonus needs both bounds", func(t *testing.T) {
		supplier := traySupplier("Orchard Eggs")
		supplier.PriceBandHigh = nil

		got := Rank(trayRFQ(), []model.Supplier{supplier})

		require.Len(t, got, 1)
		assert.Equal(t, 14, got[0].Score, "half-open bands never earn the bonus")
	})

	t.Run("band bounds are inclusive", func(t *testing.T) {
		supplier := traySupplier("Orchard Eggs")
		supplier.PriceBandLow = floatPtr(2.4)
		supplier.PriceBandHigh = floatPtr(2.4)

		got := Rank(trayRFQ(), []model.Supplier{supplier})

		require.Len(t, got, 1)
		assert.Equal(t, 16, got[0].Score)
	})
}

func TestRank_TargetPrice(t *testing.T) {
	t.Run("first parseable target wins", func(t *testing.T) {
		rfq := trayRFQ()
		rfq.Items = []model.LineItem{
			{Kind: "hen", Size: "L", Pack: "tray", QtyWeek: 120, TargetPrice: "ask"},
			{Kind: "duck", Size: "L", Pack: "box", QtyWeek: 10, TargetPrice: "£2.40"},
		}

		got := Rank(rfq, []model.Supplier{traySupplier("Orchard Eggs")})

		require.Len(t, got, 1)
		// 2 covered items, Tue and Fri overlap, band hit from the second item
		assert.Equal(t, 26, got[0].Score)
	})

	t.Run("no parseable target means no bonus", func(t *testing.T) {
		rfq := trayRFQ()
		rfq.Items[0].TargetPrice = "market rate"

		got := Rank(rfq, []model.Supplier{traySupplier("Orchard Eggs")})

		require.Len(t, got, 1)
		assert.Equal(t, 14, got[0].Score)
	})

	t.Run("thousands separators are stripped", func(t *testing.T) {
		rfq := trayRFQ()
		rfq.Items[0].TargetPrice = "£1,200.50"
		supplier := traySupplier("Orchard Eggs")
		supplier.PriceBandLow = floatPtr(1000)
		supplier.PriceBandHigh = floatPtr(1500)

		got := Rank(rfq, []model.Supplier{supplier})

		require.Len(t, got, 1)
		assert.Equal(t, 16, got[0].Score)
	})
}

func TestRank_Ordering(t *testing.T) {
	rfq := model.RFQ{
		ClientName: "Cafe Bruno",
		Areas:      "BN1",
		Items: []model.LineItem{
			{Kind: "hen", Size: "L", Pack: "tray", QtyWeek: 120},
			{Kind: "hen", Size: "M", Pack: "box", QtyWeek: 10},
		},
	}

	wide := traySupplier("Marshwood Farm")
	wide.Sizes = "L,M"
	wide.PriceBandLow = nil

	alpha := traySupplier("Alpha Farm")
	alpha.PriceBandLow = nil

	beta := traySupplier("Beta Farm")
	beta.PriceBandLow = nil

	got := Rank(rfq, []model.Supplier{beta, wide, alpha})

	require.Len(t, got, 3)
	assert.Equal(t, "Marshwood Farm", got[0].Supplier.Name, "highest coverage should rank first")
	assert.Equal(t, "Alpha Farm", got[1].Supplier.Name, "ties break on name ascending")
	assert.Equal(t, "Beta Farm", got[2].Supplier.Name)
	assert.Greater(t, got[0].Score, got[1].Score)
	assert.Equal(t, got[1].Score, got[2].Score)
}

func TestRank_EmptyInputs(t *testing.T) {
	assert.Empty(t, Rank(trayRFQ(), nil), "no suppliers means no matches")

	rfq := trayRFQ()
	rfq.Items = nil
	got := Rank(rfq, []model.Supplier{traySupplier("Orchard Eggs")})
	assert.Empty(t, got, "an rfq without line items covers nothing")
}

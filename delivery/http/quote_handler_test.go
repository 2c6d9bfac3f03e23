package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggmansigma/zuckmyeggs/contracts"
)

func TestAddQuoteRoute(t *testing.T) {
	harness := newTestHarness(t)
	orchard := createSupplierViaAPI(t, harness.handler, orchardPayload())
	rfq := createRFQViaAPI(t, harness.handler, intakeRFQPayload())

	t.Run("records a quote against a line item", func(t *testing.T) {
		w := doRequest(t, harness.handler, http.MethodPost, "/api/v1/rfqs/"+rfq.ID+"/quotes", map[string]any{
			"supplier_id":    orchard.ID,
			"line_item_key":  rfq.Items[0].Key,
			"unit_price":     2.4,
			"delivery_cost":  12.0,
			"lead_time_days": 2,
			"hold_weeks":     3,
			"remarks":        "pallet wrapped",
		})

		require.Equal(t, http.StatusCreated, w.Code, "Expected status Created: %s", w.Body.String())

		var quote contracts.QuoteResponse
		decodeResponse(t, w, &quote)
		assert.Len(t, quote.ID, 26, "Expected a ULID identifier")
		assert.Equal(t, rfq.ID, quote.RFQID, "Expected the RFQ id")
		assert.Equal(t, orchard.ID, quote.SupplierID, "Expected the supplier id")
		assert.Equal(t, 2.4, quote.UnitPrice, "Expected the unit price")
		assert.Equal(t, 12.0, quote.DeliveryCost, "Expected the delivery cost")
		require.NotNil(t, quote.LeadTimeDays, "Expected lead time to be set")
		assert.Equal(t, 2, *quote.LeadTimeDays, "Expected lead time days")
		require.NotNil(t, quote.HoldWeeks, "Expected hold weeks to be set")
		assert.Equal(t, 3, *quote.HoldWeeks, "Expected hold weeks")
	})

	t.Run("rejects a zero unit price", func(t *testing.T) {
		w := doRequest(t, harness.handler, http.MethodPost, "/api/v1/rfqs/"+rfq.ID+"/quotes", map[string]any{
			"supplier_id":   orchard.ID,
			"line_item_key": rfq.Items[0].Key,
			"unit_price":    0,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "Expected status UnprocessableEntity")

		response := decodeResponse(t, w, nil)
		require.NotNil(t, response.Error, "Expected error in response")
		assert.Equal(t, "VALIDATION_ERROR", response.Error.Code, "Expected error code VALIDATION_ERROR")
	})

	t.Run("returns not found for an unknown supplier", func(t *testing.T) {
		w := doRequest(t, harness.handler, http.MethodPost, "/api/v1/rfqs/"+rfq.ID+"/quotes", map[string]any{
			"supplier_id":   "01ARZ3NDEKTSV4RRFFQ69G5FAV",
			"line_item_key": rfq.Items[0].Key,
			"unit_price":    2.4,
		})

		assert.Equal(t, http.StatusNotFound, w.Code, "Expected status NotFound")
	})

	t.Run("rejects a line item from another RFQ", func(t *testing.T) {
		other := createRFQViaAPI(t, harness.handler, map[string]any{
			"client_name": "Deli Rosa",
			"items": []map[string]any{
				{"kind": "retail", "size": "M", "pack": "box", "qty_week": 60},
			},
		})

		w := doRequest(t, harness.handler, http.MethodPost, "/api/v1/rfqs/"+rfq.ID+"/quotes", map[string]any{
			"supplier_id":   orchard.ID,
			"line_item_key": other.Items[0].Key,
			"unit_price":    2.4,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "Expected status UnprocessableEntity")

		response := decodeResponse(t, w, nil)
		require.NotNil(t, response.Error, "Expected error in response")
		assert.Equal(t, "UNPROCESSABLE_ENTITY", response.Error.Code, "Expected error code UNPROCESSABLE_ENTITY")
	})

	t.Run("rejects a malformed rfq id", func(t *testing.T) {
		w := doRequest(t, harness.handler, http.MethodPost, "/api/v1/rfqs/not-a-ulid/quotes", map[string]any{
			"supplier_id":   orchard.ID,
			"line_item_key": rfq.Items[0].Key,
			"unit_price":    2.4,
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "Expected status UnprocessableEntity")
	})
}

func TestListQuotesRoute(t *testing.T) {
	harness := newTestHarness(t)
	orchard := createSupplierViaAPI(t, harness.handler, orchardPayload())
	rfq := createRFQViaAPI(t, harness.handler, intakeRFQPayload())

	first := doRequest(t, harness.handler, http.MethodPost, "/api/v1/rfqs/"+rfq.ID+"/quotes", map[string]any{
		"supplier_id":   orchard.ID,
		"line_item_key": rfq.Items[0].Key,
		"unit_price":    2.4,
		"delivery_cost": 12.0,
	})
	require.Equal(t, http.StatusCreated, first.Code, "Expected first quote to be created")

	second := doRequest(t, harness.handler, http.MethodPost, "/api/v1/rfqs/"+rfq.ID+"/quotes", map[string]any{
		"supplier_id":   orchard.ID,
		"line_item_key": rfq.Items[0].Key,
		"unit_price":    2.2,
		"delivery_cost": 6.0,
	})
	require.Equal(t, http.StatusCreated, second.Code, "Expected second quote to be created")

	t.Run("lists quotes newest first with supplier names", func(t *testing.T) {
		w := doRequest(t, harness.handler, http.MethodGet, "/api/v1/rfqs/"+rfq.ID+"/quotes", nil)

		require.Equal(t, http.StatusOK, w.Code, "Expected status OK: %s", w.Body.String())

		var list contracts.QuotesListResponse
		decodeResponse(t, w, &list)
		require.Len(t, list.Quotes, 2, "Expected two quotes")
		assert.Equal(t, 2.2, list.Quotes[0].UnitPrice, "Expected the newest quote first")
		assert.Equal(t, 2.4, list.Quotes[1].UnitPrice, "Expected the older quote last")
		assert.Equal(t, "Orchard Eggs", list.Quotes[0].SupplierName, "Expected the supplier name to be loaded")
	})

	t.Run("returns not found for an unknown rfq", func(t *testing.T) {
		w := doRequest(t, harness.handler, http.MethodGet, "/api/v1/rfqs/01ARZ3NDEKTSV4RRFFQ69G5FAV/quotes", nil)

		assert.Equal(t, http.StatusNotFound, w.Code, "Expected status NotFound")
	})
}

package http

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggmansigma/zuckmyeggs/contracts"
)

func TestShareRoute(t *testing.T) {
	harness := newTestHarness(t)

	orchard := createSupplierViaAPI(t, harness.handler, orchardPayload())
	rfq := createRFQViaAPI(t, harness.handler, intakeRFQPayload())

	quote := doRequest(t, harness.handler, http.MethodPost, "/api/v1/rfqs/"+rfq.ID+"/quotes", map[string]any{
		"supplier_id":   orchard.ID,
		"line_item_key": rfq.Items[0].Key,
		"unit_price":    2.2,
		"delivery_cost": 0,
	})
	require.Equal(t, http.StatusCreated, quote.Code, "Expected the quote to be created")

	t.Run("serves the client view behind the share token", func(t *testing.T) {
		w := doRequest(t, harness.handler, http.MethodGet, "/share/"+rfq.ID+"/"+rfq.ShareToken, nil)

		require.Equal(t, http.StatusOK, w.Code, "Expected status OK: %s", w.Body.String())

		var share contracts.ShareResponse
		decodeResponse(t, w, &share)
		assert.Equal(t, "Cafe Bruno", share.ClientName, "Expected the client name")
		assert.Equal(t, "BN1,BN", share.Areas, "Expected the delivery areas")
		assert.Equal(t, "Tue/Fri", share.DeliveryWindows, "Expected the delivery windows")
		require.Len(t, share.Items, 1, "Expected the line items")
		require.Len(t, share.Rows, 1, "Expected one proposed option")
		assert.Equal(t, "Orchard Eggs", share.Rows[0].SupplierName, "Expected the supplier name")
		assert.Equal(t, 2.2, share.Rows[0].LandedPerUnit, "Expected the landed cost")
		assert.Equal(t, "https://example.com/orchard.pdf", share.Rows[0].StoryPDFURL, "Expected the story link")

		// The client view must not leak desk-side fields
		assert.NotContains(t, w.Body.String(), "share_token", "Expected the share token to stay out of the body")
		assert.NotContains(t, w.Body.String(), "payment_terms", "Expected payment terms to stay out of the body")
	})

	t.Run("returns not found for a wrong token", func(t *testing.T) {
		w := doRequest(t, harness.handler, http.MethodGet, "/share/"+rfq.ID+"/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code, "Expected status NotFound")
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		w := doRequest(t, harness.handler, http.MethodGet, "/share/not-a-ulid/"+rfq.ShareToken, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "Expected status UnprocessableEntity")
	})
}

// Package contracts contains request and response contracts for the RFQ desk HTTP API
package contracts

// OutreachResponse carries ready-to-open contact links for one supplier.
// Link fields are omitted for channels the supplier does not have.
type OutreachResponse struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Mailto   string `json:"mailto,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Tel      string `json:"tel,omitempty"`
}

// MatchResponse represents one ranked supplier on the shortlist
type MatchResponse struct {
	Supplier SupplierResponse `json:"supplier"`
	Score    int              `json:"score"`
	Outreach OutreachResponse `json:"outreach"`
}

// MatchesListResponse represents the ranked shortlist for an RFQ
type MatchesListResponse struct {
	RFQID   string          `json:"rfq_id"`
	Matches []MatchResponse `json:"matches"`
}

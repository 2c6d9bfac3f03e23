// Package extract provides intake-text extraction used to draft RFQs.
// The desk pastes a buyer's message and gets back the structured fields a
// human would have keyed in. Extraction sits behind an interface so the
// keyword version can be swapped for a smarter collaborator later.
package extract

import (
	"regexp"
	"strings"
)

// Meta holds the fields recognised in a free-text buyer request
type Meta struct {
	// Areas are postcode-style area codes, uppercased, in order of discovery
	Areas []string
	// Welfare is the recognised welfare requirement ("organic", "free-range") or empty
	Welfare string
	// DeliveryWindows is a "/"-joined day list, e.g. "Tue/Fri", or empty
	DeliveryWindows string
	// PaymentTerms is e.g. "14 days", or empty
	PaymentTerms string
	// TargetPrice is the quoted target, e.g. "£2.40", or empty
	TargetPrice string
}

// Extractor turns free intake text into structured RFQ fields
type Extractor interface {
	Extract(text string) Meta
}

// areaTokens are the recognised area codes, longest variants first so "BN1"
// is found as well as "BN".
var areaTokens = []string{"bn1", "bn2", "bn", "rh", "po", "se", "sw", "w1", "ec"}

// dayTokens map lowercase day stems to their canonical names, in week order
var dayTokens = []struct {
	key  string
	name string
}{
	{"mon", "Mon"},
	{"tue", "Tue"},
	{"wed", "Wed"},
	{"thu", "Thu"},
	{"fri", "Fri"},
	{"sat", "Sat"},
	{"sun", "Sun"},
}

var (
	termsPattern  = regexp.MustCompile(`(\d{1,2})\s*day`)
	targetPattern = regexp.MustCompile(`£\s*(\d+(?:\.\d{1,2})?)`)
)

// Keyword is the naive keyword-scanning Extractor
type Keyword struct{}

// NewKeyword creates a keyword extractor
func NewKeyword() *Keyword {
	return &Keyword{}
}

// Extract scans the text for area codes, welfare terms, delivery days,
// payment terms, and a target price
func (k *Keyword) Extract(text string) Meta {
	lower := strings.ToLower(text)

	var areas []string
	for _, token := range areaTokens {
		if strings.Contains(lower, token) && !containsString(areas, strings.ToUpper(token)) {
			areas = append(areas, strings.ToUpper(token))
		}
	}

	var welfare string
	if strings.Contains(lower, "organic") {
		welfare = "organic"
	} else if strings.Contains(lower, "free-range") || strings.Contains(lower, "free range") {
		welfare = "free-range"
	}

	var found []string
	for _, day := range dayTokens {
		if strings.Contains(lower, day.key) {
			found = append(found, day.name)
		}
	}
	var delivery string
	switch {
	case strings.Contains(lower, "tue") && strings.Contains(lower, "fri"):
		delivery = "Tue/Fri"
	case len(found) > 2:
		delivery = strings.Join(found[:2], "/")
	case len(found) > 0:
		delivery = strings.Join(found, "/")
	}

	var terms string
	if m := termsPattern.FindStringSubmatch(lower); m != nil {
		terms = m[1] + " days"
	}

	var target string
	if m := targetPattern.FindStringSubmatch(text); m != nil {
		target = "£" + m[1]
	}

	return Meta{
		Areas:           areas,
		Welfare:         welfare,
		DeliveryWindows: delivery,
		PaymentTerms:    terms,
		TargetPrice:     target,
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Package matching ranks suppliers against a buyer request. It is pure
// computation over snapshots: no storage, no I/O, and it never errors.
// Callers load the RFQ and the supplier roster, then rank.
package matching

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// Match pairs a supplier with its fit score for an RFQ
type Match struct {
	Supplier model.Supplier
	Score    int
}

// targetPricePattern pulls the first decimal number (up to 2 fraction
// digits) out of a free-text target price like "£2.40" or "2,40 per tray".
var targetPricePattern = regexp.MustCompile(`(\d+(?:\.\d{1,2})?)`)

// Rank filters the suppliers that can serve the request and scores the rest.
//
// Hard constraints: the supplier must deliver into at least one of the RFQ's
// areas (prefix match), must satisfy the welfare requirement when one is
// set, and must be able to cover at least one line item (size and pack,
// with the tray MOQ respected).
//
// Score: 10 per coverable item, 2 per overlapping delivery day (a baseline
// of one overlap when the RFQ names no days), and 2 when the first parseable
// target price falls inside the supplier's price band.
//
// The result is ordered by score descending, then name ascending.
func Rank(rfq model.RFQ, suppliers []model.Supplier) []Match {
	rfqAreas := splitList(rfq.Areas, strings.ToUpper)
	rfqDays := daySet(rfq.DeliveryWindows)
	wantedWelfare := strings.TrimSpace(strings.ToLower(rfq.Welfare))
	targetPrice, hasTarget := firstTargetPrice(rfq.Items)

	var ranked []Match
	for _, s := range suppliers {
		if !areaMatches(s.DeliveryAreas, rfqAreas) {
			continue
		}
		if wantedWelfare != "" && !strings.Contains(strings.ToLower(s.Welfare), wantedWelfare) {
			continue
		}

		sizes := toSet(splitList(s.Sizes, strings.ToUpper))
		packs := toSet(splitList(s.PackFormats, strings.ToLower))
		days := daySet(s.DeliveryDays)

		covered := 0
		for _, it := range rfq.Items {
			size := strings.ToUpper(it.Size)
			pack := strings.ToLower(it.Pack)
			if (sizes[size] || size == "MIXED") && packs[pack] {
				// MOQ is tracked in trays; box lines are not gated by it
				if pack == "tray" && moqTrays(s) > it.QtyWeek {
					continue
				}
				covered++
			}
		}
		if covered == 0 {
			continue
		}

		score := covered * 10

		overlap := 1
		if len(rfqDays) > 0 {
			overlap = intersectCount(rfqDays, days)
		}
		score += overlap * 2

		if hasTarget && s.PriceBandLow != nil && s.PriceBandHigh != nil &&
			*s.PriceBandLow <= targetPrice && targetPrice <= *s.PriceBandHigh {
			score += 2
		}

		ranked = append(ranked, Match{Supplier: s, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Supplier.Name < ranked[j].Supplier.Name
	})

	return ranked
}

// areaMatches reports whether any RFQ area code starts with any of the
// supplier's delivery prefixes, case-insensitively
func areaMatches(supplierPrefixes string, rfqAreas []string) bool {
	prefixes := splitList(supplierPrefixes, strings.ToUpper)
	if len(prefixes) == 0 {
		return false
	}
	for _, area := range rfqAreas {
		for _, prefix := range prefixes {
			if strings.HasPrefix(area, prefix) {
				return true
			}
		}
	}
	return false
}

// firstTargetPrice returns the first line item target that parses to a
// number. Items with unparseable targets are skipped.
func firstTargetPrice(items []model.LineItem) (float64, bool) {
	for _, it := range items {
		if it.TargetPrice == "" {
			continue
		}
		m := targetPricePattern.FindStringSubmatch(strings.ReplaceAll(it.TargetPrice, ",", ""))
		if m == nil {
			continue
		}
		price, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return price, true
	}
	return 0, false
}

// daySet parses a day list like "Tue/Fri" or "tue, fri" into canonical
// title-cased tokens
func daySet(list string) map[string]bool {
	titler := cases.Title(language.English)
	set := make(map[string]bool)
	for _, token := range strings.Split(strings.ReplaceAll(list, "/", ","), ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		set[titler.String(token)] = true
	}
	return set
}

// splitList splits a comma-separated list, trims each entry, and applies fold
func splitList(list string, fold func(string) string) []string {
	var out []string
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		out = append(out, fold(token))
	}
	return out
}

func toSet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, v := range list {
		set[v] = true
	}
	return set
}

func intersectCount(a, b map[string]bool) int {
	n := 0
	for v := range a {
		if b[v] {
			n++
		}
	}
	return n
}

func moqTrays(s model.Supplier) int {
	if s.MOQTrays == nil {
		return 0
	}
	return *s.MOQTrays
}

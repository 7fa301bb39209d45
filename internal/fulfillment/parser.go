package fulfillment

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	timestampRe    = regexp.MustCompile(`At (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) GMT`)
	processedRe    = regexp.MustCompile(`(?s)Walsworth processed:(.*?)(?:Walsworth DID NOT process:|$)`)
	notProcessedRe = regexp.MustCompile(`(?s)Walsworth DID NOT process:(.*)$`)
	itemRe         = regexp.MustCompile(`Qty (\d+) of \[(.*?)\]`)
)

// Parse extracts a fulfillment Record from note content. Malformed or
// partial text is never an error: every unmatched section yields empty
// lists and zero totals, and the status defaults to fully processed.
func Parse(content string) Record {
	rec := Record{
		Status:            StatusFullyProcessed,
		ProcessedItems:    []Item{},
		NotProcessedItems: []Item{},
	}

	if m := timestampRe.FindStringSubmatch(content); m != nil {
		rec.Timestamp = m[1]
	}

	if m := processedRe.FindStringSubmatch(content); m != nil {
		rec.ProcessedItems, rec.TotalProcessedQty = parseItems(m[1])
	}

	if m := notProcessedRe.FindStringSubmatch(content); m != nil {
		rec.NotProcessedItems, rec.TotalNotProcessedQty = parseItems(m[1])

		if rec.TotalNotProcessedQty > 0 {
			rec.Status = StatusPartiallyProcessed
		}
	}

	if rec.TotalProcessedQty == 0 && rec.TotalNotProcessedQty > 0 {
		rec.Status = StatusNotProcessed
	}

	return rec
}

// parseItems collects every "Qty N of [product]" occurrence in span,
// preserving order of appearance.
func parseItems(span string) ([]Item, int) {
	items := []Item{}
	total := 0

	for _, m := range itemRe.FindAllStringSubmatch(span, -1) {
		qty, err := strconv.Atoi(m[1])
		if err != nil {
			qty = 0
		}
		items = append(items, Item{
			Quantity: qty,
			Product:  strings.TrimSpace(m[2]),
		})
		total += qty
	}

	return items, total
}

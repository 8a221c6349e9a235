package entities

import "time"

// ReportPayload is the fully computed, table-ready structure handed to the
// external document renderer. Rows are ordered; the renderer emits the
// Totals line last. The core never inspects the rendered artifact.
type ReportPayload struct {
	Title       string             `json:"title"`
	GeneratedAt time.Time          `json:"generated_at"`
	Columns     []string           `json:"columns"`
	Rows        [][]string         `json:"rows"`
	Totals      map[string]float64 `json:"totals"`
}

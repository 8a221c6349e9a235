package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"costwatch/internal/domain/entities"
)

func TestCSVRenderer_Render(t *testing.T) {
	r := NewCSVRenderer()

	payload := entities.ReportPayload{
		Title:       "Estimate Report - Foundation v1 (v1)",
		GeneratedAt: time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC),
		Columns:     []string{"Item", "Category", "Estimated"},
		Rows: [][]string{
			{"Concrete", "Structure", "15000.00"},
			{"Paint, interior", "Finishes", "1000.00"},
		},
		Totals: map[string]float64{
			"total_estimated": 16000,
			"total_actual":    16900,
		},
	}

	artifact, filename, err := r.Render(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(artifact), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Item,Category,Estimated" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	// The comma in the description must be quoted.
	if lines[2] != `"Paint, interior",Finishes,1000.00` {
		t.Fatalf("unexpected row: %q", lines[2])
	}
	// Totals last, keys sorted.
	if lines[3] != "total_actual,16900.00" || lines[4] != "total_estimated,16000.00" {
		t.Fatalf("unexpected totals: %q", lines[3:])
	}

	if filename != "estimate-report-foundation-v1-v1-20250312-103000.csv" {
		t.Fatalf("unexpected filename: %q", filename)
	}
}

func TestCSVRenderer_FilenameFallback(t *testing.T) {
	r := NewCSVRenderer()
	_, filename, err := r.Render(context.Background(), entities.ReportPayload{
		Title:       "---",
		GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "report-20250102-030405.csv" {
		t.Fatalf("unexpected filename: %q", filename)
	}
}

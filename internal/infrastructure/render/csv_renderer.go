package render

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"
)

// CSVRenderer renders a report payload as a CSV artifact. It fills the
// renderer slot of the report use case; swapping in a PDF or XLSX renderer
// only requires another IReportRenderer implementation.

type CSVRenderer struct{}

var _ interfaces.IReportRenderer = (*CSVRenderer)(nil)

func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

func (r *CSVRenderer) Render(_ context.Context, payload entities.ReportPayload) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(payload.Columns); err != nil {
		return nil, "", fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range payload.Rows {
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("write csv row: %w", err)
		}
	}

	// Totals line last, keys sorted for a stable artifact.
	keys := make([]string, 0, len(payload.Totals))
	for k := range payload.Totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		record := []string{k, strconv.FormatFloat(payload.Totals[k], 'f', 2, 64)}
		if err := w.Write(record); err != nil {
			return nil, "", fmt.Errorf("write csv totals: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), filenameFor(payload), nil
}

func filenameFor(payload entities.ReportPayload) string {
	slug := strings.ToLower(payload.Title)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(strings.Join(strings.FieldsFunc(slug, func(r rune) bool { return r == '-' }), "-"), "-")
	if slug == "" {
		slug = "report"
	}
	return fmt.Sprintf("%s-%s.csv", slug, payload.GeneratedAt.UTC().Format("20060102-150405"))
}

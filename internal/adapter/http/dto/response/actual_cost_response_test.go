package response

import (
	"testing"
	"time"

	"costwatch/internal/domain/entities"
)

func TestFromActualCost(t *testing.T) {
	now := time.Now().UTC()
	qty := 45.0

	ac := entities.ActualCost{
		ID:                 "ac-1",
		ItemID:             "item-1",
		ActualUnitPrice:    320,
		ActualQuantity:     &qty,
		TotalActual:        14400,
		VarianceAmount:     -600,
		VariancePercentage: -4,
		RecordedAt:         now,
	}

	res := FromActualCost(ac)
	if res.ID != "ac-1" || res.ItemID != "item-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ActualQuantity == nil || *res.ActualQuantity != 45 {
		t.Fatalf("unexpected quantity: %+v", res)
	}
	if res.TotalActual != 14400 || res.VarianceAmount != -600 {
		t.Fatalf("unexpected figures: %+v", res)
	}
	if res.VarianceStatus != "under_budget" {
		t.Fatalf("unexpected status: %+v", res)
	}
	if !res.RecordedAt.Equal(now) {
		t.Fatalf("unexpected recorded_at: %+v", res)
	}
}

func TestFromActualCost_StatusFromSign(t *testing.T) {
	if res := FromActualCost(entities.ActualCost{VariancePercentage: 6.67}); res.VarianceStatus != "over_budget" {
		t.Fatalf("unexpected status: %+v", res)
	}
	if res := FromActualCost(entities.ActualCost{VariancePercentage: 0}); res.VarianceStatus != "on_budget" {
		t.Fatalf("unexpected status: %+v", res)
	}
}

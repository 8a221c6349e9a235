package response

import (
	"testing"
	"time"

	"costwatch/internal/domain/entities"
)

func TestFromEstimateDetail(t *testing.T) {
	now := time.Now().UTC()

	e := entities.Estimate{
		ID:             "est-1",
		SiteID:         "site-1",
		Title:          "Foundation v1",
		Version:        2,
		Status:         entities.EstimateStatusApproved,
		TotalEstimated: 15000,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	items := []entities.EstimateItem{
		{ID: "item-1", EstimateID: "est-1", CategoryID: "cat-1", Quantity: 50, UnitPrice: 300, TotalEstimated: 15000},
	}

	res := FromEstimateDetail(e, items)
	if res.ID != "est-1" || res.Version != 2 || res.Status != "approved" {
		t.Fatalf("unexpected estimate: %+v", res)
	}
	if res.TotalEstimated != 15000 {
		t.Fatalf("unexpected total: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].ID != "item-1" || res.Items[0].TotalEstimated != 15000 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
}

func TestFromEstimateDetail_NoItems(t *testing.T) {
	res := FromEstimateDetail(entities.Estimate{ID: "est-1"}, nil)
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty items slice, got %+v", res.Items)
	}
}

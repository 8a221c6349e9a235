package usecase

import (
	"context"
	"errors"
	"testing"

	"costwatch/internal/domain/entities"
	mock_interfaces "costwatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSiteUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewSiteUseCase(nil)
		_, err := uc.Create(context.Background(), "   ", nil)
		if !errors.Is(err, ErrInvalidSiteName) {
			t.Fatalf("expected ErrInvalidSiteName, got %v", err)
		}
	})

	t.Run("negative budget", func(t *testing.T) {
		uc := NewSiteUseCase(nil)
		limit := -100.0
		_, err := uc.Create(context.Background(), "Harbor Tower", &limit)
		if !errors.Is(err, ErrNegativeBudgetLimit) {
			t.Fatalf("expected ErrNegativeBudgetLimit, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteRepository(ctrl)
		uc := NewSiteUseCase(repo)

		limit := 500000.0
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Site{})).DoAndReturn(
			func(_ context.Context, s entities.Site) (entities.Site, error) {
				if s.ID == "" || s.Name != "Harbor Tower" || s.Status != entities.SiteStatusPlanning {
					t.Fatalf("unexpected site: %+v", s)
				}
				if s.BudgetLimit == nil || *s.BudgetLimit != 500000 {
					t.Fatalf("expected budget limit: %+v", s)
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)

		res, err := uc.Create(context.Background(), " Harbor Tower ", &limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestSiteUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewSiteUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "site-1", "demolished")
		if !errors.Is(err, ErrInvalidSiteStatus) {
			t.Fatalf("expected ErrInvalidSiteStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteRepository(ctrl)
		uc := NewSiteUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "site-x", entities.SiteStatusActive).Return(entities.Site{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "site-x", entities.SiteStatusActive)
		if !errors.Is(err, ErrSiteNotFound) {
			t.Fatalf("expected ErrSiteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteRepository(ctrl)
		uc := NewSiteUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "site-1", entities.SiteStatusOnHold).
			Return(entities.Site{ID: "site-1", Status: entities.SiteStatusOnHold}, nil)

		res, err := uc.UpdateStatus(context.Background(), "site-1", entities.SiteStatusOnHold)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.SiteStatusOnHold {
			t.Fatalf("unexpected status: %+v", res)
		}
	})
}

func TestSiteUseCase_SetBudgetLimit(t *testing.T) {
	t.Run("negative limit", func(t *testing.T) {
		uc := NewSiteUseCase(nil)
		limit := -1.0
		_, err := uc.SetBudgetLimit(context.Background(), "site-1", &limit)
		if !errors.Is(err, ErrNegativeBudgetLimit) {
			t.Fatalf("expected ErrNegativeBudgetLimit, got %v", err)
		}
	})

	t.Run("clearing the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISiteRepository(ctrl)
		uc := NewSiteUseCase(repo)

		repo.EXPECT().UpdateBudgetLimit(gomock.Any(), "site-1", nil).
			Return(entities.Site{ID: "site-1"}, nil)

		res, err := uc.SetBudgetLimit(context.Background(), "site-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BudgetLimit != nil {
			t.Fatalf("expected cleared limit: %+v", res)
		}
	})
}

func TestCategoryUseCase(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewCategoryUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", 1)
		if !errors.Is(err, ErrInvalidCategoryName) {
			t.Fatalf("expected ErrInvalidCategoryName, got %v", err)
		}
	})

	t.Run("list sorts by sort order then id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICategoryRepository(ctrl)
		uc := NewCategoryUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Category{
			{ID: "cat-c", Name: "Finishes", SortOrder: 2},
			{ID: "cat-b", Name: "Structure", SortOrder: 1},
			{ID: "cat-a", Name: "Sitework", SortOrder: 2},
		}, nil)

		cats, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := []string{cats[0].ID, cats[1].ID, cats[2].ID}
		want := []string{"cat-b", "cat-a", "cat-c"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("unexpected order: %v", got)
			}
		}
	})
}

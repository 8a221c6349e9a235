package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"costwatch/internal/domain/entities"
	"costwatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryName = errors.New("invalid category name")
)

// ICategoryUseCase exposes the flat category lookup used to group items.

type ICategoryUseCase interface {
	Create(ctx context.Context, name string, sortOrder int) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (u *CategoryUseCase) Create(ctx context.Context, name string, sortOrder int) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}

	c := entities.Category{
		ID:        uuid.NewString(),
		Name:      name,
		SortOrder: sortOrder,
	}
	return u.repo.Create(ctx, c)
}

func (u *CategoryUseCase) List(ctx context.Context) ([]entities.Category, error) {
	cats, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].SortOrder != cats[j].SortOrder {
			return cats[i].SortOrder < cats[j].SortOrder
		}
		return cats[i].ID < cats[j].ID
	})
	return cats, nil
}

package interfaces

import (
	"context"

	"costwatch/internal/domain/entities"
)

// ICategoryRepository abstracts persistence for the flat category lookup.

type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
}

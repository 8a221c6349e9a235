package response

import "costwatch/internal/domain/entities"

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

func FromCategory(cat entities.Category) CategoryResponse {
	return CategoryResponse{ID: cat.ID, Name: cat.Name, SortOrder: cat.SortOrder}
}

func FromCategories(cats []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, FromCategory(cat))
	}
	return out
}

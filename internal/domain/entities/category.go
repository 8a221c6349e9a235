package entities

// Category is a flat lookup used to group estimate items for aggregation.
// No hierarchy; SortOrder drives rollup ordering.
//
// Storage model (DynamoDB):
//   - PK: id
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

package response_models

import "learnhive/internal/models/db_models"

// PaginatedClassesResponse carries one page of accepted classes plus the
// total accepted count, which is independent of the requested page.
type PaginatedClassesResponse struct {
	Total   int64             `json:"total"`
	Classes []db_models.Class `json:"classes"`
}

package dto

import (
	"github.com/yukikurage/task-manager/internal/utils"
)

// SearchDTO echoes the search parameter a list was filtered by
type SearchDTO struct {
	Param string `json:"param"`
	Value string `json:"value"`
}

// ListResponse represents one page of a list together with the search that produced it
type ListResponse[T any] struct {
	Items      []T                      `json:"items"`
	Search     SearchDTO                `json:"search"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToListResponse converts a page of models with the given converter
func ToListResponse[M any, T any](items []M, convert func(M) T, search SearchDTO, params utils.PaginationParams, total int64) ListResponse[T] {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return ListResponse[T]{
		Items:      out,
		Search:     search,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}

// DashboardDTO represents the index page counters
type DashboardDTO struct {
	NumTasks   int64 `json:"num_tasks"`
	NumWorkers int64 `json:"num_workers"`
	NumVisits  int   `json:"num_visits"`
}

package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxPageSize = 200

// Page is one slice of a listing plus the numbers the pager needs.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func parsePage(c *fiber.Ctx, defLimit int) (page, limit int) {
	page, limit = 1, defLimit
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxPageSize {
			limit = n
		}
	}
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	return page, limit
}

// paginate cuts items to the requested page. A page past the end is empty.
func paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)
	p := Page[T]{Items: []T{}, Page: page, Limit: limit, Total: total}
	if limit <= 0 {
		return p
	}
	p.TotalPages = (total + limit - 1) / limit
	start := (page - 1) * limit
	if start >= total {
		return p
	}
	p.Items = items[start:min(start+limit, total)]
	return p
}

package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination reads page and limit query params, clamping limit into
// [1, maxLimit] and page to at least 1.
func ParsePagination(c *fiber.Ctx, defaultLimit, maxLimit int) Pagination {
	limit := parseInt(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	page := parseInt(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}

	return Pagination{Page: page, Limit: limit}
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}

package dto

import (
	"strconv"

	apperrors "github.com/spec-kit/pokebox/pkg/util"
)

// PageQuery is a validated pagination window.
type PageQuery struct {
	Limit  int
	Offset int
}

// ParsePageQuery coerces the raw limit/offset query strings. Limit must be a
// positive integer, offset a non-negative one.
func ParsePageQuery(limitStr, offsetStr string) (PageQuery, error) {
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return PageQuery{}, apperrors.NewInvalidRequest("Invalid limit or offset")
	}

	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return PageQuery{}, apperrors.NewInvalidRequest("Invalid limit or offset")
	}

	return PageQuery{Limit: limit, Offset: offset}, nil
}

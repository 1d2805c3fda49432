package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

// NormalizePagination resolves limit/page defaults, accepting a raw offset as
// an alternative to page numbering. A raw offset is applied as given, not
// rounded to a page boundary; the returned page is only for the response
// envelope.
func NormalizePagination(limit, page, offset *int) (int, int, int) {
	l := 10
	p := 1
	if limit != nil && *limit > 0 {
		l = *limit
		if l > 500 {
			l = 500
		}
	}
	off := 0
	if page != nil && *page > 0 {
		p = *page
		off = l * (p - 1)
	} else if offset != nil && *offset > 0 {
		off = *offset
		p = off/l + 1
	}
	return l, p, off
}

func Ptr[T any](v T) *T {
	return &v
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEditFailureResponse(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"duplicated key is a client error", gorm.ErrDuplicatedKey, fiber.StatusBadRequest},
		{"wrapped duplicated key", errors.Join(errors.New("update venues"), gorm.ErrDuplicatedKey), fiber.StatusBadRequest},
		{"anything else is a server error", errors.New("connection reset"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Put("/edit", func(c *fiber.Ctx) error {
				return editFailureResponse(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/edit", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

package common

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// QueryID reads a numeric query parameter.
func QueryID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Query(name), 10, 64)
}

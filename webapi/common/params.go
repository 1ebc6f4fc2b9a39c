package common

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParamID reads a numeric path parameter.
func ParamID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

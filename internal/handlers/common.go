package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/anoteng/Exerlog/internal/middleware"
)

var validate = validator.New()

func authedUserID(c *fiber.Ctx) (int64, bool) {
	return middleware.UserID(c)
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

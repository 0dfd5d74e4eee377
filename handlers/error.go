package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/co2-watch/site/ui"
)

// CustomErrorHandler renders errors as an HTML page, or as JSON under /api.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	ctx.Status(code)
	if strings.HasPrefix(ctx.Path(), "/api/") {
		return ctx.JSON(fiber.Map{"error": message})
	}
	return render(ctx, ui.ErrorPage(code, message))
}

package controller

import (
	"errors"

	"plagiarismpro-be/internal/pkg/serverutils"
	"plagiarismpro-be/internal/service"
	"plagiarismpro-be/pkg/analysis"

	"github.com/gofiber/fiber/v2"
)

var statusBySentinel = []struct {
	err  error
	code int
}{
	{analysis.ErrInvalidFileType, fiber.StatusUnsupportedMediaType},
	{analysis.ErrFileTooLarge, fiber.StatusRequestEntityTooLarge},
	{analysis.ErrMissingFile, fiber.StatusBadRequest},
	{service.ErrHistoryEntryNotFound, fiber.StatusNotFound},
	{service.ErrJobNotFound, fiber.StatusNotFound},
	{service.ErrNoRecipient, fiber.StatusBadRequest},
	{service.ErrCitationTotal, fiber.StatusBadRequest},
}

// translate maps domain errors to their HTTP status. Anything else passes
// through and ends up as a 500.
func translate(err error) error {
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return serverutils.NewAppError(s.code, s.err.Error(), err)
		}
	}
	return err
}

func parseBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}
	return serverutils.ValidateRequest(req)
}

func entryID(ctx *fiber.Ctx) (int64, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return 0, serverutils.BadRequest("Invalid history entry id")
	}
	return int64(id), nil
}

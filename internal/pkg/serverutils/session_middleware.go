package serverutils

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// SessionVerifier reports whether a device currently holds a valid session token.
type SessionVerifier interface {
	IsAuthenticated(ctx context.Context, deviceID string) (bool, error)
}

// SessionMiddleware answers 401 for devices without a session. With guard
// off every request passes.
func SessionMiddleware(verifier SessionVerifier, guard bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !guard {
			return ctx.Next()
		}

		ok, err := verifier.IsAuthenticated(ctx.UserContext(), DeviceID(ctx))
		if err != nil {
			return err
		}
		if !ok {
			return Unauthorized("Please log in to continue")
		}
		return ctx.Next()
	}
}

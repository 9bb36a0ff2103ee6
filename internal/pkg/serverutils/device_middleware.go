package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	DeviceCookieName = "device_id"
	DeviceHeaderName = "X-Device-ID"
	deviceLocalKey   = "device_id"
	deviceCookieTTL  = 365 * 24 * time.Hour
)

// DeviceMiddleware resolves the device id from the header or cookie and
// issues a fresh one when neither carries a valid UUID.
func DeviceMiddleware(secureCookie bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		deviceID := firstValidID(ctx.Get(DeviceHeaderName), ctx.Cookies(DeviceCookieName))
		if deviceID == "" {
			deviceID = uuid.NewString()
			ctx.Cookie(&fiber.Cookie{
				Name:     DeviceCookieName,
				Value:    deviceID,
				Path:     "/",
				Expires:  time.Now().Add(deviceCookieTTL),
				HTTPOnly: true,
				Secure:   secureCookie,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		ctx.Locals(deviceLocalKey, deviceID)
		return ctx.Next()
	}
}

func DeviceID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(deviceLocalKey).(string)
	return id
}

func firstValidID(candidates ...string) string {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if id, err := uuid.Parse(c); err == nil {
			return id.String()
		}
	}
	return ""
}

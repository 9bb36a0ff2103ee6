package controller

import (
	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/pkg/serverutils"
	"plagiarismpro-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

var NavItems = []dto.NavItem{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "History", Path: "/history"},
	{Label: "About", Path: "/about"},
}

type IShellController interface {
	RegisterRoutes(r fiber.Router)
	Shell(ctx *fiber.Ctx) error
}

type shellController struct {
	authService service.IAuthService
}

func NewShellController(authService service.IAuthService) IShellController {
	return &shellController{authService: authService}
}

func (c *shellController) RegisterRoutes(r fiber.Router) {
	r.Get("/shell", c.Shell)
}

func (c *shellController) Shell(ctx *fiber.Ctx) error {
	session, err := c.authService.Session(ctx.UserContext(), serverutils.DeviceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show shell", dto.ShellResponse{
		Nav:           NavItems,
		Profile:       session.Profile,
		Authenticated: session.Authenticated,
	}))
}

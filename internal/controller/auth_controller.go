package controller

import (
	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/pkg/serverutils"
	"plagiarismpro-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	Professions(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/register", c.Register)
	h.Post("/logout", c.Logout)
	h.Get("/session", c.Session)
	h.Get("/professions", c.Professions)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), serverutils.DeviceID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), serverutils.DeviceID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Account created successfully", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	res, err := c.service.Logout(ctx.UserContext(), serverutils.DeviceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logged out", res))
}

func (c *authController) Session(ctx *fiber.Ctx) error {
	res, err := c.service.Session(ctx.UserContext(), serverutils.DeviceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *authController) Professions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success list professions", c.service.Professions()))
}

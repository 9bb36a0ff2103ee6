package controller

import (
	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/pkg/serverutils"
	"plagiarismpro-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IViewController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Build(ctx *fiber.Ctx) error
}

type viewController struct {
	service service.IViewService
}

func NewViewController(service service.IViewService) IViewController {
	return &viewController{service: service}
}

func (c *viewController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	r.Post("/views", guard, c.Build)
}

func (c *viewController) Build(ctx *fiber.Ctx) error {
	var req dto.ViewsRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Build(&req)
	if err != nil {
		return translate(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success build views", res))
}

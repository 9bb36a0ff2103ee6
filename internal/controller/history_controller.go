package controller

import (
	"plagiarismpro-be/internal/pkg/serverutils"
	"plagiarismpro-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Views(ctx *fiber.Ctx) error
}

type historyController struct {
	service service.IHistoryService
}

func NewHistoryController(service service.IHistoryService) IHistoryController {
	return &historyController{service: service}
}

func (c *historyController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/history", guard)
	h.Get("", c.List)
	h.Delete("/:id", c.Delete)
	h.Get("/:id/views", c.Views)
}

func (c *historyController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.UserContext(), serverutils.DeviceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list history", res))
}

func (c *historyController) Delete(ctx *fiber.Ctx) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.UserContext(), serverutils.DeviceID(ctx), id); err != nil {
		return translate(err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("The analysis has been removed from your history.", nil))
}

func (c *historyController) Views(ctx *fiber.Ctx) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}
	expanded := ctx.Query("summary") == "expanded"

	res, err := c.service.Views(ctx.UserContext(), serverutils.DeviceID(ctx), id, expanded)
	if err != nil {
		return translate(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show views", res))
}

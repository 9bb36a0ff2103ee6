package controller

import (
	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/pkg/serverutils"
	"plagiarismpro-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Download(ctx *fiber.Ctx) error
	Email(ctx *fiber.Ctx) error
	EmailStatus(ctx *fiber.Ctx) error
}

type reportController struct {
	service service.IReportService
}

func NewReportController(service service.IReportService) IReportController {
	return &reportController{service: service}
}

func (c *reportController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/reports", guard)
	h.Get("/:id/download", c.Download)
	h.Post("/:id/email", c.Email)
	h.Get("/:id/email", c.EmailStatus)
}

func (c *reportController) Download(ctx *fiber.Ctx) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	file, err := c.service.Download(ctx.UserContext(), serverutils.DeviceID(ctx), id)
	if err != nil {
		return translate(err)
	}

	ctx.Attachment(file.FileName)
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	return ctx.Send(file.Content)
}

func (c *reportController) Email(ctx *fiber.Ctx) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	var req dto.EmailReportRequest
	if len(ctx.Body()) > 0 {
		if err := parseBody(ctx, &req); err != nil {
			return err
		}
	}

	res, err := c.service.Email(ctx.UserContext(), serverutils.DeviceID(ctx), id, &req)
	if err != nil {
		return translate(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Email sent successfully", res))
}

func (c *reportController) EmailStatus(ctx *fiber.Ctx) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.EmailStatus(ctx.UserContext(), serverutils.DeviceID(ctx), id)
	if err != nil {
		return translate(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show email status", res))
}

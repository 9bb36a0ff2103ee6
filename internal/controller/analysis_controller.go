package controller

import (
	"plagiarismpro-be/internal/dto"
	"plagiarismpro-be/internal/pkg/serverutils"
	"plagiarismpro-be/internal/service"
	"plagiarismpro-be/pkg/analysis"

	"github.com/gofiber/fiber/v2"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Submit(ctx *fiber.Ctx) error
	Job(ctx *fiber.Ctx) error
}

type analysisController struct {
	service service.IAnalysisService
}

func NewAnalysisController(service service.IAnalysisService) IAnalysisController {
	return &analysisController{service: service}
}

func (c *analysisController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/analysis", guard)
	h.Post("", c.Submit)
	h.Get("/jobs/:id", c.Job)
}

// Submit accepts multipart field "file". ?wait=true blocks until the result exists.
func (c *analysisController) Submit(ctx *fiber.Ctx) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return translate(analysis.ErrMissingFile)
	}

	deviceID := serverutils.DeviceID(ctx)
	job, err := c.service.Submit(ctx.UserContext(), deviceID, dto.UploadMeta{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
	})
	if err != nil {
		return translate(err)
	}

	if ctx.QueryBool("wait") {
		done, err := c.service.Await(ctx.UserContext(), deviceID, job.Id)
		if err != nil {
			return translate(err)
		}
		return ctx.JSON(serverutils.SuccessResponse("Analysis complete!", done))
	}

	return ctx.Status(fiber.StatusAccepted).
		JSON(serverutils.SuccessResponseWithCode(fiber.StatusAccepted, "Analysis started", job))
}

func (c *analysisController) Job(ctx *fiber.Ctx) error {
	job, err := c.service.Job(ctx.UserContext(), serverutils.DeviceID(ctx), ctx.Params("id"))
	if err != nil {
		return translate(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show job", job))
}

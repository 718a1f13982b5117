package controller

import (
	"github.com/gofiber/fiber/v2"

	"clinic-assistant-be/internal/dto"
	"clinic-assistant-be/internal/pkg/serverutils"
	"clinic-assistant-be/internal/service"
)

type IIngestController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Ingest(ctx *fiber.Ctx) error
}

type ingestController struct {
	ingestService service.IIngestService
}

func NewIngestController(ingestService service.IIngestService) IIngestController {
	return &ingestController{
		ingestService: ingestService,
	}
}

func (c *ingestController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/ingest/v1")
	h.Use(auth)
	h.Post("", c.Ingest)
}

func (c *ingestController) Ingest(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.IngestDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestService.Ingest(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success queue document", res))
}

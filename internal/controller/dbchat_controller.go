package controller

import (
	"github.com/gofiber/fiber/v2"

	"clinic-assistant-be/internal/dto"
	"clinic-assistant-be/internal/pkg/serverutils"
	"clinic-assistant-be/internal/service"
)

type IDbChatController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Ask(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type dbChatController struct {
	dbChatService service.IDbChatService
}

func NewDbChatController(dbChatService service.IDbChatService) IDbChatController {
	return &dbChatController{
		dbChatService: dbChatService,
	}
}

func (c *dbChatController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/dbchat/v1")
	h.Use(auth)
	h.Post("", c.Ask)
	h.Get("history", c.History)
	h.Delete("history", c.Clear)
}

func (c *dbChatController) Ask(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.DbChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.dbChatService.Ask(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ask database", res))
}

func (c *dbChatController) History(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.dbChatService.GetHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get database chat history", res))
}

func (c *dbChatController) Clear(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	if err := c.dbChatService.ClearHistory(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear database chat history", nil))
}

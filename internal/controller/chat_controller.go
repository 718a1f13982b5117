package controller

import (
	"github.com/gofiber/fiber/v2"

	"clinic-assistant-be/internal/dto"
	"clinic-assistant-be/internal/pkg/serverutils"
	"clinic-assistant-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/chat/v1")
	h.Use(auth)
	h.Post("", c.Send)
	h.Get("history", c.History)
	h.Delete("history", c.Clear)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.chatService.GetHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) Clear(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	if err := c.chatService.ClearHistory(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear chat history", nil))
}

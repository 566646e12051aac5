package controller

import (
	"context"
	"encoding/json"

	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/pkg/serverutils"
	"devonn-assistant-be/internal/service"
	internalWS "devonn-assistant-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler)
	GetMessages(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	ProvideFeedback(ctx *fiber.Ctx) error
	PressButton(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
	hub     *internalWS.Hub
}

func NewChatController(service service.IChatService, hub *internalWS.Hub) IChatController {
	return &chatController{service: service, hub: hub}
}

func (c *chatController) RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler) {
	h := r.Group("/chat/v1", middlewares...)
	h.Get("/messages", c.GetMessages)
	h.Post("/messages", c.SendMessage)
	h.Delete("/messages", c.Clear)
	h.Post("/messages/:id/feedback", c.ProvideFeedback)
	h.Post("/messages/:id/buttons/:buttonId", c.PressButton)
	h.Get("/status", c.Status)
	h.Get("/ws", c.ServeWs)
}

func (c *chatController) GetMessages(ctx *fiber.Ctx) error {
	res := c.service.GetMessages(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success get messages", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) Clear(ctx *fiber.Ctx) error {
	c.service.Clear(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear conversation", nil))
}

func (c *chatController) ProvideFeedback(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.ProvideFeedback(ctx.UserContext(), ctx.Params("id"), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success provide feedback", nil))
}

func (c *chatController) PressButton(ctx *fiber.Ctx) error {
	if err := c.service.PressButton(ctx.UserContext(), ctx.Params("id"), ctx.Params("buttonId")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success press button", nil))
}

func (c *chatController) Status(ctx *fiber.Ctx) error {
	res := c.service.Status(ctx.UserContext())
	return ctx.JSON(serverutils.SuccessResponse("Success get status", res))
}

// ServeWs streams conversation events and accepts InboundFrame commands.
func (c *chatController) ServeWs(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		internalWS.ServeWs(c.hub, conn, c.handleFrame)
	})(ctx)
}

func (c *chatController) handleFrame(client *internalWS.Client, data []byte) {
	reply := c.service.HandleFrame(context.Background(), data)
	payload, err := json.Marshal(reply)
	if err != nil {
		return
	}
	client.Reply(payload)
}

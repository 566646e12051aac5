package controller

import (
	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/pkg/serverutils"
	"devonn-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler)
	ListTurns(ctx *fiber.Ctx) error
}

type analyticsController struct {
	service service.IAnalyticsService
}

func NewAnalyticsController(service service.IAnalyticsService) IAnalyticsController {
	return &analyticsController{service: service}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler) {
	h := r.Group("/analytics/v1", middlewares...)
	h.Get("/turns", c.ListTurns)
}

func (c *analyticsController) ListTurns(ctx *fiber.Ctx) error {
	var query dto.ListTurnsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.service.ListTurns(ctx.UserContext(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list turns", res))
}

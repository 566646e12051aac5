package controller

import (
	"devonn-assistant-be/internal/dto"
	"devonn-assistant-be/internal/pkg/serverutils"
	"devonn-assistant-be/internal/service"
	"devonn-assistant-be/pkg/platform"

	"github.com/gofiber/fiber/v2"
)

type IPlatformController interface {
	RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler)
	State(ctx *fiber.Ctx) error
	UpdateDeployment(ctx *fiber.Ctx) error
	UpsertAPI(ctx *fiber.Ctx) error
	RemoveAPI(ctx *fiber.Ctx) error
	UpsertProcess(ctx *fiber.Ctx) error
	RemoveProcess(ctx *fiber.Ctx) error
}

type platformController struct {
	service service.IPlatformService
}

func NewPlatformController(service service.IPlatformService) IPlatformController {
	return &platformController{service: service}
}

func (c *platformController) RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler) {
	h := r.Group("/platform/v1", middlewares...)
	h.Get("", c.State)
	h.Put("/deployment", c.UpdateDeployment)
	h.Put("/apis", c.UpsertAPI)
	h.Delete("/apis/:name", c.RemoveAPI)
	h.Put("/processes", c.UpsertProcess)
	h.Delete("/processes/:id", c.RemoveProcess)
}

func (c *platformController) State(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get platform state", c.service.State(ctx.UserContext())))
}

func (c *platformController) UpdateDeployment(ctx *fiber.Ctx) error {
	var req dto.UpdateDeploymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.service.UpdateDeployment(ctx.UserContext(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success update deployment", res))
}

func (c *platformController) UpsertAPI(ctx *fiber.Ctx) error {
	var req platform.APIConfig
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.service.UpsertAPI(ctx.UserContext(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success save api", res))
}

func (c *platformController) RemoveAPI(ctx *fiber.Ctx) error {
	if err := c.service.RemoveAPI(ctx.UserContext(), ctx.Params("name")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove api", nil))
}

func (c *platformController) UpsertProcess(ctx *fiber.Ctx) error {
	var req platform.Process
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.service.UpsertProcess(ctx.UserContext(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success save process", res))
}

func (c *platformController) RemoveProcess(ctx *fiber.Ctx) error {
	if err := c.service.RemoveProcess(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove process", nil))
}

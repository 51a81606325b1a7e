package controller

import (
	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/pkg/serverutils"
	"content-discovery-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDiscoveryController interface {
	RegisterRoutes(r fiber.Router)
	GetSuggestions(ctx *fiber.Ctx) error
	TryNewTopics(ctx *fiber.Ctx) error
}

type discoveryController struct {
	service service.IDiscoveryService
}

func NewDiscoveryController(service service.IDiscoveryService) IDiscoveryController {
	return &discoveryController{service: service}
}

func (c *discoveryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/discovery")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/suggestions", c.GetSuggestions)
	h.Post("/try-new", c.TryNewTopics)
}

func (c *discoveryController) GetSuggestions(ctx *fiber.Ctx) error {
	res, err := c.service.GetSuggestions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *discoveryController) TryNewTopics(ctx *fiber.Ctx) error {
	var req dto.TryNewTopicsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(serverutils.CodeBadRequest, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(serverutils.CodeValidation, err.Error()))
	}

	res, err := c.service.TryNewTopics(ctx.Context(), req.Interests)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

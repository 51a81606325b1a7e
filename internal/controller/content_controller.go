package controller

import (
	"errors"
	"strconv"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/pkg/serverutils"
	"content-discovery-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	GetFeed(ctx *fiber.Ctx) error
	GetContent(ctx *fiber.Ctx) error
	Interact(ctx *fiber.Ctx) error
}

type contentController struct {
	feedService        service.IFeedService
	interactionService service.IInteractionService
}

func NewContentController(feedService service.IFeedService, interactionService service.IInteractionService) IContentController {
	return &contentController{
		feedService:        feedService,
		interactionService: interactionService,
	}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/feed", c.GetFeed)
	h.Get("/:id", c.GetContent)
	h.Post("/:id/interact", c.Interact)
}

func (c *contentController) GetFeed(ctx *fiber.Ctx) error {
	query := dto.FeedQuery{
		Limit:       ctx.QueryInt("limit", 0),
		Offset:      ctx.QueryInt("offset", 0),
		ContentType: ctx.Query("contentType"),
	}

	// "sources" may repeat
	for _, raw := range ctx.Context().QueryArgs().PeekMulti("sources") {
		query.Sources = append(query.Sources, string(raw))
	}

	if raw := ctx.Query("minReliability"); raw != "" {
		minReliability, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(serverutils.CodeBadRequest, "invalid minReliability"))
		}
		query.MinReliability = &minReliability
	}

	res, err := c.feedService.GetFeed(ctx.Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *contentController) GetContent(ctx *fiber.Ctx) error {
	res, err := c.feedService.GetContent(ctx.Context(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(serverutils.CodeNotFound, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *contentController) Interact(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)

	var req dto.InteractionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(serverutils.CodeBadRequest, "invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(serverutils.CodeValidation, err.Error()))
	}

	res, err := c.interactionService.Record(ctx.Context(), userIdStr, ctx.Params("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInteraction) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(serverutils.CodeBadRequest, err.Error()))
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

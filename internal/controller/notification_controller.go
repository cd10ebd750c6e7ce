package controller

import (
	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/serverutils"
	"note-sharing-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	UnreadCount(ctx *fiber.Ctx) error
}

type notificationController struct {
	notificationService service.INotificationService
	jwtMiddleware       fiber.Handler
}

func NewNotificationController(notificationService service.INotificationService, jwtMiddleware fiber.Handler) INotificationController {
	return &notificationController{
		notificationService: notificationService,
		jwtMiddleware:       jwtMiddleware,
	}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notification/v1")
	h.Use(c.jwtMiddleware)
	h.Get("", c.List)
	h.Get("unread-count", c.UnreadCount)
	h.Put(":id/read", c.MarkRead)
}

func (c *notificationController) List(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	var query dto.PageQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperr.Validation("malformed query parameters")
	}

	res, err := c.notificationService.List(ctx.Context(), caller, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get notifications", res))
}

func (c *notificationController) MarkRead(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.notificationService.MarkRead(ctx.Context(), caller, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success mark notification read", nil))
}

func (c *notificationController) UnreadCount(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	count, err := c.notificationService.CountUnread(ctx.Context(), caller)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get unread count", fiber.Map{"count": count}))
}

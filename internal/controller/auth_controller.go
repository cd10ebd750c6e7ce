package controller

import (
	"time"

	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/serverutils"
	"note-sharing-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	authService   service.IAuthService
	jwtMiddleware fiber.Handler
}

func NewAuthController(authService service.IAuthService, jwtMiddleware fiber.Handler) IAuthController {
	return &authController{
		authService:   authService,
		jwtMiddleware: jwtMiddleware,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("login", c.Login)
	h.Post("logout", c.jwtMiddleware, c.Logout)
	h.Get("me", c.jwtMiddleware, c.Me)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	jti, _ := ctx.Locals("jti").(string)

	expiresAt := time.Now()
	if exp, ok := ctx.Locals("exp").(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	c.authService.Logout(ctx.Context(), jti, expiresAt)
	return ctx.JSON(serverutils.SuccessResponse[any]("Success logout", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	res, err := c.authService.Me(ctx.Context(), caller.UserId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

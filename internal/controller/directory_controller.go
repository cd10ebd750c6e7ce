package controller

import (
	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/serverutils"
	"note-sharing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDirectoryController interface {
	RegisterRoutes(r fiber.Router)
	ListPublic(ctx *fiber.Ctx) error
	ShowPublic(ctx *fiber.Ctx) error
	ListPrivate(ctx *fiber.Ctx) error
}

// directoryController serves the public note directory and the private
// workspace listing. The public routes carry the optional JWT middleware
// so an authenticated user can open their own private notes by id.
type directoryController struct {
	directoryService service.IDirectoryService
	noteService      service.INoteService
	jwtMiddleware    fiber.Handler
	optionalJwt      fiber.Handler
}

func NewDirectoryController(
	directoryService service.IDirectoryService,
	noteService service.INoteService,
	jwtMiddleware fiber.Handler,
	optionalJwt fiber.Handler,
) IDirectoryController {
	return &directoryController{
		directoryService: directoryService,
		noteService:      noteService,
		jwtMiddleware:    jwtMiddleware,
		optionalJwt:      optionalJwt,
	}
}

func (c *directoryController) RegisterRoutes(r fiber.Router) {
	pub := r.Group("/public/v1")
	pub.Get("notes", c.ListPublic)
	pub.Get("notes/:id", c.optionalJwt, c.ShowPublic)

	priv := r.Group("/workspace/v1")
	priv.Use(c.jwtMiddleware)
	priv.Get(":id/notes", c.ListPrivate)
}

func (c *directoryController) ListPublic(ctx *fiber.Ctx) error {
	var query dto.PublicListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperr.Validation("malformed query parameters")
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.directoryService.ListPublic(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get public notes", res))
}

func (c *directoryController) ShowPublic(ctx *fiber.Ctx) error {
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	var requesterCompanyId *uuid.UUID
	if _, companyId, ok := serverutils.CallerIdentity(ctx); ok {
		requesterCompanyId = &companyId
	}

	res, err := c.noteService.Show(ctx.Context(), requesterCompanyId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *directoryController) ListPrivate(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	workspaceId, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	var query dto.PrivateListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperr.Validation("malformed query parameters")
	}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.directoryService.ListPrivate(ctx.Context(), caller, workspaceId, &query)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get workspace notes", res))
}

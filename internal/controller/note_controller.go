package controller

import (
	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/serverutils"
	"note-sharing-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Vote(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService    service.INoteService
	voteService    service.IVoteService
	historyService service.IHistoryService
	jwtMiddleware  fiber.Handler
}

func NewNoteController(
	noteService service.INoteService,
	voteService service.IVoteService,
	historyService service.IHistoryService,
	jwtMiddleware fiber.Handler,
) INoteController {
	return &noteController{
		noteService:    noteService,
		voteService:    voteService,
		historyService: historyService,
		jwtMiddleware:  jwtMiddleware,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Use(c.jwtMiddleware)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/vote", c.Vote)
	h.Get(":id/history", c.History)
	h.Post("history/:historyId/restore", c.Restore)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), caller, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("malformed request body")
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), caller, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), caller, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) Vote(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.VoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.voteService.Cast(ctx.Context(), caller, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success cast vote", res))
}

func (c *noteController) History(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	id, err := paramUUID(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.historyService.List(ctx.Context(), caller, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get note history", res))
}

func (c *noteController) Restore(ctx *fiber.Ctx) error {
	caller, err := requireCaller(ctx)
	if err != nil {
		return err
	}
	historyId, err := paramUUID(ctx, "historyId")
	if err != nil {
		return err
	}

	res, err := c.historyService.Restore(ctx.Context(), caller, historyId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success restore note", res))
}

// requireCaller reads the identity set by the JWT middleware.
func requireCaller(ctx *fiber.Ctx) (service.Caller, error) {
	userId, companyId, ok := serverutils.CallerIdentity(ctx)
	if !ok {
		return service.Caller{}, apperr.Unauthorized("missing caller identity")
	}
	return service.Caller{UserId: userId, CompanyId: companyId}, nil
}

func paramUUID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid " + name + " parameter")
	}
	return id, nil
}

package controller

import (
	"note-sharing-be/internal/dto"
	"note-sharing-be/internal/pkg/apperr"
	"note-sharing-be/internal/pkg/serverutils"
	"note-sharing-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICompanyController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
}

type companyController struct {
	companyService service.ICompanyService
}

func NewCompanyController(companyService service.ICompanyService) ICompanyController {
	return &companyController{companyService: companyService}
}

func (c *companyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/company/v1")
	h.Post("register", c.Register)
}

func (c *companyController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterCompanyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.companyService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register company", res))
}

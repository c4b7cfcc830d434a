// FILE: internal/controller/plan_controller.go
// Public catalog endpoints: plans, categories, questions, papers.
package controller

import (
	"exam-prep-be/internal/pkg/serverutils"
	"exam-prep-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
}

type planController struct {
	planService    service.IPlanService
	catalogService service.ICatalogService
}

func NewPlanController(planService service.IPlanService, catalogService service.ICatalogService) IPlanController {
	return &planController{
		planService:    planService,
		catalogService: catalogService,
	}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	r.Get("/plans", c.GetPlans)
	r.Get("/plans/:slug", c.GetPlanBySlug)

	r.Get("/categories", c.GetCategories)
	r.Get("/questions", c.GetQuestions)
	r.Get("/papers", c.GetPapers)
}

func (c *planController) GetPlans(ctx *fiber.Ctx) error {
	res, err := c.planService.GetPlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", res))
}

func (c *planController) GetPlanBySlug(ctx *fiber.Ctx) error {
	res, err := c.planService.GetPlanBySlug(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan retrieved", res))
}

func (c *planController) GetCategories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetCategoryTree(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories retrieved", res))
}

func parseCategoryFilter(ctx *fiber.Ctx) (*uuid.UUID, error) {
	categoryStr := ctx.Query("category_id")
	if categoryStr == "" {
		return nil, nil
	}
	categoryId, err := uuid.Parse(categoryStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid category_id format")
	}
	return &categoryId, nil
}

func (c *planController) GetQuestions(ctx *fiber.Ctx) error {
	categoryId, err := parseCategoryFilter(ctx)
	if err != nil {
		return err
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.catalogService.GetQuestions(ctx.Context(), categoryId, limit, offset, false)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Questions retrieved", res))
}

func (c *planController) GetPapers(ctx *fiber.Ctx) error {
	categoryId, err := parseCategoryFilter(ctx)
	if err != nil {
		return err
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.catalogService.GetPapers(ctx.Context(), categoryId, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Papers retrieved", res))
}

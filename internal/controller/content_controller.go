// FILE: internal/controller/content_controller.go
// Public site content: editable page blocks, team roster, contact form.
package controller

import (
	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/pkg/serverutils"
	"exam-prep-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
}

type contentController struct {
	contentService service.IContentService
	supportService service.ISupportService
}

func NewContentController(contentService service.IContentService, supportService service.ISupportService) IContentController {
	return &contentController{
		contentService: contentService,
		supportService: supportService,
	}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	r.Get("/content/:key", c.GetContent)
	r.Get("/team", c.GetTeamMembers)
	r.Post("/contact", c.CreateSubmission)
}

func (c *contentController) GetContent(ctx *fiber.Ctx) error {
	res, err := c.contentService.GetContent(ctx.Context(), ctx.Params("key"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Content retrieved", res))
}

func (c *contentController) GetTeamMembers(ctx *fiber.Ctx) error {
	res, err := c.contentService.GetTeamMembers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Team retrieved", res))
}

// CreateSubmission takes the public contact form; no login required.
func (c *contentController) CreateSubmission(ctx *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if v := req.Variant(); v != nil {
		if err := serverutils.ValidateRequest(v); err != nil {
			return err
		}
	}

	res, err := c.supportService.CreateSubmission(ctx.Context(), nil, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Submission received", res))
}

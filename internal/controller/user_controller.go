// FILE: internal/controller/user_controller.go
package controller

import (
	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/pkg/serverutils"
	"exam-prep-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
}

type userController struct {
	userService         service.IUserService
	subscriptionService service.ISubscriptionService
	usageService        service.IUsageService
	paymentService      service.IPaymentService
	supportService      service.ISupportService
}

func NewUserController(
	userService service.IUserService,
	subscriptionService service.ISubscriptionService,
	usageService service.IUsageService,
	paymentService service.IPaymentService,
	supportService service.ISupportService,
) IUserController {
	return &userController{
		userService:         userService,
		subscriptionService: subscriptionService,
		usageService:        usageService,
		paymentService:      paymentService,
		supportService:      supportService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(serverutils.JwtMiddleware)

	h.Get("/profile", c.GetProfile)
	h.Put("/profile", c.UpdateProfile)
	h.Delete("/profile", c.DeleteAccount)

	h.Get("/subscription", c.GetSubscription)
	h.Get("/subscription/history", c.GetSubscriptionHistory)
	h.Post("/subscription/cancel", c.CancelSubscription)

	h.Get("/usage", c.GetUsage)

	h.Get("/bookmarks", c.GetBookmarks)
	h.Post("/bookmarks", c.CreateBookmark)
	h.Delete("/bookmarks/:id", c.DeleteBookmark)

	h.Post("/downloads", c.RecordDownload)

	h.Get("/orders", c.GetOrders)
	h.Get("/orders/:id", c.GetOrder)

	h.Get("/tickets", c.GetTickets)
	h.Post("/tickets", c.CreateTicket)
	h.Get("/tickets/:id", c.GetTicket)
	h.Post("/tickets/:id/replies", c.ReplyTicket)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

// --- Profile ---

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	res, err := c.userService.GetProfile(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile retrieved", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.UpdateProfile(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *userController) DeleteAccount(ctx *fiber.Ctx) error {
	if err := c.userService.DeleteAccount(ctx.Context(), currentUserId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account deleted", nil))
}

// --- Subscription ---

func (c *userController) GetSubscription(ctx *fiber.Ctx) error {
	res, err := c.subscriptionService.GetStatus(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription status", res))
}

func (c *userController) GetSubscriptionHistory(ctx *fiber.Ctx) error {
	res, err := c.subscriptionService.GetHistory(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan history", res))
}

func (c *userController) CancelSubscription(ctx *fiber.Ctx) error {
	if err := c.subscriptionService.Cancel(ctx.Context(), currentUserId(ctx), "user cancellation"); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Subscription cancelled", nil))
}

// --- Usage ---

func (c *userController) GetUsage(ctx *fiber.Ctx) error {
	res, err := c.usageService.GetUsage(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Usage retrieved", res))
}

// --- Bookmarks ---

func (c *userController) GetBookmarks(ctx *fiber.Ctx) error {
	res, err := c.usageService.GetBookmarks(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Bookmarks retrieved", res))
}

func (c *userController) CreateBookmark(ctx *fiber.Ctx) error {
	var req dto.CreateBookmarkRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.usageService.CreateBookmark(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Bookmark created", res))
}

func (c *userController) DeleteBookmark(ctx *fiber.Ctx) error {
	bookmarkId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ID"))
	}

	if err := c.usageService.DeleteBookmark(ctx.Context(), currentUserId(ctx), bookmarkId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Bookmark deleted", nil))
}

// --- Downloads ---

func (c *userController) RecordDownload(ctx *fiber.Ctx) error {
	var req dto.RecordDownloadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.usageService.RecordDownload(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Download recorded", res))
}

// --- Orders ---

func (c *userController) GetOrders(ctx *fiber.Ctx) error {
	res, err := c.paymentService.GetUserOrders(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Orders retrieved", res))
}

func (c *userController) GetOrder(ctx *fiber.Ctx) error {
	orderId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ID"))
	}

	res, err := c.paymentService.GetOrder(ctx.Context(), currentUserId(ctx), orderId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Order retrieved", res))
}

// --- Support tickets ---

func (c *userController) GetTickets(ctx *fiber.Ctx) error {
	res, err := c.supportService.GetUserSubmissions(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tickets retrieved", res))
}

func (c *userController) CreateTicket(ctx *fiber.Ctx) error {
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

	userId := currentUserId(ctx)
	res, err := c.supportService.CreateSubmission(ctx.Context(), &userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Ticket created", res))
}

func (c *userController) GetTicket(ctx *fiber.Ctx) error {
	ticketId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ID"))
	}

	userId := currentUserId(ctx)
	res, err := c.supportService.GetSubmission(ctx.Context(), ticketId, &userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Ticket retrieved", res))
}

func (c *userController) ReplyTicket(ctx *fiber.Ctx) error {
	ticketId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ID"))
	}

	var req dto.TicketReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.supportService.Reply(ctx.Context(), ticketId, currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reply added", res))
}

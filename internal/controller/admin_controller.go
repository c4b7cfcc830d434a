// FILE: internal/controller/admin_controller.go
package controller

import (
	"os"
	"strings"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/serverutils"
	"exam-prep-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	adminService    service.IAdminService
	authService     service.IAuthService
	planService     service.IPlanService
	discountService service.IDiscountService
	paymentService  service.IPaymentService
	catalogService  service.ICatalogService
	contentService  service.IContentService
	supportService  service.ISupportService
}

func NewAdminController(
	adminService service.IAdminService,
	authService service.IAuthService,
	planService service.IPlanService,
	discountService service.IDiscountService,
	paymentService service.IPaymentService,
	catalogService service.ICatalogService,
	contentService service.IContentService,
	supportService service.ISupportService,
) IAdminController {
	return &adminController{
		adminService:    adminService,
		authService:     authService,
		planService:     planService,
		discountService: discountService,
		paymentService:  paymentService,
		catalogService:  catalogService,
		contentService:  contentService,
		supportService:  supportService,
	}
}

// adminMiddleware guards everything below /admin/login. The token must
// carry role=admin.
func (c *adminController) adminMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing or invalid token"))
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token claims"))
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Admin access required"))
	}

	if userId, ok := claims["user_id"].(string); ok {
		ctx.Locals("user_id", userId)
	}
	return ctx.Next()
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")

	h.Post("/login", c.Login)
	h.Use(c.adminMiddleware)

	// Dashboard
	h.Get("/dashboard", c.GetDashboard)

	// Users
	h.Get("/users", c.GetUsers)
	h.Get("/users/:id", c.GetUser)
	h.Put("/users/:id/status", c.UpdateUserStatus)
	h.Post("/users/:id/plan", c.ChangeUserPlan)

	// Orders
	h.Get("/orders", c.GetOrders)
	h.Post("/orders/:id/process", c.ProcessOrder)

	// Plan Management
	h.Get("/plans", c.GetPlans)
	h.Post("/plans", c.CreatePlan)
	h.Put("/plans/:id", c.UpdatePlan)
	h.Delete("/plans/:id", c.DeletePlan)
	h.Post("/plans/:id/options", c.AddPricingOption)
	h.Delete("/plans/:id/options/:optionId", c.RemovePricingOption)
	h.Post("/plans/:id/features", c.AddFeature)
	h.Delete("/plans/:id/features/:featureId", c.RemoveFeature)

	// Discounts
	h.Get("/discounts", c.GetDiscounts)
	h.Post("/discounts", c.CreateDiscount)
	h.Put("/discounts/:id", c.UpdateDiscount)
	h.Delete("/discounts/:id", c.DeleteDiscount)

	// Payment Methods
	h.Get("/payment-methods", c.GetPaymentMethods)
	h.Post("/payment-methods", c.CreatePaymentMethod)
	h.Put("/payment-methods/:id", c.UpdatePaymentMethod)
	h.Delete("/payment-methods/:id", c.DeletePaymentMethod)

	// Catalog
	h.Get("/categories", c.GetCategories)
	h.Get("/categories/tree", c.GetCategoryTree)
	h.Post("/categories", c.CreateCategory)
	h.Put("/categories/:id", c.UpdateCategory)
	h.Delete("/categories/:id", c.DeleteCategory)

	h.Get("/questions", c.GetQuestions)
	h.Get("/questions/:id", c.GetQuestion)
	h.Post("/questions", c.CreateQuestion)
	h.Put("/questions/:id", c.UpdateQuestion)
	h.Delete("/questions/:id", c.DeleteQuestion)

	h.Get("/papers", c.GetPapers)
	h.Post("/papers", c.CreatePaper)
	h.Put("/papers/:id", c.UpdatePaper)
	h.Delete("/papers/:id", c.DeletePaper)

	// Site Content
	h.Put("/content/:key", c.UpsertContent)

	h.Get("/team", c.GetTeamMembers)
	h.Post("/team", c.CreateTeamMember)
	h.Put("/team/:id", c.UpdateTeamMember)
	h.Delete("/team/:id", c.DeleteTeamMember)

	h.Get("/email-templates", c.GetEmailTemplates)
	h.Put("/email-templates", c.UpsertEmailTemplate)
	h.Delete("/email-templates/:id", c.DeleteEmailTemplate)

	// Tickets
	h.Get("/tickets", c.GetTickets)
	h.Get("/tickets/:id", c.GetTicket)
	h.Post("/tickets/:id/replies", c.ReplyTicket)
	h.Put("/tickets/:id/read", c.MarkTicketRead)
	h.Put("/tickets/:id/status", c.SetTicketStatus)
	h.Post("/tickets/:id/close", c.CloseTicket)

	// Logs
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

func parsePathId(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	return id, nil
}

// --- Auth ---

func (c *adminController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.LoginAdmin(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

// --- Dashboard ---

func (c *adminController) GetDashboard(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetDashboardStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

// --- Users ---

func (c *adminController) GetUsers(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.GetUsers(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Users retrieved", res))
}

func (c *adminController) GetUser(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.adminService.GetUser(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User retrieved", res))
}

func (c *adminController) UpdateUserStatus(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.UpdateUserStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User status updated", res))
}

func (c *adminController) ChangeUserPlan(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AdminChangePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.adminService.ChangeUserPlan(ctx.Context(), id, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User plan changed", nil))
}

// --- Orders ---

func (c *adminController) GetOrders(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.paymentService.GetAllOrders(ctx.Context(), status, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Orders retrieved", res))
}

func (c *adminController) ProcessOrder(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.ProcessOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.ProcessOrder(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Order processed", res))
}

// --- Plans ---

func (c *adminController) GetPlans(ctx *fiber.Ctx) error {
	res, err := c.planService.GetAllPlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans retrieved", res))
}

func (c *adminController) CreatePlan(ctx *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.planService.CreatePlan(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", res))
}

func (c *adminController) UpdatePlan(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.planService.UpdatePlan(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", res))
}

func (c *adminController) DeletePlan(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.planService.DeletePlan(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Plan deleted", nil))
}

func (c *adminController) AddPricingOption(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CreatePricingOptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.planService.AddPricingOption(ctx.Context(), id, &req); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse[any]("Pricing option added", nil))
}

func (c *adminController) RemovePricingOption(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}
	optionId, err := parsePathId(ctx, "optionId")
	if err != nil {
		return err
	}

	if err := c.planService.RemovePricingOption(ctx.Context(), id, optionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Pricing option removed", nil))
}

func (c *adminController) AddFeature(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CreatePlanFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.planService.AddFeature(ctx.Context(), id, &req); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse[any]("Feature added", nil))
}

func (c *adminController) RemoveFeature(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}
	featureId, err := parsePathId(ctx, "featureId")
	if err != nil {
		return err
	}

	if err := c.planService.RemoveFeature(ctx.Context(), id, featureId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feature removed", nil))
}

// --- Discounts ---

func (c *adminController) GetDiscounts(ctx *fiber.Ctx) error {
	res, err := c.discountService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Discounts retrieved", res))
}

func (c *adminController) CreateDiscount(ctx *fiber.Ctx) error {
	var req dto.UpsertDiscountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.discountService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Discount created", res))
}

func (c *adminController) UpdateDiscount(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpsertDiscountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.discountService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Discount updated", res))
}

func (c *adminController) DeleteDiscount(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.discountService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Discount deleted", nil))
}

// --- Payment Methods ---

func (c *adminController) GetPaymentMethods(ctx *fiber.Ctx) error {
	res, err := c.paymentService.GetAllPaymentMethods(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment methods retrieved", res))
}

func (c *adminController) CreatePaymentMethod(ctx *fiber.Ctx) error {
	var req dto.UpsertPaymentMethodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.CreatePaymentMethod(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Payment method created", res))
}

func (c *adminController) UpdatePaymentMethod(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpsertPaymentMethodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.UpdatePaymentMethod(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment method updated", res))
}

func (c *adminController) DeletePaymentMethod(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.paymentService.DeletePaymentMethod(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Payment method deleted", nil))
}

// --- Categories ---

func (c *adminController) GetCategories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetFlatCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories retrieved", res))
}

func (c *adminController) GetCategoryTree(ctx *fiber.Ctx) error {
	res, err := c.catalogService.GetCategoryTree(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category tree retrieved", res))
}

func (c *adminController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.UpsertCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Category created", res))
}

func (c *adminController) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpsertCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateCategory(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Category updated", res))
}

func (c *adminController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.catalogService.DeleteCategory(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Category deleted", nil))
}

// --- Questions ---

func (c *adminController) GetQuestions(ctx *fiber.Ctx) error {
	categoryId, err := parseCategoryFilter(ctx)
	if err != nil {
		return err
	}
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.catalogService.GetQuestions(ctx.Context(), categoryId, limit, offset, true)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Questions retrieved", res))
}

func (c *adminController) GetQuestion(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.catalogService.GetQuestion(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Question retrieved", res))
}

func (c *adminController) CreateQuestion(ctx *fiber.Ctx) error {
	var req dto.UpsertQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateQuestion(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Question created", res))
}

func (c *adminController) UpdateQuestion(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpsertQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateQuestion(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Question updated", res))
}

func (c *adminController) DeleteQuestion(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.catalogService.DeleteQuestion(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Question deleted", nil))
}

// --- Papers ---

func (c *adminController) GetPapers(ctx *fiber.Ctx) error {
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

func (c *adminController) CreatePaper(ctx *fiber.Ctx) error {
	var req dto.UpsertPaperRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreatePaper(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Paper created", res))
}

func (c *adminController) UpdatePaper(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpsertPaperRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdatePaper(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Paper updated", res))
}

func (c *adminController) DeletePaper(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.catalogService.DeletePaper(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Paper deleted", nil))
}

// --- Site Content ---

func (c *adminController) UpsertContent(ctx *fiber.Ctx) error {
	key := ctx.Params("key")

	var req dto.UpsertContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.UpsertContent(ctx.Context(), key, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Content saved", res))
}

func (c *adminController) GetTeamMembers(ctx *fiber.Ctx) error {
	res, err := c.contentService.GetTeamMembers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Team members retrieved", res))
}

func (c *adminController) CreateTeamMember(ctx *fiber.Ctx) error {
	var req dto.UpsertTeamMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.CreateTeamMember(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Team member created", res))
}

func (c *adminController) UpdateTeamMember(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpsertTeamMemberRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.UpdateTeamMember(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Team member updated", res))
}

func (c *adminController) DeleteTeamMember(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.contentService.DeleteTeamMember(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Team member deleted", nil))
}

func (c *adminController) GetEmailTemplates(ctx *fiber.Ctx) error {
	res, err := c.contentService.GetEmailTemplates(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Email templates retrieved", res))
}

func (c *adminController) UpsertEmailTemplate(ctx *fiber.Ctx) error {
	var req dto.UpsertEmailTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.contentService.UpsertEmailTemplate(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Email template saved", res))
}

func (c *adminController) DeleteEmailTemplate(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.contentService.DeleteEmailTemplate(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Email template deleted", nil))
}

// --- Tickets ---

func (c *adminController) GetTickets(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.supportService.GetAllSubmissions(ctx.Context(), status, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Tickets retrieved", res))
}

func (c *adminController) GetTicket(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	// Viewing a ticket marks it read.
	if err := c.supportService.MarkRead(ctx.Context(), id); err != nil {
		return err
	}

	res, err := c.supportService.GetSubmission(ctx.Context(), id, nil)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Ticket retrieved", res))
}

func (c *adminController) ReplyTicket(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.TicketReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.supportService.Reply(ctx.Context(), id, currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reply added", res))
}

func (c *adminController) MarkTicketRead(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.supportService.MarkRead(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Ticket marked read", nil))
}

func (c *adminController) SetTicketStatus(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTicketStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.supportService.SetStatus(ctx.Context(), id, entity.TicketStatus(req.Status)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Ticket status updated", nil))
}

func (c *adminController) CloseTicket(ctx *fiber.Ctx) error {
	id, err := parsePathId(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.supportService.Close(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Ticket closed", nil))
}

// --- Logs ---

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	var req dto.LogQueryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.adminService.GetLogs(&req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Logs retrieved", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetLogDetail(ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Log retrieved", res))
}

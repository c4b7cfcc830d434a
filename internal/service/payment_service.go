// FILE: internal/service/payment_service.go
package service

import (
	"context"
	"crypto/sha512"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"

	"exam-prep-be/pkg/events"
	"exam-prep-be/pkg/lock"
	pktNats "exam-prep-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	GetPaymentMethods(ctx context.Context) ([]*dto.PaymentMethodResponse, error)
	GetOrderSummary(ctx context.Context, req *dto.OrderSummaryRequest) (*dto.OrderSummaryResponse, error)
	Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error

	GetUserOrders(ctx context.Context, userId uuid.UUID) ([]*dto.OrderResponse, error)
	GetOrder(ctx context.Context, userId, orderId uuid.UUID) (*dto.OrderResponse, error)

	// Admin
	GetAllOrders(ctx context.Context, status string, limit, offset int) (*dto.PaginatedResponse[*dto.OrderResponse], error)
	ProcessOrder(ctx context.Context, orderId uuid.UUID, req *dto.ProcessOrderRequest) (*dto.OrderResponse, error)

	GetAllPaymentMethods(ctx context.Context) ([]*dto.PaymentMethodResponse, error)
	CreatePaymentMethod(ctx context.Context, req *dto.UpsertPaymentMethodRequest) (*dto.PaymentMethodResponse, error)
	UpdatePaymentMethod(ctx context.Context, id uuid.UUID, req *dto.UpsertPaymentMethodRequest) (*dto.PaymentMethodResponse, error)
	DeletePaymentMethod(ctx context.Context, id uuid.UUID) error
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	locker         lock.Locker
	eventPublisher *pktNats.Publisher
	emailJobs      IPublisherService
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	locker lock.Locker,
	eventPublisher *pktNats.Publisher,
	emailJobs IPublisherService,
) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		locker:         locker,
		eventPublisher: eventPublisher,
		emailJobs:      emailJobs,
	}
}

func (s *paymentService) GetPaymentMethods(ctx context.Context) ([]*dto.PaymentMethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	methods, err := uow.PaymentMethodRepository().FindAll(ctx,
		specification.EnabledOnly{},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.PaymentMethodResponse, len(methods))
	for i, m := range methods {
		res[i] = toPaymentMethodResponse(m)
	}
	return res, nil
}

func (s *paymentService) GetOrderSummary(ctx context.Context, req *dto.OrderSummaryRequest) (*dto.OrderSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, apperror.NotFound("plan")
	}
	option := plan.Option(req.OptionLabel)
	if option == nil {
		return nil, apperror.NotFound("pricing option")
	}

	summary := &dto.OrderSummaryResponse{
		PlanName:      plan.Name,
		OptionLabel:   option.Label,
		OriginalPrice: option.Price,
		FinalAmount:   option.Price,
	}

	if req.DiscountCode != "" {
		discount, _, err := resolveDiscount(ctx, uow, req.DiscountCode, req.PlanId, req.OptionLabel)
		if err != nil {
			return nil, err
		}
		amount := discount.AmountFor(option.Price)
		summary.DiscountCode = discount.Code
		summary.DiscountAmount = amount
		summary.FinalAmount = option.Price - amount
	}

	return summary, nil
}

func (s *paymentService) Checkout(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, apperror.NotFound("plan")
	}
	option := plan.Option(req.OptionLabel)
	if option == nil {
		return nil, apperror.NotFound("pricing option")
	}

	method, err := uow.PaymentMethodRepository().FindOne(ctx,
		specification.CodeMatches{Code: req.PaymentMethod},
		specification.EnabledOnly{},
	)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, apperror.NotFound("payment method")
	}

	order := &entity.Order{
		Id:                 uuid.New(),
		UserId:             userId,
		PlanId:             plan.Id,
		PricingOptionLabel: option.Label,
		OriginalPrice:      option.Price,
		FinalAmount:        option.Price,
		PaymentMethod:      method.Code,
		Status:             entity.OrderStatusPending,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if req.DiscountCode != "" {
		discount, _, err := resolveDiscount(ctx, uow, req.DiscountCode, req.PlanId, req.OptionLabel)
		if err != nil {
			return nil, err
		}
		amount := discount.AmountFor(option.Price)
		order.DiscountCode = &discount.Code
		order.DiscountAmount = amount
		order.FinalAmount = option.Price - amount
	}

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	// Fully discounted orders settle immediately, no payment involved.
	if order.FinalAmount == 0 {
		processed, err := s.completeOrder(ctx, order.Id, "fully discounted")
		if err != nil {
			return nil, err
		}
		return &dto.CheckoutResponse{
			OrderId:     processed.Id,
			Status:      string(processed.Status),
			FinalAmount: 0,
		}, nil
	}

	res := &dto.CheckoutResponse{
		OrderId:     order.Id,
		Status:      string(order.Status),
		FinalAmount: order.FinalAmount,
	}

	switch method.Kind {
	case entity.PaymentMethodKindManual:
		res.Instructions = method.Instructions
	case entity.PaymentMethodKindGateway:
		snapResp, err := s.createSnapTransaction(order, plan, user)
		if err != nil {
			return nil, err
		}
		res.SnapToken = snapResp.Token
		res.SnapRedirectUrl = snapResp.RedirectURL
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeOrderCreated,
			Data: map[string]interface{}{
				"order_id":  order.Id,
				"user_id":   userId,
				"plan_name": plan.Name,
				"amount":    order.FinalAmount,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish order.created event: %v\n", err)
		}
	}

	return res, nil
}

func (s *paymentService) createSnapTransaction(order *entity.Order, plan *entity.Plan, user *entity.User) (*snap.Response, error) {
	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	frontendURL := os.Getenv("FRONTEND_URL")
	finishRedirectURL := fmt.Sprintf("%s/account?payment=success", frontendURL)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.Id.String(),
			GrossAmt: int64(order.FinalAmount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.Id.String(),
				Price: int64(order.FinalAmount),
				Qty:   1,
				Name:  fmt.Sprintf("%s (%s)", plan.Name, order.PricingOptionLabel),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}
	return snapResp, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	fmt.Printf("\n[WEBHOOK] ========== Processing Notification ==========\n")
	fmt.Printf("[WEBHOOK] OrderId: %s | Status: %s\n", req.OrderId, req.TransactionStatus)

	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		fmt.Println("[WEBHOOK ERROR] MIDTRANS_SERVER_KEY not configured")
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))

	if req.SignatureKey != expectedSignature {
		fmt.Printf("[WEBHOOK ERROR] Signature mismatch for OrderId=%s\n", req.OrderId)
		return fmt.Errorf("invalid signature")
	}

	orderId, err := uuid.Parse(req.OrderId)
	if err != nil {
		fmt.Printf("[WEBHOOK ERROR] Invalid order_id format: %s\n", req.OrderId)
		return fmt.Errorf("invalid order id format")
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		ref := req.TransactionId
		_, err := s.settleOrder(ctx, orderId, entity.OrderStatusCompleted, "gateway settlement", &ref)
		return err
	case "deny", "cancel", "expire":
		_, err := s.settleOrder(ctx, orderId, entity.OrderStatusFailed, "gateway "+req.TransactionStatus, nil)
		return err
	case "pending":
		fmt.Printf("[WEBHOOK] Payment PENDING - no action needed\n")
		return nil
	default:
		fmt.Printf("[WEBHOOK] Unknown status '%s' - no action taken\n", req.TransactionStatus)
		return nil
	}
}

func (s *paymentService) completeOrder(ctx context.Context, orderId uuid.UUID, remarks string) (*entity.Order, error) {
	return s.settleOrder(ctx, orderId, entity.OrderStatusCompleted, remarks, nil)
}

// settleOrder moves a pending order into a terminal state. Completion
// and the plan change land in the same transaction, serialized with
// ChangePlan/Cancel through the per-user plan lock. Re-delivery of the
// same terminal status is a no-op.
func (s *paymentService) settleOrder(ctx context.Context, orderId uuid.UUID, target entity.OrderStatus, remarks string, gatewayRef *string) (*entity.Order, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NotFound("order")
	}

	// Idempotency: webhooks and admins may retry.
	if order.Status == target {
		return order, nil
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, apperror.Conflict(fmt.Sprintf("order is %s, cannot move to %s", order.Status, target))
	}

	if s.locker != nil {
		token, err := s.locker.TryLock(ctx, userPlanLockKey(order.UserId), 10*time.Second)
		if err != nil {
			return nil, apperror.Conflict("another plan change is in progress")
		}
		defer s.locker.Unlock(ctx, userPlanLockKey(order.UserId), token)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: order.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	var plan *entity.Plan
	var option *entity.PricingOption
	if target == entity.OrderStatusCompleted {
		plan, err = uow.PlanRepository().FindOne(ctx, specification.ByID{ID: order.PlanId})
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, apperror.NotFound("plan")
		}
		option = plan.Option(order.PricingOptionLabel)
		if option == nil {
			return nil, apperror.NotFound("pricing option")
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	order.Status = target
	order.UpdatedAt = time.Now()
	if gatewayRef != nil {
		order.GatewayReference = gatewayRef
	}
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	if target == entity.OrderStatusCompleted {
		if _, err := applyPlanChange(ctx, uow, user, plan, option, remarks, nil); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.afterSettlement(ctx, order, user, plan)
	return order, nil
}

// afterSettlement runs the non-transactional side effects: the bus event
// and the confirmation email job.
func (s *paymentService) afterSettlement(ctx context.Context, order *entity.Order, user *entity.User, plan *entity.Plan) {
	if s.eventPublisher != nil {
		var evt events.Event
		switch order.Status {
		case entity.OrderStatusCompleted:
			evt = events.NewOrderCompleted(order.Id.String(), user.Id.String(), order.FinalAmount)
		case entity.OrderStatusFailed:
			evt = events.BaseEvent{Type: events.TypeOrderFailed, Data: map[string]interface{}{
				"order_id": order.Id, "user_id": user.Id,
			}, OccurredAt: time.Now()}
		case entity.OrderStatusRefunded:
			evt = events.BaseEvent{Type: events.TypeOrderRefunded, Data: map[string]interface{}{
				"order_id": order.Id, "user_id": user.Id,
			}, OccurredAt: time.Now()}
		}
		if evt != nil {
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				fmt.Printf("[WARN] Failed to publish %s event: %v\n", evt.EventType(), err)
			}
		}
	}

	if s.emailJobs != nil && order.Status == entity.OrderStatusCompleted && plan != nil {
		job := dto.PublishEmailMessage{
			ToEmail:     user.Email,
			TemplateKey: entity.EmailTemplateOrderConfirmation,
			Data: map[string]string{
				"FullName": user.FullName,
				"PlanName": plan.Name,
				"Amount":   fmt.Sprintf("%.2f", order.FinalAmount),
				"OrderId":  order.Id.String(),
			},
			OrderId: &order.Id,
		}
		payload, err := json.Marshal(job)
		if err == nil {
			if err := s.emailJobs.Publish(ctx, payload); err != nil {
				fmt.Printf("[WARN] Failed to queue confirmation email: %v\n", err)
			}
		}
	}
}

func (s *paymentService) GetUserOrders(ctx context.Context, userId uuid.UUID) ([]*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.OrderResponse, len(orders))
	for i, o := range orders {
		res[i] = toOrderResponse(o)
	}
	return res, nil
}

func (s *paymentService) GetOrder(ctx context.Context, userId, orderId uuid.UUID) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: orderId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NotFound("order")
	}
	return toOrderResponse(order), nil
}

func (s *paymentService) GetAllOrders(ctx context.Context, status string, limit, offset int) (*dto.PaginatedResponse[*dto.OrderResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{}
	if status != "" {
		specs = append(specs, specification.StatusIs{Status: status})
	}

	total, err := uow.OrderRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	orders, err := uow.OrderRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.OrderResponse, len(orders))
	for i, o := range orders {
		items[i] = toOrderResponse(o)
	}
	return &dto.PaginatedResponse[*dto.OrderResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *paymentService) ProcessOrder(ctx context.Context, orderId uuid.UUID, req *dto.ProcessOrderRequest) (*dto.OrderResponse, error) {
	var target entity.OrderStatus
	switch req.Action {
	case "complete":
		target = entity.OrderStatusCompleted
	case "fail":
		target = entity.OrderStatusFailed
	case "refund":
		target = entity.OrderStatusRefunded
	default:
		return nil, apperror.Validation("unknown action")
	}

	remarks := req.Remarks
	if remarks == "" {
		remarks = "manual " + req.Action
	}

	order, err := s.settleOrder(ctx, orderId, target, remarks, nil)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func (s *paymentService) GetAllPaymentMethods(ctx context.Context) ([]*dto.PaymentMethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	methods, err := uow.PaymentMethodRepository().FindAll(ctx,
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.PaymentMethodResponse, len(methods))
	for i, m := range methods {
		res[i] = toPaymentMethodResponse(m)
	}
	return res, nil
}

func (s *paymentService) CreatePaymentMethod(ctx context.Context, req *dto.UpsertPaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.PaymentMethodRepository().FindOne(ctx, specification.CodeMatches{Code: req.Code})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("payment method code already in use")
	}

	method := &entity.PaymentMethod{
		Id:           uuid.New(),
		Name:         req.Name,
		Code:         req.Code,
		Kind:         entity.PaymentMethodKind(req.Kind),
		Enabled:      req.Enabled,
		Instructions: req.Instructions,
		SortOrder:    req.SortOrder,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uow.PaymentMethodRepository().Create(ctx, method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

func (s *paymentService) UpdatePaymentMethod(ctx context.Context, id uuid.UUID, req *dto.UpsertPaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	method, err := uow.PaymentMethodRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, apperror.NotFound("payment method")
	}

	if req.Code != method.Code {
		clash, err := uow.PaymentMethodRepository().FindOne(ctx, specification.CodeMatches{Code: req.Code})
		if err != nil {
			return nil, err
		}
		if clash != nil {
			return nil, apperror.Conflict("payment method code already in use")
		}
	}

	method.Name = req.Name
	method.Code = req.Code
	method.Kind = entity.PaymentMethodKind(req.Kind)
	method.Enabled = req.Enabled
	method.Instructions = req.Instructions
	method.SortOrder = req.SortOrder
	method.UpdatedAt = time.Now()
	if err := uow.PaymentMethodRepository().Update(ctx, method); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(method), nil
}

func (s *paymentService) DeletePaymentMethod(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	method, err := uow.PaymentMethodRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if method == nil {
		return apperror.NotFound("payment method")
	}
	return uow.PaymentMethodRepository().Delete(ctx, id)
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		Id:           m.Id,
		Name:         m.Name,
		Code:         m.Code,
		Kind:         string(m.Kind),
		Instructions: m.Instructions,
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		Id:                 o.Id,
		UserId:             o.UserId,
		PlanId:             o.PlanId,
		PricingOptionLabel: o.PricingOptionLabel,
		OriginalPrice:      o.OriginalPrice,
		DiscountCode:       o.DiscountCode,
		DiscountAmount:     o.DiscountAmount,
		FinalAmount:        o.FinalAmount,
		PaymentMethod:      o.PaymentMethod,
		Status:             string(o.Status),
		CreatedAt:          o.CreatedAt,
	}
}

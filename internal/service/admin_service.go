// FILE: internal/service/admin_service.go
package service

import (
	"context"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/pkg/logger"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)

	GetUsers(ctx context.Context, limit, offset int) (*dto.PaginatedResponse[*dto.AdminUserResponse], error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.AdminUserResponse, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateUserStatusRequest) (*dto.AdminUserResponse, error)
	ChangeUserPlan(ctx context.Context, id uuid.UUID, req *dto.AdminChangePlanRequest) error

	GetLogs(req *dto.LogQueryRequest) ([]logger.LogEntry, error)
	GetLogDetail(id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory    unitofwork.RepositoryFactory
	subscriptions ISubscriptionService
	appLogger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, subscriptions ISubscriptionService, appLogger logger.ILogger) IAdminService {
	return &adminService{
		uowFactory:    uowFactory,
		subscriptions: subscriptions,
		appLogger:     appLogger,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stats := &dto.DashboardStatsResponse{}
	var err error

	if stats.TotalUsers, err = uow.UserRepository().Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = uow.OrderRepository().Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = uow.OrderRepository().Count(ctx, specification.StatusIs{Status: string(entity.OrderStatusPending)}); err != nil {
		return nil, err
	}
	if stats.CompletedOrders, err = uow.OrderRepository().Count(ctx, specification.StatusIs{Status: string(entity.OrderStatusCompleted)}); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = uow.OrderRepository().SumCompletedRevenue(ctx); err != nil {
		return nil, err
	}
	if stats.OpenTickets, err = uow.SupportRepository().CountSubmissions(ctx, specification.StatusIs{Status: string(entity.TicketStatusOpen)}); err != nil {
		return nil, err
	}
	if stats.TotalQuestions, err = uow.QuestionRepository().Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPapers, err = uow.PaperRepository().Count(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *adminService) GetUsers(ctx context.Context, limit, offset int) (*dto.PaginatedResponse[*dto.AdminUserResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	total, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	users, err := uow.UserRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AdminUserResponse, len(users))
	for i, u := range users {
		items[i] = toAdminUserResponse(u)
	}
	return &dto.PaginatedResponse[*dto.AdminUserResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *adminService) GetUser(ctx context.Context, id uuid.UUID) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}
	return toAdminUserResponse(user), nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateUserStatusRequest) (*dto.AdminUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}

	user.Status = entity.UserStatus(req.Status)
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}
	return toAdminUserResponse(user), nil
}

// ChangeUserPlan grants a plan manually, going through the same locked
// path as user-initiated changes so the one-current-record rule holds.
func (s *adminService) ChangeUserPlan(ctx context.Context, id uuid.UUID, req *dto.AdminChangePlanRequest) error {
	remarks := req.Remarks
	if remarks == "" {
		remarks = "admin grant"
	}
	_, err := s.subscriptions.ChangePlan(ctx, id, req.PlanId, req.OptionLabel, remarks, req.EndDate)
	return err
}

func (s *adminService) GetLogs(req *dto.LogQueryRequest) ([]logger.LogEntry, error) {
	limit := req.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.appLogger.GetLogs(req.Level, limit, req.Offset)
}

func (s *adminService) GetLogDetail(id string) (*logger.LogEntry, error) {
	entry, err := s.appLogger.GetLogById(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("log entry")
	}
	return entry, nil
}

func toAdminUserResponse(u *entity.User) *dto.AdminUserResponse {
	return &dto.AdminUserResponse{
		Id:             u.Id,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           string(u.Role),
		Status:         string(u.Status),
		PlanId:         u.PlanId,
		PlanExpiryDate: u.PlanExpiryDate,
		CreatedAt:      u.CreatedAt,
	}
}

// FILE: internal/service/support_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"

	"exam-prep-be/pkg/events"
	pktNats "exam-prep-be/pkg/nats"

	"github.com/google/uuid"
)

type ISupportService interface {
	CreateSubmission(ctx context.Context, userId *uuid.UUID, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error)
	GetUserSubmissions(ctx context.Context, userId uuid.UUID) ([]*dto.SubmissionResponse, error)
	GetSubmission(ctx context.Context, id uuid.UUID, requesterId *uuid.UUID) (*dto.SubmissionResponse, error)
	Reply(ctx context.Context, id, authorId uuid.UUID, req *dto.TicketReplyRequest) (*dto.TicketReplyResponse, error)
	Close(ctx context.Context, id uuid.UUID) error

	// Admin
	GetAllSubmissions(ctx context.Context, status string, limit, offset int) (*dto.PaginatedResponse[*dto.SubmissionResponse], error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type supportService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	emailJobs      IPublisherService
}

func NewSupportService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, emailJobs IPublisherService) ISupportService {
	return &supportService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		emailJobs:      emailJobs,
	}
}

func (s *supportService) CreateSubmission(ctx context.Context, userId *uuid.UUID, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission := &entity.ContactSubmission{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		Email:     req.Email,
		Topic:     req.Topic,
		Subject:   req.Subject,
		Message:   req.Message,
		OrderId:   req.OrderId,
		PageURL:   req.PageURL,
		Status:    entity.TicketStatusOpen,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.SupportRepository().CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeTicketCreated,
			Data: map[string]interface{}{
				"ticket_id": submission.Id,
				"topic":     submission.Topic,
				"subject":   submission.Subject,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish ticket.created event: %v\n", err)
		}
	}

	return toSubmissionResponse(submission), nil
}

func (s *supportService) GetUserSubmissions(ctx context.Context, userId uuid.UUID) ([]*dto.SubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	submissions, err := uow.SupportRepository().FindAllSubmissions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.SubmissionResponse, len(submissions))
	for i, sub := range submissions {
		res[i] = toSubmissionResponse(sub)
	}
	return res, nil
}

// GetSubmission returns one ticket with its thread. A non-nil
// requesterId enforces ownership unless the requester is an admin.
func (s *supportService) GetSubmission(ctx context.Context, id uuid.UUID, requesterId *uuid.UUID) (*dto.SubmissionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	submission, err := uow.SupportRepository().FindOneSubmission(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, apperror.NotFound("submission")
	}
	if requesterId != nil {
		requester, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *requesterId})
		if err != nil {
			return nil, err
		}
		if requester == nil {
			return nil, apperror.NotFound("user")
		}
		if requester.Role != entity.UserRoleAdmin {
			if submission.UserId == nil || *submission.UserId != requester.Id {
				return nil, apperror.Forbidden("not your ticket")
			}
		}
	}
	return toSubmissionResponse(submission), nil
}

func (s *supportService) Reply(ctx context.Context, id, authorId uuid.UUID, req *dto.TicketReplyRequest) (*dto.TicketReplyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	author, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: authorId})
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperror.NotFound("user")
	}

	submission, err := uow.SupportRepository().FindOneSubmission(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, apperror.NotFound("submission")
	}
	if !submission.AcceptsReplies() {
		return nil, apperror.Conflict("ticket is closed")
	}

	isAdmin := author.Role == entity.UserRoleAdmin
	if !isAdmin && (submission.UserId == nil || *submission.UserId != author.Id) {
		return nil, apperror.Forbidden("not your ticket")
	}

	reply := &entity.TicketReply{
		Id:           uuid.New(),
		SubmissionId: submission.Id,
		AuthorId:     &author.Id,
		AuthorName:   author.FullName,
		IsAdmin:      isAdmin,
		Message:      req.Message,
		CreatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SupportRepository().CreateReply(ctx, reply); err != nil {
		return nil, err
	}

	// An admin reply moves the ticket to replied; a user reply re-opens it.
	if isAdmin {
		submission.Status = entity.TicketStatusReplied
	} else {
		submission.Status = entity.TicketStatusOpen
	}
	submission.UpdatedAt = time.Now()
	if err := uow.SupportRepository().UpdateSubmission(ctx, submission); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if isAdmin {
		s.notifyUserReplied(ctx, submission)
	}

	return toReplyResponse(reply), nil
}

func (s *supportService) notifyUserReplied(ctx context.Context, submission *entity.ContactSubmission) {
	if s.eventPublisher != nil {
		userId := ""
		if submission.UserId != nil {
			userId = submission.UserId.String()
		}
		evt := events.NewTicketReplied(submission.Id.String(), userId)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish ticket.replied event: %v\n", err)
		}
	}

	if s.emailJobs != nil {
		job := dto.PublishEmailMessage{
			ToEmail:     submission.Email,
			TemplateKey: entity.EmailTemplateTicketReply,
			Data: map[string]string{
				"Name":    submission.Name,
				"Subject": submission.Subject,
			},
		}
		if payload, err := json.Marshal(job); err == nil {
			if err := s.emailJobs.Publish(ctx, payload); err != nil {
				fmt.Printf("[WARN] Failed to queue ticket reply email: %v\n", err)
			}
		}
	}
}

func (s *supportService) Close(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission, err := uow.SupportRepository().FindOneSubmission(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if submission == nil {
		return apperror.NotFound("submission")
	}
	if submission.Status == entity.TicketStatusClosed {
		return nil
	}

	submission.Status = entity.TicketStatusClosed
	submission.UpdatedAt = time.Now()
	return uow.SupportRepository().UpdateSubmission(ctx, submission)
}

// SetStatus force-sets a ticket's status. Unlike Close it can also move
// a closed ticket back to open or replied.
func (s *supportService) SetStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error {
	switch status {
	case entity.TicketStatusOpen, entity.TicketStatusReplied, entity.TicketStatusClosed:
	default:
		return apperror.Validationf("unknown ticket status: %s", status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission, err := uow.SupportRepository().FindOneSubmission(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if submission == nil {
		return apperror.NotFound("submission")
	}
	if submission.Status == status {
		return nil
	}

	submission.Status = status
	submission.UpdatedAt = time.Now()
	return uow.SupportRepository().UpdateSubmission(ctx, submission)
}

func (s *supportService) GetAllSubmissions(ctx context.Context, status string, limit, offset int) (*dto.PaginatedResponse[*dto.SubmissionResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{}
	if status != "" {
		specs = append(specs, specification.StatusIs{Status: status})
	}

	total, err := uow.SupportRepository().CountSubmissions(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	submissions, err := uow.SupportRepository().FindAllSubmissions(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SubmissionResponse, len(submissions))
	for i, sub := range submissions {
		items[i] = toSubmissionResponse(sub)
	}
	return &dto.PaginatedResponse[*dto.SubmissionResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *supportService) MarkRead(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	submission, err := uow.SupportRepository().FindOneSubmission(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if submission == nil {
		return apperror.NotFound("submission")
	}
	if submission.IsRead {
		return nil
	}

	submission.IsRead = true
	return uow.SupportRepository().UpdateSubmission(ctx, submission)
}

func toSubmissionResponse(sub *entity.ContactSubmission) *dto.SubmissionResponse {
	res := &dto.SubmissionResponse{
		Id:        sub.Id,
		Name:      sub.Name,
		Email:     sub.Email,
		Topic:     sub.Topic,
		Subject:   sub.Subject,
		Message:   sub.Message,
		OrderId:   sub.OrderId,
		PageURL:   sub.PageURL,
		Status:    string(sub.Status),
		IsRead:    sub.IsRead,
		CreatedAt: sub.CreatedAt,
	}
	for i := range sub.Replies {
		res.Replies = append(res.Replies, *toReplyResponse(&sub.Replies[i]))
	}
	return res
}

func toReplyResponse(r *entity.TicketReply) *dto.TicketReplyResponse {
	return &dto.TicketReplyResponse{
		Id:         r.Id,
		AuthorName: r.AuthorName,
		IsAdmin:    r.IsAdmin,
		Message:    r.Message,
		CreatedAt:  r.CreatedAt,
	}
}

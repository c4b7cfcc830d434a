// FILE: internal/service/content_service.go
package service

import (
	"context"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/repository/memory"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IContentService interface {
	GetContent(ctx context.Context, key string) (*dto.ContentResponse, error)
	UpsertContent(ctx context.Context, key string, req *dto.UpsertContentRequest) (*dto.ContentResponse, error)

	GetTeamMembers(ctx context.Context) ([]*dto.TeamMemberResponse, error)
	CreateTeamMember(ctx context.Context, req *dto.UpsertTeamMemberRequest) (*dto.TeamMemberResponse, error)
	UpdateTeamMember(ctx context.Context, id uuid.UUID, req *dto.UpsertTeamMemberRequest) (*dto.TeamMemberResponse, error)
	DeleteTeamMember(ctx context.Context, id uuid.UUID) error

	GetEmailTemplates(ctx context.Context) ([]*dto.EmailTemplateResponse, error)
	GetEmailTemplate(ctx context.Context, key string) (*dto.EmailTemplateResponse, error)
	UpsertEmailTemplate(ctx context.Context, req *dto.UpsertEmailTemplateRequest) (*dto.EmailTemplateResponse, error)
	DeleteEmailTemplate(ctx context.Context, id uuid.UUID) error
}

type contentService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.CatalogCache
}

func NewContentService(uowFactory unitofwork.RepositoryFactory, cache *memory.CatalogCache) IContentService {
	return &contentService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *contentService) GetContent(ctx context.Context, key string) (*dto.ContentResponse, error) {
	if cached, found := s.cache.GetContent(key); found {
		return toContentResponse(cached), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	content, err := uow.ContentRepository().FindContent(ctx, key)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, apperror.NotFound("content")
	}

	s.cache.SaveContent(key, content)
	return toContentResponse(content), nil
}

func (s *contentService) UpsertContent(ctx context.Context, key string, req *dto.UpsertContentRequest) (*dto.ContentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	content := &entity.SiteContent{
		Id:        uuid.New(),
		Key:       key,
		Blocks:    req.Blocks,
		UpdatedAt: time.Now(),
	}
	if err := uow.ContentRepository().UpsertContent(ctx, content); err != nil {
		return nil, err
	}

	s.cache.InvalidateContent(key)
	return toContentResponse(content), nil
}

func (s *contentService) GetTeamMembers(ctx context.Context) ([]*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	members, err := uow.ContentRepository().FindTeamMembers(ctx,
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.TeamMemberResponse, len(members))
	for i, m := range members {
		res[i] = toTeamMemberResponse(m)
	}
	return res, nil
}

func (s *contentService) CreateTeamMember(ctx context.Context, req *dto.UpsertTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member := &entity.TeamMember{
		Id:        uuid.New(),
		Name:      req.Name,
		RoleTitle: req.RoleTitle,
		PhotoURL:  req.PhotoURL,
		SortOrder: req.SortOrder,
		CreatedAt: time.Now(),
	}
	if err := uow.ContentRepository().CreateTeamMember(ctx, member); err != nil {
		return nil, err
	}
	return toTeamMemberResponse(member), nil
}

func (s *contentService) UpdateTeamMember(ctx context.Context, id uuid.UUID, req *dto.UpsertTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	members, err := uow.ContentRepository().FindTeamMembers(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperror.NotFound("team member")
	}

	member := members[0]
	member.Name = req.Name
	member.RoleTitle = req.RoleTitle
	member.PhotoURL = req.PhotoURL
	member.SortOrder = req.SortOrder
	if err := uow.ContentRepository().UpdateTeamMember(ctx, member); err != nil {
		return nil, err
	}
	return toTeamMemberResponse(member), nil
}

func (s *contentService) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	members, err := uow.ContentRepository().FindTeamMembers(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return apperror.NotFound("team member")
	}
	return uow.ContentRepository().DeleteTeamMember(ctx, id)
}

func (s *contentService) GetEmailTemplates(ctx context.Context) ([]*dto.EmailTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	templates, err := uow.EmailTemplateRepository().FindAll(ctx,
		specification.OrderBy{Field: "key"},
	)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.EmailTemplateResponse, len(templates))
	for i, t := range templates {
		res[i] = toEmailTemplateResponse(t)
	}
	return res, nil
}

func (s *contentService) GetEmailTemplate(ctx context.Context, key string) (*dto.EmailTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	template, err := uow.EmailTemplateRepository().FindOne(ctx, specification.KeyIs{Key: key})
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NotFound("email template")
	}
	return toEmailTemplateResponse(template), nil
}

// UpsertEmailTemplate creates or replaces the template for req.Key, so
// admins never fork two templates behind the same key.
func (s *contentService) UpsertEmailTemplate(ctx context.Context, req *dto.UpsertEmailTemplateRequest) (*dto.EmailTemplateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.EmailTemplateRepository().FindOne(ctx, specification.KeyIs{Key: req.Key})
	if err != nil {
		return nil, err
	}

	if template == nil {
		template = &entity.EmailTemplate{
			Id:        uuid.New(),
			Key:       req.Key,
			Subject:   req.Subject,
			Body:      req.Body,
			Variables: req.Variables,
			UpdatedAt: time.Now(),
		}
		if err := uow.EmailTemplateRepository().Create(ctx, template); err != nil {
			return nil, err
		}
		return toEmailTemplateResponse(template), nil
	}

	template.Subject = req.Subject
	template.Body = req.Body
	template.Variables = req.Variables
	template.UpdatedAt = time.Now()
	if err := uow.EmailTemplateRepository().Update(ctx, template); err != nil {
		return nil, err
	}
	return toEmailTemplateResponse(template), nil
}

func (s *contentService) DeleteEmailTemplate(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	template, err := uow.EmailTemplateRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NotFound("email template")
	}
	return uow.EmailTemplateRepository().Delete(ctx, id)
}

func toContentResponse(c *entity.SiteContent) *dto.ContentResponse {
	return &dto.ContentResponse{
		Key:       c.Key,
		Blocks:    c.Blocks,
		UpdatedAt: c.UpdatedAt,
	}
}

func toTeamMemberResponse(m *entity.TeamMember) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		Id:        m.Id,
		Name:      m.Name,
		RoleTitle: m.RoleTitle,
		PhotoURL:  m.PhotoURL,
		SortOrder: m.SortOrder,
	}
}

func toEmailTemplateResponse(t *entity.EmailTemplate) *dto.EmailTemplateResponse {
	return &dto.EmailTemplateResponse{
		Id:        t.Id,
		Key:       t.Key,
		Subject:   t.Subject,
		Body:      t.Body,
		Variables: t.Variables,
		UpdatedAt: t.UpdatedAt,
	}
}

package mapper

import (
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/model"
)

type SupportMapper struct{}

func NewSupportMapper() *SupportMapper {
	return &SupportMapper{}
}

func (m *SupportMapper) SubmissionToEntity(s *model.ContactSubmission) *entity.ContactSubmission {
	if s == nil {
		return nil
	}
	return &entity.ContactSubmission{
		Id:        s.Id,
		UserId:    s.UserId,
		Name:      s.Name,
		Email:     s.Email,
		Topic:     s.Topic,
		Subject:   s.Subject,
		Message:   s.Message,
		OrderId:   s.OrderId,
		PageURL:   s.PageURL,
		Status:    entity.TicketStatus(s.Status),
		IsRead:    s.IsRead,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Replies:   m.repliesToEntities(s.Replies),
	}
}

func (m *SupportMapper) SubmissionToModel(s *entity.ContactSubmission) *model.ContactSubmission {
	if s == nil {
		return nil
	}
	return &model.ContactSubmission{
		Id:        s.Id,
		UserId:    s.UserId,
		Name:      s.Name,
		Email:     s.Email,
		Topic:     s.Topic,
		Subject:   s.Subject,
		Message:   s.Message,
		OrderId:   s.OrderId,
		PageURL:   s.PageURL,
		Status:    string(s.Status),
		IsRead:    s.IsRead,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *SupportMapper) ReplyToEntity(r *model.TicketReply) *entity.TicketReply {
	if r == nil {
		return nil
	}
	return &entity.TicketReply{
		Id:           r.Id,
		SubmissionId: r.SubmissionId,
		AuthorId:     r.AuthorId,
		AuthorName:   r.AuthorName,
		IsAdmin:      r.IsAdmin,
		Message:      r.Message,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *SupportMapper) ReplyToModel(r *entity.TicketReply) *model.TicketReply {
	if r == nil {
		return nil
	}
	return &model.TicketReply{
		Id:           r.Id,
		SubmissionId: r.SubmissionId,
		AuthorId:     r.AuthorId,
		AuthorName:   r.AuthorName,
		IsAdmin:      r.IsAdmin,
		Message:      r.Message,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *SupportMapper) repliesToEntities(models []*model.TicketReply) []entity.TicketReply {
	if models == nil {
		return nil
	}
	entities := make([]entity.TicketReply, len(models))
	for i, mdl := range models {
		if val := m.ReplyToEntity(mdl); val != nil {
			entities[i] = *val
		}
	}
	return entities
}

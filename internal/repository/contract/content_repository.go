package contract

import (
	"context"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ContentRepository interface {
	UpsertContent(ctx context.Context, content *entity.SiteContent) error
	FindContent(ctx context.Context, key string) (*entity.SiteContent, error)

	CreateTeamMember(ctx context.Context, member *entity.TeamMember) error
	UpdateTeamMember(ctx context.Context, member *entity.TeamMember) error
	DeleteTeamMember(ctx context.Context, id uuid.UUID) error
	FindTeamMembers(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error)
}

type EmailTemplateRepository interface {
	Create(ctx context.Context, template *entity.EmailTemplate) error
	Update(ctx context.Context, template *entity.EmailTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailTemplate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailTemplate, error)
}

package contract

import (
	"context"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/repository/specification"
)

type SupportRepository interface {
	CreateSubmission(ctx context.Context, submission *entity.ContactSubmission) error
	UpdateSubmission(ctx context.Context, submission *entity.ContactSubmission) error
	FindOneSubmission(ctx context.Context, specs ...specification.Specification) (*entity.ContactSubmission, error)
	FindAllSubmissions(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error)
	CountSubmissions(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateReply(ctx context.Context, reply *entity.TicketReply) error
	FindReplies(ctx context.Context, specs ...specification.Specification) ([]*entity.TicketReply, error)
}

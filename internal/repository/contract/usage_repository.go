package contract

import (
	"context"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UsageRepository interface {
	CreateBookmark(ctx context.Context, bookmark *entity.Bookmark) error
	DeleteBookmark(ctx context.Context, id uuid.UUID) error
	FindBookmarks(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error)
	CountBookmarks(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateDownload(ctx context.Context, download *entity.Download) error
	FindDownloads(ctx context.Context, specs ...specification.Specification) ([]*entity.Download, error)
	CountDownloads(ctx context.Context, specs ...specification.Specification) (int64, error)
}

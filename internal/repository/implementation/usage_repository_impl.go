package implementation

import (
	"context"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/mapper"
	"exam-prep-be/internal/model"
	"exam-prep-be/internal/repository/contract"
	"exam-prep-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UsageMapper
}

func NewUsageRepository(db *gorm.DB) contract.UsageRepository {
	return &UsageRepositoryImpl{
		db:     db,
		mapper: mapper.NewUsageMapper(),
	}
}

func (r *UsageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UsageRepositoryImpl) CreateBookmark(ctx context.Context, bookmark *entity.Bookmark) error {
	m := r.mapper.BookmarkToModel(bookmark)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*bookmark = *r.mapper.BookmarkToEntity(m)
	return nil
}

func (r *UsageRepositoryImpl) DeleteBookmark(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Bookmark{}, id).Error
}

func (r *UsageRepositoryImpl) FindBookmarks(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error) {
	var models []*model.Bookmark
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Bookmark, len(models))
	for i, m := range models {
		entities[i] = r.mapper.BookmarkToEntity(m)
	}
	return entities, nil
}

func (r *UsageRepositoryImpl) CountBookmarks(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Bookmark{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *UsageRepositoryImpl) CreateDownload(ctx context.Context, download *entity.Download) error {
	m := r.mapper.DownloadToModel(download)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*download = *r.mapper.DownloadToEntity(m)
	return nil
}

func (r *UsageRepositoryImpl) FindDownloads(ctx context.Context, specs ...specification.Specification) ([]*entity.Download, error) {
	var models []*model.Download
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Download, len(models))
	for i, m := range models {
		entities[i] = r.mapper.DownloadToEntity(m)
	}
	return entities, nil
}

func (r *UsageRepositoryImpl) CountDownloads(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Download{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

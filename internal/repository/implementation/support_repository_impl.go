package implementation

import (
	"context"
	"errors"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/mapper"
	"exam-prep-be/internal/model"
	"exam-prep-be/internal/repository/contract"
	"exam-prep-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SupportRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SupportMapper
}

func NewSupportRepository(db *gorm.DB) contract.SupportRepository {
	return &SupportRepositoryImpl{
		db:     db,
		mapper: mapper.NewSupportMapper(),
	}
}

func (r *SupportRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SupportRepositoryImpl) CreateSubmission(ctx context.Context, submission *entity.ContactSubmission) error {
	m := r.mapper.SubmissionToModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.SubmissionToEntity(m)
	return nil
}

func (r *SupportRepositoryImpl) UpdateSubmission(ctx context.Context, submission *entity.ContactSubmission) error {
	m := r.mapper.SubmissionToModel(submission)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*submission = *r.mapper.SubmissionToEntity(m)
	return nil
}

func (r *SupportRepositoryImpl) FindOneSubmission(ctx context.Context, specs ...specification.Specification) (*entity.ContactSubmission, error) {
	var m model.ContactSubmission
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubmissionToEntity(&m), nil
}

func (r *SupportRepositoryImpl) FindAllSubmissions(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error) {
	var models []*model.ContactSubmission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ContactSubmission, len(models))
	for i, m := range models {
		entities[i] = r.mapper.SubmissionToEntity(m)
	}
	return entities, nil
}

func (r *SupportRepositoryImpl) CountSubmissions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContactSubmission{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *SupportRepositoryImpl) CreateReply(ctx context.Context, reply *entity.TicketReply) error {
	m := r.mapper.ReplyToModel(reply)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*reply = *r.mapper.ReplyToEntity(m)
	return nil
}

func (r *SupportRepositoryImpl) FindReplies(ctx context.Context, specs ...specification.Specification) ([]*entity.TicketReply, error) {
	var models []*model.TicketReply
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.TicketReply, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ReplyToEntity(m)
	}
	return entities, nil
}

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

type PlanHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserPlanMapper
}

func NewPlanHistoryRepository(db *gorm.DB) contract.PlanHistoryRepository {
	return &PlanHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserPlanMapper(),
	}
}

func (r *PlanHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlanHistoryRepositoryImpl) Create(ctx context.Context, record *entity.UserPlan) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlanHistoryRepositoryImpl) Update(ctx context.Context, record *entity.UserPlan) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlanHistoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserPlan, error) {
	var m model.UserPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PlanHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserPlan, error) {
	var models []*model.UserPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UserPlan, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PlanHistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserPlan{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

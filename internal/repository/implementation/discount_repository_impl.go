package implementation

import (
	"context"
	"errors"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/mapper"
	"exam-prep-be/internal/model"
	"exam-prep-be/internal/repository/contract"
	"exam-prep-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiscountRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DiscountMapper
}

func NewDiscountRepository(db *gorm.DB) contract.DiscountRepository {
	return &DiscountRepositoryImpl{
		db:     db,
		mapper: mapper.NewDiscountMapper(),
	}
}

func (r *DiscountRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DiscountRepositoryImpl) Create(ctx context.Context, discount *entity.Discount) error {
	m := r.mapper.ToModel(discount)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*discount = *r.mapper.ToEntity(m)
	return nil
}

func (r *DiscountRepositoryImpl) Update(ctx context.Context, discount *entity.Discount) error {
	m := r.mapper.ToModel(discount)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*discount = *r.mapper.ToEntity(m)
	return nil
}

func (r *DiscountRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Discount{}, id).Error
}

func (r *DiscountRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Discount, error) {
	var m model.Discount
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DiscountRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Discount, error) {
	var models []*model.Discount
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Discount, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

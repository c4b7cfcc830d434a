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
	"gorm.io/gorm/clause"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContentRepositoryImpl) UpsertContent(ctx context.Context, content *entity.SiteContent) error {
	m := r.mapper.SiteContentToModel(content)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"blocks", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*content = *r.mapper.SiteContentToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) FindContent(ctx context.Context, key string) (*entity.SiteContent, error) {
	var m model.SiteContent
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SiteContentToEntity(&m), nil
}

func (r *ContentRepositoryImpl) CreateTeamMember(ctx context.Context, member *entity.TeamMember) error {
	m := r.mapper.TeamMemberToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.TeamMemberToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) UpdateTeamMember(ctx context.Context, member *entity.TeamMember) error {
	m := r.mapper.TeamMemberToModel(member)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.TeamMemberToEntity(m)
	return nil
}

func (r *ContentRepositoryImpl) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TeamMember{}, id).Error
}

func (r *ContentRepositoryImpl) FindTeamMembers(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error) {
	var models []*model.TeamMember
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.TeamMember, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TeamMemberToEntity(m)
	}
	return entities, nil
}

type EmailTemplateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewEmailTemplateRepository(db *gorm.DB) contract.EmailTemplateRepository {
	return &EmailTemplateRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *EmailTemplateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EmailTemplateRepositoryImpl) Create(ctx context.Context, template *entity.EmailTemplate) error {
	m := r.mapper.TemplateToModel(template)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.TemplateToEntity(m)
	return nil
}

func (r *EmailTemplateRepositoryImpl) Update(ctx context.Context, template *entity.EmailTemplate) error {
	m := r.mapper.TemplateToModel(template)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*template = *r.mapper.TemplateToEntity(m)
	return nil
}

func (r *EmailTemplateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.EmailTemplate{}, id).Error
}

func (r *EmailTemplateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailTemplate, error) {
	var m model.EmailTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TemplateToEntity(&m), nil
}

func (r *EmailTemplateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailTemplate, error) {
	var models []*model.EmailTemplate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.EmailTemplate, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TemplateToEntity(m)
	}
	return entities, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedCategory(store *fakeStore, name, slug string, parentId *uuid.UUID, sortOrder int) *entity.QuestionCategory {
	c := &entity.QuestionCategory{
		Id:        uuid.New(),
		Name:      name,
		Slug:      slug,
		ParentId:  parentId,
		SortOrder: sortOrder,
	}
	store.categories = append(store.categories, c)
	return c
}

func TestGetCategoryTree(t *testing.T) {
	factory := newFakeFactory()
	math := seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)
	science := seedCategory(factory.store, "Science", "science", nil, 2)
	algebra := seedCategory(factory.store, "Algebra", "algebra", &math.Id, 2)
	geometry := seedCategory(factory.store, "Geometry", "geometry", &math.Id, 1)

	svc := NewCatalogService(factory)

	tree, err := svc.GetCategoryTree(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tree, 2)
	assert.Equal(t, math.Id, tree[0].Id)
	assert.Equal(t, science.Id, tree[1].Id)

	// Children are ordered by sort_order.
	assert.Len(t, tree[0].Children, 2)
	assert.Equal(t, geometry.Id, tree[0].Children[0].Id)
	assert.Equal(t, algebra.Id, tree[0].Children[1].Id)
	assert.Empty(t, tree[1].Children)
}

func TestGetCategoryTreeOrphanBecomesRoot(t *testing.T) {
	factory := newFakeFactory()
	missing := uuid.New()
	orphan := seedCategory(factory.store, "Orphan", "orphan", &missing, 1)

	svc := NewCatalogService(factory)

	tree, err := svc.GetCategoryTree(context.Background())
	assert.NoError(t, err)
	assert.Len(t, tree, 1)
	assert.Equal(t, orphan.Id, tree[0].Id)
}

func TestGetFlatCategoriesDepth(t *testing.T) {
	factory := newFakeFactory()
	math := seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)
	algebra := seedCategory(factory.store, "Algebra", "algebra", &math.Id, 1)
	seedCategory(factory.store, "Linear", "linear", &algebra.Id, 1)

	svc := NewCatalogService(factory)

	flat, err := svc.GetFlatCategories(context.Background())
	assert.NoError(t, err)
	assert.Len(t, flat, 3)
	assert.Equal(t, 0, flat[0].Depth)
	assert.Equal(t, 1, flat[1].Depth)
	assert.Equal(t, 2, flat[2].Depth)
}

func TestCreateCategorySlugConflict(t *testing.T) {
	factory := newFakeFactory()
	seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)

	svc := NewCatalogService(factory)

	_, err := svc.CreateCategory(context.Background(), &dto.UpsertCategoryRequest{
		Name: "Maths", Slug: "mathematics",
	})
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestUpdateCategoryOwnParent(t *testing.T) {
	factory := newFakeFactory()
	math := seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)

	svc := NewCatalogService(factory)

	_, err := svc.UpdateCategory(context.Background(), math.Id, &dto.UpsertCategoryRequest{
		Name: "Mathematics", Slug: "mathematics", ParentId: &math.Id,
	})
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestDeleteCategoryWithSubcategories(t *testing.T) {
	factory := newFakeFactory()
	math := seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)
	seedCategory(factory.store, "Algebra", "algebra", &math.Id, 1)

	svc := NewCatalogService(factory)

	err := svc.DeleteCategory(context.Background(), math.Id)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestDeleteCategoryWithContent(t *testing.T) {
	factory := newFakeFactory()
	math := seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)
	seedQuestion(factory.store, math.Id, true)

	svc := NewCatalogService(factory)

	err := svc.DeleteCategory(context.Background(), math.Id)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestDeleteEmptyCategory(t *testing.T) {
	factory := newFakeFactory()
	math := seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)

	svc := NewCatalogService(factory)

	err := svc.DeleteCategory(context.Background(), math.Id)
	assert.NoError(t, err)
	assert.Empty(t, factory.store.categories)
}

func TestGetQuestionsPublicListing(t *testing.T) {
	factory := newFakeFactory()
	math := seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)
	seedQuestion(factory.store, math.Id, true)
	seedQuestion(factory.store, math.Id, false)

	svc := NewCatalogService(factory)

	page, err := svc.GetQuestions(context.Background(), &math.Id, 20, 0, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Items, 1)
	assert.Empty(t, page.Items[0].Answer)
	assert.Empty(t, page.Items[0].Explanation)
}

func TestGetQuestionsAdminListing(t *testing.T) {
	factory := newFakeFactory()
	math := seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)
	seedQuestion(factory.store, math.Id, true)
	seedQuestion(factory.store, math.Id, false)

	svc := NewCatalogService(factory)

	page, err := svc.GetQuestions(context.Background(), &math.Id, 20, 0, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, "4", page.Items[0].Answer)
}

func TestGetQuestionsLimitClamped(t *testing.T) {
	factory := newFakeFactory()
	svc := NewCatalogService(factory)

	page, err := svc.GetQuestions(context.Background(), nil, 0, 0, true)
	assert.NoError(t, err)
	assert.Equal(t, 20, page.Limit)

	page, err = svc.GetQuestions(context.Background(), nil, 500, 0, true)
	assert.NoError(t, err)
	assert.Equal(t, 20, page.Limit)
}

func TestCreateQuestionUnknownCategory(t *testing.T) {
	factory := newFakeFactory()
	svc := NewCatalogService(factory)

	_, err := svc.CreateQuestion(context.Background(), &dto.UpsertQuestionRequest{
		CategoryId: uuid.New(),
		Text:       "What is 2+2?",
		Answer:     "4",
	})
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestCreatePaperAndList(t *testing.T) {
	factory := newFakeFactory()
	math := seedCategory(factory.store, "Mathematics", "mathematics", nil, 1)

	svc := NewCatalogService(factory)

	created, err := svc.CreatePaper(context.Background(), &dto.UpsertPaperRequest{
		CategoryId:   math.Id,
		Title:        "Final Exam 2023",
		Year:         2023,
		FileURL:      "https://files.example.com/final-2023.pdf",
		Downloadable: true,
	})
	assert.NoError(t, err)
	assert.True(t, created.Downloadable)

	page, err := svc.GetPapers(context.Background(), &math.Id, 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, created.Id, page.Items[0].Id)
}

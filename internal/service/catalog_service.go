// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"sort"
	"time"

	"exam-prep-be/internal/dto"
	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/pkg/apperror"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICatalogService interface {
	// Categories
	GetCategoryTree(ctx context.Context) ([]*dto.CategoryResponse, error)
	GetFlatCategories(ctx context.Context) ([]*dto.FlatCategoryResponse, error)
	CreateCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// Questions
	GetQuestions(ctx context.Context, categoryId *uuid.UUID, limit, offset int, includeAnswers bool) (*dto.PaginatedResponse[*dto.QuestionResponse], error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*dto.QuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.UpsertQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, id uuid.UUID, req *dto.UpsertQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error

	// Papers
	GetPapers(ctx context.Context, categoryId *uuid.UUID, limit, offset int) (*dto.PaginatedResponse[*dto.PaperResponse], error)
	CreatePaper(ctx context.Context, req *dto.UpsertPaperRequest) (*dto.PaperResponse, error)
	UpdatePaper(ctx context.Context, id uuid.UUID, req *dto.UpsertPaperRequest) (*dto.PaperResponse, error)
	DeletePaper(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) ICatalogService {
	return &catalogService{uowFactory: uowFactory}
}

// --- Categories ---

func (s *catalogService) loadTree(ctx context.Context) ([]*entity.CategoryNode, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}
	return buildCategoryTree(categories), nil
}

// buildCategoryTree links categories into parent/child nodes. Categories
// whose parent is missing are treated as roots so a broken link never
// hides a subtree.
func buildCategoryTree(categories []*entity.QuestionCategory) []*entity.CategoryNode {
	nodes := make(map[uuid.UUID]*entity.CategoryNode, len(categories))
	for _, c := range categories {
		nodes[c.Id] = &entity.CategoryNode{QuestionCategory: *c}
	}

	var roots []*entity.CategoryNode
	for _, c := range categories {
		node := nodes[c.Id]
		if c.ParentId != nil {
			if parent, ok := nodes[*c.ParentId]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	var setDepth func(node *entity.CategoryNode, depth int)
	setDepth = func(node *entity.CategoryNode, depth int) {
		node.Depth = depth
		sort.SliceStable(node.Children, func(i, j int) bool {
			return node.Children[i].SortOrder < node.Children[j].SortOrder
		})
		for _, child := range node.Children {
			setDepth(child, depth+1)
		}
	}
	for _, root := range roots {
		setDepth(root, 0)
	}
	return roots
}

func (s *catalogService) GetCategoryTree(ctx context.Context) ([]*dto.CategoryResponse, error) {
	roots, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.CategoryResponse, len(roots))
	for i, root := range roots {
		res[i] = toCategoryResponse(root)
	}
	return res, nil
}

func (s *catalogService) GetFlatCategories(ctx context.Context) ([]*dto.FlatCategoryResponse, error) {
	roots, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}

	var flat []*dto.FlatCategoryResponse
	var walk func(node *entity.CategoryNode)
	walk = func(node *entity.CategoryNode) {
		flat = append(flat, &dto.FlatCategoryResponse{
			Id:    node.Id,
			Name:  node.Name,
			Depth: node.Depth,
		})
		for _, child := range node.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return flat, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CategoryRepository().FindOne(ctx, specification.Filter("slug", req.Slug))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("category slug already in use")
	}
	if req.ParentId != nil {
		parent, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NotFound("parent category")
		}
	}

	category := &entity.QuestionCategory{
		Id:        uuid.New(),
		Name:      req.Name,
		Slug:      req.Slug,
		ParentId:  req.ParentId,
		SortOrder: req.SortOrder,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(&entity.CategoryNode{QuestionCategory: *category}), nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NotFound("category")
	}
	if req.ParentId != nil {
		if *req.ParentId == id {
			return nil, apperror.Validation("category cannot be its own parent")
		}
		parent, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.ParentId})
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NotFound("parent category")
		}
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.ParentId = req.ParentId
	category.SortOrder = req.SortOrder
	category.UpdatedAt = time.Now()
	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(&entity.CategoryNode{QuestionCategory: *category}), nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NotFound("category")
	}

	children, err := uow.CategoryRepository().FindAll(ctx, specification.Filter("parent_id", id))
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return apperror.Conflict("category still has subcategories")
	}

	questionCount, err := uow.QuestionRepository().Count(ctx, specification.Filter("category_id", id))
	if err != nil {
		return err
	}
	paperCount, err := uow.PaperRepository().Count(ctx, specification.Filter("category_id", id))
	if err != nil {
		return err
	}
	if questionCount > 0 || paperCount > 0 {
		return apperror.Conflict("category still has content")
	}

	return uow.CategoryRepository().Delete(ctx, id)
}

// --- Questions ---

func (s *catalogService) GetQuestions(ctx context.Context, categoryId *uuid.UUID, limit, offset int, includeAnswers bool) (*dto.PaginatedResponse[*dto.QuestionResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{}
	if categoryId != nil {
		specs = append(specs, specification.Filter("category_id", *categoryId))
	}
	if !includeAnswers {
		// Public listing only shows active questions.
		specs = append(specs, specification.ActiveOnly{})
	}

	total, err := uow.QuestionRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	questions, err := uow.QuestionRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.QuestionResponse, len(questions))
	for i, q := range questions {
		items[i] = toQuestionResponse(q, includeAnswers)
	}
	return &dto.PaginatedResponse[*dto.QuestionResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *catalogService) GetQuestion(ctx context.Context, id uuid.UUID) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NotFound("question")
	}
	return toQuestionResponse(question, true), nil
}

func (s *catalogService) CreateQuestion(ctx context.Context, req *dto.UpsertQuestionRequest) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireCategory(ctx, uow, req.CategoryId); err != nil {
		return nil, err
	}

	question := &entity.Question{
		Id:          uuid.New(),
		CategoryId:  req.CategoryId,
		Text:        req.Text,
		Options:     req.Options,
		Answer:      req.Answer,
		Explanation: req.Explanation,
		IsActive:    req.IsActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uow.QuestionRepository().Create(ctx, question); err != nil {
		return nil, err
	}
	return toQuestionResponse(question, true), nil
}

func (s *catalogService) UpdateQuestion(ctx context.Context, id uuid.UUID, req *dto.UpsertQuestionRequest) (*dto.QuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperror.NotFound("question")
	}
	if err := s.requireCategory(ctx, uow, req.CategoryId); err != nil {
		return nil, err
	}

	question.CategoryId = req.CategoryId
	question.Text = req.Text
	question.Options = req.Options
	question.Answer = req.Answer
	question.Explanation = req.Explanation
	question.IsActive = req.IsActive
	question.UpdatedAt = time.Now()
	if err := uow.QuestionRepository().Update(ctx, question); err != nil {
		return nil, err
	}
	return toQuestionResponse(question, true), nil
}

func (s *catalogService) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	question, err := uow.QuestionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if question == nil {
		return apperror.NotFound("question")
	}
	return uow.QuestionRepository().Delete(ctx, id)
}

// --- Papers ---

func (s *catalogService) GetPapers(ctx context.Context, categoryId *uuid.UUID, limit, offset int) (*dto.PaginatedResponse[*dto.PaperResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	specs := []specification.Specification{}
	if categoryId != nil {
		specs = append(specs, specification.Filter("category_id", *categoryId))
	}

	total, err := uow.PaperRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "year", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	papers, err := uow.PaperRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PaperResponse, len(papers))
	for i, p := range papers {
		items[i] = toPaperResponse(p)
	}
	return &dto.PaginatedResponse[*dto.PaperResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *catalogService) CreatePaper(ctx context.Context, req *dto.UpsertPaperRequest) (*dto.PaperResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireCategory(ctx, uow, req.CategoryId); err != nil {
		return nil, err
	}

	paper := &entity.Paper{
		Id:           uuid.New(),
		CategoryId:   req.CategoryId,
		Title:        req.Title,
		Year:         req.Year,
		FileURL:      req.FileURL,
		Downloadable: req.Downloadable,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uow.PaperRepository().Create(ctx, paper); err != nil {
		return nil, err
	}
	return toPaperResponse(paper), nil
}

func (s *catalogService) UpdatePaper(ctx context.Context, id uuid.UUID, req *dto.UpsertPaperRequest) (*dto.PaperResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	paper, err := uow.PaperRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if paper == nil {
		return nil, apperror.NotFound("paper")
	}
	if err := s.requireCategory(ctx, uow, req.CategoryId); err != nil {
		return nil, err
	}

	paper.CategoryId = req.CategoryId
	paper.Title = req.Title
	paper.Year = req.Year
	paper.FileURL = req.FileURL
	paper.Downloadable = req.Downloadable
	paper.UpdatedAt = time.Now()
	if err := uow.PaperRepository().Update(ctx, paper); err != nil {
		return nil, err
	}
	return toPaperResponse(paper), nil
}

func (s *catalogService) DeletePaper(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	paper, err := uow.PaperRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if paper == nil {
		return apperror.NotFound("paper")
	}
	return uow.PaperRepository().Delete(ctx, id)
}

func (s *catalogService) requireCategory(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) error {
	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NotFound("category")
	}
	return nil
}

func toCategoryResponse(node *entity.CategoryNode) *dto.CategoryResponse {
	res := &dto.CategoryResponse{
		Id:        node.Id,
		Name:      node.Name,
		Slug:      node.Slug,
		ParentId:  node.ParentId,
		SortOrder: node.SortOrder,
	}
	for _, child := range node.Children {
		res.Children = append(res.Children, toCategoryResponse(child))
	}
	return res
}

func toQuestionResponse(q *entity.Question, includeAnswers bool) *dto.QuestionResponse {
	res := &dto.QuestionResponse{
		Id:         q.Id,
		CategoryId: q.CategoryId,
		Text:       q.Text,
		Options:    q.Options,
		IsActive:   q.IsActive,
		CreatedAt:  q.CreatedAt,
	}
	if includeAnswers {
		res.Answer = q.Answer
		res.Explanation = q.Explanation
	}
	return res
}

func toPaperResponse(p *entity.Paper) *dto.PaperResponse {
	return &dto.PaperResponse{
		Id:           p.Id,
		CategoryId:   p.CategoryId,
		Title:        p.Title,
		Year:         p.Year,
		FileURL:      p.FileURL,
		Downloadable: p.Downloadable,
		CreatedAt:    p.CreatedAt,
	}
}

package service

import (
	"context"
	"strings"
	"time"

	"exam-prep-be/internal/entity"
	"exam-prep-be/internal/repository/contract"
	"exam-prep-be/internal/repository/specification"
	"exam-prep-be/internal/repository/unitofwork"
	"exam-prep-be/pkg/lock"

	"github.com/google/uuid"
)

// fakeStore is a shared in-memory backing store for all fake
// repositories, so one store behaves like one database.
type fakeStore struct {
	users       []*entity.User
	resetTokens []*entity.PasswordResetToken
	providers   []*entity.UserProvider
	plans       []*entity.Plan
	discounts   []*entity.Discount
	methods     []*entity.PaymentMethod
	orders      []*entity.Order
	history     []*entity.UserPlan
	bookmarks   []*entity.Bookmark
	downloads   []*entity.Download
	submissions []*entity.ContactSubmission
	replies     []*entity.TicketReply
	categories  []*entity.QuestionCategory
	questions   []*entity.Question
	papers      []*entity.Paper
	contents    []*entity.SiteContent
	teamMembers []*entity.TeamMember
	templates   []*entity.EmailTemplate
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUow) PlanRepository() contract.PlanRepository {
	return &fakePlanRepo{store: u.store}
}
func (u *fakeUow) DiscountRepository() contract.DiscountRepository {
	return &fakeDiscountRepo{store: u.store}
}
func (u *fakeUow) PaymentMethodRepository() contract.PaymentMethodRepository {
	return &fakePaymentMethodRepo{store: u.store}
}
func (u *fakeUow) OrderRepository() contract.OrderRepository {
	return &fakeOrderRepo{store: u.store}
}
func (u *fakeUow) PlanHistoryRepository() contract.PlanHistoryRepository {
	return &fakePlanHistoryRepo{store: u.store}
}
func (u *fakeUow) UsageRepository() contract.UsageRepository {
	return &fakeUsageRepo{store: u.store}
}
func (u *fakeUow) SupportRepository() contract.SupportRepository {
	return &fakeSupportRepo{store: u.store}
}
func (u *fakeUow) CategoryRepository() contract.CategoryRepository {
	return &fakeCategoryRepo{store: u.store}
}
func (u *fakeUow) QuestionRepository() contract.QuestionRepository {
	return &fakeQuestionRepo{store: u.store}
}
func (u *fakeUow) PaperRepository() contract.PaperRepository {
	return &fakePaperRepo{store: u.store}
}
func (u *fakeUow) ContentRepository() contract.ContentRepository {
	return &fakeContentRepo{store: u.store}
}
func (u *fakeUow) EmailTemplateRepository() contract.EmailTemplateRepository {
	return &fakeEmailTemplateRepo{store: u.store}
}

// --- Users ---

type fakeUserRepo struct {
	store *fakeStore
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if !strings.EqualFold(u.Email, s.Email) {
				return false
			}
		case specification.FilterBy:
			if s.Field == "role" {
				if role, ok := s.Value.(entity.UserRole); ok && u.Role != role {
					return false
				}
			}
		}
	}
	return true
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.store.users {
		if u.Id == user.Id {
			r.store.users[i] = user
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, u := range r.store.users {
		if u.Id == id {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeUserRepo) CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	r.store.resetTokens = append(r.store.resetTokens, token)
	return nil
}

func (r *fakeUserRepo) FindResetToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	for _, t := range r.store.resetTokens {
		if t.Token == token {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	for i, t := range r.store.resetTokens {
		if t.Id == token.Id {
			r.store.resetTokens[i] = token
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) CreateProvider(ctx context.Context, provider *entity.UserProvider) error {
	r.store.providers = append(r.store.providers, provider)
	return nil
}

func (r *fakeUserRepo) FindProvider(ctx context.Context, providerName, providerUserId string) (*entity.UserProvider, error) {
	for _, p := range r.store.providers {
		if p.ProviderName == providerName && p.ProviderUserId == providerUserId {
			return p, nil
		}
	}
	return nil, nil
}

// --- Plans ---

type fakePlanRepo struct {
	store *fakeStore
}

func matchPlan(p *entity.Plan, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ActiveOnly:
			if !p.IsActive {
				return false
			}
		case specification.FilterBy:
			if s.Field == "slug" {
				if slug, ok := s.Value.(string); ok && p.Slug != slug {
					return false
				}
			}
		}
	}
	return true
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.Plan) error {
	r.store.plans = append(r.store.plans, plan)
	return nil
}

func (r *fakePlanRepo) Update(ctx context.Context, plan *entity.Plan) error {
	for i, p := range r.store.plans {
		if p.Id == plan.Id {
			r.store.plans[i] = plan
			return nil
		}
	}
	return nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, p := range r.store.plans {
		if p.Id == id {
			r.store.plans = append(r.store.plans[:i], r.store.plans[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePlanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	for _, p := range r.store.plans {
		if matchPlan(p, specs) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error) {
	var out []*entity.Plan
	for _, p := range r.store.plans {
		if matchPlan(p, specs) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) AddOption(ctx context.Context, option *entity.PricingOption) error {
	for _, p := range r.store.plans {
		if p.Id == option.PlanId {
			p.PricingOptions = append(p.PricingOptions, *option)
		}
	}
	return nil
}

func (r *fakePlanRepo) RemoveOption(ctx context.Context, id uuid.UUID) error {
	for _, p := range r.store.plans {
		for i := range p.PricingOptions {
			if p.PricingOptions[i].Id == id {
				p.PricingOptions = append(p.PricingOptions[:i], p.PricingOptions[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (r *fakePlanRepo) AddFeature(ctx context.Context, feature *entity.PlanFeature) error {
	for _, p := range r.store.plans {
		if p.Id == feature.PlanId {
			p.Features = append(p.Features, *feature)
		}
	}
	return nil
}

func (r *fakePlanRepo) RemoveFeature(ctx context.Context, id uuid.UUID) error {
	for _, p := range r.store.plans {
		for i := range p.Features {
			if p.Features[i].Id == id {
				p.Features = append(p.Features[:i], p.Features[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// --- Discounts ---

type fakeDiscountRepo struct {
	store *fakeStore
}

func matchDiscount(d *entity.Discount, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if d.Id != s.ID {
				return false
			}
		case specification.CodeMatches:
			if !strings.EqualFold(d.Code, s.Code) {
				return false
			}
		}
	}
	return true
}

func (r *fakeDiscountRepo) Create(ctx context.Context, discount *entity.Discount) error {
	r.store.discounts = append(r.store.discounts, discount)
	return nil
}

func (r *fakeDiscountRepo) Update(ctx context.Context, discount *entity.Discount) error {
	for i, d := range r.store.discounts {
		if d.Id == discount.Id {
			r.store.discounts[i] = discount
			return nil
		}
	}
	return nil
}

func (r *fakeDiscountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, d := range r.store.discounts {
		if d.Id == id {
			r.store.discounts = append(r.store.discounts[:i], r.store.discounts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeDiscountRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Discount, error) {
	for _, d := range r.store.discounts {
		if matchDiscount(d, specs) {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDiscountRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Discount, error) {
	var out []*entity.Discount
	for _, d := range r.store.discounts {
		if matchDiscount(d, specs) {
			out = append(out, d)
		}
	}
	return out, nil
}

// --- Payment methods ---

type fakePaymentMethodRepo struct {
	store *fakeStore
}

func matchMethod(m *entity.PaymentMethod, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if m.Id != s.ID {
				return false
			}
		case specification.CodeMatches:
			if !strings.EqualFold(m.Code, s.Code) {
				return false
			}
		case specification.EnabledOnly:
			if !m.Enabled {
				return false
			}
		}
	}
	return true
}

func (r *fakePaymentMethodRepo) Create(ctx context.Context, method *entity.PaymentMethod) error {
	r.store.methods = append(r.store.methods, method)
	return nil
}

func (r *fakePaymentMethodRepo) Update(ctx context.Context, method *entity.PaymentMethod) error {
	for i, m := range r.store.methods {
		if m.Id == method.Id {
			r.store.methods[i] = method
			return nil
		}
	}
	return nil
}

func (r *fakePaymentMethodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, m := range r.store.methods {
		if m.Id == id {
			r.store.methods = append(r.store.methods[:i], r.store.methods[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePaymentMethodRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentMethod, error) {
	for _, m := range r.store.methods {
		if matchMethod(m, specs) {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentMethodRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, m := range r.store.methods {
		if matchMethod(m, specs) {
			out = append(out, m)
		}
	}
	return out, nil
}

// --- Orders ---

type fakeOrderRepo struct {
	store *fakeStore
}

func matchOrder(o *entity.Order, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if o.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if o.UserId != s.UserID {
				return false
			}
		case specification.StatusIs:
			if string(o.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.store.orders = append(r.store.orders, order)
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	for i, o := range r.store.orders {
		if o.Id == order.Id {
			r.store.orders[i] = order
			return nil
		}
	}
	return nil
}

func (r *fakeOrderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	for _, o := range r.store.orders {
		if matchOrder(o, specs) {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.store.orders {
		if matchOrder(o, specs) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeOrderRepo) SumCompletedRevenue(ctx context.Context) (float64, error) {
	var sum float64
	for _, o := range r.store.orders {
		if o.Status == entity.OrderStatusCompleted {
			sum += o.FinalAmount
		}
	}
	return sum, nil
}

// --- Plan history ---

type fakePlanHistoryRepo struct {
	store *fakeStore
}

func matchUserPlan(p *entity.UserPlan, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if p.UserId != s.UserID {
				return false
			}
		case specification.StatusIs:
			if string(p.Status) != s.Status {
				return false
			}
		}
	}
	return true
}

func (r *fakePlanHistoryRepo) Create(ctx context.Context, record *entity.UserPlan) error {
	r.store.history = append(r.store.history, record)
	return nil
}

func (r *fakePlanHistoryRepo) Update(ctx context.Context, record *entity.UserPlan) error {
	for i, p := range r.store.history {
		if p.Id == record.Id {
			r.store.history[i] = record
			return nil
		}
	}
	return nil
}

func (r *fakePlanHistoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserPlan, error) {
	for _, p := range r.store.history {
		if matchUserPlan(p, specs) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePlanHistoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserPlan, error) {
	var out []*entity.UserPlan
	for _, p := range r.store.history {
		if matchUserPlan(p, specs) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePlanHistoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- Usage ---

type fakeUsageRepo struct {
	store *fakeStore
}

func matchBookmark(b *entity.Bookmark, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if b.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if b.UserId != s.UserID {
				return false
			}
		case specification.CreatedAfter:
			if b.CreatedAt.Before(s.Cutoff) {
				return false
			}
		case specification.FilterBy:
			if s.Field == "question_id" {
				if qid, ok := s.Value.(uuid.UUID); ok && b.QuestionId != qid {
					return false
				}
			}
		}
	}
	return true
}

func matchDownload(d *entity.Download, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if d.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if d.UserId != s.UserID {
				return false
			}
		case specification.CreatedAfter:
			if d.CreatedAt.Before(s.Cutoff) {
				return false
			}
		}
	}
	return true
}

func (r *fakeUsageRepo) CreateBookmark(ctx context.Context, bookmark *entity.Bookmark) error {
	r.store.bookmarks = append(r.store.bookmarks, bookmark)
	return nil
}

func (r *fakeUsageRepo) DeleteBookmark(ctx context.Context, id uuid.UUID) error {
	for i, b := range r.store.bookmarks {
		if b.Id == id {
			r.store.bookmarks = append(r.store.bookmarks[:i], r.store.bookmarks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeUsageRepo) FindBookmarks(ctx context.Context, specs ...specification.Specification) ([]*entity.Bookmark, error) {
	var out []*entity.Bookmark
	for _, b := range r.store.bookmarks {
		if matchBookmark(b, specs) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeUsageRepo) CountBookmarks(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindBookmarks(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeUsageRepo) CreateDownload(ctx context.Context, download *entity.Download) error {
	r.store.downloads = append(r.store.downloads, download)
	return nil
}

func (r *fakeUsageRepo) FindDownloads(ctx context.Context, specs ...specification.Specification) ([]*entity.Download, error) {
	var out []*entity.Download
	for _, d := range r.store.downloads {
		if matchDownload(d, specs) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeUsageRepo) CountDownloads(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindDownloads(ctx, specs...)
	return int64(len(all)), nil
}

// --- Support ---

type fakeSupportRepo struct {
	store *fakeStore
}

func matchSubmission(s *entity.ContactSubmission, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch spec := sp.(type) {
		case specification.ByID:
			if s.Id != spec.ID {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserId == nil || *s.UserId != spec.UserID {
				return false
			}
		case specification.StatusIs:
			if string(s.Status) != spec.Status {
				return false
			}
		}
	}
	return true
}

func (r *fakeSupportRepo) CreateSubmission(ctx context.Context, submission *entity.ContactSubmission) error {
	r.store.submissions = append(r.store.submissions, submission)
	return nil
}

func (r *fakeSupportRepo) UpdateSubmission(ctx context.Context, submission *entity.ContactSubmission) error {
	for i, s := range r.store.submissions {
		if s.Id == submission.Id {
			r.store.submissions[i] = submission
			return nil
		}
	}
	return nil
}

func (r *fakeSupportRepo) FindOneSubmission(ctx context.Context, specs ...specification.Specification) (*entity.ContactSubmission, error) {
	for _, s := range r.store.submissions {
		if matchSubmission(s, specs) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSupportRepo) FindAllSubmissions(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error) {
	var out []*entity.ContactSubmission
	for _, s := range r.store.submissions {
		if matchSubmission(s, specs) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSupportRepo) CountSubmissions(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAllSubmissions(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeSupportRepo) CreateReply(ctx context.Context, reply *entity.TicketReply) error {
	r.store.replies = append(r.store.replies, reply)
	for _, s := range r.store.submissions {
		if s.Id == reply.SubmissionId {
			s.Replies = append(s.Replies, *reply)
		}
	}
	return nil
}

func (r *fakeSupportRepo) FindReplies(ctx context.Context, specs ...specification.Specification) ([]*entity.TicketReply, error) {
	var out []*entity.TicketReply
	for _, reply := range r.store.replies {
		keep := true
		for _, sp := range specs {
			if f, ok := sp.(specification.FilterBy); ok && f.Field == "submission_id" {
				if id, ok := f.Value.(uuid.UUID); ok && reply.SubmissionId != id {
					keep = false
				}
			}
		}
		if keep {
			out = append(out, reply)
		}
	}
	return out, nil
}

// --- Catalog ---

type fakeCategoryRepo struct {
	store *fakeStore
}

func matchCategory(c *entity.QuestionCategory, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.FilterBy:
			switch s.Field {
			case "slug":
				if slug, ok := s.Value.(string); ok && c.Slug != slug {
					return false
				}
			case "parent_id":
				if pid, ok := s.Value.(uuid.UUID); ok {
					if c.ParentId == nil || *c.ParentId != pid {
						return false
					}
				}
			}
		}
	}
	return true
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.QuestionCategory) error {
	r.store.categories = append(r.store.categories, category)
	return nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.QuestionCategory) error {
	for i, c := range r.store.categories {
		if c.Id == category.Id {
			r.store.categories[i] = category
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, c := range r.store.categories {
		if c.Id == id {
			r.store.categories = append(r.store.categories[:i], r.store.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuestionCategory, error) {
	for _, c := range r.store.categories {
		if matchCategory(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuestionCategory, error) {
	var out []*entity.QuestionCategory
	for _, c := range r.store.categories {
		if matchCategory(c, specs) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeQuestionRepo struct {
	store *fakeStore
}

func matchQuestion(q *entity.Question, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if q.Id != s.ID {
				return false
			}
		case specification.ActiveOnly:
			if !q.IsActive {
				return false
			}
		case specification.FilterBy:
			if s.Field == "category_id" {
				if cid, ok := s.Value.(uuid.UUID); ok && q.CategoryId != cid {
					return false
				}
			}
		}
	}
	return true
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	r.store.questions = append(r.store.questions, question)
	return nil
}

func (r *fakeQuestionRepo) Update(ctx context.Context, question *entity.Question) error {
	for i, q := range r.store.questions {
		if q.Id == question.Id {
			r.store.questions[i] = question
			return nil
		}
	}
	return nil
}

func (r *fakeQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, q := range r.store.questions {
		if q.Id == id {
			r.store.questions = append(r.store.questions[:i], r.store.questions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeQuestionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Question, error) {
	for _, q := range r.store.questions {
		if matchQuestion(q, specs) {
			return q, nil
		}
	}
	return nil, nil
}

func (r *fakeQuestionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Question, error) {
	var out []*entity.Question
	for _, q := range r.store.questions {
		if matchQuestion(q, specs) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakePaperRepo struct {
	store *fakeStore
}

func matchPaper(p *entity.Paper, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.FilterBy:
			if s.Field == "category_id" {
				if cid, ok := s.Value.(uuid.UUID); ok && p.CategoryId != cid {
					return false
				}
			}
		}
	}
	return true
}

func (r *fakePaperRepo) Create(ctx context.Context, paper *entity.Paper) error {
	r.store.papers = append(r.store.papers, paper)
	return nil
}

func (r *fakePaperRepo) Update(ctx context.Context, paper *entity.Paper) error {
	for i, p := range r.store.papers {
		if p.Id == paper.Id {
			r.store.papers[i] = paper
			return nil
		}
	}
	return nil
}

func (r *fakePaperRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, p := range r.store.papers {
		if p.Id == id {
			r.store.papers = append(r.store.papers[:i], r.store.papers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePaperRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Paper, error) {
	for _, p := range r.store.papers {
		if matchPaper(p, specs) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePaperRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Paper, error) {
	var out []*entity.Paper
	for _, p := range r.store.papers {
		if matchPaper(p, specs) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaperRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// --- Content ---

type fakeContentRepo struct {
	store *fakeStore
}

func (r *fakeContentRepo) UpsertContent(ctx context.Context, content *entity.SiteContent) error {
	for i, c := range r.store.contents {
		if c.Key == content.Key {
			r.store.contents[i] = content
			return nil
		}
	}
	r.store.contents = append(r.store.contents, content)
	return nil
}

func (r *fakeContentRepo) FindContent(ctx context.Context, key string) (*entity.SiteContent, error) {
	for _, c := range r.store.contents {
		if c.Key == key {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeContentRepo) CreateTeamMember(ctx context.Context, member *entity.TeamMember) error {
	r.store.teamMembers = append(r.store.teamMembers, member)
	return nil
}

func (r *fakeContentRepo) UpdateTeamMember(ctx context.Context, member *entity.TeamMember) error {
	for i, m := range r.store.teamMembers {
		if m.Id == member.Id {
			r.store.teamMembers[i] = member
			return nil
		}
	}
	return nil
}

func (r *fakeContentRepo) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	for i, m := range r.store.teamMembers {
		if m.Id == id {
			r.store.teamMembers = append(r.store.teamMembers[:i], r.store.teamMembers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeContentRepo) FindTeamMembers(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error) {
	var out []*entity.TeamMember
	for _, m := range r.store.teamMembers {
		keep := true
		for _, sp := range specs {
			if s, ok := sp.(specification.ByID); ok && m.Id != s.ID {
				keep = false
			}
		}
		if keep {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeEmailTemplateRepo struct {
	store *fakeStore
}

func matchTemplate(t *entity.EmailTemplate, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByID:
			if t.Id != s.ID {
				return false
			}
		case specification.KeyIs:
			if t.Key != s.Key {
				return false
			}
		}
	}
	return true
}

func (r *fakeEmailTemplateRepo) Create(ctx context.Context, template *entity.EmailTemplate) error {
	r.store.templates = append(r.store.templates, template)
	return nil
}

func (r *fakeEmailTemplateRepo) Update(ctx context.Context, template *entity.EmailTemplate) error {
	for i, t := range r.store.templates {
		if t.Id == template.Id {
			r.store.templates[i] = template
			return nil
		}
	}
	return nil
}

func (r *fakeEmailTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, t := range r.store.templates {
		if t.Id == id {
			r.store.templates = append(r.store.templates[:i], r.store.templates[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeEmailTemplateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmailTemplate, error) {
	for _, t := range r.store.templates {
		if matchTemplate(t, specs) {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeEmailTemplateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmailTemplate, error) {
	var out []*entity.EmailTemplate
	for _, t := range r.store.templates {
		if matchTemplate(t, specs) {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeLocker is a single-owner lock. When held, TryLock fails the way
// the Redis locker does after exhausting its retries.
type fakeLocker struct {
	held map[string]string
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]string{}}
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if _, ok := l.held[key]; ok {
		return "", lock.ErrNotAcquired
	}
	token := uuid.NewString()
	l.held[key] = token
	return token, nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, token string) error {
	if l.held[key] == token {
		delete(l.held, key)
	}
	return nil
}

// Package memstore is an in-memory implementation of the storage
// interfaces. It backs the "memory" database driver and the service and
// HTTP tests, and enforces the same unique constraints as the postgres
// driver (user email, stored filename).
package memstore

import (
	"context"
	"sync"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

type Store struct {
	mu     sync.RWMutex
	nextID int64

	users     map[int64]model.User
	plans     map[int64]model.Plan
	reports   map[int64]model.QuarterlyReport
	documents map[int64]model.Document
	comments  map[int64]model.Comment
	files     map[string]model.FileMetadata
}

func New() *Store {
	return &Store{
		users:     make(map[int64]model.User),
		plans:     make(map[int64]model.Plan),
		reports:   make(map[int64]model.QuarterlyReport),
		documents: make(map[int64]model.Document),
		comments:  make(map[int64]model.Comment),
		files:     make(map[string]model.FileMetadata),
	}
}

func (s *Store) Stores() store.Stores {
	return store.Stores{
		Users:     &userStore{s},
		Plans:     &planStore{s},
		Reports:   &reportStore{s},
		Documents: &documentStore{s},
		Comments:  &commentStore{s},
		Files:     &fileStore{s},
	}
}

// allocID must be called with the write lock held.
func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

type userStore struct{ s *Store }

func (u *userStore) Create(_ context.Context, user *model.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for _, existing := range u.s.users {
		if existing.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	user.ID = u.s.allocID()
	u.s.users[user.ID] = *user
	return nil
}

func (u *userStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	user, ok := u.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (u *userStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, user := range u.s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u *userStore) List(_ context.Context) ([]model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	users := make([]model.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		users = append(users, user)
	}
	return users, nil
}

func (u *userStore) Update(_ context.Context, user *model.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	for id, existing := range u.s.users {
		if id != user.ID && existing.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	u.s.users[user.ID] = *user
	return nil
}

func (u *userStore) Delete(_ context.Context, id int64) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(u.s.users, id)
	return nil
}

type planStore struct{ s *Store }

func clonePlan(p model.Plan) model.Plan {
	executors := make([]model.User, len(p.Executors))
	copy(executors, p.Executors)
	p.Executors = executors
	p.CreatedBy = nil
	return p
}

func (p *planStore) Create(_ context.Context, plan *model.Plan) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	plan.ID = p.s.allocID()
	p.s.plans[plan.ID] = clonePlan(*plan)
	return nil
}

func (p *planStore) GetByID(_ context.Context, id int64) (*model.Plan, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	plan, ok := p.s.plans[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	found := clonePlan(plan)
	return &found, nil
}

func (p *planStore) List(_ context.Context) ([]model.Plan, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	plans := make([]model.Plan, 0, len(p.s.plans))
	for _, plan := range p.s.plans {
		plans = append(plans, clonePlan(plan))
	}
	return plans, nil
}

func (p *planStore) Update(_ context.Context, plan *model.Plan) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.plans[plan.ID]; !ok {
		return store.ErrNotFound
	}
	p.s.plans[plan.ID] = clonePlan(*plan)
	return nil
}

func (p *planStore) Delete(_ context.Context, id int64) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	delete(p.s.plans, id)
	return nil
}

type reportStore struct{ s *Store }

func cloneReport(r model.QuarterlyReport) model.QuarterlyReport {
	if r.AssessedByUserID != nil {
		id := *r.AssessedByUserID
		r.AssessedByUserID = &id
	}
	if r.AnalystAssessmentScore != nil {
		score := *r.AnalystAssessmentScore
		r.AnalystAssessmentScore = &score
	}
	r.Plan = nil
	r.ReportingUser = nil
	r.AssessedByUser = nil
	return r
}

func (r *reportStore) Create(_ context.Context, report *model.QuarterlyReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	report.ID = r.s.allocID()
	r.s.reports[report.ID] = cloneReport(*report)
	return nil
}

func (r *reportStore) GetByID(_ context.Context, id int64) (*model.QuarterlyReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	report, ok := r.s.reports[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	found := cloneReport(report)
	return &found, nil
}

func (r *reportStore) List(_ context.Context) ([]model.QuarterlyReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	reports := make([]model.QuarterlyReport, 0, len(r.s.reports))
	for _, report := range r.s.reports {
		reports = append(reports, cloneReport(report))
	}
	return reports, nil
}

func (r *reportStore) Update(_ context.Context, report *model.QuarterlyReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reports[report.ID]; !ok {
		return store.ErrNotFound
	}
	r.s.reports[report.ID] = cloneReport(*report)
	return nil
}

func (r *reportStore) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reports[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.reports, id)
	return nil
}

type documentStore struct{ s *Store }

func cloneDocument(d model.Document) model.Document {
	d.Report = nil
	d.UploadedBy = nil
	return d
}

func (d *documentStore) Create(_ context.Context, doc *model.Document) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	doc.ID = d.s.allocID()
	d.s.documents[doc.ID] = cloneDocument(*doc)
	return nil
}

func (d *documentStore) GetByID(_ context.Context, id int64) (*model.Document, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	doc, ok := d.s.documents[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	found := cloneDocument(doc)
	return &found, nil
}

func (d *documentStore) List(_ context.Context) ([]model.Document, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()
	docs := make([]model.Document, 0, len(d.s.documents))
	for _, doc := range d.s.documents {
		docs = append(docs, cloneDocument(doc))
	}
	return docs, nil
}

func (d *documentStore) Update(_ context.Context, doc *model.Document) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	if _, ok := d.s.documents[doc.ID]; !ok {
		return store.ErrNotFound
	}
	d.s.documents[doc.ID] = cloneDocument(*doc)
	return nil
}

func (d *documentStore) Delete(_ context.Context, id int64) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	if _, ok := d.s.documents[id]; !ok {
		return store.ErrNotFound
	}
	delete(d.s.documents, id)
	return nil
}

type commentStore struct{ s *Store }

func cloneComment(c model.Comment) model.Comment {
	c.Report = nil
	c.User = nil
	return c
}

func (c *commentStore) Create(_ context.Context, comment *model.Comment) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	comment.ID = c.s.allocID()
	c.s.comments[comment.ID] = cloneComment(*comment)
	return nil
}

func (c *commentStore) GetByID(_ context.Context, id int64) (*model.Comment, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	comment, ok := c.s.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	found := cloneComment(comment)
	return &found, nil
}

func (c *commentStore) List(_ context.Context) ([]model.Comment, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	comments := make([]model.Comment, 0, len(c.s.comments))
	for _, comment := range c.s.comments {
		comments = append(comments, cloneComment(comment))
	}
	return comments, nil
}

func (c *commentStore) Update(_ context.Context, comment *model.Comment) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.comments[comment.ID]; !ok {
		return store.ErrNotFound
	}
	c.s.comments[comment.ID] = cloneComment(*comment)
	return nil
}

func (c *commentStore) Delete(_ context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(c.s.comments, id)
	return nil
}

type fileStore struct{ s *Store }

func (f *fileStore) Create(_ context.Context, meta *model.FileMetadata) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.files[meta.Filename]; ok {
		return store.ErrDuplicate
	}
	meta.ID = f.s.allocID()
	f.s.files[meta.Filename] = *meta
	return nil
}

func (f *fileStore) GetByFilename(_ context.Context, filename string) (*model.FileMetadata, error) {
	f.s.mu.RLock()
	defer f.s.mu.RUnlock()
	meta, ok := f.s.files[filename]
	if !ok {
		return nil, store.ErrNotFound
	}
	found := meta
	return &found, nil
}

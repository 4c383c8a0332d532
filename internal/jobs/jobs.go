// Package jobs implements employer job postings: creation with a validated role
// selection, filtered search, and ranking of postings against a candidate's
// role.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ianattheGrid/jobz/internal/cascade"
	"github.com/ianattheGrid/jobz/internal/db"
	"github.com/ianattheGrid/jobz/internal/taxonomy"
)

var (
	ErrPostingNotFound = errors.New("job posting not found")
	ErrIncompleteRole  = errors.New("job posting role must reach a job title, a specialization without titles, or other text")
)

var validate = validator.New()

// Store is the posting persistence used by Service. *db.DB and
// *db.MemoryStore implement it.
type Store interface {
	CreateJobPosting(ctx context.Context, input *db.JobPostingCreateInput) (*db.JobPosting, error)
	GetJobPostingByID(ctx context.Context, id uuid.UUID) (*db.JobPosting, error)
	ListJobPostings(ctx context.Context, filter db.JobPostingFilter) ([]db.JobPosting, error)
	DeleteJobPosting(ctx context.Context, id, employerID uuid.UUID) (bool, error)
}

// Recorder receives posting events.
type Recorder interface {
	PostingCreated()
}

type nopRecorder struct{}

func (nopRecorder) PostingCreated() {}

// Posting is a job advertised by an employer.
type Posting struct {
	ID          uuid.UUID         `json:"id"`
	EmployerID  uuid.UUID         `json:"employer_id"`
	Headline    string            `json:"headline"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Role        cascade.Selection `json:"role"`
	CreatedAt   time.Time         `json:"created_at"`
}

func fromRow(p *db.JobPosting) Posting {
	return Posting{
		ID:          p.ID,
		EmployerID:  p.EmployerID,
		Headline:    p.Headline,
		Description: p.Description,
		Location:    p.Location,
		Role: cascade.Selection{
			WorkArea:       taxonomy.WorkArea(p.WorkArea),
			Specialization: taxonomy.Specialization(p.Specialization),
			JobTitle:       p.JobTitle,
			OtherText:      p.OtherText,
		},
		CreatedAt: p.CreatedAt,
	}
}

// CreateInput is a new posting.
type CreateInput struct {
	Headline    string            `json:"headline" validate:"required,max=120"`
	Description string            `json:"description" validate:"max=5000"`
	Location    string            `json:"location" validate:"max=80"`
	Role        cascade.Selection `json:"role"`
}

// Filter narrows Search. Empty fields match everything.
type Filter struct {
	WorkArea       taxonomy.WorkArea
	Specialization taxonomy.Specialization
	JobTitle       string
	Query          string
	EmployerID     uuid.UUID // uuid.Nil for every employer
	Limit          int
}

// Service manages postings.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the recorder.
func WithMetrics(r Recorder) Option {
	return func(s *Service) { s.metrics = r }
}

// NewService creates a Service over store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default(), metrics: nopRecorder{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and stores a posting for employerID.
func (s *Service) Create(ctx context.Context, employerID uuid.UUID, in CreateInput) (Posting, error) {
	if err := validate.Struct(in); err != nil {
		return Posting{}, err
	}
	if err := cascade.Validate(in.Role); err != nil {
		return Posting{}, err
	}
	if !cascade.Replay(in.Role).Complete() {
		return Posting{}, ErrIncompleteRole
	}

	row, err := s.store.CreateJobPosting(ctx, &db.JobPostingCreateInput{
		EmployerID:     employerID,
		Headline:       in.Headline,
		Description:    in.Description,
		Location:       in.Location,
		WorkArea:       string(in.Role.WorkArea),
		Specialization: string(in.Role.Specialization),
		JobTitle:       in.Role.JobTitle,
		OtherText:      in.Role.OtherText,
	})
	if err != nil {
		return Posting{}, fmt.Errorf("failed to create posting: %w", err)
	}

	s.metrics.PostingCreated()
	s.logger.InfoContext(ctx, "job posting created",
		slog.String("posting_id", row.ID.String()),
		slog.String("employer_id", employerID.String()),
		slog.String("work_area", row.WorkArea))
	return fromRow(row), nil
}

// Get returns one posting.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Posting, error) {
	row, err := s.store.GetJobPostingByID(ctx, id)
	if err != nil {
		return Posting{}, err
	}
	if row == nil {
		return Posting{}, ErrPostingNotFound
	}
	return fromRow(row), nil
}

// Search lists postings matching f, newest first.
func (s *Service) Search(ctx context.Context, f Filter) ([]Posting, error) {
	filter := db.JobPostingFilter{
		WorkArea:       string(f.WorkArea),
		Specialization: string(f.Specialization),
		JobTitle:       f.JobTitle,
		Query:          f.Query,
		Limit:          f.Limit,
	}
	if f.EmployerID != uuid.Nil {
		filter.EmployerID = &f.EmployerID
	}
	rows, err := s.store.ListJobPostings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search postings: %w", err)
	}
	out := make([]Posting, len(rows))
	for i := range rows {
		out[i] = fromRow(&rows[i])
	}
	return out, nil
}

// Delete removes a posting. Postings of other employers are reported as not
// found.
func (s *Service) Delete(ctx context.Context, id, employerID uuid.UUID) error {
	deleted, err := s.store.DeleteJobPosting(ctx, id, employerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostingNotFound
	}
	s.logger.InfoContext(ctx, "job posting deleted",
		slog.String("posting_id", id.String()),
		slog.String("employer_id", employerID.String()))
	return nil
}

// MatchesFor ranks postings against the candidate's role. Each score tier is
// fetched separately, newest first and capped at the default limit, so an
// older exact match is never crowded out by newer postings that only share
// the work area. A selection without a work area matches nothing.
func (s *Service) MatchesFor(ctx context.Context, role cascade.Selection) ([]Match, error) {
	if role.WorkArea == "" {
		return []Match{}, nil
	}

	tiers := []Filter{{WorkArea: role.WorkArea}}
	if role.Specialization != "" {
		tiers = append(tiers, Filter{WorkArea: role.WorkArea, Specialization: role.Specialization})
	}
	if role.JobTitle != "" {
		tiers = append(tiers, Filter{WorkArea: role.WorkArea, Specialization: role.Specialization, JobTitle: role.JobTitle})
	}

	results := make([][]Posting, len(tiers))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range tiers {
		g.Go(func() error {
			postings, err := s.Search(gctx, f)
			if err != nil {
				return err
			}
			results[i] = postings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	var candidates []Posting
	for i := len(results) - 1; i >= 0; i-- {
		for _, p := range results[i] {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			candidates = append(candidates, p)
		}
	}

	ranked := Rank(role, candidates)
	if len(ranked) > db.DefaultJobPostingLimit {
		ranked = ranked[:db.DefaultJobPostingLimit]
	}
	return ranked, nil
}

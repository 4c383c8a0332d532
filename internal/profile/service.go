package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ianattheGrid/jobz/internal/schemas"
)

// Store persists one JSON document per (user, track column). A missing row or
// an empty column loads as nil, nil.
type Store interface {
	LoadProfileColumn(ctx context.Context, userID uuid.UUID, column string) ([]byte, error)
	SaveProfileColumn(ctx context.Context, userID uuid.UUID, column string, doc []byte) error
}

// Recorder receives profile service events. The metrics package implements it.
type Recorder interface {
	ProfileHydrated(track string)
	ProfileSaved(track string, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) ProfileHydrated(string)      {}
func (nopRecorder) ProfileSaved(string, string) {}

// Save outcomes passed to Recorder.ProfileSaved.
const (
	OutcomeSaved    = "saved"
	OutcomeInvalid  = "invalid"
	OutcomeConflict = "in_progress"
	OutcomeFailed   = "failed"
)

// Service loads and saves profile drafts.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics Recorder

	mu       sync.Mutex
	inFlight map[saveKey]struct{}
}

type saveKey struct {
	user  uuid.UUID
	track Track
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the recorder.
func WithMetrics(r Recorder) ServiceOption {
	return func(s *Service) {
		s.metrics = r
	}
}

// NewService creates a Service over store.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:    store,
		logger:   slog.Default(),
		metrics:  nopRecorder{},
		inFlight: make(map[saveKey]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load hydrates the user's draft for track. A user with nothing stored gets the
// template defaults.
func (s *Service) Load(ctx context.Context, userID uuid.UUID, track Track) (*Draft, error) {
	tpl, err := TemplateFor(track)
	if err != nil {
		return nil, err
	}
	data, err := s.store.LoadProfileColumn(ctx, userID, track.Column())
	if err != nil {
		return nil, fmt.Errorf("failed to load %s profile: %w", track, err)
	}
	d, err := tpl.HydrateJSON(data)
	if err != nil {
		return nil, err
	}
	s.metrics.ProfileHydrated(string(track))
	return d, nil
}

// LoadAll hydrates every track for the user concurrently.
func (s *Service) LoadAll(ctx context.Context, userID uuid.UUID) (map[Track]*Draft, error) {
	tracks := Tracks()
	drafts := make([]*Draft, len(tracks))

	g, ctx := errgroup.WithContext(ctx)
	for i, track := range tracks {
		g.Go(func() error {
			d, err := s.Load(ctx, userID, track)
			if err != nil {
				return err
			}
			drafts[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Track]*Draft, len(tracks))
	for i, track := range tracks {
		out[track] = drafts[i]
	}
	return out, nil
}

// Save writes the whole draft to the user's track column. The draft is
// validated against its template and the generated JSON schema first. Every
// failure is returned as a *SaveError; the draft itself is never modified, so
// the caller can retry with it. Concurrent saves of the same (user, track)
// are rejected with ErrSaveInProgress; the last completed write wins.
func (s *Service) Save(ctx context.Context, userID uuid.UUID, d *Draft) error {
	track := d.Track()
	key := saveKey{user: userID, track: track}
	if !s.begin(key) {
		s.metrics.ProfileSaved(string(track), OutcomeConflict)
		return &SaveError{Track: track, Cause: ErrSaveInProgress}
	}
	defer s.end(key)

	if err := d.tpl.Validate(d); err != nil {
		s.metrics.ProfileSaved(string(track), OutcomeInvalid)
		return &SaveError{Track: track, Cause: err}
	}
	doc, err := json.Marshal(d)
	if err != nil {
		s.metrics.ProfileSaved(string(track), OutcomeFailed)
		return &SaveError{Track: track, Cause: err}
	}
	if err := schemas.ValidateDocument(d.tpl.JSONSchema(), doc); err != nil {
		s.metrics.ProfileSaved(string(track), OutcomeInvalid)
		return &SaveError{Track: track, Cause: err}
	}

	if err := s.store.SaveProfileColumn(ctx, userID, track.Column(), doc); err != nil {
		s.logger.ErrorContext(ctx, "profile save failed",
			slog.String("user_id", userID.String()),
			slog.String("track", string(track)),
			slog.Any("error", err))
		s.metrics.ProfileSaved(string(track), OutcomeFailed)
		return &SaveError{Track: track, Cause: err}
	}

	s.logger.InfoContext(ctx, "profile saved",
		slog.String("user_id", userID.String()),
		slog.String("track", string(track)),
		slog.Int("bytes", len(doc)))
	s.metrics.ProfileSaved(string(track), OutcomeSaved)
	return nil
}

// SaveDocument checks a raw client document against the track schema, hydrates
// it and saves the result. It returns the draft that was stored.
func (s *Service) SaveDocument(ctx context.Context, userID uuid.UUID, track Track, raw []byte) (*Draft, error) {
	tpl, err := TemplateFor(track)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateDocument(tpl.JSONSchema(), raw); err != nil {
		s.metrics.ProfileSaved(string(track), OutcomeInvalid)
		return nil, &SaveError{Track: track, Cause: err}
	}
	d, err := tpl.HydrateJSON(raw)
	if err != nil {
		return nil, &SaveError{Track: track, Cause: err}
	}
	if err := s.Save(ctx, userID, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) begin(key saveKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Service) end(key saveKey) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}

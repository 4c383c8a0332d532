package db

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps users, profiles and postings in process memory. It has the
// same method set as DB and backs the server when no DATABASE_URL is given,
// and in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]User
	byEmail  map[string]uuid.UUID
	profiles map[uuid.UUID]map[string][]byte
	postings []JobPosting // insertion order
	now      func() time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uuid.UUID]User),
		byEmail:  make(map[string]uuid.UUID),
		profiles: make(map[uuid.UUID]map[string][]byte),
		now:      time.Now,
	}
}

// Ping always succeeds
func (m *MemoryStore) Ping(context.Context) error {
	return nil
}

// CreateUser inserts a user and returns its ID
func (m *MemoryStore) CreateUser(_ context.Context, input *UserCreateInput) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := normalizeEmail(input.Email)
	if _, taken := m.byEmail[email]; taken {
		return uuid.Nil, ErrDuplicateEmail
	}
	now := m.now()
	u := User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		Role:         input.Role,
		PasswordHash: input.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.users[u.ID] = u
	m.byEmail[email] = u.ID
	return u.ID, nil
}

// GetUser retrieves a user by ID. Returns nil, nil when not found.
func (m *MemoryStore) GetUser(_ context.Context, id uuid.UUID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetUserByEmail retrieves a user by email. Returns nil, nil when not found.
func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	id, ok := m.byEmail[normalizeEmail(email)]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return m.GetUser(ctx, id)
}

// CheckEmailExists reports whether an account uses email
func (m *MemoryStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.byEmail[normalizeEmail(email)]
	return ok, nil
}

// UpdatePassword replaces a user's password hash
func (m *MemoryStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return errUserNotFound(id)
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = m.now()
	m.users[id] = u
	return nil
}

// DeleteUser removes a user with their profiles and postings
func (m *MemoryStore) DeleteUser(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil
	}
	delete(m.users, id)
	delete(m.byEmail, u.Email)
	delete(m.profiles, id)
	m.postings = slices.DeleteFunc(m.postings, func(p JobPosting) bool { return p.EmployerID == id })
	return nil
}

// LoadProfileColumn returns a copy of the stored document, or nil, nil.
func (m *MemoryStore) LoadProfileColumn(_ context.Context, userID uuid.UUID, column string) ([]byte, error) {
	if err := checkProfileColumn(column); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.profiles[userID][column]), nil
}

// SaveProfileColumn overwrites one track's document
func (m *MemoryStore) SaveProfileColumn(_ context.Context, userID uuid.UUID, column string, doc []byte) error {
	if err := checkProfileColumn(column); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.profiles[userID]
	if !ok {
		row = make(map[string][]byte, len(ProfileColumns))
		m.profiles[userID] = row
	}
	row[column] = slices.Clone(doc)
	return nil
}

// CreateJobPosting inserts a posting and returns it
func (m *MemoryStore) CreateJobPosting(_ context.Context, input *JobPostingCreateInput) (*JobPosting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := JobPosting{
		ID:             uuid.New(),
		EmployerID:     input.EmployerID,
		Headline:       input.Headline,
		Description:    input.Description,
		Location:       input.Location,
		WorkArea:       input.WorkArea,
		Specialization: input.Specialization,
		JobTitle:       input.JobTitle,
		OtherText:      input.OtherText,
		CreatedAt:      m.now(),
	}
	m.postings = append(m.postings, p)
	return &p, nil
}

// GetJobPostingByID retrieves a job posting by its ID
func (m *MemoryStore) GetJobPostingByID(_ context.Context, id uuid.UUID) (*JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.postings {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// ListJobPostings returns postings matching the filter, newest first
func (m *MemoryStore) ListJobPostings(_ context.Context, filter JobPostingFilter) ([]JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := []JobPosting{}
	for i := len(m.postings) - 1; i >= 0 && len(out) < filter.limit(); i-- {
		p := m.postings[i]
		switch {
		case filter.WorkArea != "" && p.WorkArea != filter.WorkArea,
			filter.Specialization != "" && p.Specialization != filter.Specialization,
			filter.JobTitle != "" && p.JobTitle != filter.JobTitle,
			filter.EmployerID != nil && p.EmployerID != *filter.EmployerID,
			q != "" && !strings.Contains(strings.ToLower(p.Headline), q) &&
				!strings.Contains(strings.ToLower(p.Description), q):
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// DeleteJobPosting removes a posting owned by employerID
func (m *MemoryStore) DeleteJobPosting(_ context.Context, id, employerID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.postings)
	m.postings = slices.DeleteFunc(m.postings, func(p JobPosting) bool {
		return p.ID == id && p.EmployerID == employerID
	})
	return len(m.postings) < before, nil
}

package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Job Posting Methods
// -----------------------------------------------------------------------------

const jobPostingColumns = `id, employer_id, headline, description, location,
		        work_area, specialization, job_title, other_text, created_at`

func scanJobPosting(row pgx.Row) (*JobPosting, error) {
	var p JobPosting
	err := row.Scan(&p.ID, &p.EmployerID, &p.Headline, &p.Description, &p.Location,
		&p.WorkArea, &p.Specialization, &p.JobTitle, &p.OtherText, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateJobPosting inserts a posting and returns it
func (db *DB) CreateJobPosting(ctx context.Context, input *JobPostingCreateInput) (*JobPosting, error) {
	p, err := scanJobPosting(db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (employer_id, headline, description, location,
		                           work_area, specialization, job_title, other_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+jobPostingColumns,
		input.EmployerID, input.Headline, input.Description, input.Location,
		input.WorkArea, input.Specialization, input.JobTitle, input.OtherText,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}
	return p, nil
}

// GetJobPostingByID retrieves a job posting by its ID
func (db *DB) GetJobPostingByID(ctx context.Context, id uuid.UUID) (*JobPosting, error) {
	p, err := scanJobPosting(db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return p, nil
}

// ListJobPostings returns postings matching the filter, newest first
func (db *DB) ListJobPostings(ctx context.Context, filter JobPostingFilter) ([]JobPosting, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.WorkArea != "" {
		add("work_area = $%d", filter.WorkArea)
	}
	if filter.Specialization != "" {
		add("specialization = $%d", filter.Specialization)
	}
	if filter.JobTitle != "" {
		add("job_title = $%d", filter.JobTitle)
	}
	if filter.EmployerID != nil {
		add("employer_id = $%d", *filter.EmployerID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(headline ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	query := `SELECT ` + jobPostingColumns + ` FROM job_postings`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, filter.limit())
	query += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT $%d`, len(args))

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	postings := []JobPosting{}
	for rows.Next() {
		p, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	return postings, nil
}

// DeleteJobPosting removes a posting owned by employerID. It reports whether a
// row was deleted.
func (db *DB) DeleteJobPosting(ctx context.Context, id, employerID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM job_postings WHERE id = $1 AND employer_id = $2`,
		id, employerID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete job posting: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The structured fields live in
// jsonb columns, mirroring how the extraction output is shaped.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, full_text, name, email, phone, skills, experience, education, created_at, updated_at`

// Create inserts a new resume and returns the stored row.
func (r *PGRepo) Create(ctx context.Context, resume Resume) (Resume, error) {
	const query = `
INSERT INTO resumes (id, full_text, name, email, phone, skills, experience, education, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	skills, experience, education, err := marshalStructured(resume)
	if err != nil {
		return Resume{}, err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.FullText,
		nullString(resume.Name),
		nullString(resume.Email),
		nullString(resume.Phone),
		skills,
		experience,
		education,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// List returns all resumes, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	query := fmt.Sprintf(`SELECT %s FROM resumes ORDER BY created_at DESC`, resumeColumns)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// GetByID returns the resume or ErrNotFound.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	query := fmt.Sprintf(`SELECT %s FROM resumes WHERE id = $1`, resumeColumns)

	resume, err := scanResume(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// Update replaces the stored row with the given resume. ErrNotFound is
// returned if no row matched the id.
func (r *PGRepo) Update(ctx context.Context, resume Resume) (Resume, error) {
	const query = `
UPDATE resumes
SET full_text = $1, name = $2, email = $3, phone = $4, skills = $5, experience = $6, education = $7, updated_at = $8
WHERE id = $9`

	skills, experience, education, err := marshalStructured(resume)
	if err != nil {
		return Resume{}, err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		resume.FullText,
		nullString(resume.Name),
		nullString(resume.Email),
		nullString(resume.Phone),
		skills,
		experience,
		education,
		resume.UpdatedAt,
		resume.ID,
	)
	if err != nil {
		return Resume{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Resume{}, err
	}
	if affected == 0 {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

// Delete removes the resume, reporting whether a row was removed.
func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var name, email, phone sql.NullString
	var skills, experience, education []byte

	if err := row.Scan(
		&resume.ID,
		&resume.FullText,
		&name,
		&email,
		&phone,
		&skills,
		&experience,
		&education,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	); err != nil {
		return Resume{}, err
	}

	if name.Valid {
		resume.Name = &name.String
	}
	if email.Valid {
		resume.Email = &email.String
	}
	if phone.Valid {
		resume.Phone = &phone.String
	}

	resume.Skills = []string{}
	resume.Experience = []ExperienceEntry{}
	resume.Education = []EducationEntry{}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &resume.Skills); err != nil {
			return Resume{}, fmt.Errorf("decode skills: %w", err)
		}
	}
	if len(experience) > 0 {
		if err := json.Unmarshal(experience, &resume.Experience); err != nil {
			return Resume{}, fmt.Errorf("decode experience: %w", err)
		}
	}
	if len(education) > 0 {
		if err := json.Unmarshal(education, &resume.Education); err != nil {
			return Resume{}, fmt.Errorf("decode education: %w", err)
		}
	}

	return resume, nil
}

func marshalStructured(resume Resume) (skills, experience, education []byte, err error) {
	if skills, err = json.Marshal(emptyIfNilStrings(resume.Skills)); err != nil {
		return nil, nil, nil, fmt.Errorf("encode skills: %w", err)
	}
	exp := resume.Experience
	if exp == nil {
		exp = []ExperienceEntry{}
	}
	if experience, err = json.Marshal(exp); err != nil {
		return nil, nil, nil, fmt.Errorf("encode experience: %w", err)
	}
	edu := resume.Education
	if edu == nil {
		edu = []EducationEntry{}
	}
	if education, err = json.Marshal(edu); err != nil {
		return nil, nil, nil, fmt.Errorf("encode education: %w", err)
	}
	return skills, experience, education, nil
}

func emptyIfNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nullString(val *string) sql.NullString {
	if val == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *val, Valid: true}
}

var _ Repo = (*PGRepo)(nil)

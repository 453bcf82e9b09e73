package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a resume record and returns it with its assigned sequence.
func (r *PGRepo) Create(ctx context.Context, userID string, fields Fields) (Record, error) {
	const query = `
INSERT INTO resume (user_id, full_name, email, phone, summary, skills, experience, education)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING resume_id, created_at`
	rec := Record{UserID: userID, Fields: fields}
	err := r.DB.QueryRowContext(ctx, query,
		userID,
		fields.FullName,
		fields.Email,
		fields.Phone,
		fields.Summary,
		fields.Skills,
		fields.Experience,
		fields.Education,
	).Scan(&rec.Seq, &rec.CreatedAt)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Latest returns the record with the highest resume_id for the user.
func (r *PGRepo) Latest(ctx context.Context, userID string) (Record, error) {
	const query = `
SELECT resume_id, user_id, full_name, email, phone, summary, skills, experience, education, created_at
FROM resume
WHERE user_id = $1
ORDER BY resume_id DESC
LIMIT 1`
	var (
		rec                    Record
		fullName, email, phone sql.NullString
		summary, skills        sql.NullString
		experience, education  sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&rec.Seq,
		&rec.UserID,
		&fullName,
		&email,
		&phone,
		&summary,
		&skills,
		&experience,
		&education,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNoRecord
		}
		return Record{}, err
	}
	rec.Fields = Fields{
		FullName:   fullName.String,
		Email:      email.String,
		Phone:      phone.String,
		Summary:    summary.String,
		Skills:     skills.String,
		Experience: experience.String,
		Education:  education.String,
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)

package resumes

import "time"

// Fields is the free-form content submitted from the builder form.
// Absent form values are stored as empty strings.
type Fields struct {
	FullName   string
	Email      string
	Phone      string
	Summary    string
	Skills     string
	Experience string
	Education  string
}

// Record is one immutable resume snapshot. Seq is the insertion order used to pick the latest.
type Record struct {
	Seq       int64
	UserID    string
	Fields    Fields
	CreatedAt time.Time
}

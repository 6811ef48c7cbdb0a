package resumes

import "time"

// Resume is the persisted record for a user's uploaded resume. At most one
// exists per user; re-uploads replace content in place.
type Resume struct {
	ID        string
	UserID    string
	Content   string
	Filename  string
	FileURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume record.
type ResumeResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Filename  string    `json:"filename"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Content:   r.Content,
		Filename:  r.Filename,
		FileURL:   r.FileURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

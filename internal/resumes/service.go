package resumes

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shekharkalshetti/interview-pal-backend/internal/extract"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/storage/object"
	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/telemetry"
)

// Extractor pulls plain text from an uploaded document.
type Extractor func(data []byte, contentType string) (string, error)

// Service contains business logic for resumes.
type Service struct {
	Repo    Repo
	Store   object.ObjectStore
	Extract Extractor
}

func (s *Service) extractor() Extractor {
	if s.Extract != nil {
		return s.Extract
	}
	return extract.Text
}

// Get returns the stored resume for a user.
func (s *Service) Get(ctx context.Context, userID string) (Resume, bool, error) {
	if userID == "" {
		return Resume{}, false, ErrInvalidInput
	}
	return s.Repo.GetByUser(ctx, userID)
}

// ContentByUser returns the extracted text content of a user's resume.
// Absence is reported through the boolean, never as an error.
func (s *Service) ContentByUser(ctx context.Context, userID string) (string, bool, error) {
	res, ok, err := s.Repo.GetByUser(ctx, userID)
	if err != nil || !ok {
		return "", ok, err
	}
	return res.Content, true, nil
}

// Upload extracts text from the document, stores the blob under the user's
// deterministic key and upserts the record. A prior upload for the same user
// is overwritten; the record keeps its id and created_at.
//
// If the blob is stored but the record upsert fails, the orphaned blob is
// left behind; there is no compensating delete.
func (s *Service) Upload(ctx context.Context, userID, filename, contentType string, data []byte) (Resume, error) {
	if userID == "" || filename == "" {
		return Resume{}, ErrInvalidInput
	}

	content, err := s.extractor()(data, contentType)
	if err != nil {
		return Resume{}, err
	}

	storageKey := userID + extract.ExtensionFor(contentType)
	if _, err := s.Store.Put(ctx, storageKey, contentType, bytes.NewReader(data)); err != nil {
		return Resume{}, err
	}

	now := time.Now().UTC()
	stored, err := s.Repo.Upsert(ctx, Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Filename:  filename,
		FileURL:   s.Store.PublicURL(storageKey),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return Resume{}, err
	}
	return stored, nil
}

// Delete removes the stored blob and record for a user. An absent resume is
// a successful no-op. A blob deletion failure is logged but does not block
// removal of the record.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidInput
	}

	res, ok, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	ext := ".docx"
	if strings.HasSuffix(res.Filename, ".pdf") {
		ext = ".pdf"
	}
	if err := s.Store.Delete(ctx, userID+ext); err != nil {
		telemetry.Warn("resume.blob_delete_failed", map[string]any{
			"user_id": userID,
			"err":     err.Error(),
		})
	}

	return s.Repo.DeleteByUser(ctx, userID)
}

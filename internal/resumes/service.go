package resumes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/render"
)

const (
	// DownloadName is the attachment name of every generated document.
	DownloadName = "resume.pdf"
	MimePDF      = "application/pdf"
)

// Renderer turns resume content into PDF bytes.
type Renderer func(render.Document) ([]byte, error)

// Service contains business logic for resume records and documents.
type Service struct {
	Repo   Repo
	Render Renderer
	// Archive optionally keeps a copy of the last generated document per user.
	Archive object.ObjectStore
}

// NewService wires a Service with the PDF renderer.
func NewService(repo Repo, archive object.ObjectStore) *Service {
	return &Service{Repo: repo, Render: render.RenderPDF, Archive: archive}
}

// Save appends a new record for the user. Earlier records are kept.
func (s *Service) Save(ctx context.Context, userID string, fields Fields) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}
	if s.Repo == nil {
		return Record{}, errors.New("resumes service not configured")
	}
	rec, err := s.Repo.Create(ctx, userID, fields)
	if err != nil {
		return Record{}, fmt.Errorf("save resume: %w", err)
	}
	metrics.IncResumesSaved()
	return rec, nil
}

// Latest returns the most recently saved record, or ErrNoRecord.
func (s *Service) Latest(ctx context.Context, userID string) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}
	if s.Repo == nil {
		return Record{}, errors.New("resumes service not configured")
	}
	return s.Repo.Latest(ctx, userID)
}

// Generate renders the user's latest record to PDF bytes.
func (s *Service) Generate(ctx context.Context, userID string) ([]byte, error) {
	rec, err := s.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	renderFn := s.Render
	if renderFn == nil {
		renderFn = render.RenderPDF
	}

	start := time.Now()
	data, err := renderFn(ToDocument(rec))
	if err != nil {
		return nil, err
	}
	metrics.ObserveRenderDurationMs(metrics.SinceMillis(start))
	metrics.IncResumesGenerated()

	s.archive(ctx, userID, data)
	return data, nil
}

// ToDocument maps a record onto the renderer's named fields.
func ToDocument(rec Record) render.Document {
	f := rec.Fields
	return render.Document{
		FullName:   f.FullName,
		Email:      f.Email,
		Phone:      f.Phone,
		Summary:    f.Summary,
		Skills:     f.Skills,
		Experience: f.Experience,
		Education:  f.Education,
	}
}

func (s *Service) archive(ctx context.Context, userID string, data []byte) {
	if s.Archive == nil {
		return
	}
	key, err := object.UserKey(userID, DownloadName)
	if err == nil {
		_, err = s.Archive.Put(ctx, key, MimePDF, bytes.NewReader(data))
	}
	if err != nil {
		telemetry.Error("resume.archive_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

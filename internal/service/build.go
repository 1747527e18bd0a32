package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_build_service.go -package=mocks -mock_names=BuildService=MockBuildService flashdeck/internal/service BuildService

import (
	"context"
	"mime/multipart"
	"time"

	"flashdeck/internal/contextutil"
	"flashdeck/internal/form"
	"flashdeck/internal/upload"
)

// BuildResult is the outcome of a study-form submission.
type BuildResult struct {
	Submission form.Submission
	Files      upload.Selection
	Session    Session
}

// BuildService handles the study-material form.
type BuildService interface {
	// Submit validates the form, inspects the uploaded material and opens a
	// viewer session on the default deck.
	Submit(ctx context.Context, sub *form.Submission) (BuildResult, error)
	// InspectFiles rebuilds the file list for a picker selection or drop.
	InspectFiles(ctx context.Context, files []*multipart.FileHeader, lastModified []string) (upload.Selection, error)
}

type buildService struct {
	viewer      ViewerService
	defaultDeck string
	workers     int
	now         func() time.Time
}

// NewBuildService creates a BuildService. workers bounds concurrent file
// inspection.
func NewBuildService(viewer ViewerService, defaultDeck string, workers int) BuildService {
	return &buildService{
		viewer:      viewer,
		defaultDeck: defaultDeck,
		workers:     workers,
		now:         time.Now,
	}
}

// Submit processes a study-form submission.
func (s *buildService) Submit(ctx context.Context, sub *form.Submission) (BuildResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if sub == nil {
		return BuildResult{}, &ValidationError{Field: "form", Message: "is required"}
	}
	if err := validateSubmission(sub); err != nil {
		logger.WarnContext(ctx, "invalid study form", "error", err)
		return BuildResult{}, err
	}

	files, err := s.InspectFiles(ctx, sub.Material, sub.LastModified)
	if err != nil {
		return BuildResult{}, err
	}

	sess, err := s.viewer.Start(ctx, s.defaultDeck)
	if err != nil {
		logger.ErrorContext(ctx, "failed to start viewer session", "deck", s.defaultDeck, "error", err)
		return BuildResult{}, WrapError(err, "failed to start viewer session")
	}

	logger.InfoContext(ctx, "study form processed",
		"course", sub.CourseName,
		"subject", sub.Subject,
		"files", len(files),
		"bytes", files.TotalSize(),
		"session_id", sess.ID,
	)
	return BuildResult{
		Submission: *sub,
		Files:      files,
		Session:    sess,
	}, nil
}

// InspectFiles builds the selection for files and reads their content.
func (s *buildService) InspectFiles(ctx context.Context, files []*multipart.FileHeader, lastModified []string) (upload.Selection, error) {
	widget := upload.NewWidget()
	widget.Select(upload.FromFileHeaders(files, lastModified, s.now().UTC()))

	if err := widget.Inspect(ctx, s.workers); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to inspect uploaded files", "error", err)
		return nil, WrapError(err, "failed to inspect uploaded files")
	}
	return widget.Selection(), nil
}

func validateSubmission(sub *form.Submission) error {
	required := []struct {
		field string
		value string
	}{
		{form.FieldCourseName, sub.CourseName},
		{form.FieldDifficulty, sub.Difficulty},
		{form.FieldSchoolLevel, sub.SchoolLevel},
		{form.FieldSubject, sub.Subject},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}
	if len(sub.Material) == 0 {
		return &ValidationError{Field: form.FieldMaterial, Message: "at least one file is required"}
	}
	return nil
}

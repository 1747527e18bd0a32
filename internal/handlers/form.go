package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"flashdeck/internal/contextutil"
	"flashdeck/internal/form"
	"flashdeck/internal/service"
	"flashdeck/internal/upload"
)

// defaultMultipartMemory caps the multipart bytes held in memory; larger
// uploads spill to temporary files.
const defaultMultipartMemory = 8 << 20

// FormHandler serves the study-material form and its submission.
type FormHandler struct {
	build    service.BuildService
	renderer *Renderer
	maxBytes int64
	memory   int64
}

// NewFormHandler creates a new FormHandler. maxBytes caps the size of a
// submission.
func NewFormHandler(buildService service.BuildService, renderer *Renderer, maxBytes int64) *FormHandler {
	return &FormHandler{
		build:    buildService,
		renderer: renderer,
		maxBytes: maxBytes,
		memory:   min(maxBytes, defaultMultipartMemory),
	}
}

// buildPageData holds template data for the build result page.
type buildPageData struct {
	service.BuildResult
	Rules template.HTML
}

// Index renders the study form.
// Route: GET /
func (h *FormHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.renderer.Page(w, http.StatusOK, "form.html", nil); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to execute form template", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// Build processes a submitted study form.
// Route: POST /build
func (h *FormHandler) Build(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	defer removeMultipartForm(r)

	sub, err := form.FromRequest(r, h.memory)
	if err != nil {
		logger.WarnContext(ctx, "invalid study form", "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	result, err := h.build.Submit(ctx, sub)
	if err != nil {
		handlePageError(ctx, w, err, "Failed to process form")
		return
	}

	data := buildPageData{BuildResult: result}
	if result.Submission.Rules != "" {
		rules, err := h.renderer.Markdown(result.Submission.Rules)
		if err != nil {
			logger.ErrorContext(ctx, "failed to render rules", "error", err)
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}
		data.Rules = rules
	}

	if err := h.renderer.Page(w, http.StatusOK, "build.html", data); err != nil {
		logger.ErrorContext(ctx, "failed to execute build template", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// removeMultipartForm deletes the temporary files of a parsed multipart form.
func removeMultipartForm(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

// UploadHandler rebuilds the file list for the upload widget.
type UploadHandler struct {
	build    service.BuildService
	maxBytes int64
	memory   int64
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(buildService service.BuildService, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		build:    buildService,
		maxBytes: maxBytes,
		memory:   min(maxBytes, defaultMultipartMemory),
	}
}

// UploadResponse lists the files of a selection or drop.
type UploadResponse struct {
	Files upload.Selection `json:"files"`
}

// ServeHTTP inspects the posted files.
// Route: POST /api/uploads
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	defer removeMultipartForm(r)

	if err := r.ParseMultipartForm(h.memory); err != nil {
		logger.WarnContext(ctx, "invalid upload", "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	files := r.MultipartForm.File[form.FieldMaterial]
	sel, err := h.build.InspectFiles(ctx, files, r.MultipartForm.Value[form.FieldLastModified])
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to inspect files")
		return
	}

	if sel == nil {
		sel = upload.Selection{}
	}
	resp := UploadResponse{Files: sel}
	writeJSON(ctx, w, http.StatusOK, resp)
}

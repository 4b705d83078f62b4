package handlers

import (
	"net/http"
	"time"

	"github.com/omercangizik/AniKutusu1/internal/domain"
	"github.com/omercangizik/AniKutusu1/internal/service/memory"
	"github.com/omercangizik/AniKutusu1/pkg/api"
	"github.com/omercangizik/AniKutusu1/pkg/observability"
	"github.com/omercangizik/AniKutusu1/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MemoryHandler handles memory CRUD requests.
type MemoryHandler struct {
	svc       *memory.Service
	metrics   *observability.Collector
	maxUpload int64
	logger    *zap.Logger
}

// NewMemoryHandler creates a new memory handler. maxUpload bounds the photo
// size in bytes.
func NewMemoryHandler(svc *memory.Service, metrics *observability.Collector, maxUpload int64, logger *zap.Logger) *MemoryHandler {
	return &MemoryHandler{
		svc:       svc,
		metrics:   metrics,
		maxUpload: maxUpload,
		logger:    logger,
	}
}

// createMemoryRequest carries the multipart form fields of a create request.
type createMemoryRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"required,min=1,max=500"`
	Date        string `json:"date" validate:"required"`
}

// List handles GET /api/memories/{id}
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	items, err := h.svc.List(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Anılar getirilirken bir hata oluştu")
		return
	}

	out := make([]api.MemoryResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}
	api.Success(w, http.StatusOK, out)
}

// Get handles GET /api/memories/{id}/{memoryId}
func (h *MemoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	memoryID := chi.URLParam(r, "memoryId")

	m, err := h.svc.Get(r.Context(), groupID, memoryID)
	if err != nil {
		respondServiceError(w, h.logger, err, "Anı getirilirken bir hata oluştu")
		return
	}
	api.Success(w, http.StatusOK, toResponse(m))
}

// Create handles POST /api/memories/{id} with a multipart form.
func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")

	// Bound the whole request body; the form fields ride along with the photo.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1024*1024)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		api.Error(w, http.StatusBadRequest, "Geçersiz form verisi")
		return
	}

	req := createMemoryRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
	}
	errs := utils.ValidateStruct(req)
	if req.Date != "" && !validDate(req.Date) {
		errs = append(errs, api.FieldError{Field: "date", Message: "Geçerli bir tarih giriniz"})
	}
	if errs != nil {
		api.FieldErrors(w, errs)
		return
	}

	in := memory.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}

	file, header, err := r.FormFile("photo")
	switch err {
	case nil:
		defer file.Close()
		if header.Size > h.maxUpload {
			api.Error(w, http.StatusBadRequest, "Fotoğraf 5 MB'den büyük olamaz")
			return
		}
		in.Photo = file
		in.PhotoContentType = header.Header.Get("Content-Type")
	case http.ErrMissingFile:
		// Photo is optional.
	default:
		api.Error(w, http.StatusBadRequest, "Geçersiz fotoğraf")
		return
	}

	m, err := h.svc.Create(r.Context(), groupID, in)
	if err != nil {
		respondServiceError(w, h.logger, err, "Anı oluşturulurken bir hata oluştu")
		return
	}

	h.metrics.MemoriesCreated.Inc()
	if m.PhotoURL != nil {
		h.metrics.PhotosUploaded.Inc()
	}
	api.Success(w, http.StatusCreated, toResponse(m))
}

// Delete handles DELETE /api/memories/{id}/{memoryId}
func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "id")
	memoryID := chi.URLParam(r, "memoryId")

	if err := h.svc.Delete(r.Context(), groupID, memoryID); err != nil {
		respondServiceError(w, h.logger, err, "Anı silinirken bir hata oluştu")
		return
	}

	h.metrics.MemoriesDeleted.Inc()
	api.Success(w, http.StatusOK, api.MessageResponse{Message: "Anı başarıyla silindi"})
}

// validDate accepts a calendar date or a full timestamp.
func validDate(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	return false
}

func toResponse(m *domain.Memory) api.MemoryResponse {
	return api.MemoryResponse{
		MemoryID:    m.MemoryID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
		PhotoURL:    m.PhotoURL,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

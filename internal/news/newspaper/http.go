package newspaper

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zfatbt/tenufa/internal/platform/middleware"
	requestutil "github.com/zfatbt/tenufa/internal/platform/request"
	"github.com/zfatbt/tenufa/internal/platform/respond"
	"github.com/zfatbt/tenufa/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the paper-edition archive endpoints. Browsing is public;
// publishing and removal are Editor+.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{slug}", handler.getBySlug)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))

		admin.Post("/", handler.publish)
		admin.Delete("/{id}", handler.remove)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	issues, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, issues)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := chi.URLParam(request, "slug")

	issue, err := handler.service.GetBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, issue)
}

// publishRequest is the JSON payload for uploading a new edition.
type publishRequest struct {
	Title       string     `json:"title"`
	PDFURL      string     `json:"pdf_url"`
	PublishedAt *time.Time `json:"date"`
}

func (handler *Handler) publish(writer http.ResponseWriter, request *http.Request) {
	var input publishRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	publishInput := PublishInput{
		Title:  input.Title,
		PDFURL: input.PDFURL,
	}
	if input.PublishedAt != nil {
		publishInput.PublishedAt = *input.PublishedAt
	}

	issue, err := handler.service.Publish(request.Context(), publishInput)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, issue)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Remove(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

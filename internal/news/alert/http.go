package alert

import (
	"net/http"

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

// Routes returns the ticker endpoints. GET / is public; the rest is Editor+.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listActive)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))

		admin.Get("/all", handler.listAll)
		admin.Post("/", handler.create)
		admin.Patch("/{id}", handler.update)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) listActive(writer http.ResponseWriter, request *http.Request) {
	alerts, err := handler.service.ListActive(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, alerts)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	alerts, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, alerts)
}

type alertRequest struct {
	Text     string `json:"text"`
	Link     string `json:"link"`
	IsActive bool   `json:"is_active"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input alertRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ticker, err := handler.service.Create(request.Context(), CreateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, ticker)
}

type alertPatchRequest struct {
	Text     *string `json:"text"`
	Link     *string `json:"link"`
	IsActive *bool   `json:"is_active"`
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input alertPatchRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ticker, err := handler.service.Update(request.Context(), id, UpdateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ticker)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

package ad

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

// Routes returns the ad placement endpoints.
//
//   - GET / is public and serves only active placements (optional ?area=).
//   - Everything else is Editor+ and drives the admin dashboard.
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
	ads, err := handler.service.ListActive(request.Context(), request.URL.Query().Get("area"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ads)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	ads, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ads)
}

// adRequest is the JSON payload for creating a placement.
type adRequest struct {
	Area     string  `json:"area"`
	Title    string  `json:"title"`
	IsActive bool    `json:"is_active"`
	Slides   []Slide `json:"slides"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input adRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	placement, err := handler.service.Create(request.Context(), CreateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, placement)
}

// adPatchRequest is the JSON payload for a partial placement update.
type adPatchRequest struct {
	Area     *string `json:"area"`
	Title    *string `json:"title"`
	IsActive *bool   `json:"is_active"`
	Slides   []Slide `json:"slides"`
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input adPatchRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	placement, err := handler.service.Update(request.Context(), id, UpdateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, placement)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

package newsletter

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

// Routes returns the mailing-list endpoints. Subscribing is public; the
// roster is Editor+.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.subscribe)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))

		admin.Get("/", handler.list)
		admin.Delete("/{id}", handler.unsubscribe)
	})

	return router
}

// subscribeRequest is the JSON payload of the subscribe form.
type subscribeRequest struct {
	Email string `json:"email"`
}

func (handler *Handler) subscribe(writer http.ResponseWriter, request *http.Request) {
	var input subscribeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	subscriber, err := handler.service.Subscribe(request.Context(), input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, subscriber)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	subscribers, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, subscribers)
}

func (handler *Handler) unsubscribe(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Unsubscribe(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

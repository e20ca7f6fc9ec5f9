package contact

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

// Routes returns the contact-form endpoints. Submission is public; the
// inbox is Editor+.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.submit)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleEditor))

		admin.Get("/", handler.list)
		admin.Patch("/{id}/read", handler.markRead)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

// contactRequest is the JSON payload of the public contact form.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input contactRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.Submit(request.Context(), SubmitInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Body:    input.Message,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, message)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	messages, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, messages)
}

func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.MarkRead(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

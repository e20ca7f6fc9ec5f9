package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zfatbt/tenufa/internal/platform/middleware"
	requestutil "github.com/zfatbt/tenufa/internal/platform/request"
	"github.com/zfatbt/tenufa/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the comment endpoints.
//
// Reading a thread is public; writing, liking, and deleting require a
// signed-in account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{postID}", handler.listByPost)

	router.Group(func(members chi.Router) {
		members.Use(middleware.RequireAuth)

		members.Post("/", handler.create)
		members.Put("/like/{id}", handler.toggleLike)
		members.Delete("/{id}", handler.delete)
	})

	return router
}

func (handler *Handler) listByPost(writer http.ResponseWriter, request *http.Request) {
	postID := chi.URLParam(request, "postID")

	comments, err := handler.service.ListByPost(request.Context(), postID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comments)
}

// commentRequest is the JSON payload for posting a comment.
type commentRequest struct {
	PostID  string `json:"post_id"`
	Content string `json:"content"`
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input commentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Create(request.Context(), CreateInput{
		PostID:   input.PostID,
		UserID:   claims.UserID,
		UserName: claims.Name,
		Content:  input.Content,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

func (handler *Handler) toggleLike(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.ToggleLike(request.Context(), id, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id, claims.UserID, claims.UserRole()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

/*
Package post also provides the HTTP interface for the article catalogue.

# Routing Strategy

  - Public: Browsing, single-article reads, short-link resolution, likes.
  - Restricted: Mutative endpoints requiring Writer or Editor roles.

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zfatbt/tenufa/internal/platform/middleware"
	requestutil "github.com/zfatbt/tenufa/internal/platform/request"
	"github.com/zfatbt/tenufa/internal/platform/respond"
	"github.com/zfatbt/tenufa/internal/platform/sec"
	"github.com/zfatbt/tenufa/pkg/convert"
	"github.com/zfatbt/tenufa/pkg/pagination"
	"github.com/zfatbt/tenufa/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the article endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Reading Endpoints
	router.Get("/", handler.listPosts)
	router.Get("/{id}", handler.getPost)
	router.Get("/code/{code}", handler.getPostByShortCode)
	router.Put("/like/{id}", handler.likePost)

	// ## Authoring (Writer and above)
	router.Group(func(authoring chi.Router) {
		authoring.Use(middleware.RequireRole(sec.RoleWriter))
		authoring.Post("/", handler.createPost)
	})

	// ## Editing (Editor and above)
	router.Group(func(editing chi.Router) {
		editing.Use(middleware.RequireRole(sec.RoleEditor))
		editing.Patch("/{id}", handler.updatePost)
		editing.Delete("/{id}", handler.deletePost)
	})

	return router
}

/*
GET /api/posts.

Description: Retrieves one page of articles, newest first.

Request:
  - page: int (1-indexed)
  - limit: int
  - category: string
  - featured: bool (hero-slider articles only)
  - tags: string (comma-separated, matches any)

Response:
  - 200: {posts, total_pages, current_page}
*/
func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Category: request.URL.Query().Get("category"),
		Tags:     query.StringSlice(request.URL.Query().Get("tags")),
	}

	// "featured" is tri-state: absent means both, present means filtered.
	if raw := request.URL.Query().Get("featured"); raw != "" {
		featured := convert.ToBool(raw)
		filter.Featured = &featured
	}

	result, err := handler.service.List(request.Context(), filter, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/posts/{id}.

Description: Retrieves a single article and counts the view.

Response:
  - 200: Post
  - 404: Unknown article ID
*/
func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	article, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

/*
GET /api/posts/code/{code}.

Description: Resolves a printed short-link code to its article.
*/
func (handler *Handler) getPostByShortCode(writer http.ResponseWriter, request *http.Request) {
	code := chi.URLParam(request, "code")

	article, err := handler.service.GetByShortCode(request.Context(), code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

/*
PUT /api/posts/like/{id}.

Description: Increments the article's like counter. Open to anonymous
readers; protected only by the global rate limiter.

Response:
  - 200: {likes}
*/
func (handler *Handler) likePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	likes, err := handler.service.Like(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int{"likes": likes})
}

// postRequest is the JSON payload for creating an article.
type postRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Excerpt     string   `json:"excerpt"`
	ImageURL    string   `json:"image_url"`
	ImageCredit string   `json:"image_credit"`
	Tags        []string `json:"tags"`
	IsFeatured  bool     `json:"is_featured"`
}

/*
POST /api/posts (Writer+).

Description: Publishes a new article attributed to the authenticated author.

Response:
  - 201: Post (including the generated short-link code)
  - 400: Validation failure
*/
func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Create(request.Context(), CreateInput{
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		Excerpt:     input.Excerpt,
		ImageURL:    input.ImageURL,
		ImageCredit: input.ImageCredit,
		Tags:        input.Tags,
		IsFeatured:  input.IsFeatured,
		AuthorID:    claims.UserID,
		AuthorName:  claims.Name,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, article)
}

// postPatchRequest is the JSON payload for a partial article update.
type postPatchRequest struct {
	Title       *string  `json:"title"`
	Content     *string  `json:"content"`
	Category    *string  `json:"category"`
	Excerpt     *string  `json:"excerpt"`
	ImageURL    *string  `json:"image_url"`
	ImageCredit *string  `json:"image_credit"`
	Tags        []string `json:"tags"`
	IsFeatured  *bool    `json:"is_featured"`
}

/*
PATCH /api/posts/{id} (Editor+).

Description: Applies a partial update; omitted fields keep their value.
*/
func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input postPatchRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.Update(request.Context(), id, UpdateInput{
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		Excerpt:     input.Excerpt,
		ImageURL:    input.ImageURL,
		ImageCredit: input.ImageCredit,
		Tags:        input.Tags,
		IsFeatured:  input.IsFeatured,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

/*
DELETE /api/posts/{id} (Editor+).
*/
func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

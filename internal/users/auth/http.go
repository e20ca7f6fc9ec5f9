// Copyright (c) 2026 Tenufa. All rights reserved.
// Author: dev@zfatbt.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zfatbt/tenufa/internal/platform/middleware"
	requestutil "github.com/zfatbt/tenufa/internal/platform/request"
	"github.com/zfatbt/tenufa/internal/platform/respond"
	"github.com/zfatbt/tenufa/internal/platform/sec"
	"github.com/zfatbt/tenufa/internal/platform/validate"
)

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the user lifecycle entry points (registration, login)
// and the admin-facing account management endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - POST /register    : Creates a new account and signs it in.
//   - POST /login       : Authenticates and returns a JWT.
//   - GET  /users       : Lists accounts (admin only).
//   - PATCH /users/{id} : Changes an account's role (admin only).
//   - DELETE /users/{id}: Removes an account (admin only).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)

	router.Route("/users", func(users chi.Router) {
		users.Use(middleware.RequireRole(sec.RoleAdmin))

		users.Get("/", handler.listUsers)
		users.Patch("/{id}", handler.changeRole)
		users.Delete("/{id}", handler.deleteUser)
	})

	return router
}

// registerRequest represents the JSON payload expected for account creation.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register handles POST /api/register requests.
//
// # Returns
//   - Writes HTTP 201 Created on success with `{token, user}`.
//   - Writes HTTP 400 Bad Request if validation rules fail.
//   - Writes HTTP 409 Conflict if the email is taken.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	// Prevent malformed data from reaching the service layer.
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, NameMaxLength)
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.MinLen(FieldPassword, input.Password, PasswordMinLength)
	if validator.HasErrors() {
		respond.Error(writer, request, validator.Err())
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	credentials, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})

	// Service handles the uniqueness check and Bcrypt hashing.
	// Domain errors map to HTTP statuses inside the respond helper.
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, credentials)
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /api/login requests.
//
// # Returns
//   - Writes HTTP 200 OK on success with `{token, user}`.
//   - Writes HTTP 401 Unauthorized for bad credentials.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Email == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("email/password", "are required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	credentials, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})

	if err != nil {
		// Returns HTTP 401 without leaking which part of the pair was wrong.
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, credentials)
}

// listUsers handles GET /api/users requests (admin only).
//
// Password hashes never serialize; the [User] entity omits them from JSON.
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.authService.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

// changeRoleRequest represents the JSON payload for a role change.
type changeRoleRequest struct {
	Role string `json:"role"`
}

// changeRole handles PATCH /api/users/{id} requests (admin only).
func (handler *Handler) changeRole(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input changeRoleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.ChangeRole(request.Context(), id, sec.UserRole(input.Role)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

// deleteUser handles DELETE /api/users/{id} requests (admin only).
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.authService.DeleteUser(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Success(writer)
}

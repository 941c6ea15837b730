// Copyright (c) 2026 Inner Garden. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/innergarden/gallery/internal/platform/request"
	"github.com/innergarden/gallery/internal/platform/respond"
	"github.com/innergarden/gallery/internal/platform/validate"
)

// Handler implements the back-office login endpoint.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// RegisterRoutes mounts the login endpoint.
//
// # Endpoints
//   - POST /login : Authenticates and returns a JWT.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

/*
Login authenticates an operator.

POST /api/v1/admin/login

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: Session: Access token and role
  - 400: Validation failure
  - 401: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, 64).
		Required(FieldPassword, input.Password).
		MaxLen(FieldPassword, input.Password, 72)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

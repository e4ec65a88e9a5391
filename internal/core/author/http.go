// Copyright (c) 2026 Avironin. All rights reserved.

package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	googleuuid "github.com/google/uuid"

	"github.com/avironin/insight-api/internal/platform/apperr"
	"github.com/avironin/insight-api/internal/platform/middleware"
	requestutil "github.com/avironin/insight-api/internal/platform/request"
	"github.com/avironin/insight-api/internal/platform/respond"
	"github.com/avironin/insight-api/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listAuthors)
	router.Get("/{id}", handler.getAuthor)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Post("/", handler.createAuthor)
	router.Patch("/{id}", handler.updateAuthor)
	router.Delete("/{id}", handler.deleteAuthor)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authors)
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	id, err := googleuuid.Parse(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Author"))
		return
	}

	author, err := handler.service.GetAuthor(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var input Author
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAuthor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	id, err := googleuuid.Parse(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Author"))
		return
	}

	var input Author
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAuthor(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	id, err := googleuuid.Parse(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Author"))
		return
	}

	if err := handler.service.DeleteAuthor(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

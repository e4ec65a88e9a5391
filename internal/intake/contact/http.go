// Copyright (c) 2026 Avironin. All rights reserved.

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avironin/insight-api/internal/platform/middleware"
	requestutil "github.com/avironin/insight-api/internal/platform/request"
	"github.com/avironin/insight-api/internal/platform/respond"
	"github.com/avironin/insight-api/internal/platform/sec"
	"github.com/avironin/insight-api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/", handler.submit)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/", handler.list)
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	submission, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, submission)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	submissions, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, submissions, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

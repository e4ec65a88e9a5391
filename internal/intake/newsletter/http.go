// Copyright (c) 2026 Avironin. All rights reserved.

package newsletter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/avironin/insight-api/internal/platform/request"
	"github.com/avironin/insight-api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/subscribe", handler.subscribe)
}

func (handler *Handler) subscribe(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	subscriber, err := handler.service.Subscribe(request.Context(), input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, map[string]string{"email": subscriber.Email})
}

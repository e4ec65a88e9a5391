// Copyright (c) 2026 Avironin. All rights reserved.

package post

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	googleuuid "github.com/google/uuid"

	"github.com/avironin/insight-api/internal/platform/apperr"
	"github.com/avironin/insight-api/internal/platform/constants"
	"github.com/avironin/insight-api/internal/platform/middleware"
	requestutil "github.com/avironin/insight-api/internal/platform/request"
	"github.com/avironin/insight-api/internal/platform/respond"
	"github.com/avironin/insight-api/internal/platform/sec"
)

// Uploader stores a white-paper document and returns its public URL.
type Uploader interface {
	UploadWhitepaper(context context.Context, originalFilename string, data []byte) (string, error)
}

type Handler struct {
	service  *Service
	uploader Uploader
}

func NewHandler(service *Service, uploader Uploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

// RegisterPublicRoutes exposes the read-only catalog. Everything here is
// gated on publication state.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Get("/", handler.listPublished)
	router.Get("/featured", handler.listFeatured)
	router.Get("/category/{category}", handler.listByCategory)
	router.Get("/{slug}", handler.getBySlug)
}

// RegisterAdminRoutes exposes the full editorial surface, publication state
// included.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/", handler.listAll)
	router.Post("/", handler.createPost)
	router.Post("/upload", handler.uploadWhitepaper)
	router.Get("/{id}", handler.getByID)
	router.Patch("/{id}", handler.updatePost)
	router.Delete("/{id}", handler.deletePost)
	router.Patch("/{id}/published", handler.setPublished)
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	// A missing ?type= means the whole published catalog.
	contentType := ContentType(request.URL.Query().Get("type"))

	posts, err := handler.service.ListPublished(request.Context(), contentType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) listFeatured(writer http.ResponseWriter, request *http.Request) {
	limit, _ := strconv.Atoi(request.URL.Query().Get("limit"))

	posts, err := handler.service.ListFeatured(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) listByCategory(writer http.ResponseWriter, request *http.Request) {
	categorySlug := requestutil.Param(request, "category")

	posts, err := handler.service.ListByCategory(request.Context(), categorySlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	post, err := handler.service.GetBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	id, err := googleuuid.Parse(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Post"))
		return
	}

	post, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) createPost(writer http.ResponseWriter, request *http.Request) {
	var input Post
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePost(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePost(writer http.ResponseWriter, request *http.Request) {
	id, err := googleuuid.Parse(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Post"))
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdatePost(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deletePost(writer http.ResponseWriter, request *http.Request) {
	id, err := googleuuid.Parse(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Post"))
		return
	}

	if err := handler.service.DeletePost(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setPublished(writer http.ResponseWriter, request *http.Request) {
	id, err := googleuuid.Parse(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Post"))
		return
	}

	var input struct {
		Published bool `json:"published"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetPublished(request.Context(), id, input.Published); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]bool{"published": input.Published})
}

// uploadWhitepaper accepts a multipart PDF and stores it, returning the
// public URL for the admin UI to attach to a post. The document is not
// linked to any post here; linking happens on the subsequent post write.
func (handler *Handler) uploadWhitepaper(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.WhitepaperMaxBytes)

	file, header, err := request.FormFile(FieldFile)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing file upload", apperr.FieldError{Field: FieldFile, Message: "A PDF file is required"}))
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		respond.Error(writer, request, apperr.Unprocessable("Only PDF documents are accepted"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("File exceeds the 10MB upload limit"))
		return
	}

	url, err := handler.uploader.UploadWhitepaper(request.Context(), header.Filename, data)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}
	respond.Created(writer, map[string]string{"url": url})
}

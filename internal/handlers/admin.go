package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/worknest/staff/internal/dto"
	apierrors "github.com/worknest/staff/internal/errors"
	"github.com/worknest/staff/internal/forms"
	"github.com/worknest/staff/internal/services"
	"github.com/worknest/staff/internal/utils"
)

// formFor is a form type F whose pointer applies onto a *T.
type formFor[F any, T any] interface {
	*F
	Apply(record *T) error
}

// ResourceHandler exposes raw CRUD over one model in the operator console.
type ResourceHandler[T any, F any, P formFor[F, T]] struct {
	service *services.ResourceService[T]
	create  func(record *T) error
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler[T any, F any, P formFor[F, T]](service *services.ResourceService[T]) *ResourceHandler[T, F, P] {
	return &ResourceHandler[T, F, P]{
		service: service,
		create:  service.Create,
	}
}

// WithCreate replaces the default insert, e.g. to route through a domain service.
func (h *ResourceHandler[T, F, P]) WithCreate(create func(record *T) error) *ResourceHandler[T, F, P] {
	h.create = create
	return h
}

// Register mounts the five CRUD routes on group.
func (h *ResourceHandler[T, F, P]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *ResourceHandler[T, F, P]) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	records, total, err := h.service.List(params.Page, params.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse[T]{
		Data: records,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

func (h *ResourceHandler[T, F, P]) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.service.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *ResourceHandler[T, F, P]) Create(c *gin.Context) {
	var form F
	if err := forms.Bind(c, P(&form)); err != nil {
		respondServiceError(c, err)
		return
	}

	var record T
	if err := P(&form).Apply(&record); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.create(&record); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *ResourceHandler[T, F, P]) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.service.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var form F
	if err := forms.Bind(c, P(&form)); err != nil {
		respondServiceError(c, err)
		return
	}
	if err := P(&form).Apply(record); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.service.Update(record); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *ResourceHandler[T, F, P]) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

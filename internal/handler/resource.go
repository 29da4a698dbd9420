package handler

import (
	"context"
	"net/http"
	"strconv"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// entityService is the operation set shared by every registered entity
type entityService[T any, R any] interface {
	List(ctx context.Context, actor permission.Actor) ([]T, error)
	GetByID(ctx context.Context, actor permission.Actor, id uint) (*T, error)
	Add(ctx context.Context, actor permission.Actor, req R) (*T, error)
	Update(ctx context.Context, actor permission.Actor, id uint, req R) (*T, error)
}

// resource serves the list/get/add/update routes of one entity.
// name is the key single records are wrapped under.
type resource[T any, R any] struct {
	name    string
	service entityService[T, R]
	logger  *zap.Logger
}

func newResource[T any, R any](name string, service entityService[T, R], logger *zap.Logger) resource[T, R] {
	return resource[T, R]{name: name, service: service, logger: logger}
}

// List returns every record as a JSON array
func (h resource[T, R]) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if records == nil {
		records = []T{}
	}
	utils.SuccessResponse(c, records)
}

// Get returns the record named by the :id path parameter
func (h resource[T, R]) Get(c *gin.Context) {
	id, ok := pathID(c, "id", h.name)
	if !ok {
		return
	}
	record, err := h.service.GetByID(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, record)
}

// Add creates a record from the JSON body
func (h resource[T, R]) Add(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	record, err := h.service.Add(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.EntityResponse(c, h.name, record)
}

// Update updates the record named by the :id path parameter
func (h resource[T, R]) Update(c *gin.Context) {
	id, ok := pathID(c, "id", h.name)
	if !ok {
		return
	}
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	h.update(c, id, req)
}

// UpdateFromBody updates the record whose id is carried in the JSON body
func (h resource[T, R]) UpdateFromBody(c *gin.Context) {
	var body struct {
		ID uint `json:"id"`
	}
	var req R
	if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ID == 0 {
		respondError(c, h.logger, apperror.Required("id"))
		return
	}
	h.update(c, body.ID, req)
}

func (h resource[T, R]) update(c *gin.Context, id uint, req R) {
	record, err := h.service.Update(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.EntityResponse(c, h.name, record)
}

// Register mounts the entity routes on group using the given permissions
func (h resource[T, R]) Register(group *gin.RouterGroup, guard func(string) gin.HandlerFunc, view, create, update string) {
	group.GET("", guard(view), h.List)
	group.GET("/:id", guard(view), h.Get)
	group.POST("/add", guard(create), h.Add)
	group.PUT("/update/:id", guard(update), h.Update)
	group.POST("/update", guard(update), h.UpdateFromBody)
}

// actorFrom returns the authenticated user set by the auth middleware
func actorFrom(c *gin.Context) permission.Actor {
	return permission.NewActor(c.GetUint("userID"))
}

// pathID parses a numeric path parameter, writing a 400 on failure
func pathID(c *gin.Context, param, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+entity+" id")
		return 0, false
	}
	return uint(id), true
}

// respondError writes err with the status of its kind. Internal failures are
// logged and reported as "unknown error".
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	status := apperror.Status(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	utils.ErrorResponse(c, status, apperror.PublicMessage(err))
}

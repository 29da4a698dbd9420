package handler

import (
	"net/http"

	"patient-transport-backend/internal/models"
	"patient-transport-backend/internal/service"
	"patient-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type GroupHandler struct {
	resource[models.Group, service.GroupRequest]
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService, logger *zap.Logger) *GroupHandler {
	return &GroupHandler{
		resource:     newResource[models.Group, service.GroupRequest]("group", groupService, logger),
		groupService: groupService,
	}
}

// ListPermissions returns every permission known to the application
func (h *GroupHandler) ListPermissions(c *gin.Context) {
	permissions, err := h.groupService.ListPermissions(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if permissions == nil {
		permissions = []models.Permission{}
	}
	utils.SuccessResponse(c, permissions)
}

// ListGroupPermissions returns the permissions granted to :group_id
func (h *GroupHandler) ListGroupPermissions(c *gin.Context) {
	groupID, ok := pathID(c, "group_id", "group")
	if !ok {
		return
	}
	permissions, err := h.groupService.ListGroupPermissions(c.Request.Context(), actorFrom(c), groupID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.SuccessResponse(c, permissions)
}

// GrantPermission grants the permission in the body to :group_id
func (h *GroupHandler) GrantPermission(c *gin.Context) {
	groupID, ok := pathID(c, "group_id", "group")
	if !ok {
		return
	}
	var req service.GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	grant, err := h.groupService.GrantPermission(c.Request.Context(), actorFrom(c), groupID, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	utils.EntityResponse(c, "group_permission", grant)
}

type UserHandler struct {
	resource[models.User, service.UserRequest]
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{newResource[models.User, service.UserRequest]("user", userService, logger)}
}

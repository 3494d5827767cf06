package settings

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tasksync/internal/application/settings/dto"
	"tasksync/internal/application/settings/usecases"
	"tasksync/internal/shared/logger"
	"tasksync/internal/shared/utils"
)

// Handler exposes the admin CRUD for webhook configurations.
type Handler struct {
	listConfigs  *usecases.ListConfigsUseCase
	saveConfig   *usecases.SaveConfigUseCase
	updateConfig *usecases.UpdateConfigUseCase
	deleteConfig *usecases.DeleteConfigUseCase
	checkProject *usecases.CheckProjectUseCase
	logger       logger.Interface
}

func NewHandler(
	listConfigs *usecases.ListConfigsUseCase,
	saveConfig *usecases.SaveConfigUseCase,
	updateConfig *usecases.UpdateConfigUseCase,
	deleteConfig *usecases.DeleteConfigUseCase,
	checkProject *usecases.CheckProjectUseCase,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listConfigs:  listConfigs,
		saveConfig:   saveConfig,
		updateConfig: updateConfig,
		deleteConfig: deleteConfig,
		checkProject: checkProject,
		logger:       logger,
	}
}

// List handles GET /settings/configs.
func (h *Handler) List(c *gin.Context) {
	configs, err := h.listConfigs.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", configs)
}

// Save handles POST /settings/configs.
func (h *Handler) Save(c *gin.Context) {
	var req dto.SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	config, err := h.saveConfig.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Configuration saved", config)
}

// Update handles PUT /settings/configs/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updateConfig.Execute(c.Request.Context(), id, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Configuration updated", nil)
}

// Delete handles DELETE /settings/configs/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.deleteConfig.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Configuration deleted", nil)
}

// CheckProject handles POST /settings/configs/check-project.
func (h *Handler) CheckProject(c *gin.Context) {
	var req dto.CheckProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	exists, err := h.checkProject.Execute(c.Request.Context(), req.ProjectID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !exists {
		utils.ErrorResponse(c, http.StatusBadRequest, "Project not found")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Project found", nil)
}

func (h *Handler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

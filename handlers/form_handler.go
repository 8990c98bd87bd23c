package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/formbase/forms-go/dto"
	"github.com/formbase/forms-go/models"
	"github.com/formbase/forms-go/response"
	"github.com/formbase/forms-go/services"
	"github.com/formbase/forms-go/utils"
	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	service *services.FormService
	export  *services.ExportService
}

func NewFormHandler(service *services.FormService, export *services.ExportService) *FormHandler {
	return &FormHandler{service: service, export: export}
}

// ownedForm loads the form and verifies the caller created it. Replies and
// returns false when the form is missing or owned by someone else.
func (h *FormHandler) ownedForm(c *gin.Context) (models.Form, bool) {
	creatorID, _, err := utils.GetUserIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return models.Form{}, false
	}

	form, err := h.service.GetForm(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return models.Form{}, false
	}

	if form.CreatorID != creatorID {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Only the form owner may do this"})
		return models.Form{}, false
	}
	return form, true
}

// CreateForm godoc
// @Summary Create a form
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body dto.CreateFormDTO true "Form definition"
// @Success 201 {object} models.Form
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input dto.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	creatorID, creatorEmail, err := utils.GetUserIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	form, err := h.service.CreateForm(c, creatorID, creatorEmail, input)
	if err != nil {
		if errors.Is(err, models.ErrInvalidQuestionType) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, form)
}

// GetMyForms godoc
// @Summary List the caller's forms, most recently created first
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Form
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /forms [get]
func (h *FormHandler) GetMyForms(c *gin.Context) {
	creatorID, _, err := utils.GetUserIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	forms, err := h.service.GetFormsByCreator(creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Fetch a form by id
// @Description Public: anyone holding the link may read the form.
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} models.Form
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	form, err := h.service.GetForm(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, form)
}

// UpdateForm godoc
// @Summary Update a form's title, description or questions
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Param input body dto.UpdateFormDTO true "Fields to merge"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [put]
func (h *FormHandler) UpdateForm(c *gin.Context) {
	form, ok := h.ownedForm(c)
	if !ok {
		return
	}

	var input dto.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.UpdateForm(c, form.ID, input); err != nil {
		if errors.Is(err, models.ErrInvalidQuestionType) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form updated"})
}

// DeleteForm godoc
// @Summary Delete a form and all its responses
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	creatorID, _, err := utils.GetUserIdentity(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id := c.Param("id")
	form, err := h.service.GetForm(id)
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			// Already gone; deleting twice is fine.
			c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	if form.CreatorID != creatorID {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Only the form owner may do this"})
		return
	}

	if err := h.service.DeleteForm(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted"})
}

// SubmitResponse godoc
// @Summary Submit answers to a form
// @Description Public: anyone holding the link may respond. Required
// @Description questions must be answered; ids and timestamps are assigned
// @Description server-side.
// @Tags responses
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body dto.SubmitResponseDTO true "Answers keyed by question id"
// @Success 201 {object} response.IDResponse
// @Failure 400 {object} response.ErrorResponse "Missing required answers"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/responses [post]
func (h *FormHandler) SubmitResponse(c *gin.Context) {
	var input dto.SubmitResponseDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	form, err := h.service.GetForm(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Form not found"})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	if missing := form.MissingRequired(input.Answers); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error: fmt.Sprintf("missing required answers: %v", missing),
		})
		return
	}

	resp, err := h.service.SubmitResponse(form.ID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.IDResponse{ID: resp.ID})
}

// GetResponses godoc
// @Summary List a form's responses, most recent first
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Success 200 {array} models.FormResponse
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/responses [get]
func (h *FormHandler) GetResponses(c *gin.Context) {
	form, ok := h.ownedForm(c)
	if !ok {
		return
	}

	responses, err := h.service.GetResponsesByForm(form.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, responses)
}

// ExportResponses godoc
// @Summary Download a form's responses as CSV
// @Description The CSV is also archived to the exports bucket; the object
// @Description name is returned in the X-Export-Object header.
// @Tags responses
// @Produce text/csv
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Success 200 {string} string "CSV payload"
// @Failure 403 {object} response.ErrorResponse "Not the owner"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/responses/export [get]
func (h *FormHandler) ExportResponses(c *gin.Context) {
	form, ok := h.ownedForm(c)
	if !ok {
		return
	}

	objectName, data, err := h.export.ExportResponses(c.Request.Context(), form.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.Header("X-Export-Object", objectName)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", form.ID+".csv"))
	c.Data(http.StatusOK, "text/csv", data)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careconnect_backend/internal/services"
	"careconnect_backend/internal/services/dto"
)

type BloodHandler struct {
	*BaseHandler
	bloodService services.BloodService
}

func NewBloodHandler(base *BaseHandler, bloodService services.BloodService) *BloodHandler {
	return &BloodHandler{BaseHandler: base, bloodService: bloodService}
}

func (h *BloodHandler) RegisterRoutes(rg *gin.RouterGroup) {
	blood := rg.Group("/blood-donations")
	{
		blood.POST("/requests", h.CreateRequest)
		blood.GET("/requests", h.ListRequests)
		blood.GET("/requests/:id", h.GetRequest)
		blood.PUT("/requests/:id", h.UpdateRequest)
		blood.PATCH("/requests/:id/status", h.UpdateRequestStatus)
		blood.DELETE("/requests/:id", h.DeleteRequest)

		blood.POST("/responses", h.CreateResponse)
		blood.GET("/responses", h.ListResponses)
		blood.GET("/responses/:id", h.GetResponse)
		blood.PATCH("/responses/:id/status", h.UpdateResponseStatus)
	}
}

func (h *BloodHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBloodRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.bloodService.CreateRequest(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *BloodHandler) ListRequests(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var criteria dto.BloodRequestCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	page, err := h.bloodService.ListRequests(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *BloodHandler) GetRequest(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	request, err := h.bloodService.GetRequest(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *BloodHandler) UpdateRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBloodRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.bloodService.UpdateRequest(userID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *BloodHandler) UpdateRequestStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.bloodService.UpdateRequestStatus(userID, id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *BloodHandler) DeleteRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	if err := h.bloodService.DeleteRequest(userID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BloodHandler) CreateResponse(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBloodResponseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.bloodService.CreateResponse(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *BloodHandler) ListResponses(c *gin.Context) {
	skip, limit := h.ParsePagination(c)

	page, err := h.bloodService.ListResponses(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *BloodHandler) GetResponse(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	response, err := h.bloodService.GetResponse(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *BloodHandler) UpdateResponseStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.bloodService.UpdateResponseStatus(userID, id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

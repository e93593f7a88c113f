package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careconnect_backend/internal/services"
	"careconnect_backend/internal/services/dto"
)

type DeviceHandler struct {
	*BaseHandler
	deviceService services.DeviceService
}

func NewDeviceHandler(base *BaseHandler, deviceService services.DeviceService) *DeviceHandler {
	return &DeviceHandler{BaseHandler: base, deviceService: deviceService}
}

func (h *DeviceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	devices := rg.Group("/assistive-devices")
	{
		devices.POST("/listings", h.CreateListing)
		devices.GET("/listings", h.ListListings)
		devices.GET("/listings/:id", h.GetListing)
		devices.PUT("/listings/:id", h.UpdateListing)
		devices.PATCH("/listings/:id/status", h.UpdateListingStatus)

		devices.POST("/requests", h.CreateRequest)
		devices.GET("/requests", h.ListRequests)
		devices.GET("/requests/:id", h.GetRequest)
		devices.PATCH("/requests/:id/status", h.UpdateRequestStatus)

		devices.POST("/responses", h.CreateResponse)
		devices.GET("/responses", h.ListResponses)
		devices.GET("/responses/:id", h.GetResponse)
		devices.PATCH("/responses/:id/status", h.UpdateResponseStatus)

		devices.POST("/reviews", h.CreateReview)
		devices.GET("/reviews", h.ListReviews)
	}
}

// Listings

func (h *DeviceHandler) CreateListing(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDeviceListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.deviceService.CreateListing(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

func (h *DeviceHandler) ListListings(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var criteria dto.DeviceListingCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	page, err := h.deviceService.ListListings(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *DeviceHandler) GetListing(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	listing, err := h.deviceService.GetListing(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *DeviceHandler) UpdateListing(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDeviceListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.deviceService.UpdateListing(userID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *DeviceHandler) UpdateListingStatus(c *gin.Context) {
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

	listing, err := h.deviceService.UpdateListingStatus(userID, id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Requests

func (h *DeviceHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDeviceRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.deviceService.CreateRequest(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *DeviceHandler) ListRequests(c *gin.Context) {
	skip, limit := h.ParsePagination(c)

	page, err := h.deviceService.ListRequests(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *DeviceHandler) GetRequest(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	request, err := h.deviceService.GetRequest(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *DeviceHandler) UpdateRequestStatus(c *gin.Context) {
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

	request, err := h.deviceService.UpdateRequestStatus(userID, id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// Responses

func (h *DeviceHandler) CreateResponse(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDeviceResponseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.deviceService.CreateResponse(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *DeviceHandler) ListResponses(c *gin.Context) {
	skip, limit := h.ParsePagination(c)

	page, err := h.deviceService.ListResponses(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *DeviceHandler) GetResponse(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	response, err := h.deviceService.GetResponse(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *DeviceHandler) UpdateResponseStatus(c *gin.Context) {
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

	response, err := h.deviceService.UpdateResponseStatus(userID, id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Reviews

func (h *DeviceHandler) CreateReview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateDeviceReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.deviceService.CreateReview(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *DeviceHandler) ListReviews(c *gin.Context) {
	skip, limit := h.ParsePagination(c)

	page, err := h.deviceService.ListReviews(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

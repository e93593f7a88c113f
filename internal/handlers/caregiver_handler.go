package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careconnect_backend/internal/services"
	"careconnect_backend/internal/services/dto"
)

type CaregiverHandler struct {
	*BaseHandler
	caregiverService services.CaregiverService
}

func NewCaregiverHandler(base *BaseHandler, caregiverService services.CaregiverService) *CaregiverHandler {
	return &CaregiverHandler{BaseHandler: base, caregiverService: caregiverService}
}

func (h *CaregiverHandler) RegisterRoutes(rg *gin.RouterGroup) {
	caregivers := rg.Group("/caregivers")
	{
		caregivers.POST("/listings", h.CreateListing)
		caregivers.GET("/listings", h.ListListings)
		caregivers.GET("/listings/:id", h.GetListing)
		caregivers.PUT("/listings/:id", h.UpdateListing)
		caregivers.PATCH("/listings/:id/availability", h.UpdateAvailability)

		caregivers.POST("/requests", h.CreateRequest)
		caregivers.GET("/requests", h.ListRequests)
		caregivers.GET("/requests/:id", h.GetRequest)
		caregivers.PATCH("/requests/:id/status", h.UpdateRequestStatus)

		caregivers.POST("/responses", h.CreateResponse)
		caregivers.GET("/responses", h.ListResponses)
		caregivers.GET("/responses/:id", h.GetResponse)
		caregivers.PATCH("/responses/:id/status", h.UpdateResponseStatus)

		caregivers.POST("/reviews", h.CreateReview)
		caregivers.GET("/reviews", h.ListReviews)
	}
}

// Listings

func (h *CaregiverHandler) CreateListing(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCaregiverListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.caregiverService.CreateListing(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

func (h *CaregiverHandler) ListListings(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var criteria dto.CaregiverListingCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	page, err := h.caregiverService.ListListings(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CaregiverHandler) GetListing(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	listing, err := h.caregiverService.GetListing(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *CaregiverHandler) UpdateListing(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCaregiverListingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	listing, err := h.caregiverService.UpdateListing(userID, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *CaregiverHandler) UpdateAvailability(c *gin.Context) {
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

	listing, err := h.caregiverService.UpdateAvailability(userID, id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Requests

func (h *CaregiverHandler) CreateRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCaregiverRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	request, err := h.caregiverService.CreateRequest(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *CaregiverHandler) ListRequests(c *gin.Context) {
	skip, limit := h.ParsePagination(c)

	page, err := h.caregiverService.ListRequests(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CaregiverHandler) GetRequest(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	request, err := h.caregiverService.GetRequest(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *CaregiverHandler) UpdateRequestStatus(c *gin.Context) {
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

	request, err := h.caregiverService.UpdateRequestStatus(userID, id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// Responses

func (h *CaregiverHandler) CreateResponse(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCaregiverResponseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.caregiverService.CreateResponse(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *CaregiverHandler) ListResponses(c *gin.Context) {
	skip, limit := h.ParsePagination(c)

	page, err := h.caregiverService.ListResponses(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CaregiverHandler) GetResponse(c *gin.Context) {
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	response, err := h.caregiverService.GetResponse(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *CaregiverHandler) UpdateResponseStatus(c *gin.Context) {
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

	response, err := h.caregiverService.UpdateResponseStatus(userID, id, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Reviews

func (h *CaregiverHandler) CreateReview(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCaregiverReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.caregiverService.CreateReview(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *CaregiverHandler) ListReviews(c *gin.Context) {
	skip, limit := h.ParsePagination(c)

	page, err := h.caregiverService.ListReviews(skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

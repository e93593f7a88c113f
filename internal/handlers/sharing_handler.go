package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careconnect_backend/internal/models"
	"careconnect_backend/internal/services"
	"careconnect_backend/internal/services/dto"
)

type SharingHandler struct {
	*BaseHandler
	sharingService services.SharingService
}

func NewSharingHandler(base *BaseHandler, sharingService services.SharingService) *SharingHandler {
	return &SharingHandler{BaseHandler: base, sharingService: sharingService}
}

func (h *SharingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shares := rg.Group("/shares")
	{
		shares.POST("", h.CreateShare)
		shares.GET("/mine", h.ListMyShares)
		shares.GET("/stats/:type/:id", h.GetShareStats)
	}
}

func (h *SharingHandler) CreateShare(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateShareRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	share, err := h.sharingService.CreateShare(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, share)
}

func (h *SharingHandler) ListMyShares(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	skip, limit := h.ParsePagination(c)

	page, err := h.sharingService.GetUserShares(userID, skip, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *SharingHandler) GetShareStats(c *gin.Context) {
	shareableType := models.ShareableType(c.Param("type"))
	id, ok := h.ParseParamUint(c, "id")
	if !ok {
		return
	}

	stats, err := h.sharingService.GetShareStats(shareableType, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

package api

import (
	"log"
	"net/http"
	"strconv"

	"hosteldesk/internal/models"
	"hosteldesk/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminHandler struct {
	adminService    service.AdminService
	activityService service.ActivityService
}

func NewAdminHandler(adminService service.AdminService, activityService service.ActivityService) *AdminHandler {
	return &AdminHandler{adminService: adminService, activityService: activityService}
}

// @Summary List all profiles
// @Description Returns every account; credential fields are never serialized
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 500 {object} map[string]string "Server error"
// @Router /allprofiles [get]
func (h *AdminHandler) ListAllProfiles(c *gin.Context) {
	users, err := h.adminService.ListAllProfiles(c.GetString("usertype"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// @Summary List all complaints
// @Description Returns per-account complaint projections across all accounts
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 500 {object} map[string]string "Server error"
// @Router /admindashboard/complaints [get]
func (h *AdminHandler) ListAllComplaints(c *gin.Context) {
	overviews, err := h.adminService.ListAllComplaints(c.GetString("usertype"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": overviews})
}

// @Summary List all suggestions
// @Description Returns per-account suggestion projections across all accounts
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 500 {object} map[string]string "Server error"
// @Router /admindashboard/suggestions [get]
func (h *AdminHandler) ListAllSuggestions(c *gin.Context) {
	overviews, err := h.adminService.ListAllSuggestions(c.GetString("usertype"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": overviews})
}

// @Summary Remove a profile
// @Description Deletes an account by id
// @Tags Admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string "Confirmation message"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /removeprofile/{id} [delete]
func (h *AdminHandler) RemoveProfile(c *gin.Context) {
	targetID := c.Param("id")

	if err := h.adminService.RemoveProfile(c.GetString("usertype"), targetID); err != nil {
		respondError(c, err)
		return
	}

	h.logAction(c, "RemoveProfile", "Profile removed", map[string]interface{}{"target_id": targetID})

	c.JSON(http.StatusOK, gin.H{"message": "Profile removed successfully"})
}

// @Summary Edit a profile
// @Description Applies an allow-listed partial update to an account
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param update body models.ProfileUpdate true "Fields to update"
// @Success 200 {object} map[string]interface{} "message and user"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /editprofile/{id} [put]
func (h *AdminHandler) EditProfile(c *gin.Context) {
	targetID := c.Param("id")

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	user, err := h.adminService.EditProfile(c.GetString("usertype"), targetID, &update)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logAction(c, "EditProfile", "Profile updated", map[string]interface{}{"target_id": targetID})

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

// @Summary List activity log
// @Description Returns the audit trail of account actions, newest first
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{} "data"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 500 {object} map[string]string "Server error"
// @Router /admindashboard/logs [get]
func (h *AdminHandler) ListActivity(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	entries, err := h.activityService.ListEntries(c.GetString("usertype"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *AdminHandler) logAction(c *gin.Context, action, detail string, metadata map[string]interface{}) {
	actorID := primitive.NilObjectID
	if objID, err := primitive.ObjectIDFromHex(c.GetString("user_id")); err == nil {
		actorID = objID
	}
	if err := h.activityService.LogAction(actorID, action, detail, c.ClientIP(), metadata); err != nil {
		log.Printf("error: %v", err)
	}
}

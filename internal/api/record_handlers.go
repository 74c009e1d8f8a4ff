package api

import (
	"log"
	"net/http"

	"hosteldesk/internal/models"
	"hosteldesk/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecordHandler struct {
	recordService   service.RecordService
	activityService service.ActivityService
}

func NewRecordHandler(recordService service.RecordService, activityService service.ActivityService) *RecordHandler {
	return &RecordHandler{recordService: recordService, activityService: activityService}
}

func (h *RecordHandler) logAction(c *gin.Context, action, detail string, metadata map[string]interface{}) {
	actorID := primitive.NilObjectID
	if objID, err := primitive.ObjectIDFromHex(c.GetString("user_id")); err == nil {
		actorID = objID
	}
	if err := h.activityService.LogAction(actorID, action, detail, c.ClientIP(), metadata); err != nil {
		log.Printf("error: %v", err)
	}
}

// @Summary Submit a complaint
// @Description Appends a complaint to the caller's account
// @Tags Records
// @Accept json
// @Produce json
// @Param complaint body models.RecordRequest true "Complaint"
// @Success 200 {object} map[string]string "Confirmation message"
// @Failure 400 {object} map[string]string "Title and description required"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /dashboard/complaints [post]
func (h *RecordHandler) SubmitComplaint(c *gin.Context) {
	var req models.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := h.recordService.SubmitComplaint(c.GetString("user_id"), req.Title, req.Description); err != nil {
		respondError(c, err)
		return
	}

	h.logAction(c, "SubmitComplaint", "Complaint submitted", map[string]interface{}{"title": req.Title})

	c.JSON(http.StatusOK, gin.H{"message": "Complaint submitted successfully"})
}

// @Summary Recent complaints
// @Description Returns the caller's five most recent complaints, oldest first
// @Tags Records
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /dashboard/complaints/recent [get]
func (h *RecordHandler) RecentComplaints(c *gin.Context) {
	records, err := h.recordService.RecentComplaints(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

// @Summary Submit a suggestion
// @Description Appends a suggestion to the caller's account
// @Tags Records
// @Accept json
// @Produce json
// @Param suggestion body models.RecordRequest true "Suggestion"
// @Success 200 {object} map[string]string "Confirmation message"
// @Failure 400 {object} map[string]string "Title and description required"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /dashboard/suggestions [post]
func (h *RecordHandler) SubmitSuggestion(c *gin.Context) {
	var req models.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := h.recordService.SubmitSuggestion(c.GetString("user_id"), req.Title, req.Description); err != nil {
		respondError(c, err)
		return
	}

	h.logAction(c, "SubmitSuggestion", "Suggestion submitted", map[string]interface{}{"title": req.Title})

	c.JSON(http.StatusOK, gin.H{"message": "Suggestion submitted successfully"})
}

// @Summary Recent suggestions
// @Description Returns the caller's five most recent suggestions, oldest first
// @Tags Records
// @Produce json
// @Success 200 {object} map[string]interface{} "data"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /dashboard/suggestions/recent [get]
func (h *RecordHandler) RecentSuggestions(c *gin.Context) {
	records, err := h.recordService.RecentSuggestions(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

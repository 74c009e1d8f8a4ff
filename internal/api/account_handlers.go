package api

import (
	"errors"
	"log"
	"net/http"

	"hosteldesk/internal/models"
	"hosteldesk/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AccountHandler struct {
	accountService  service.AccountService
	activityService service.ActivityService
}

func NewAccountHandler(accountService service.AccountService, activityService service.ActivityService) *AccountHandler {
	return &AccountHandler{accountService: accountService, activityService: activityService}
}

// @Summary Register an account
// @Description Registers an admin or resident account. Admins must supply the shared secret key.
// @Tags Accounts
// @Accept json
// @Produce plain
// @Param registration body models.RegisterRequest true "Registration fields"
// @Success 200 {string} string "User registered successfully"
// @Failure 400 {string} string "Validation or conflict message"
// @Failure 500 {string} string "Server error"
// @Router /register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.accountService.Register(&req); err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrConflict) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	metadata := map[string]interface{}{"email": req.Email, "usertype": req.UserType}
	if err := h.activityService.LogAction(primitive.NilObjectID, "Register", "Account registered", c.ClientIP(), metadata); err != nil {
		log.Printf("error: %v", err)
	}

	c.String(http.StatusOK, "User registered successfully")
}

// @Summary Log in
// @Description Authenticates by email and password and returns a session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]string "token and usertype"
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Server error"
// @Router /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	token, usertype, err := h.accountService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	metadata := map[string]interface{}{"email": req.Email}
	if err := h.activityService.LogAction(primitive.NilObjectID, "Login", "Account logged in", c.ClientIP(), metadata); err != nil {
		log.Printf("error: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "usertype": usertype})
}

// @Summary Get own profile
// @Description Returns the authenticated account's document
// @Tags Accounts
// @Produce json
// @Success 200 {object} map[string]interface{} "mydata"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /myprofile [get]
func (h *AccountHandler) MyProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.accountService.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mydata": user})
}

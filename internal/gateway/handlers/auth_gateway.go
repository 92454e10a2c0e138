package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"phonemechanic-system/config"
	"phonemechanic-system/internal/utils"
)

type AuthHTTPHandler struct {
	auth config.AuthConfig
	shop config.ShopConfig
}

func NewAuthHTTPHandler(auth config.AuthConfig, shop config.ShopConfig) *AuthHTTPHandler {
	return &AuthHTTPHandler{auth: auth, shop: shop}
}

type LoginRequest struct {
	StaffName string `json:"staff_name" binding:"required"`
	Location  string `json:"location" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	StaffName string    `json:"staff_name"`
	Location  string    `json:"location"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login opens an operator session. There is no account model: a session is
// just a staff name plus the shop location it operates from.
func (h *AuthHTTPHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("staff_name and location are required"))
		return
	}

	if _, ok := h.shop.Locations[req.Location]; !ok {
		c.JSON(http.StatusBadRequest, errorResponse("Unknown shop location"))
		return
	}

	token, exp, err := utils.GenerateToken([]byte(h.auth.Secret), req.StaffName, req.Location, h.auth.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create session token"))
		return
	}

	c.JSON(http.StatusOK, successResponse("Login successful", LoginResponse{
		Token:     token,
		StaffName: req.StaffName,
		Location:  req.Location,
		ExpiresAt: exp,
	}))
}

package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikolayk812/jewelshop/internal/domain"
)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	session, err := h.auth.Register(c.Request.Context(), domain.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		respondError(c, h.log, fmt.Errorf("auth.Register: %w", err))
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse("User registered successfully", session))
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, fmt.Errorf("auth.Login: %w", err))
		return
	}

	c.JSON(http.StatusOK, toSessionResponse("Login successful", session))
}

// Logout is stateless, the client drops its token.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *Handler) Verify(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), principalFrom(c))
	if err != nil {
		respondError(c, h.log, fmt.Errorf("auth.Profile: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), principalFrom(c))
	if err != nil {
		respondError(c, h.log, fmt.Errorf("auth.Profile: %w", err))
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), principalFrom(c), domain.ProfileUpdate(req))
	if err != nil {
		respondError(c, h.log, fmt.Errorf("auth.UpdateProfile: %w", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    toUserResponse(user),
	})
}

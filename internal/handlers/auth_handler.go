package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/middleware"
	"jobboard/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users  *store.UserStore
	Secret string
}

func NewAuthHandler(users *store.UserStore, secret string) *AuthHandler {
	return &AuthHandler{Users: users, Secret: secret}
}

// Register is the POST /auth/register endpoint. A fresh account gets a token
// right away so the client can skip a separate login round-trip.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, password and a valid role are required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("register: hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	user, err := h.Users.Create(req.Name, req.Email, hash, req.Role)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		log.Printf("register: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role, h.Secret)
	if err != nil {
		log.Printf("register: signing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login is the POST /auth/login endpoint. Unknown email and wrong password
// get the same answer.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.Users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Role, h.Secret)
	if err != nil {
		log.Printf("login: signing token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me is the GET /auth/me endpoint.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.Users.GetByID(middleware.UserID(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("me: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	auth Authenticator
}

func NewAuthController(auth Authenticator) *AuthController {
	return &AuthController{auth: auth}
}

func (a *AuthController) CreateAccount(ctx *gin.Context) {
	req, ok := bindAuthRequest(ctx)
	if !ok {
		return
	}

	result, err := a.auth.CreateAccount(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

func (a *AuthController) Login(ctx *gin.Context) {
	req, ok := bindAuthRequest(ctx)
	if !ok {
		return
	}

	result, err := a.auth.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		renderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func bindAuthRequest(ctx *gin.Context) (*authRequest, bool) {
	var req authRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "email and password are required"})
		return nil, false
	}
	return &req, true
}

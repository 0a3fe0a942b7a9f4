package controllers

import (
	"github.com/brmartin/shortly/internal/config"
	"github.com/brmartin/shortly/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterParams struct {
	AuthService Authenticator
	URLService  URLShortener
	AppConf     config.Config
	Logger      *logrus.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(middlewares.GzipMiddleware())

	jwtSecret := []byte(params.AppConf.JWTSecret)

	authController := NewAuthController(params.AuthService)
	shortURLController := NewShortURLController(params.URLService, params.AppConf.BaseURL)

	auth := r.Group("/auth")
	auth.POST("/create-account", authController.CreateAccount)
	auth.POST("/login", authController.Login)

	r.POST("/short-url", middlewares.OptionalAuth(jwtSecret), shortURLController.CreateShortURL)
	r.GET("/urls", middlewares.RequireAuth(jwtSecret), shortURLController.ListByOwner)
	r.PATCH("/url/:id", middlewares.RequireAuth(jwtSecret), shortURLController.Update)
	r.DELETE("/url/:id", middlewares.RequireAuth(jwtSecret), shortURLController.Delete)
	r.GET("/:shortCode", shortURLController.Redirect)

	return r
}

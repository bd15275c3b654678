package api

import (
	"gesbanque-backend/config"
	adminCompte "gesbanque-backend/internal/api/v1/admin/compte"
	"gesbanque-backend/internal/api/v1/auth"
	"gesbanque-backend/internal/api/v1/compte"
	"gesbanque-backend/internal/database"
	"gesbanque-backend/internal/middleware"
	"gesbanque-backend/internal/services"
	"gesbanque-backend/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	services.MinSoldeInitial = cfg.MinSoldeInitial
	utils.RegisterCustomValidations()

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			compte.RegisterRoutes(authorized)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		{
			adminCompte.RegisterRoutes(admin)
		}
	}

	return router, nil
}

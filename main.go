package main

import (
	"errors"
	"log"

	"gesbanque-backend/config"
	"gesbanque-backend/internal/api"
	"gesbanque-backend/internal/database"
	"gesbanque-backend/internal/jobs"
	"gesbanque-backend/internal/models"
	"gesbanque-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	initAdminUser(cfg)

	scheduler := jobs.NewScheduler(jobs.NewJobs(database.DB))
	if err := scheduler.Start(cfg); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func initAdminUser(cfg *config.Config) {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin bootstrap.")
		return
	}

	var admin models.User
	err := database.DB.Where("email = ?", cfg.AdminEmail).First(&admin).Error
	if err == nil {
		log.Println("Admin user already exists.")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("failed to check for admin user: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin = models.User{
		ID:         uuid.New().String(),
		Nom:        "Admin",
		Prenom:     "Système",
		Email:      cfg.AdminEmail,
		Telephone:  "+221770000000",
		MotDePasse: string(hashedPassword),
		Role:       models.RoleSuperAdmin,
		Statut:     models.UserStatutActif,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}
	log.Println("Admin user created successfully!")
}

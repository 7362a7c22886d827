package db

import (
	"log"
	"myblog/internal/models"
	"myblog/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	err = DB.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostLike{},
		&models.PostComment{},
		&models.Moment{},
		&models.MomentLike{},
		&models.MomentComment{},
		&models.MomentImage{},
		&models.Project{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedAuthor()
}

// seedAuthor creates the site owner account on an empty database so the
// admin endpoints are reachable after first boot.
func seedAuthor() {
	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAuthor).Count(&count)
	if count > 0 {
		return
	}

	hash, err := utils.HashPassword("admin")
	if err != nil {
		log.Printf("Failed to hash seed password: %v", err)
		return
	}

	author := models.User{
		Username: "admin",
		Password: hash,
		Role:     models.RoleAuthor,
	}
	if err := DB.Create(&author).Error; err != nil {
		log.Printf("Failed to create author account: %v", err)
		return
	}
	log.Println("Seed author account created (admin/admin), change the password")
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"weddingshare/internal/config"
	"weddingshare/internal/database"
	"weddingshare/internal/middleware"
	"weddingshare/internal/modules/admin"
	"weddingshare/internal/modules/gallery"
	"weddingshare/internal/modules/upload"
	"weddingshare/internal/repository"
	"weddingshare/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := database.SeedSettings(db, cfg); err != nil {
		log.Fatal(err)
	}

	uploadRepo := repository.NewUploadRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	blobs := storage.NewFilesystem(cfg.UploadDir)

	uploadService := upload.NewService(uploadRepo, settingRepo, blobs, cfg.MaxFileSize, cfg.AllowedFileTypes)
	uploadHandler := upload.NewHandler(uploadService)

	galleryService := gallery.NewService(uploadRepo)
	galleryHandler := gallery.NewHandler(galleryService)

	adminService := admin.NewService(uploadRepo, galleryRepo, blobs)
	adminHandler := admin.NewHandler(adminService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	// Multipart bodies can carry several videos; buffer a generous slice in
	// memory and spill the rest to temp files.
	r.MaxMultipartMemory = 32 << 20

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stored blobs are served directly; gallery URLs point here.
	r.Static(gallery.URLBase, cfg.UploadDir)

	uploadHandler.RegisterRoutes(r)
	galleryHandler.RegisterRoutes(r)
	adminHandler.RegisterRoutes(r)

	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

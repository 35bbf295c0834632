package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"roombook/internal/database"
	"roombook/internal/middleware"
	"roombook/internal/modules/booking"
	"roombook/internal/modules/catalog"
	"roombook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "roombook.db"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	catalogService := catalog.NewService(roomRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		catalogHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

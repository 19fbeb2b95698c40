package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/events"
	"github.com/aniket-sharma10/e-commerce-store/middleware"
	"github.com/aniket-sharma10/e-commerce-store/models"
	"github.com/aniket-sharma10/e-commerce-store/payment"
	"github.com/aniket-sharma10/e-commerce-store/routes"
)

func main() {
	_ = godotenv.Load()

	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	gateway, err := payment.NewClientFromEnv()
	if err != nil {
		log.Fatalf("Payment gateway setup failed: %v", err)
	}

	pub := initPublisher()
	defer pub.Close()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Monitoring())
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.SetupRoutes(r, db, gateway, pub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection.
func initDatabase() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), cfg)
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

// initPublisher connects the order-event publisher when RABBITMQ_URL is set;
// otherwise events are dropped.
func initPublisher() *events.Publisher {
	amqpURL := os.Getenv("RABBITMQ_URL")
	if amqpURL == "" {
		return nil
	}

	exchange := os.Getenv("RABBITMQ_EXCHANGE")
	if exchange == "" {
		exchange = "orders"
	}

	pub, err := events.NewPublisher(amqpURL, exchange)
	if err != nil {
		log.Printf("RabbitMQ unavailable, order events disabled: %v", err)
		return nil
	}
	return pub
}

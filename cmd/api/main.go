package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"metro-homes/internal/config"
	"metro-homes/internal/database"
	"metro-homes/internal/handlers"
	"metro-homes/internal/payments"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := getEnv("CONFIG_PATH", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config from %s: %v", configPath, err)
	}
	if cfg.Auth.Secret == "" {
		log.Fatal("ACCESS_SECRET_KEY is not set. Refusing to start.")
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Printf("Connected to %s database", cfg.Database.Type)

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	stripeClient := payments.NewStripeClient(cfg.Stripe.SecretKey)

	r := setupRouter(cfg, db, stripeClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Release the listener and the connection pool on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}

func setupRouter(cfg *config.Config, db *database.DB, intents payments.IntentCreator) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	secret := []byte(cfg.Auth.Secret)
	authRequired := handlers.AuthRequired(secret)
	adminRequired := handlers.AdminRequired(db)
	agentRequired := handlers.AgentRequired(db)

	userHandler := handlers.NewUserHandler(db, secret)
	propertyHandler := handlers.NewPropertyHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	wishlistHandler := handlers.NewWishlistHandler(db)
	offerHandler := handlers.NewOfferHandler(db, db)
	paymentHandler := handlers.NewPaymentHandler(db, db, intents)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Metro Homes server is running")
	})

	// Token
	r.POST("/jwt", userHandler.IssueToken)

	// Users
	r.PUT("/user", userHandler.UpsertUser)
	r.GET("/users", authRequired, adminRequired, userHandler.ListUsers)
	r.GET("/user/:email", userHandler.GetUser)
	r.PATCH("/users/update/:email", userHandler.UpdateUser)
	r.DELETE("/deleteUser/:email", authRequired, adminRequired, userHandler.DeleteUser)

	// Properties
	r.GET("/allProperties", propertyHandler.ListAll)
	r.GET("/properties", propertyHandler.Search)
	r.GET("/properties/advertised", propertyHandler.ListAdvertised)
	r.GET("/property/:id", propertyHandler.Get)
	r.GET("/myAddedProperties/:email", authRequired, agentRequired, propertyHandler.ListByAgent)
	r.POST("/property", authRequired, agentRequired, propertyHandler.Create)
	r.PUT("/property/update/:id", authRequired, agentRequired, propertyHandler.Update)
	r.DELETE("/property/:id", authRequired, agentRequired, propertyHandler.Delete)
	r.PATCH("/property/status/:id", authRequired, adminRequired, propertyHandler.UpdateStatus)
	r.PUT("/property/advertise/:id", authRequired, adminRequired, propertyHandler.Advertise)

	// Reviews
	r.GET("/reviews", authRequired, adminRequired, reviewHandler.ListAll)
	r.GET("/myReviews/:email", authRequired, reviewHandler.ListByAuthor)
	r.GET("/reviews/:propertyId", reviewHandler.ListByProperty)
	r.POST("/reviews", authRequired, reviewHandler.Create)
	r.DELETE("/review/:id", authRequired, reviewHandler.Delete)

	// Wishlists
	r.GET("/wishlists/:email", authRequired, wishlistHandler.List)
	r.POST("/wishlists/:email", authRequired, wishlistHandler.Create)

	// Offers
	r.GET("/offers", authRequired, adminRequired, offerHandler.ListAll)
	r.GET("/offers/:email", authRequired, offerHandler.ListByEmail)
	r.GET("/sentOffers/:agentEmail", authRequired, agentRequired, offerHandler.ListByAgent)
	r.POST("/offers", authRequired, offerHandler.Create)
	r.PATCH("/offers/status/:id", authRequired, agentRequired, offerHandler.UpdateStatus)

	// Payments
	r.POST("/create-payment-intent", authRequired, paymentHandler.CreateIntent)
	r.GET("/payments", authRequired, adminRequired, paymentHandler.ListAll)
	r.GET("/payments/:email", authRequired, paymentHandler.ListByEmail)
	r.GET("/soldProperties/:agentEmail", authRequired, agentRequired, paymentHandler.ListByAgent)
	r.POST("/payments", authRequired, paymentHandler.Create)

	return r
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

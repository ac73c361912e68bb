package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"petemporio/internal/config"
	"petemporio/internal/database"
	"petemporio/internal/middleware"
	"petemporio/internal/modules/auth"
	"petemporio/internal/modules/board"
	"petemporio/internal/modules/catalog"
	"petemporio/internal/modules/dashboard"
	"petemporio/internal/modules/invoice"
	"petemporio/internal/modules/pets"
	"petemporio/internal/modules/review"
	"petemporio/internal/modules/scheduling"
	"petemporio/internal/modules/staff"
	jwtsvc "petemporio/internal/pkg/jwt"
	"petemporio/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	petRepo := repository.NewPetRepository(db)
	breedRepo := repository.NewBreedRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	if err := resetRepo.Migrate(); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := board.NewHub()

	authService := auth.NewService(userRepo, resetRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, userRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	petService := pets.NewService(petRepo, breedRepo, userRepo)
	petHandler := pets.NewHandler(petService)

	staffService := staff.NewService(userRepo)
	staffHandler := staff.NewHandler(staffService)

	schedulingService := scheduling.NewService(
		appointmentRepo,
		serviceRepo,
		userRepo,
		petRepo,
		cfg.Calendar,
		hub,
	)
	schedulingHandler := scheduling.NewHandler(schedulingService)

	invoiceService := invoice.NewService(invoiceRepo, appointmentRepo, userRepo)
	invoiceHandler := invoice.NewHandler(invoiceService)

	reviewService := review.NewService(reviewRepo, appointmentRepo, serviceRepo)
	reviewHandler := review.NewHandler(reviewService)

	dashboardService := dashboard.NewService(appointmentRepo, userRepo, invoiceRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	boardHandler := board.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	boardHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			petHandler.RegisterRoutes(protected)
			staffHandler.RegisterRoutes(protected)
			schedulingHandler.RegisterRoutes(protected)
			invoiceHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

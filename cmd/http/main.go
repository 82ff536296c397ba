package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/r-weda/my-afya-link/internal/app/config"
	"github.com/r-weda/my-afya-link/internal/app/delivery/http/controllers"
	"github.com/r-weda/my-afya-link/internal/app/delivery/http/middlewares"
	"github.com/r-weda/my-afya-link/internal/app/delivery/http/routers"
	"github.com/r-weda/my-afya-link/internal/app/drivers/database"
	"github.com/r-weda/my-afya-link/internal/app/drivers/logger"
	"github.com/r-weda/my-afya-link/internal/app/services/appointments"
	"github.com/r-weda/my-afya-link/internal/app/services/articles"
	"github.com/r-weda/my-afya-link/internal/app/services/clinics"
	"github.com/r-weda/my-afya-link/internal/app/services/profiles"
	"github.com/r-weda/my-afya-link/internal/app/services/reminders"
	"github.com/r-weda/my-afya-link/internal/app/services/shared/identity"
	"github.com/r-weda/my-afya-link/internal/app/services/shared/ratelimiter"
	"github.com/r-weda/my-afya-link/internal/app/services/shared/redis"
	"github.com/r-weda/my-afya-link/internal/app/services/shared/sms"
	"github.com/r-weda/my-afya-link/internal/app/services/triage"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Shared services
	identityService := identity.NewIdentityService(bootstrap.InternalConfig, bootstrap.Logger)
	smsService := sms.NewAfricasTalkingService(bootstrap.InternalConfig, bootstrap.Logger)
	dispatchLimiter := ratelimiter.NewDispatchLimiter(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(identityService, bootstrap.InternalConfig, bootstrap.Logger)

	// Triage
	triageUsecase := triage.NewTriageUsecase()
	triageController := controllers.NewTriageController(bootstrap.Logger, triageUsecase)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Reminders
	reminderUsecase := reminders.NewReminderUsecase(
		smsService,
		identityService,
		appointmentMongoRepository,
		dispatchLimiter,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reminderController := controllers.NewReminderController(bootstrap.Logger, reminderUsecase, bootstrap.InternalConfig)

	// Clinics
	clinicMongoRepository := clinics.NewClinicMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	clinicUsecase := clinics.NewClinicUsecase(clinicMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	clinicController := controllers.NewClinicController(bootstrap.Logger, clinicUsecase, bootstrap.InternalConfig)

	// Articles
	articleMongoRepository := articles.NewArticleMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	articleUsecase := articles.NewArticleUsecase(articleMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	articleController := controllers.NewArticleController(bootstrap.Logger, articleUsecase, bootstrap.InternalConfig)

	// Profiles
	profileMongoRepository := profiles.NewProfileMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	profileUsecase := profiles.NewProfileUsecase(profileMongoRepository, bootstrap.Logger)
	profileController := controllers.NewProfileController(bootstrap.Logger, profileUsecase, bootstrap.InternalConfig)

	// Appointments usecase dispatches a booking reminder through the same
	// pipeline the reminder endpoint uses.
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		clinicMongoRepository,
		profileMongoRepository,
		reminderUsecase,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		triageController,
		reminderController,
		appointmentController,
		clinicController,
		articleController,
		profileController,
	)
}

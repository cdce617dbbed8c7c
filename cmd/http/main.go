package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/appointments"
	"medibook-service/internal/app/services/auth"
	"medibook-service/internal/app/services/availability"
	"medibook-service/internal/app/services/doctors"
	"medibook-service/internal/app/services/patients"
	"medibook-service/internal/app/services/payments"
	"medibook-service/internal/app/services/ratings"
	"medibook-service/internal/app/services/shared/notifier"
	"medibook-service/internal/app/services/shared/payment_gateway"
	sharedRedis "medibook-service/internal/app/services/shared/redis"
	"medibook-service/internal/app/services/shared/session"
	sharedStorage "medibook-service/internal/app/services/shared/storage"
	"medibook-service/internal/app/services/users"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewMux()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	err = bootstrapTheApp(bootstrap)
	if err != nil {
		bootLog.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	bootLog.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		bootLog.Printf("Error while closing drivers: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	notificationService, err := notifier.NewNotificationService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}
	paymentGatewayService := payment_gateway.NewOyService(bootstrap.InternalConfig)
	storageService := sharedStorage.NewMinioStorageService(bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName)

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	availabilityRepository := availability.NewAvailabilityMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	ratingRepository := ratings.NewRatingMongoRepository(bootstrap.MongoDB, dbName)
	transactionRepository := payments.NewTransactionMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		userRepository,
		doctorRepository,
		patientRepository,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	availabilityUsecase := availability.NewAvailabilityUsecase(
		availabilityRepository,
		sessionService,
		bootstrap.Logger,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		transactionRepository,
		appointmentRepository,
		doctorRepository,
		patientRepository,
		paymentGatewayService,
		notificationService,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		availabilityRepository,
		doctorRepository,
		sessionService,
		paymentUsecase,
		notificationService,
		bootstrap.Logger,
	)
	ratingUsecase := ratings.NewRatingUsecase(
		ratingRepository,
		appointmentRepository,
		doctorRepository,
		sessionService,
		bootstrap.Logger,
	)
	userUsecase := users.NewUserUsecase(
		userRepository,
		storageService,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)
	ratingController := controllers.NewRatingController(bootstrap.Logger, ratingUsecase)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase, bootstrap.InternalConfig)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)

	appMiddlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		availabilityController,
		appointmentController,
		ratingController,
		paymentController,
		userController,
	)
	return nil
}

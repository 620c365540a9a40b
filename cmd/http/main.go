package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"practicare-service/internal/app/config"
	"practicare-service/internal/app/delivery/http/middlewares"
	"practicare-service/internal/app/delivery/http/routers"
	"practicare-service/internal/app/drivers/database"
	"practicare-service/internal/app/drivers/logger"
	"practicare-service/internal/app/drivers/objectstorage"
	"practicare-service/internal/app/drivers/queue"
	"practicare-service/internal/app/services/core/authz"
	"practicare-service/internal/app/services/core/evaluations"
	"practicare-service/internal/app/services/core/owners"
	"practicare-service/internal/app/services/core/patients"
	"practicare-service/internal/app/services/core/sessions"
	"practicare-service/internal/app/services/core/therapists"
	"practicare-service/internal/app/services/shared/eventqueue"
	"practicare-service/internal/app/services/shared/identity"
	"practicare-service/internal/app/services/shared/redis"
	"practicare-service/internal/app/services/shared/storage"
	"practicare-service/internal/app/services/shared/store"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := queue.NewRabbitMQConnection(driverConfig)
	minioClient := objectstorage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

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
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	revocationChecker := identity.NewRevocationChecker(bootstrap.ZapLogger, redisRepository, bootstrap.InternalConfig)
	storeClient := store.NewMongoStoreClient(bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName))
	storageService := storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	eventPublisher, err := eventqueue.NewEventQueueService(bootstrap.RabbitMQ, bootstrap.ZapLogger)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize event queue: %v", err)
	}

	// Authorization
	ownershipResolver := authz.NewOwnershipResolver(bootstrap.ZapLogger, storeClient)
	policyEvaluator := authz.NewPolicyEvaluator(bootstrap.ZapLogger, ownershipResolver)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, revocationChecker, policyEvaluator, bootstrap.InternalConfig)

	// Owner
	ownerMongoRepository := owners.NewOwnerMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	ownerUsecase := owners.NewOwnerUsecase(ownerMongoRepository)
	ownerController := owners.NewOwnerController(bootstrap.ZapLogger, ownerUsecase)

	// Therapist
	therapistMongoRepository := therapists.NewTherapistMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	therapistUsecase := therapists.NewTherapistUsecase(therapistMongoRepository, ownerMongoRepository)
	therapistController := therapists.NewTherapistController(bootstrap.ZapLogger, therapistUsecase)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	patientUsecase := patients.NewPatientUsecase(bootstrap.ZapLogger, patientMongoRepository, therapistMongoRepository, eventPublisher)
	patientController := patients.NewPatientController(bootstrap.ZapLogger, patientUsecase)

	// Session
	sessionMongoRepository := sessions.NewSessionMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	sessionUsecase := sessions.NewSessionUsecase(sessionMongoRepository, patientMongoRepository)
	sessionController := sessions.NewSessionController(bootstrap.ZapLogger, sessionUsecase)

	// Evaluation
	evaluationMongoRepository := evaluations.NewEvaluationMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	evaluationUsecase := evaluations.NewEvaluationUsecase(bootstrap.ZapLogger, evaluationMongoRepository, patientMongoRepository, storageService, eventPublisher, bootstrap.InternalConfig)
	evaluationController := evaluations.NewEvaluationController(bootstrap.ZapLogger, evaluationUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		ownerController,
		therapistController,
		patientController,
		sessionController,
		evaluationController,
	)
}

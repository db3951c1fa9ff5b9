package main

import (
	"context"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/delivery/http/middlewares"
	"hospital-booking-service/internal/app/delivery/http/routers"
	"hospital-booking-service/internal/app/drivers/database"
	"hospital-booking-service/internal/app/drivers/logger"
	"hospital-booking-service/internal/app/drivers/messaging"
	storageDriver "hospital-booking-service/internal/app/drivers/storage"
	"hospital-booking-service/internal/app/services/core/appointments"
	"hospital-booking-service/internal/app/services/core/auth"
	"hospital-booking-service/internal/app/services/core/booking"
	"hospital-booking-service/internal/app/services/core/doctors"
	"hospital-booking-service/internal/app/services/core/earnings"
	"hospital-booking-service/internal/app/services/core/hospitals"
	"hospital-booking-service/internal/app/services/core/patients"
	"hospital-booking-service/internal/app/services/core/session"
	"hospital-booking-service/internal/app/services/shared/locker"
	"hospital-booking-service/internal/app/services/shared/publisher"
	"hospital-booking-service/internal/app/services/shared/recordstore"
	"hospital-booking-service/internal/app/services/shared/redis"
	"hospital-booking-service/internal/app/services/shared/storage"
	"hospital-booking-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		Logger:         log,
		AccessLogger:   accessLog,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if internalConfig.Storage.Driver == constvars.StorageDriverMongo {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if driverConfig.Minio.Enabled {
		bootstrap.Minio = storageDriver.NewMinio(driverConfig, internalConfig.Report.BucketName)
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Address+internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

type repositories struct {
	hospital    contracts.HospitalRepository
	doctor      contracts.DoctorRepository
	patient     contracts.PatientRepository
	appointment contracts.AppointmentRepository
}

func newRepositories(bootstrap *config.Bootstrap) repositories {
	switch bootstrap.InternalConfig.Storage.Driver {
	case constvars.StorageDriverMongo:
		dbName := bootstrap.DriverConfig.MongoDB.DbName
		return repositories{
			hospital:    hospitals.NewHospitalMongoRepository(bootstrap.MongoDB, dbName),
			doctor:      doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName),
			patient:     patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName),
			appointment: appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName),
		}
	case constvars.StorageDriverRedis:
		return newStoreRepositories(recordstore.NewRedisRecordStore(
			bootstrap.Redis,
			bootstrap.InternalConfig.Storage.RecordStoreKeyPrefix,
			bootstrap.InternalConfig.Storage.RecordStoreMaxRetries,
			bootstrap.Logger,
		))
	case constvars.StorageDriverMemory:
		return newStoreRepositories(recordstore.NewMemoryRecordStore(bootstrap.Logger))
	default:
		bootstrap.Logger.Fatal("Unknown storage driver", zap.String("driver", bootstrap.InternalConfig.Storage.Driver))
		return repositories{}
	}
}

func newStoreRepositories(store contracts.RecordStore) repositories {
	return repositories{
		hospital:    hospitals.NewHospitalStoreRepository(store),
		doctor:      doctors.NewDoctorStoreRepository(store),
		patient:     patients.NewPatientStoreRepository(store),
		appointment: appointments.NewAppointmentStoreRepository(store),
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	log := bootstrap.Logger
	cfg := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, cfg, log)
	lockerService := locker.NewLockService(redisRepository, log)

	repos := newRepositories(bootstrap)

	// Optional outbound adapters
	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		var err error
		eventPublisher, err = publisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, log, cfg.RabbitMQ.AppointmentQueue)
		if err != nil {
			log.Fatal("Failed to declare appointment queue", zap.Error(err))
		}
	}

	var reportStorage contracts.ReportStorage
	if bootstrap.Minio != nil {
		reportStorage = storage.NewMinioStorage(bootstrap.Minio, cfg.Report.BucketName, log)
	}

	// Usecases
	authUsecase := auth.NewAuthUsecase(sessionService, log)
	hospitalUsecase := hospitals.NewHospitalUsecase(repos.hospital, repos.doctor, sessionService, log)
	doctorUsecase := doctors.NewDoctorUsecase(repos.doctor, repos.hospital, sessionService, log)
	patientUsecase := patients.NewPatientUsecase(repos.patient, repos.appointment, sessionService, log)
	bookingUsecase := booking.NewBookingUsecase(booking.Dependencies{
		HospitalRepository:    repos.hospital,
		DoctorRepository:      repos.doctor,
		PatientRepository:     repos.patient,
		AppointmentRepository: repos.appointment,
		SessionService:        sessionService,
		LockerService:         lockerService,
		EventPublisher:        eventPublisher,
		InternalConfig:        cfg,
		Log:                   log,
	})
	earningsUsecase := earnings.NewEarningsUsecase(earnings.Dependencies{
		AppointmentRepository: repos.appointment,
		HospitalRepository:    repos.hospital,
		DoctorRepository:      repos.doctor,
		SessionService:        sessionService,
		ReportStorage:         reportStorage,
		InternalConfig:        cfg,
		Log:                   log,
	})

	// Report worker only runs when there is somewhere to write reports.
	if reportStorage != nil {
		reportWorker := earnings.NewReportWorker(log, cfg, lockerService, earningsUsecase)
		reportWorker.Start(context.Background())
		bootstrap.ReportWorkerStop = reportWorker.Stop
	}

	mws := middlewares.NewMiddlewares(log, sessionService, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, mws, bootstrap.AccessLogger, routers.Controllers{
		Auth:     auth.NewAuthController(log, authUsecase, cfg),
		Hospital: hospitals.NewHospitalController(log, hospitalUsecase, cfg),
		Doctor:   doctors.NewDoctorController(log, doctorUsecase, cfg),
		Patient:  patients.NewPatientController(log, patientUsecase, cfg),
		Booking:  booking.NewBookingController(log, bookingUsecase, cfg),
		Earnings: earnings.NewEarningsController(log, earningsUsecase, cfg),
	})
}

package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskping/taskping/broker"
	"taskping/taskping/config"
	"taskping/taskping/database"
	"taskping/taskping/middleware"
	"taskping/taskping/routes"
	"taskping/taskping/services"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	sendOnce := flag.Bool("send", false, "run one due-ping sweep and exit")
	cronSpec := flag.String("cron", "", "run as a sweep daemon on the given cron schedule instead of serving HTTP")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Event publishing is best effort; the app runs fine without a broker.
	if err := broker.InitProducer(cfg.NatsURL); err != nil {
		log.Printf("Warning: Failed to connect to NATS: %v", err)
		log.Println("The application will continue without event publishing")
	} else {
		defer broker.CloseProducer()
	}

	authService := services.NewAuthService(cfg.SessionSecret, cfg.SessionTTLHours)
	services.AuthServiceInstance = authService

	notifierService := services.NewNotifierService(time.Duration(cfg.WebhookTimeoutSeconds) * time.Second)
	services.NotifierServiceInstance = notifierService

	schedulerService := services.NewSchedulerService(notifierService)
	services.SchedulerServiceInstance = schedulerService

	switch {
	case *sendOnce:
		runSweep(db, schedulerService)
	case *cronSpec != "":
		runCron(db, schedulerService, *cronSpec)
	default:
		runServer(cfg, db, authService, notifierService)
	}
}

// runSweep performs a single due-ping pass. Individual delivery failures are
// swallowed inside the notifier, so the exit code only reflects sweep-level
// problems with persistence.
func runSweep(db *database.Database, schedulerService services.SchedulerServiceInterface) {
	if err := schedulerService.Sweep(db, time.Now()); err != nil {
		log.Printf("Sweep failed: %v", err)
	}
	log.Println("Sweep finished")
}

func runCron(db *database.Database, schedulerService services.SchedulerServiceInterface, spec string) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := schedulerService.Sweep(db, time.Now()); err != nil {
			log.Printf("Sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Invalid cron schedule %q: %v", spec, err)
	}

	log.Printf("Sweep daemon running on schedule %q", spec)
	c.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down sweep daemon...")
	<-c.Stop().Done()
}

func runServer(cfg config.Config, db *database.Database, authService services.AuthServiceInterface,
	notifierService services.NotifierServiceInterface) {
	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterAuthRoutes(router, db, authService, cfg.SessionTTLHours)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(authService))
	routes.RegisterTaskRoutes(protected, db, services.TaskServiceInstance, services.SettingsServiceInstance, notifierService)
	routes.RegisterSettingsRoutes(protected, db, services.SettingsServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		broker.CloseProducer()
		db.Close()
		os.Exit(0)
	}()

	log.Printf("Server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

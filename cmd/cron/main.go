package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/condoboard/core/internal/config"
	"github.com/condoboard/core/pkg/backup"
	"github.com/condoboard/core/pkg/database/pool"
	"github.com/condoboard/core/pkg/jobs"
	"github.com/condoboard/core/pkg/logger"
	"github.com/condoboard/core/pkg/metrics"
	"github.com/condoboard/core/pkg/repository"
	"github.com/condoboard/core/pkg/server"
	"github.com/condoboard/core/pkg/services"
)

func main() {
	// Parse command line flags
	var (
		jobName = flag.String("job", "", "Run specific job once (backup, overdue, contracts, stock, billing)")
		once    = flag.Bool("once", false, "Run job once and exit")
	)
	flag.Parse()

	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone %q: %v", cfg.Scheduler.Timezone, err)
	}

	// Connect to database
	db, err := pool.New(context.Background(), cfg.DatabaseURL(), nil)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	engine, registry := buildEngine(cfg, loc, db)

	// Handle single job execution, used for manual re-triggers and testing
	if *once && *jobName != "" {
		runOnce(engine, *jobName)
		return
	}

	// Ops endpoints share the scheduler process
	opsServer := server.New(cfg.Server.Port, logger.New("ops-server"), db, engine, registry)
	go func() {
		if err := opsServer.Start(); err != nil {
			log.Printf("Ops server stopped: %v", err)
		}
	}()

	if err := engine.Start(); err != nil {
		log.Fatalf("Failed to start task engine: %v", err)
	}
	log.Printf("Task engine started with %d jobs", len(engine.Jobs()))

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down task engine...")
	if err := engine.Stop(); err != nil {
		log.Printf("Engine stop failed: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ops server shutdown failed: %v", err)
	}
	log.Println("Task engine stopped")
}

// buildEngine wires repositories, services and the five jobs
func buildEngine(cfg *config.Config, loc *time.Location, db *pgxpool.Pool) (jobs.TaskEngine, *prometheus.Registry) {
	registry := prometheus.NewRegistry()
	jobMetrics := metrics.NewJobMetrics(registry)

	payments := repository.NewPayments(db)
	notifications := repository.NewNotifications(db)
	contracts := repository.NewContracts(db)
	inventory := repository.NewInventory(db)
	units := repository.NewUnits(db)
	condominiums := repository.NewCondominiums(db)
	users := repository.NewUsers(db)

	overdueService := services.NewOverdueService(payments, notifications)
	billingService := services.NewBillingService(condominiums, units, payments)
	contractAlerts := services.NewContractAlertService(contracts, users, notifications)
	stockAlerts := services.NewStockAlertService(inventory, users, notifications)
	operator := backup.NewOperator(cfg.DatabaseURL(), cfg.Backup.Dir, cfg.Database.DBName)

	engine := jobs.NewEngine(loc, jobMetrics)
	locks := jobs.NewAdvisoryLockManager(db)

	register := func(job jobs.Job) {
		if err := engine.Register(jobs.WithSingleFlight(job, locks, jobMetrics)); err != nil {
			log.Fatalf("Failed to register job %s: %v", job.Name(), err)
		}
	}

	register(jobs.NewDailyBackupJob(operator, cfg.Backup.RetentionDays))
	register(jobs.NewOverdueSweepJob(overdueService))
	register(jobs.NewContractExpirySweepJob(contractAlerts))
	register(jobs.NewLowStockSweepJob(stockAlerts))
	register(jobs.NewMonthlyBillingJob(billingService))

	return engine, registry
}

// runOnce executes one named job immediately and exits
func runOnce(engine jobs.TaskEngine, name string) {
	aliases := map[string]string{
		"backup":    "daily_backup",
		"overdue":   "overdue_sweep",
		"contracts": "contract_expiry_sweep",
		"stock":     "low_stock_sweep",
		"billing":   "monthly_billing",
	}
	target, ok := aliases[name]
	if !ok {
		log.Fatalf("Unknown job: %s. Available jobs: backup, overdue, contracts, stock, billing", name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	for _, job := range engine.Jobs() {
		if job.Name() != target {
			continue
		}
		log.Printf("Running %s once...", target)
		if err := job.Execute(ctx); err != nil {
			log.Fatalf("Job %s failed: %v", target, err)
		}
		log.Printf("Job %s completed successfully", target)
		return
	}
	log.Fatalf("Job %s is not registered", target)
}

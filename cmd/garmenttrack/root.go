package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/atozgarments/garmenttrack/internal/alert"
	"github.com/atozgarments/garmenttrack/internal/config"
	"github.com/atozgarments/garmenttrack/internal/database"
	"github.com/atozgarments/garmenttrack/internal/notify"
	"github.com/atozgarments/garmenttrack/internal/repository"
	"github.com/atozgarments/garmenttrack/internal/service"
	"github.com/atozgarments/garmenttrack/internal/session"
	"github.com/atozgarments/garmenttrack/pkg/auth"
)

var accessToken string

// app holds the wired application for one CLI invocation.
type app struct {
	cfg     *config.Config
	db      *sqlx.DB
	session *session.Provider
	notices *notify.Center
	tasks   *service.TaskService
	orders  *service.OrderService
	clients *service.ClientService
	intake  *service.Intake
}

var a *app

var rootCmd = &cobra.Command{
	Use:           "garmenttrack",
	Short:         "Garment order and task tracking",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if a != nil && a.db != nil {
			if err := a.db.Close(); err != nil {
				log.Printf("close database: %v", err)
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", "", "access token (defaults to GARMENTTRACK_TOKEN)")

	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(notificationsCmd)
}

// initApp wires config, database, session and services, then runs the
// initial load. The load happens exactly once here, on the identity check;
// no command triggers a re-fetch.
func initApp(ctx context.Context) error {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dotenvErr != nil && cfg.IsDevelopment() {
		log.Println("No .env file found")
	}

	db, err := database.Connect(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	tokens := auth.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenDuration,
		cfg.JWT.RefreshTokenDuration,
	)

	provider := session.NewProvider(tokens)
	notices := notify.NewCenter()
	alerts := alert.LogAlerter{}

	tasks := service.NewTaskService(repository.NewTaskRepository(db), provider, alerts, notices, service.TaskNotifyPolicy)
	orders := service.NewOrderService(repository.NewOrderRepository(db), provider, alerts, notices, service.OrderNotifyPolicy)
	clients := service.NewClientService(repository.NewClientRepository(db), provider, alerts, notices, service.ClientNotifyPolicy)

	a = &app{
		cfg:     cfg,
		db:      db,
		session: provider,
		notices: notices,
		tasks:   tasks,
		orders:  orders,
		clients: clients,
		intake:  service.NewIntake(clients, orders),
	}

	token := accessToken
	if token == "" {
		token = os.Getenv("GARMENTTRACK_TOKEN")
	}
	if token == "" {
		provider.Clear()
		return nil
	}

	if _, err := provider.Authenticate(token); err != nil {
		log.Printf("token rejected: %v", err)
		return nil
	}

	if err := a.tasks.Load(ctx); err != nil {
		return err
	}
	if err := a.orders.Load(ctx); err != nil {
		return err
	}
	return a.clients.Load(ctx)
}

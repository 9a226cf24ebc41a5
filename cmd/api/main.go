package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/ligue-crm/internal/config"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/logging"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

var version = "dev"

func main() {
	defer logging.Sync()

	if err := newRootCmd().Execute(); err != nil {
		logging.Fatal("❌ comando falhou", zap.Error(err))
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crm",
		Short:         "API do CRM Ligue: leads, clientes, parcelas e relatórios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var autoMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "aplica as migrations pendentes antes de subir")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Aplica ou desfaz as migrations do banco",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.NewDBConnection(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			down := len(args) == 1 && args[0] == "down"
			if err := database.Migrate(db, down); err != nil {
				return err
			}
			logging.L().Info("✅ migrations aplicadas", zap.Bool("down", down))
			return nil
		},
	}
}

func serve(ctx context.Context, autoMigrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logging.L()

	// 1. Banco
	db, err := database.NewDBConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if autoMigrate {
		if err := database.Migrate(db, false); err != nil {
			return err
		}
	}

	// 2. Broker (opcional). Sem AMQP_URL os eventos não são publicados.
	var (
		events usecase.EventPublisher
		broker handlers.BrokerStatus
	)
	if cfg.AMQPURL != "" {
		rmq, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Warn("⚠️ RabbitMQ indisponível, seguindo sem eventos", zap.Error(err))
		} else {
			defer rmq.Close()
			events = queue.NewProducer(rmq.Ch)
			broker = rmq
		}
	}

	// 3. E-mail (opcional)
	var mailer usecase.ScheduleMailer
	if cfg.Mail.Enabled() {
		mailer = mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
	}

	// 4. Repositórios
	leadRepo := database.NewLeadRepository(db)
	channelRepo := database.NewChannelRepository(db)
	fieldRepo := database.NewFieldDefinitionRepository(db)
	clientRepo := database.NewClientRepository(db)
	paymentRepo := database.NewPaymentRepository(db)
	amountRepo := database.NewDatedAmountRepository(db)
	goalRepo := database.NewGoalRepository(db)
	processRepo := database.NewProcessRepository(db)

	// 5. Handlers
	h := routes{
		health: handlers.NewHealthHandler(db, broker, version),
		leads: handlers.NewLeadHandler(
			usecase.NewCreateLeadUseCase(leadRepo, fieldRepo, events),
			usecase.NewUpdateLeadUseCase(leadRepo, fieldRepo, events),
			usecase.NewMoveLeadStageUseCase(leadRepo, events),
			usecase.NewDeleteLeadUseCase(leadRepo, events),
			usecase.NewQueryLeadsUseCase(leadRepo, channelRepo),
		),
		channels: handlers.NewChannelHandler(
			usecase.NewManageChannelsUseCase(channelRepo),
			usecase.NewLeadFieldsUseCase(fieldRepo),
		),
		clients: handlers.NewClientHandler(
			usecase.NewManageClientsUseCase(clientRepo),
			usecase.NewGenerateClientPaymentsUseCase(clientRepo, paymentRepo, mailer, cfg.DefaultInstallments),
			usecase.NewClientPaymentsUseCase(paymentRepo),
		),
		reports: handlers.NewReportHandler(
			usecase.NewReportsUseCase(amountRepo, clientRepo),
			usecase.NewCreateEntryUseCase(amountRepo),
		),
		goals:     handlers.NewGoalHandler(usecase.NewManageGoalsUseCase(goalRepo)),
		processes: handlers.NewProcessHandler(usecase.NewProcessUseCase(processRepo)),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h.router(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("🔥 CRM rodando", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("🛑 desligando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/crew-service/internal/authorization"
	"github.com/canonical/crew-service/internal/config"
	"github.com/canonical/crew-service/internal/db"
	"github.com/canonical/crew-service/internal/identity"
	"github.com/canonical/crew-service/internal/kratos"
	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/mail"
	"github.com/canonical/crew-service/internal/monitoring/prometheus"
	"github.com/canonical/crew-service/internal/openfga"
	"github.com/canonical/crew-service/internal/pubsub"
	"github.com/canonical/crew-service/internal/storage"
	"github.com/canonical/crew-service/internal/tracing"
	"github.com/canonical/crew-service/pkg/authentication"
	"github.com/canonical/crew-service/pkg/boats"
	"github.com/canonical/crew-service/pkg/crew"
	"github.com/canonical/crew-service/pkg/events"
	"github.com/canonical/crew-service/pkg/invitations"
	"github.com/canonical/crew-service/pkg/notifications"
	"github.com/canonical/crew-service/pkg/profiles"
	"github.com/canonical/crew-service/pkg/rsvp"
	"github.com/canonical/crew-service/pkg/web"
	"github.com/canonical/crew-service/pkg/webhooks"
)

const serviceName = "crew-service"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func newLogger(specs *config.EnvSpec) *logging.Logger {
	if specs.LogFile == "" {
		return logging.NewLogger(specs.LogLevel)
	}

	return logging.NewLoggerWithFile(specs.LogLevel, &logging.FileConfig{
		Filename:   specs.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})
}

func newAuthorizer(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor *prometheus.Monitor, logger logging.LoggerInterface) (*authorization.Authorizer, error) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger), nil
	}

	ofga, err := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiURL,
			specs.OpenfgaApiToken,
			specs.OpenfgaStoreId,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)
	if err != nil {
		return nil, err
	}

	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)
	if err := authorizer.ValidateModel(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid authorization model provided: %w", err)
	}

	logger.Info("Authorization is enabled")
	return authorizer, nil
}

// authMiddleware verifies bearer tokens when authentication is enabled, otherwise it trusts
// the identity header set by the proxy in front of the service
func authMiddleware(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor *prometheus.Monitor, logger logging.LoggerInterface) (func(http.Handler) http.Handler, error) {
	if !specs.AuthenticationEnabled {
		logger.Infof("Authentication disabled, trusting the %s header", identity.HeaderName)
		return identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware, nil
	}

	verifier, err := authentication.NewJWTAuthenticator(
		context.Background(),
		specs.AuthenticationIssuer,
		specs.AuthenticationJWKSURL,
		authentication.AccessPolicy{
			AllowedSubjects: specs.AuthenticationAllowedSubjects,
			RequiredScope:   specs.AuthenticationRequiredScope,
			AnySubject:      specs.AuthenticationAnySubject,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set up authentication: %w", err)
	}

	return authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(), nil
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := newLogger(specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	authorizer, err := newAuthorizer(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	publisher := pubsub.NewPublisher(specs.KafkaBrokers, specs.KafkaTopicPrefix, tracer, monitor, logger)
	defer publisher.Close()

	mailer := mail.NewMailer(
		mail.Config{APIKey: specs.ResendAPIKey, From: specs.MailFrom, AppURL: specs.AppURL},
		tracer,
		monitor,
		logger,
	)

	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

	notificationService := notifications.NewService(s, publisher, tracer, monitor, logger)
	crewService := crew.NewService(s, authorizer, publisher, tracer, monitor, logger)
	boatService := boats.NewService(s, crewService, authorizer, publisher, tracer, monitor, logger)
	invitationService := invitations.NewService(s, mailer, notificationService, authorizer, publisher, specs.InvitationLifetime, tracer, monitor, logger)
	eventService := events.NewService(s, notificationService, tracer, monitor, logger)
	rsvpService := rsvp.NewService(s, rsvp.NewSigner(specs.RSVPTokenSecret), notificationService, publisher, tracer, monitor, logger)
	profileService := profiles.NewService(s, kratosClient, tracer, monitor, logger)
	webhookService := webhooks.NewService(profileService, crewService, tracer, monitor, logger)

	authn, err := authMiddleware(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	router := web.NewRouter(
		web.Config{AppURL: specs.AppURL, AllowedOrigins: specs.CORSAllowedOrigins},
		web.Services{
			Boats:         boatService,
			Crew:          crewService,
			Invitations:   invitationService,
			Events:        eventService,
			RSVP:          rsvpService,
			Notifications: notificationService,
			Profiles:      profileService,
			Webhooks:      webhookService,
		},
		dbClient,
		chi.Middlewares{authn, profileService.EnsureProfileMiddleware},
		tracer,
		monitor,
		logger,
	)

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

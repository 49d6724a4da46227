package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guemper-znacht/event-registration/api"
	"github.com/guemper-znacht/event-registration/dynamo"
	"github.com/guemper-znacht/event-registration/registration"
	"github.com/guemper-znacht/event-registration/sheets"
	"github.com/guemper-znacht/event-registration/stripepay"
)

func main() {
	ctx := context.Background()

	settings := getServerSettingsFromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	env := api.LOCAL
	if settings.Env == "prod" {
		env = api.PROD
	}

	secretKey, err := getStripeSecretKey(ctx, settings)
	if err != nil {
		logger.Error("failed to load stripe secret key", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// A missing credential degrades the feature to a configuration
	// error per request; the process itself always starts.
	var provider registration.PaymentProvider
	if secretKey != "" {
		p, err := stripepay.NewProvider(secretKey)
		if err != nil {
			logger.Error("failed to construct stripe provider", slog.String("error", err.Error()))
			os.Exit(1)
		}
		provider = p
	} else {
		logger.Warn("STRIPE_SECRET_KEY is not set, payment endpoints will report a configuration error")
	}

	var sheet registration.SheetAppender
	if settings.SheetEndpointURL != "" {
		sheet = sheets.NewClient(http.DefaultClient, settings.SheetEndpointURL)
	} else {
		logger.Warn("GOOGLE_APPS_SCRIPT_URL is not set, persistence endpoints will report a configuration error")
	}

	var marker registration.ProcessedMarker
	if settings.ProcessedTableName != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			logger.Error("failed to load aws config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		marker = dynamo.NewDB(dynamodb.NewFromConfig(cfg), settings.ProcessedTableName)
	}

	emailSender, err := createEmailSender(ctx, logger, env)
	if err != nil {
		logger.Error("failed to construct email sender", slog.String("error", err.Error()))
		os.Exit(1)
	}

	eventAPI := api.NewAPI(
		logger,
		env,
		provider,
		sheet,
		marker,
		emailSender,
		settings.EmailFromAddress,
		settings.StripePublishableKey,
		secretKey != "",
		settings.SheetEndpointURL,
	)

	h := api.UseMiddlewares(eventAPI.Routes(),
		eventAPI.LoggingMiddleware(),
		eventAPI.RequestIdMiddleware(),
		eventAPI.CorsMiddleware(),
	)

	s := &http.Server{
		Handler: h,
		Addr:    net.JoinHostPort(settings.Host, settings.Port),
	}

	logger.Info("starting server", slog.String("addr", s.Addr))
	if err := s.ListenAndServe(); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type ServerSettings struct {
	Host                 string
	Port                 string
	Env                  string
	StripeSecretKey      string
	StripeSecretKeyParam string
	StripePublishableKey string
	SheetEndpointURL     string
	ProcessedTableName   string
	EmailFromAddress     string
}

func getServerSettingsFromEnv() ServerSettings {
	return ServerSettings{
		Host:                 getEnvOrDefault("HOST", "0.0.0.0"),
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "local"),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripeSecretKeyParam: os.Getenv("STRIPE_SECRET_KEY_SSM_PARAM"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		SheetEndpointURL:     os.Getenv("GOOGLE_APPS_SCRIPT_URL"),
		ProcessedTableName:   os.Getenv("PROCESSED_INTENTS_TABLE"),
		EmailFromAddress:     getEnvOrDefault("EMAIL_FROM_ADDRESS", "Gümper Znacht <anmeldung@guemper-znacht.ch>"),
	}
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}

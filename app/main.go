package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryotel "github.com/getsentry/sentry-go/otel"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"

	"github.com/predictmarkets/tqs/domain"
	tqslog "github.com/predictmarkets/tqs/log"
)

const tracerName = "tqs"

// @title           Trade Quote Server API
// @version         1.0
func main() {
	configPath := flag.String("config", "config.json", "config file location")
	hostName := flag.String("host", "tqs", "the name of the host")
	isDebug := flag.Bool("debug", false, "debug mode")
	flag.Parse()

	if *isDebug {
		log.Println("Service RUN on DEBUG mode")
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("loading config %s: %v", *configPath, err)
	}

	// Handle SIGINT and SIGTERM signals to initiate shutdown
	exitChan := make(chan os.Signal, 1)
	signal.Notify(exitChan, os.Interrupt, syscall.SIGTERM)

	defer func() {
		if err := recover(); err != nil {
			log.Println(err)
			exitChan <- syscall.SIGTERM
		}
	}()

	if config.OTEL != nil && config.OTEL.DSN != "" {
		if err := initSentry(config.OTEL, *hostName, *isDebug); err != nil {
			log.Fatalf("sentry.Init: %s", err)
		}
		defer sentry.Flush(2 * time.Second)

		sentry.CaptureMessage("TQS started")

		initOTELTracer(*hostName)
	}

	logger, err := tqslog.NewLogger(config.LoggerIsProduction, config.LoggerFilename, config.LoggerLevel)
	if err != nil {
		panic(fmt.Errorf("error while creating logger: %s", err))
	}
	defer logger.Sync()
	logger.Info("Starting trade quote server", zap.String("config", *configPath), zap.String("host", *hostName))

	// Cancelled on shutdown, stops the pool feed.
	ctx, cancel := context.WithCancel(context.Background())

	tradeQuoteServer, err := NewTradeQuoteServer(ctx, config, logger)
	if err != nil {
		panic(err)
	}

	go func() {
		<-exitChan
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := tradeQuoteServer.Shutdown(shutdownCtx); err != nil {
			log.Fatal(err)
		}

		os.Exit(0)
	}()

	if err := tradeQuoteServer.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

// loadConfig reads the JSON config file over DefaultConfig. A missing file
// leaves the defaults in place.
func loadConfig(configPath string) (domain.Config, error) {
	config := DefaultConfig

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			log.Printf("config file %s not found, using defaults", configPath)
			return config, nil
		}
		return domain.Config{}, err
	}

	if err := viper.Unmarshal(&config); err != nil {
		return domain.Config{}, err
	}

	return config, nil
}

// initSentry samples only the route templates below, at their configured rates.
func initSentry(otelConfig *domain.OTELConfig, hostName string, isDebug bool) error {
	sampleRates := map[string]float64{
		"/trade/sessions":          otelConfig.CustomSampleRate.Trade,
		"/trade/sessions/:id/edit": otelConfig.CustomSampleRate.Trade,
		"/quote/out-given-in":      otelConfig.CustomSampleRate.Other,
		"/quote/in-given-out":      otelConfig.CustomSampleRate.Other,
		"/pools":                   otelConfig.CustomSampleRate.Other,
	}

	return sentry.Init(sentry.ClientOptions{
		ServerName:    hostName,
		Dsn:           otelConfig.DSN,
		SampleRate:    otelConfig.SampleRate,
		EnableTracing: otelConfig.EnableTracing,
		Debug:         isDebug,
		TracesSampler: func(ctx sentry.SamplingContext) float64 {
			if ctx.Span == nil {
				return 0
			}
			return sampleRates[ctx.Span.Name]
		},
		ProfilesSampleRate: otelConfig.ProfilesSampleRate,
		Environment:        otelConfig.Environment,
	})
}

// initOTELTracer initializes the OTEL tracer
// and wires it up with the Sentry exporter.
func initOTELTracer(hostName string) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalf("stdouttrace.New: %v", err)
	}

	resource, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(hostName),
		),
	)
	if err != nil {
		log.Fatalf("resource.New: %v", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource),
		sdktrace.WithSpanProcessor(sentryotel.NewSentrySpanProcessor()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(sentryotel.NewSentryPropagator())
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/estafette/estafette-agent-trigger/pkg/api"
	"github.com/estafette/estafette-agent-trigger/pkg/clients/codebuildapi"
	"github.com/estafette/estafette-agent-trigger/pkg/services/trigger"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

const (
	appName = "estafette-agent-trigger"

	modeOnce   = "once"
	modeServer = "server"
	modeLambda = "lambda"
)

var (
	version   string
	branch    string
	revision  string
	buildDate string
	goVersion = runtime.Version()
)

var (
	// flags
	mode           = kingpin.Flag("mode", "Run a single invocation, serve http and the schedule, or act as lambda handler.").Envar("TRIGGER_MODE").Default(modeOnce).Enum(modeOnce, modeServer, modeLambda)
	configFilePath = kingpin.Flag("config-file-path", "The path to yaml config file configuring the trigger.").Envar("CONFIG_FILE_PATH").String()
	logLevel       = kingpin.Flag("log-level", "The minimum level of logs to write.").Envar("LOG_LEVEL").Default("info").String()

	apiAddress = kingpin.Flag("api-listen-address", "The address to listen on for api HTTP requests.").Envar("API_LISTEN_ADDRESS").Default(":5000").String()

	prometheusMetricsAddress = kingpin.Flag("metrics-listen-address", "The address to listen on for Prometheus metrics requests.").Envar("METRICS_LISTEN_ADDRESS").Default(":9001").String()
	prometheusMetricsPath    = kingpin.Flag("metrics-path", "The path to listen for Prometheus metrics requests.").Envar("METRICS_PATH").Default("/metrics").String()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	// configure json logging
	initLogging()

	// configure tracing from JAEGER_* environment variables
	closer := initJaeger()
	defer closer()

	ctx := context.Background()

	configReader := api.NewConfigReader(*configFilePath, nil)

	switch *mode {
	case modeLambda:
		// config is read on every invocation so the lambda environment stays authoritative
		handler := trigger.NewHandler(configReader, createTriggerService(ctx, configReader))
		lambda.Start(handler.HandleLambda)

	case modeServer:
		runServer(ctx, configReader)

	default:
		exitCode := runOnce(ctx, configReader)
		closer()
		os.Exit(exitCode)
	}
}

func runOnce(ctx context.Context, configReader api.ConfigReader) int {

	handler := trigger.NewHandler(configReader, createTriggerService(ctx, configReader))

	response, err := handler.Invoke(ctx, json.RawMessage(`{"source":"cli"}`))
	if err != nil {
		log.Error().Err(err).Msg("Trigger invocation failed")
		return 1
	}

	output, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed marshalling trigger response")
		return 1
	}

	fmt.Println(string(output))

	return 0
}

func runServer(ctx context.Context, configReader api.ConfigReader) {

	config, err := configReader.ReadConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed reading trigger configuration")
	}

	// define channels and waitgroup to gracefully shutdown the application
	sigs := make(chan os.Signal, 1)                                    // Create channel to receive OS signals
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGINT) // Register the sigs channel to receieve SIGTERM
	wg := &sync.WaitGroup{}                                            // Goroutines can add themselves to this to be waited on so that they finish

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	handler := trigger.NewHandler(configReader, createTriggerService(ctx, configReader))
	handler.SetConfig(config)

	// start prometheus
	go startPrometheus()

	// watch the config file and swap in valid changes
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := configReader.WatchConfig(ctx, handler.SetConfig)
		if err != nil {
			log.Warn().Err(err).Msg("Watching trigger configuration failed")
		}
	}()

	if config.Schedule != "" {
		scheduler, err := trigger.NewScheduler(config.Schedule, handler.Invoke)
		if err != nil {
			log.Fatal().Err(err).Msg("Creating trigger schedule failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			scheduler.Run(ctx)
		}()
	}

	srv := &http.Server{
		Addr:    *apiAddress,
		Handler: configureGinGonic(handler),
	}

	go func() {
		log.Debug().
			Str("port", *apiAddress).
			Msg("Serving api calls...")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Starting gin router failed")
		}
	}()

	// wait for graceful shutdown to finish
	<-sigs // Wait for signals (this hangs until a signal arrives)
	log.Debug().Msg("Shutting down...")

	// shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Graceful server shutdown failed")
	}

	log.Debug().Msg("Stopping goroutines...")
	cancel() // Tell goroutines to stop themselves

	log.Debug().Msg("Awaiting waitgroup...")
	wg.Wait() // Wait for all to be stopped

	log.Info().Msg("Server gracefully stopped")
}

func createTriggerService(ctx context.Context, configReader api.ConfigReader) trigger.Service {

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithHTTPClient(&http.Client{Transport: &nethttp.Transport{}}))
	if err != nil {
		log.Fatal().Err(err).Msg("Loading aws configuration failed")
	}

	// concurrency is fixed at startup; an invalid config fails again and is reported per invocation
	triggerConcurrency := int64(1)
	if config, err := configReader.ReadConfig(ctx); err == nil {
		triggerConcurrency = int64(config.Concurrency)
	}

	var codebuildapiClient codebuildapi.Client
	{
		codebuildapiClient = codebuildapi.NewClient(awsConfig)
		codebuildapiClient = codebuildapi.NewTracingClient(codebuildapiClient)
		codebuildapiClient = codebuildapi.NewLoggingClient(codebuildapiClient)
		codebuildapiClient = codebuildapi.NewMetricsClient(codebuildapiClient,
			api.NewRequestCounter("codebuildapi_client"),
			api.NewRequestHistogram("codebuildapi_client"),
		)
	}

	var triggerService trigger.Service
	{
		triggerService = trigger.NewService(codebuildapiClient, triggerConcurrency)
		triggerService = trigger.NewTracingService(triggerService)
		triggerService = trigger.NewLoggingService(triggerService)
		triggerService = trigger.NewMetricsService(triggerService,
			api.NewRequestCounter("trigger_service"),
			api.NewRequestHistogram("trigger_service"),
			api.NewOutcomeCounter("trigger_service"),
		)
	}

	return triggerService
}

func startPrometheus() {
	log.Debug().
		Str("port", *prometheusMetricsAddress).
		Str("path", *prometheusMetricsPath).
		Msg("Serving Prometheus metrics...")

	http.Handle(*prometheusMetricsPath, promhttp.Handler())

	if err := http.ListenAndServe(*prometheusMetricsAddress, nil); err != nil {
		log.Fatal().Err(err).Msg("Starting Prometheus listener failed")
	}
}

func initLogging() {

	// log as severity for stackdriver logging to recognize the level
	zerolog.LevelFieldName = "severity"

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// set some default fields added to all logs
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("app", appName).
		Str("version", version).
		Logger()

	// loggers retrieved from a context without one fall back to the global logger
	zerolog.DefaultContextLogger = &log.Logger

	// use zerolog for any logs sent via standard log library
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	// log startup message
	log.Info().
		Str("branch", branch).
		Str("revision", revision).
		Str("buildDate", buildDate).
		Str("goVersion", goVersion).
		Str("mode", *mode).
		Msgf("Starting %v...", appName)
}

func initJaeger() func() {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Warn().Err(err).Msg("Generating Jaeger config from environment variables failed, tracing is disabled")
		return func() {}
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = appName
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		log.Warn().Err(err).Msg("Creating Jaeger tracer failed, tracing is disabled")
		return func() {}
	}

	opentracing.SetGlobalTracer(tracer)

	return func() {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("Closing Jaeger tracer failed")
		}
	}
}

func configureGinGonic(triggerHandler *trigger.Handler) *gin.Engine {

	// run gin in release mode and other defaults
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = log.Logger
	gin.DisableConsoleColor()

	// Creates a router without any middleware by default
	router := gin.New()

	// Logging middleware
	router.Use(ZeroLogMiddleware())

	// Opentracing middleware
	router.Use(OpenTracingMiddleware())

	// Recovery middleware recovers from any panics and writes a 500 if there was one.
	router.Use(gin.Recovery())

	// Gzip middleware
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	routes := router.Group("/api")
	{
		routes.POST("/trigger", triggerHandler.Handle)
		routes.GET("/projects", triggerHandler.GetProjects)
	}

	// liveness and readiness
	router.GET("/liveness", func(c *gin.Context) {
		c.String(200, "I'm alive!")
	})
	router.GET("/readiness", func(c *gin.Context) {
		c.String(200, "I'm ready!")
	})

	return router
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/2beens/healthtracker/internal"
	"github.com/2beens/healthtracker/internal/config"
	"github.com/2beens/healthtracker/internal/logging"
	"github.com/2beens/healthtracker/pkg"

	log "github.com/sirupsen/logrus"
)

type secrets struct {
	apiTokenHash     string
	postgresPassword string
	redisPassword    string
	sentryDSN        string
}

func readSecrets() secrets {
	s := secrets{
		apiTokenHash:     os.Getenv("HEALTH_API_TOKEN_HASH"),
		postgresPassword: os.Getenv("HEALTH_POSTGRES_PASS"),
		redisPassword:    os.Getenv("HEALTH_REDIS_PASS"),
		sentryDSN:        os.Getenv("SENTRY_DSN"),
	}
	if s.apiTokenHash == "" {
		log.Errorln("api token hash not set, use HEALTH_API_TOKEN_HASH (see healthctl hash-token)")
	}
	if s.redisPassword == "" {
		log.Warnln("redis password not set, use HEALTH_REDIS_PASS")
	}
	return s
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("env-file", ".env", "optional .env file with secrets")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config [%s]: %s\n", *configPath, err)
		os.Exit(1)
	}

	sec := readSecrets()
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.Environment == "production",
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sec.sentryDSN,
		SentryServerName: "health-service",
		MaxBackups:       cfg.LogMaxBackups,
		MaxAgeDays:       cfg.LogMaxAgeDays,
	})
	log.Infof("health service, env [%s], port %d", *env, cfg.Port)

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("honeycomb enabled but HONEYCOMB_API_KEY env var not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo(),
			APITokenHash:            sec.apiTokenHash,
			PostgresPassword:        sec.postgresPassword,
			RedisPassword:           sec.redisPassword,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received")
	server.GracefulShutdown()
}

// versionInfo is the VCS revision stamped into the binary, or the HEAD of
// the git checkout the service is started from.
func versionInfo() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}

	stdout, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		log.Tracef("no version info: %s", err)
		return "unknown"
	}
	return strings.TrimSpace(pkg.BytesToString(stdout))
}

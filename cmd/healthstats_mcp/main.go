// Package main runs the health stats MCP server over stdio, for local MCP
// clients. The backend serves the same tools at /mcp when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"

	"github.com/2beens/healthtracker/internal/cache"
	"github.com/2beens/healthtracker/internal/config"
	"github.com/2beens/healthtracker/internal/db"
	"github.com/2beens/healthtracker/internal/health"
	healthmcp "github.com/2beens/healthtracker/internal/health/mcp"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	envFile := flag.String("env-file", ".env", "optional .env file with secrets")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		log.Fatalf("load env file: %v", err)
	}
	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("HEALTH_POSTGRES_PASS"),
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("HEALTH_REDIS_PASS"),
	})
	defer rdb.Close()

	statsCache := cache.NewStatsCache(rdb, cfg.StatsCacheTTL(), nil)
	services := health.NewServices(dbPool, statsCache, nil)
	server := healthmcp.NewServer(healthmcp.NewStatsServiceFrom(services))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

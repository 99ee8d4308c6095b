package main

import (
	"fmt"
	"log"
	"os"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"
	"hrm/backend/internal/commands"
	"hrm/backend/internal/pkg/config"
	"hrm/backend/internal/pkg/repository/postgresql"
	"hrm/backend/internal/router"

	"github.com/ardanlabs/conf"
	"github.com/redis/go-redis/v9"
)

type appConf struct {
	Web struct {
		Port string `conf:"default::8080"`
	}
	DB struct {
		Verbose bool `conf:"default:false"`
	}
}

func main() {
	if err := run(); err != nil {
		log.Println("error:", err)
		os.Exit(1)
	}
}

func run() error {
	var ac appConf
	if err := conf.Parse(os.Args[1:], "HRM", &ac); err != nil {
		if err == conf.ErrHelpWanted {
			usage, err := conf.Usage("HRM", &ac)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("loading config.yaml: %w", err)
	}

	postgresDB := postgresql.NewDatabase(postgresql.Config{
		Username:   cfg.DBUsername,
		Password:   cfg.DBPassword,
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		Name:       cfg.DBName,
		DisableTLS: cfg.DisableTLS,
		Verbose:    ac.DB.Verbose,
	})
	defer postgresDB.Close()

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisDB.Close()

	app := web.NewApp()
	a := auth.NewAuth(cfg.JWTKey)

	r := router.NewRouter(app, postgresDB, redisDB, ac.Web.Port, a, cfg)

	return r.Init()
}

package main

import (
	"log/slog"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/lmittmann/tint"

	"github.com/pixelforge/cloudpix"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	})))

	configFile := "cloudpix.config.json"
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	job, err := LoadJob(configFile)
	if err != nil {
		slog.Error("failure loading config", "err", err)
		os.Exit(1)
	}

	cfg, err := cloudpix.ConfigFromEnv()
	if err != nil {
		slog.Error("failure reading credentials", "err", err)
		os.Exit(1)
	}

	if err := job.Run(cloudpix.NewClient(cfg), cfg.CloudName); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

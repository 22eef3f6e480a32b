package main

import (
	"fmt"
	"os"

	"github.com/NDNewell/earnings-analytics/config"
	"github.com/NDNewell/earnings-analytics/di"
)

func main() {
	env := os.Getenv("EARNINGS_ENV")
	if env == "" {
		env = "prod"
	}

	cfg := config.Load()
	container := di.NewContainer(env, cfg)

	fmt.Println("starting server!")
	container.EarningsHttpServer.Start()
}

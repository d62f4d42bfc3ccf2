package main

import (
	"github.com/aayushsoam1/cogni-mind/internal/server"
	"github.com/aayushsoam1/cogni-mind/internal/util"
	"github.com/aayushsoam1/cogni-mind/pkg/logger"
	"github.com/aayushsoam1/cogni-mind/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}

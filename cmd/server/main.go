package main

import (
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/internal/server"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/internal/util"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger/console"
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

package main

import (
	"flag"
	"os"

	"github.com/hazyhaar/corrector-es/pkg/api"
	"github.com/mark3labs/mcp-go/server"
)

const version = "0.1.0"

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "path to config file")
	fs.Parse(args)

	// stdout carries the protocol; logs stay on stderr.
	a, svc, cleanup := setup(*cfgPath)
	defer cleanup()

	srv := server.NewMCPServer("corrector-es", version, server.WithToolCapabilities(false))
	api.RegisterMCPTools(srv, api.MakeEndpoints(svc, a.logger))

	a.logger.Info("mcp server on stdio")
	if err := server.ServeStdio(srv); err != nil {
		a.logger.Error("mcp server error", "error", err)
		cleanup()
		os.Exit(1)
	}
}

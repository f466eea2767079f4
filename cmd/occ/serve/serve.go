// Package servecmder provides the serve command for running the API server.
package servecmder

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jivsocc/commandcenter/api"
	"github.com/jivsocc/commandcenter/api/mcp"
	"github.com/jivsocc/commandcenter/pkg/config"
	"github.com/jivsocc/commandcenter/pkg/gemini"
	"github.com/jivsocc/commandcenter/pkg/logger"
)

// serveFlags maps the serve command's flags onto config keys.
var serveFlags = config.FlagSet{
	config.FlagAPIListen: {
		Name: "api-listen", Shorthand: "a", ViperKey: "api.listen",
		Description: "Address for the API server to listen on",
	},
	config.FlagAPIKey: {
		Name: "api-key", ViperKey: "gemini.api_key",
		Description: "Gemini API key (or set OCC_GEMINI_API_KEY)",
	},
	config.FlagModel: {
		Name: "model", Shorthand: "m", ViperKey: "gemini.model",
		Description: "Gemini model name",
	},
	config.FlagBaseURL: {
		Name: "base-url", ViperKey: "gemini.base_url",
		Description: "Gemini API base URL",
	},
	config.FlagLogFile: {
		Name: "log-file", ViperKey: "log.file",
		Description: "Write JSON logs to this file in addition to the terminal",
	},
}

var serveFlagKeys = []string{
	config.FlagAPIListen,
	config.FlagAPIKey,
	config.FlagModel,
	config.FlagBaseURL,
	config.FlagLogFile,
}

type serveCommander struct {
	apiListen string
	apiKey    string
	model     string
	baseURL   string
	logFile   string
	debug     bool

	v      *viper.Viper
	logger *slog.Logger
}

const serveLongDesc string = `Run the occ API server.

Serves the dashboard datasets, the guarded chat endpoint, and the MCP
tool server on a single listen address:
  GET  /ping                 Health check
  GET  /api/objects          Migration object inventory
  GET  /api/pipeline         Pipeline lifecycle and progress
  GET  /api/graph            Object dependency graph
  GET  /api/reconciliation   Reconciliation rows and summary
  GET  /api/rules            Test rule results
  GET  /api/health           Data health scorecard
  POST /api/chat             Guarded assistant chat
  *    /mcp                  MCP tool server

Without a Gemini API key the data endpoints still work; only the chat
endpoint reports the missing credential.`

const serveShortDesc string = "Run the occ API server"

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return err
			}
			config.BindRegisteredFlags(v, cmd, serveFlags, serveFlagKeys)
			cmder.v = v
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			return cmder.run()
		},
	}

	config.AddStringFlag(cmd, serveFlags, config.FlagAPIListen, &cmder.apiListen)
	config.AddStringFlag(cmd, serveFlags, config.FlagAPIKey, &cmder.apiKey)
	config.AddStringFlag(cmd, serveFlags, config.FlagModel, &cmder.model)
	config.AddStringFlag(cmd, serveFlags, config.FlagBaseURL, &cmder.baseURL)
	config.AddStringFlag(cmd, serveFlags, config.FlagLogFile, &cmder.logFile)

	return cmd
}

func (c *serveCommander) run() error {
	log, closer, err := c.buildLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}
	c.logger = log

	// Re-read the file on config changes so a later restart picks the
	// values up; listen address and key changes need a restart.
	c.v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("config file changed", "file", e.Name)
	})
	c.v.WatchConfig()

	var generator api.Generator
	apiKey := c.v.GetString("gemini.api_key")
	if apiKey != "" {
		generator = gemini.NewClient(apiKey,
			gemini.WithModel(c.v.GetString("gemini.model")),
			gemini.WithBaseURL(c.v.GetString("gemini.base_url")),
			gemini.WithLogger(log),
		)
		log.Info("chat endpoint enabled", "model", c.v.GetString("gemini.model"))
	} else {
		log.Warn("no Gemini API key configured, chat endpoint will report the missing credential")
	}

	apiServer := api.NewServer(api.Config{
		ListenAddr: c.v.GetString("api.listen"),
	}, generator, log)

	mcpServer, err := mcp.NewServer(mcp.Config{Logger: log})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}
	apiServer.Mount("/mcp", mcpServer.Handler())

	errChan := make(chan error, 1)
	go func() {
		if err := apiServer.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	// Wait for interrupt signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		log.Info("received signal, shutting down", "signal", sig.String())
		return apiServer.Shutdown()
	}
}

// buildLogger creates the serve logger: pretty output on the terminal,
// plus a JSON copy into log.file when configured.
func (c *serveCommander) buildLogger() (*slog.Logger, func(), error) {
	term := logger.New(
		logger.WithPretty(true),
		logger.WithDebug(c.debug),
	)

	path := c.v.GetString("log.file")
	if path == "" {
		return term, nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	file := logger.New(
		logger.WithJSON(true),
		logger.WithWriter(f),
		logger.WithDebug(c.debug),
	)

	return logger.Multi(term, file), func() { _ = f.Close() }, nil
}

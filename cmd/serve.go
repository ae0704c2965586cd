package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/config"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/grader"
	"github.com/abhisek/assessly/internal/server"
	"github.com/abhisek/assessly/internal/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the grading server",
	Long: `Run the grading server.

The server grades every definition in the content directory and stores
learner progress in the configured database. Logs go to stderr as well as
the log file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		dir, _ := cmd.Flags().GetString("content")
		e, err := setup(cmd, func(c *config.Config) {
			c.Log.Console = true
			if c.Server.Mode == config.ModeDebug {
				c.Log.Level = "debug"
			}
			if addr != "" {
				c.Server.Addr = addr
			}
			if dir != "" {
				c.Content = dir
			}
		})
		if err != nil {
			return err
		}
		defer e.log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shutdown, err := tracing.Init(e.cfg.Tracing)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				e.log.Warn("tracing shutdown failed", zap.Error(err))
			}
		}()

		catalog, err := content.LoadDir(e.cfg.Content)
		if err != nil {
			return err
		}
		if len(catalog.List()) == 0 {
			return fmt.Errorf("no assessments found in %s", e.cfg.Content)
		}

		st, err := e.openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		svc := grader.New(catalog, st.ProgressRepo(), e.graderOptions(ctx, st.EventRepo())...)
		srv := server.New(svc, server.Options{
			Events:         st.EventRepo(),
			Logger:         e.log,
			RequestTimeout: e.cfg.Server.RequestTimeout,
			RateLimit:      e.cfg.Server.RateLimit,
			AllowedOrigins: e.cfg.CORS.AllowedOrigins,
		})

		e.log.Info("serving assessments",
			zap.Int("count", len(catalog.List())),
			zap.String("driver", st.Driver()),
			zap.Bool("llm", e.cfg.LLM.Enabled()),
			zap.Bool("tracing", e.cfg.Tracing.Enabled))
		return srv.Run(ctx, e.cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
	serveCmd.Flags().String("content", "", "Directory of definitions (overrides content)")
}

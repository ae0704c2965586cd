package cmd

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/config"
	"github.com/abhisek/assessly/internal/feedback"
	"github.com/abhisek/assessly/internal/grader"
	"github.com/abhisek/assessly/internal/llm"
	"github.com/abhisek/assessly/internal/logging"
	"github.com/abhisek/assessly/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "assessly",
	Short: "Take and grade step-by-step assessments",
	Long:  "Assessly runs multi-step assessments in the terminal and grades them locally or through a grading server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (default: ./assessly.yaml or the user config dir)")
	flags.String("db", "", "Database DSN or SQLite file (overrides database.dsn and ASSESSLY_DB)")
	flags.String("driver", "", "Database driver: sqlite, postgres or mysql (overrides database.driver)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs after reading its flags and config.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

// setup loads the configuration, applies the persistent flag overrides and
// any command specific adjustments, then builds the logger.
func setup(cmd *cobra.Command, adjust ...func(*config.Config)) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if d, _ := cmd.Flags().GetString("driver"); d != "" {
		cfg.Database.Driver = d
	}
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	for _, fn := range adjust {
		fn(cfg)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return &env{cfg: cfg, log: log}, nil
}

// openStore opens the configured database. SQLite without a DSN falls back
// to the default data file.
func (e *env) openStore() (*store.Store, error) {
	db := e.cfg.Database
	if db.DSN == "" && (db.Driver == "" || db.Driver == store.DriverSQLite) {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		db.DSN = p
	}
	st, err := store.Open(db.Driver, db.DSN)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// graderOptions wires the event log and, when a provider is configured,
// LLM written assessment messages. A provider that fails to build leaves
// the static messages in place.
func (e *env) graderOptions(ctx context.Context, events store.EventRepo) []grader.Option {
	opts := []grader.Option{
		grader.WithEvents(events),
		grader.WithLogger(e.log),
	}
	if !e.cfg.LLM.Enabled() {
		return opts
	}
	provider, err := llm.NewProvider(ctx, e.cfg.LLM, events, e.log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Assessment messages will use the static text.")
		return opts
	}
	w := feedback.NewLLMWriter(provider, e.cfg.Feedback, e.log)
	return append(opts, grader.WithMessageWriter(feedback.WithFallback(w, e.log)))
}

// learnerID resolves the learner from the flag, the config, then the OS user.
func (e *env) learnerID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("learner"); id != "" {
		return id
	}
	if e.cfg.Learner != "" {
		return e.cfg.Learner
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "learner"
}

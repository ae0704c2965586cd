package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/assessly/internal/app"
	"github.com/abhisek/assessly/internal/content"
	"github.com/abhisek/assessly/internal/grader"
	"github.com/abhisek/assessly/internal/screen"
	"github.com/abhisek/assessly/internal/screens/assessment"
	"github.com/abhisek/assessly/internal/screens/home"
	"github.com/abhisek/assessly/internal/telemetry"
	"github.com/abhisek/assessly/internal/transport"
)

var playCmd = &cobra.Command{
	Use:   "play [definition.json|dir]",
	Short: "Take an assessment in the terminal",
	Long: `Take an assessment in the terminal.

With a definition file the assessment starts right away. With a directory,
or with no argument and the configured content directory, a menu lists the
assessments found there. Answers are graded locally against the database
unless --server points at a running grading server.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().String("learner", "", "Learner ID (default: config learner or the OS user)")
	playCmd.Flags().String("server", "", "Grading server URL (overrides server_url)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	path := e.cfg.Content
	if len(args) == 1 {
		path = args[0]
	}
	catalog, single, err := loadCatalog(path)
	if err != nil {
		return err
	}

	learner := e.learnerID(cmd)
	session := uuid.NewString()
	serverURL, _ := cmd.Flags().GetString("server")
	if serverURL == "" {
		serverURL = e.cfg.ServerURL
	}

	var open home.Opener
	if serverURL != "" {
		open = func(def *content.Definition) screen.Screen {
			client := transport.NewHTTPClient(serverURL, def.ID, learner, e.cfg.Server.RequestTimeout).WithSession(session)
			return assessment.New(assessment.Options{
				Definition:     def,
				Transport:      client,
				Publisher:      client,
				Logger:         e.log,
				RequestTimeout: e.cfg.Server.RequestTimeout,
			})
		}
	} else {
		st, err := e.openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		svc := grader.New(catalog, st.ProgressRepo(), e.graderOptions(cmd.Context(), st.EventRepo())...)
		open = func(def *content.Definition) screen.Screen {
			l := grader.Learner{AssessmentID: def.ID, LearnerID: learner}
			return assessment.New(assessment.Options{
				Definition: def,
				Transport:  grader.NewLocal(svc, l),
				Publisher: telemetry.StorePublisher{
					Events:       st.EventRepo(),
					AssessmentID: def.ID,
					LearnerID:    learner,
					SessionID:    session,
				},
				Logger:         e.log,
				RequestTimeout: e.cfg.LLM.Timeout + e.cfg.Server.RequestTimeout,
			})
		}
	}

	e.log.Info("starting session")
	if single != nil {
		return app.Run(cmd.Context(), open(single))
	}
	if len(catalog.List()) == 0 {
		return fmt.Errorf("no assessments found in %s", path)
	}
	return app.Run(cmd.Context(), home.New(catalog, learner, open))
}

// loadCatalog loads a single definition file or every definition in a
// directory. The definition is returned on its own for a file.
func loadCatalog(path string) (*content.Catalog, *content.Definition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open content: %w", err)
	}
	if info.IsDir() {
		c, err := content.LoadDir(path)
		return c, nil, err
	}
	def, err := content.Load(path)
	if err != nil {
		return nil, nil, err
	}
	c, err := content.NewCatalog(def)
	if err != nil {
		return nil, nil, err
	}
	return c, def, nil
}

// Package cli wires configuration, logging and the session into cobra commands.
package cli

import (
	"fmt"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/logging"
	"ShapeBoard/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	saveFile   string
	logLevel   string
}

// GUIRunner opens the drawing window for a session and blocks until it closes.
type GUIRunner func(cfg *config.Config, s *session.Session, logger *zap.Logger)

// NewRootCommand returns the shapeboard command. Without a subcommand it
// hands a fresh session to runGUI.
func NewRootCommand(runGUI GUIRunner) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "shapeboard",
		Short:         "Draw points, lines, circles and rectangles",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			kind, col := cfg.Selection()
			s := session.New(session.Options{
				SaveFile:     cfg.SaveFile,
				PointRadius:  cfg.PointRadius,
				Kind:         kind,
				Color:        col,
				ExportWidth:  cfg.Export.Width,
				ExportHeight: cfg.Export.Height,
				Logger:       logger,
			}, nil)
			if runGUI == nil {
				return fmt.Errorf("no window system available")
			}
			runGUI(cfg, s, logger)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: ./shapeboard.yaml or ~/.config/shapeboard/config.yaml)")
	flags.StringVar(&opts.saveFile, "file", "", "save file used by File > Save and Load")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newExportCommand(opts))
	return cmd
}

// setup loads the config, applies flag overrides and builds the logger.
func (o *rootOptions) setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.NewLoader(o.configPath).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if o.saveFile != "" {
		cfg.SaveFile = o.saveFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// Execute runs the root command with os.Args.
func Execute(runGUI GUIRunner) error {
	return NewRootCommand(runGUI).Execute()
}

package cli

import (
	"fmt"
	"os"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/persist"
	"ShapeBoard/internal/state"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCommand(root *rootOptions) *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "export <output.png|output.pdf>",
		Short: "Render the save file to a PNG or PDF without opening a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			out := args[0]
			format, err := export.FormatFromPath(out)
			if err != nil {
				return err
			}
			if width <= 0 {
				width = cfg.Export.Width
			}
			if height <= 0 {
				height = cfg.Export.Height
			}

			board := state.NewBoard(logger.Named("board"))
			store := persist.NewStore(cfg.SaveFile, logger.Named("persist"))
			n, err := store.Load(board)
			if err != nil {
				return fmt.Errorf("read shapes: %w", err)
			}

			if err := writeExport(out, format, board.Shapes(), width, height); err != nil {
				return fmt.Errorf("export %s: %w", out, err)
			}
			logger.Info("exported", zap.String("output", out), zap.Int("shapes", n))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d shapes to %s\n", n, out)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "minimum output width in pixels (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "minimum output height in pixels (default from config)")
	return cmd
}

func writeExport(path string, format export.Format, shapes []state.Shape, width, height int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return export.Write(f, format, shapes, width, height)
}

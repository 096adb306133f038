package main

import (
	"fmt"
	"os"

	"ShapeBoard/internal/cli"
	"ShapeBoard/internal/config"
	"ShapeBoard/internal/session"
	"ShapeBoard/internal/ui"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"
)

func runGUI(cfg *config.Config, s *session.Session, logger *zap.Logger) {
	ui.NewMainWindow(app.New(), cfg, s, logger).ShowAndRun()
}

func main() {
	if err := cli.Execute(runGUI); err != nil {
		fmt.Fprintln(os.Stderr, "shapeboard:", err)
		os.Exit(1)
	}
}

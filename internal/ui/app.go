package ui

import (
	"ShapeBoard/internal/config"
	"ShapeBoard/internal/export"
	"ShapeBoard/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"
)

// NewMainWindow builds the drawing window for s on myApp. The caller shows it.
func NewMainWindow(myApp fyne.App, cfg *config.Config, s *session.Session, logger *zap.Logger) fyne.Window {
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	s.SetNotifier(&dialogNotifier{win: myWindow, logger: logger.Named("dialog")})

	board := NewBoardWidget(s)
	toolbar := NewToolbar(s)
	myWindow.SetMainMenu(newMainMenu(myWindow, s, logger))

	// Canvas fills the window, controls sit underneath.
	content := container.NewBorder(nil, toolbar.CanvasObject(), nil, nil, board)
	myWindow.SetContent(content)

	logger.Info("window created", zap.String("save_file", s.SaveFile()))
	return myWindow
}

func newMainMenu(w fyne.Window, s *session.Session, logger *zap.Logger) *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Save", s.Save),
		fyne.NewMenuItem("Load", s.Load),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG…", func() { showExportDialog(w, s, export.FormatPNG, logger) }),
		fyne.NewMenuItem("Export PDF…", func() { showExportDialog(w, s, export.FormatPDF, logger) }),
	)
	return fyne.NewMainMenu(fileMenu)
}

func showExportDialog(w fyne.Window, s *session.Session, format export.Format, logger *zap.Logger) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			logger.Error("export dialog failed", zap.Error(err))
			dialog.ShowError(err, w)
			return
		}
		if writer == nil {
			return
		}
		s.Export(writer, format)
	}, w)
	d.SetFileName("shapes." + string(format))
	d.Show()
}

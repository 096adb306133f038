package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// dialogNotifier shows session messages as modal dialogs on a window.
type dialogNotifier struct {
	win    fyne.Window
	logger *zap.Logger
}

func (n *dialogNotifier) Info(title, message string) {
	n.logger.Debug("info dialog", zap.String("title", title), zap.String("message", message))
	dialog.NewInformation(title, message, n.win).Show()
}

func (n *dialogNotifier) Error(title, message string) {
	n.logger.Debug("error dialog", zap.String("title", title), zap.String("message", message))
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	dialog.NewCustom(title, "OK", label, n.win).Show()
}

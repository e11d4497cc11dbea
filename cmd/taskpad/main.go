package main

import (
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"taskpad/internal/controllers"
	"taskpad/internal/logger"
	"taskpad/internal/views"
)

const (
	AppName    = "Todo List"
	AppID      = "com.taskpad.app"
	AppVersion = "1.0.0"
)

func main() {
	appLogger := logger.NewConsoleLogger(zerolog.InfoLevel)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(400, 600))
	window.CenterOnScreen()

	appLogger.Info("main", "application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
	})

	controller := controllers.NewMainController(appLogger, fyneApp, window)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	view.Show()
	fyneApp.Run()

	appLogger.Info("main", "application terminated", nil)
}

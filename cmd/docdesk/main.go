package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/docdesk/docdesk/internal/handle"
	"github.com/docdesk/docdesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.docdesk.app"
	AppName = "DocDesk"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Blob registry backing previews and produced documents
	registry, err := handle.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize blob registry: %v", err)
	}

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, registry)

	myWindow.SetCloseIntercept(func() {
		rootUI.Teardown()
		registry.Close()
		myWindow.Close()
	})

	// Show and run
	myWindow.ShowAndRun()
}

package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/docdesk/docdesk/internal/config"
	"github.com/docdesk/docdesk/internal/convert"
	"github.com/docdesk/docdesk/internal/handle"
	"github.com/docdesk/docdesk/internal/intake"
	"github.com/docdesk/docdesk/internal/platform"
)

// Tab indices
const (
	TabHome = iota
	TabImages
	TabMerge
)

// RootUI holds the main application window content: the landing screen and
// the two conversion tools under one tab bar.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	registry     *handle.Registry

	tabs           *container.AppTabs
	home           *HomeView
	imagesView     *ToolView
	mergeView      *ToolView
	settingsDialog *SettingsDialog
}

// NewRootUI creates the main UI
func NewRootUI(window fyne.Window, app fyne.App, registry *handle.Registry) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the configured output directory exists
	if err := platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory()); err != nil {
		log.Printf("Failed to create output directory %s: %v", settings.GetOutputDirectory(), err)
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		registry:     registry,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.home = NewHomeView(ui.localization, func(tabIndex int) {
		ui.tabs.SelectIndex(tabIndex)
	})

	ui.imagesView = NewToolView(ui.window, ui.localization, ui.settings, ui.registry,
		convert.NewImageBuilder(), ToolConfig{
			TitleKey:  KeyToolImages,
			ActionKey: KeyConvert,
			EmptyKey:  KeyNoImages,
			BaseName:  "images",
			Policy:    intake.ImagePolicy,
			Previews:  true,
		})

	ui.mergeView = NewToolView(ui.window, ui.localization, ui.settings, ui.registry,
		convert.NewMerger(), ToolConfig{
			TitleKey:    KeyToolMerge,
			ActionKey:   KeyMerge,
			EmptyKey:    KeyTooFewPDFs,
			BaseName:    "merged",
			Policy:      intake.PDFPolicy,
			Determinate: true,
		})

	ui.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon(ui.localization.GetText(KeyHome), theme.HomeIcon(), ui.home.Container()),
		container.NewTabItem(ui.imagesView.Title(), ui.imagesView.Container()),
		container.NewTabItem(ui.mergeView.Title(), ui.mergeView.Container()),
	)

	// Files dropped on the window go to whichever tool is in front
	ui.window.SetOnDropped(ui.onFilesDropped)

	ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onLanguageChange)

	ui.window.SetContent(ui.tabs)
}

// onFilesDropped routes window drop events to the visible tool
func (ui *RootUI) onFilesDropped(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri.Scheme() != "file" {
			log.Printf("Ignoring dropped URI with scheme %s", uri.Scheme())
			continue
		}
		paths = append(paths, uri.Path())
	}
	if len(paths) == 0 {
		return
	}

	switch ui.tabs.SelectedIndex() {
	case TabImages:
		ui.imagesView.AddPaths(paths)
	case TabMerge:
		ui.mergeView.AddPaths(paths)
	default:
		// Drops on the landing screen are ignored
	}
}

// createMenu builds the main menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange switches the interface language
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.tabs.Items[TabHome].Text = ui.localization.GetText(KeyHome)
	ui.tabs.Items[TabImages].Text = ui.imagesView.Title()
	ui.tabs.Items[TabMerge].Text = ui.mergeView.Title()
	ui.tabs.Refresh()

	ui.home.RefreshTexts()
	ui.imagesView.RefreshTexts()
	ui.mergeView.RefreshTexts()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}

// Teardown releases all blobs held by the tools before shutdown
func (ui *RootUI) Teardown() {
	ui.imagesView.Teardown()
	ui.mergeView.Teardown()
}

package config

import (
	"fyne.io/fyne/v2"

	"github.com/docdesk/docdesk/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir  = "output_directory"
	KeyLanguage   = "app_language"
	KeyAutoReveal = "auto_reveal_on_save"
)

// Default values
const (
	DefaultLanguage   = "system"
	DefaultAutoReveal = true
	FallbackOutputDir = "/tmp/docdesk"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the directory save dialogs start in
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackOutputDir
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnSave returns whether saved documents are revealed in the file manager
func (s *Settings) GetAutoRevealOnSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoReveal, DefaultAutoReveal)
}

// SetAutoRevealOnSave sets whether saved documents are revealed in the file manager
func (s *Settings) SetAutoRevealOnSave(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoReveal, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage    = "app_language"
	KeyLastAction  = "last_action"
	KeyShowSuccess = "show_success_dialogs"
)

// Default values
const (
	DefaultLanguage    = "system"
	DefaultLastAction  = "List"
	DefaultShowSuccess = true
)

// Settings manages persisted GUI preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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

// GetLastAction returns the action selected when the form was last used
func (s *Settings) GetLastAction() string {
	return s.app.Preferences().StringWithFallback(KeyLastAction, DefaultLastAction)
}

// SetLastAction remembers the selected form action
func (s *Settings) SetLastAction(action string) {
	if action == "" {
		action = DefaultLastAction
	}
	s.app.Preferences().SetString(KeyLastAction, action)
}

// GetShowSuccess returns whether successful mutations are confirmed with a dialog
func (s *Settings) GetShowSuccess() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowSuccess, DefaultShowSuccess)
}

// SetShowSuccess sets whether successful mutations are confirmed with a dialog
func (s *Settings) SetShowSuccess(show bool) {
	s.app.Preferences().SetBool(KeyShowSuccess, show)
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

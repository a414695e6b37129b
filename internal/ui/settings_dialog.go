package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/library-catalog/internal/config"
	"github.com/ytget/library-catalog/internal/locale"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *locale.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	languageCodes  []string
	showSuccess    *widget.Check
}

// ShowSettingsDialog creates and displays the settings dialog. onSaved runs
// after the new values are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *locale.Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *locale.Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection, sorted by code for a stable order
	languageLabels := sd.settings.GetLanguageOptions()
	sd.languageCodes = make([]string, 0, len(languageLabels))
	for code := range languageLabels {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)

	options := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		options = append(options, languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	sd.showSuccess = widget.NewCheck(sd.localization.GetText(locale.KeyShowSuccess), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(locale.KeyLanguage)+":"),
		sd.languageSelect,
		widget.NewSeparator(),
		sd.showSuccess,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(locale.KeySettings),
		sd.localization.GetText(locale.KeySave),
		sd.localization.GetText(locale.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
		}
	}
	sd.showSuccess.SetChecked(sd.settings.GetShowSuccess())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 && idx < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[idx])
	}
	sd.settings.SetShowSuccess(sd.showSuccess.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/library-catalog/internal/catalog"
	"github.com/ytget/library-catalog/internal/config"
	"github.com/ytget/library-catalog/internal/locale"
	"github.com/ytget/library-catalog/internal/model"
)

// actionTextKeys maps selector actions to their localized labels
var actionTextKeys = map[Action]string{
	ActionList:     locale.KeyActionList,
	ActionAdd:      locale.KeyActionAdd,
	ActionSearch:   locale.KeyActionSearch,
	ActionCheckout: locale.KeyActionCheckout,
	ActionReturn:   locale.KeyActionReturn,
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	catalog      catalog.Cataloger
	settings     *config.Settings
	localization *locale.Localization

	actionSelect *widget.Select
	idEntry      *widget.Entry
	titleEntry   *widget.Entry
	authorEntry  *widget.Entry
	executeBtn   *widget.Button
	output       *widget.Entry
	statusLabel  *widget.Label

	actionLabel *widget.Label
	idLabel     *widget.Label
	titleLabel  *widget.Label
	authorLabel *widget.Label
}

// NewRootUI creates and initializes the main UI. A non-empty language
// overrides the saved preference for this run.
func NewRootUI(window fyne.Window, c catalog.Cataloger, settings *config.Settings, language string) *RootUI {
	localization := locale.NewLocalization()
	if language == "" {
		language = settings.GetLanguage()
	}
	localization.SetLanguage(language)

	ui := &RootUI{
		window:       window,
		catalog:      c,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(locale.KeyAppTitle))

	if icon, err := LoadIconResource(); err == nil {
		window.SetIcon(icon)
	}

	// Set up callback for catalog updates
	ui.catalog.SetUpdateCallback(ui.onCatalogChange)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.actionSelect = widget.NewSelect(ui.actionLabels(), ui.onActionChanged)
	ui.selectAction(Action(ui.settings.GetLastAction()))

	ui.idEntry = widget.NewEntry()
	ui.idEntry.Validator = ui.validateID
	ui.titleEntry = widget.NewEntry()
	ui.authorEntry = widget.NewEntry()

	// Enter in any field runs the selected action
	for _, entry := range []*widget.Entry{ui.idEntry, ui.titleEntry, ui.authorEntry} {
		entry.OnSubmitted = func(string) { ui.onExecute() }
	}

	ui.executeBtn = widget.NewButton(ui.localization.GetText(locale.KeyExecute), ui.onExecute)
	ui.executeBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.output = widget.NewMultiLineEntry()
	ui.output.Wrapping = fyne.TextWrapOff
	ui.output.SetMinRowsVisible(8)

	ui.statusLabel = widget.NewLabel("")
	ui.updateStatus()

	ui.actionLabel = widget.NewLabel("")
	ui.idLabel = widget.NewLabel("")
	ui.titleLabel = widget.NewLabel("")
	ui.authorLabel = widget.NewLabel("")
	ui.refreshLabels()

	form := container.New(
		layout.NewFormLayout(),
		ui.actionLabel, ui.actionSelect,
		ui.idLabel, ui.idEntry,
		ui.titleLabel, ui.titleEntry,
		ui.authorLabel, ui.authorEntry,
	)

	top := container.NewVBox(
		form,
		container.NewBorder(nil, nil, settingsBtn, ui.executeBtn),
	)

	content := container.NewBorder(
		top,            // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		ui.output,      // center
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(locale.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(locale.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(locale.KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(locale.KeyAppTitle))

	selected := ui.selectedAction()
	ui.actionSelect.Options = ui.actionLabels()
	ui.selectAction(selected)
	ui.actionSelect.Refresh()

	ui.executeBtn.SetText(ui.localization.GetText(locale.KeyExecute))
	ui.refreshLabels()
	ui.updateStatus()
}

func (ui *RootUI) refreshLabels() {
	ui.actionLabel.SetText(ui.localization.GetText(locale.KeyAction))
	ui.idLabel.SetText(ui.localization.GetText(locale.KeyID))
	ui.titleLabel.SetText(ui.localization.GetText(locale.KeyTitle))
	ui.authorLabel.SetText(ui.localization.GetText(locale.KeyAuthor))
}

// actionLabels returns localized selector entries in Actions order
func (ui *RootUI) actionLabels() []string {
	labels := make([]string, 0, len(Actions))
	for _, action := range Actions {
		labels = append(labels, ui.localization.GetText(actionTextKeys[action]))
	}
	return labels
}

// selectAction selects the given action, falling back to List
func (ui *RootUI) selectAction(action Action) {
	for i, a := range Actions {
		if a == action {
			ui.actionSelect.SetSelectedIndex(i)
			return
		}
	}
	ui.actionSelect.SetSelectedIndex(0)
}

// selectedAction returns the action currently chosen in the selector
func (ui *RootUI) selectedAction() Action {
	idx := ui.actionSelect.SelectedIndex()
	if idx < 0 || idx >= len(Actions) {
		return ActionList
	}
	return Actions[idx]
}

// onActionChanged remembers the selected action
func (ui *RootUI) onActionChanged(string) {
	ui.settings.SetLastAction(string(ui.selectedAction()))
}

// validateID validates the ID field while typing
func (ui *RootUI) validateID(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed until an action needs it
	}
	_, err := ui.localization.ParseID(input)
	return err
}

// onExecute handles the execute button click
func (ui *RootUI) onExecute() {
	action := ui.selectedAction()
	log.Printf("Executing action %s", action)

	if err := ui.execute(action); err != nil {
		log.Printf("Action %s failed: %v", action, err)
		dialog.ShowError(err, ui.window)
	}
}

// execute runs a single action against the catalog
func (ui *RootUI) execute(action Action) error {
	ui.output.SetText("")

	switch action {
	case ActionList:
		ui.showBooks(ui.catalog.List())

	case ActionSearch:
		ui.showBooks(ui.catalog.Search(ui.titleEntry.Text, ui.authorEntry.Text))

	case ActionAdd:
		id, err := ui.localization.ParseID(ui.idEntry.Text)
		if err != nil {
			return err
		}
		if err := ui.catalog.Add(model.NewBook(id, ui.titleEntry.Text, ui.authorEntry.Text)); err != nil {
			return err
		}
		ui.showSuccess(locale.KeyBookAdded)

	case ActionCheckout:
		id, err := ui.localization.ParseID(ui.idEntry.Text)
		if err != nil {
			return err
		}
		if err := ui.catalog.Checkout(id); err != nil {
			return err
		}
		ui.showSuccess(locale.KeyCheckedOut)

	case ActionReturn:
		id, err := ui.localization.ParseID(ui.idEntry.Text)
		if err != nil {
			return err
		}
		if err := ui.catalog.Return(id); err != nil {
			return err
		}
		ui.showSuccess(locale.KeyReturned)

	default:
		return fmt.Errorf("unknown action: %s", action)
	}

	return nil
}

// showBooks renders one book per line into the output area
func (ui *RootUI) showBooks(books []model.Book) {
	if len(books) == 0 {
		ui.statusLabel.SetText(ui.localization.GetText(locale.KeyNoBooks))
		return
	}

	var b strings.Builder
	for _, book := range books {
		b.WriteString(book.String())
		b.WriteString("\n")
	}
	ui.output.SetText(b.String())
	ui.updateStatus()
}

// showSuccess confirms a mutation, with a dialog when enabled in settings
func (ui *RootUI) showSuccess(key string) {
	message := ui.localization.GetText(key)
	ui.statusLabel.SetText(message)

	if ui.settings.GetShowSuccess() {
		dialog.ShowInformation(ui.localization.GetText(locale.KeySuccess), message, ui.window)
	}
}

// onCatalogChange handles change notifications from the catalog
func (ui *RootUI) onCatalogChange(change catalog.Change) {
	log.Printf("Catalog change %s: %s %s", change.ID, change.Kind, change.Book)
	if ui.statusLabel != nil {
		ui.updateStatus()
	}
}

// updateStatus shows the number of books in the catalog
func (ui *RootUI) updateStatus() {
	ui.statusLabel.SetText(fmt.Sprintf("%s %s", IconBook,
		fmt.Sprintf(ui.localization.GetText(locale.KeyBooksInCatalog), ui.catalog.Count())))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
	})
}

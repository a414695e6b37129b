// Package locale holds the UI and CLI text translations
package locale

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyShowSuccess     = "show_success"
	KeyAction          = "action"
	KeyExecute         = "execute"
	KeyID              = "id"
	KeyTitle           = "title"
	KeyAuthor          = "author"
	KeyActionList      = "action_list"
	KeyActionAdd       = "action_add"
	KeyActionSearch    = "action_search"
	KeyActionCheckout  = "action_checkout"
	KeyActionReturn    = "action_return"
	KeySuccess         = "success"
	KeyError           = "error"
	KeyBookAdded       = "book_added"
	KeyCheckedOut      = "checked_out"
	KeyReturned        = "returned"
	KeyNoBooks         = "no_books"
	KeyBooksInCatalog  = "books_in_catalog"
	KeyInvalidID       = "invalid_id"
	KeyIDRequired      = "id_required"
	KeyMenuHeader      = "menu_header"
	KeyMenuList        = "menu_list"
	KeyMenuAdd         = "menu_add"
	KeyMenuSearch      = "menu_search"
	KeyMenuCheckout    = "menu_checkout"
	KeyMenuReturn      = "menu_return"
	KeyMenuExit        = "menu_exit"
	KeyChooseOption    = "choose_option"
	KeyPromptID        = "prompt_id"
	KeyPromptBookID    = "prompt_book_id"
	KeyPromptTitle     = "prompt_title"
	KeyPromptAuthor    = "prompt_author"
	KeyPromptTitleOpt  = "prompt_title_optional"
	KeyPromptAuthorOpt = "prompt_author_optional"
	KeyUnknownOption   = "unknown_option"
	KeyGUIUnavailable  = "gui_unavailable"
)

// Language codes
const (
	LanguageSystem = "system"
	LanguageEN     = "en"
	LanguageRU     = "ru"
	LanguagePT     = "pt"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageEN,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem || lang == "" {
		// Use system locale - simplified to English for now
		lang = LanguageEN
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LanguageEN]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LanguageEN: "English",
		LanguageRU: "Русский",
		LanguagePT: "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[LanguageEN] = map[string]string{
		KeyAppTitle:        "Library Catalog",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyShowSuccess:     "Confirm successful actions",
		KeyAction:          "Action",
		KeyExecute:         "Execute",
		KeyID:              "ID",
		KeyTitle:           "Title",
		KeyAuthor:          "Author",
		KeyActionList:      "List",
		KeyActionAdd:       "Add",
		KeyActionSearch:    "Search",
		KeyActionCheckout:  "Checkout",
		KeyActionReturn:    "Return",
		KeySuccess:         "Success",
		KeyError:           "Error",
		KeyBookAdded:       "Book added",
		KeyCheckedOut:      "Checked out",
		KeyReturned:        "Returned",
		KeyNoBooks:         "No books found",
		KeyBooksInCatalog:  "Books in catalog: %d",
		KeyInvalidID:       "invalid book ID %q",
		KeyIDRequired:      "book ID is required",
		KeyMenuHeader:      "Library Catalog",
		KeyMenuList:        "1. List all books",
		KeyMenuAdd:         "2. Add book",
		KeyMenuSearch:      "3. Search",
		KeyMenuCheckout:    "4. Check out",
		KeyMenuReturn:      "5. Return",
		KeyMenuExit:        "6. Exit",
		KeyChooseOption:    "Choose option: ",
		KeyPromptID:        "ID: ",
		KeyPromptBookID:    "Book ID: ",
		KeyPromptTitle:     "Title: ",
		KeyPromptAuthor:    "Author: ",
		KeyPromptTitleOpt:  "Title (optional): ",
		KeyPromptAuthorOpt: "Author (optional): ",
		KeyUnknownOption:   "Unknown option",
		KeyGUIUnavailable:  "GUI not available, running CLI mode",
	}

	// Russian texts
	l.texts[LanguageRU] = map[string]string{
		KeyAppTitle:        "Каталог библиотеки",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyShowSuccess:     "Подтверждать успешные действия",
		KeyAction:          "Действие",
		KeyExecute:         "Выполнить",
		KeyID:              "ID",
		KeyTitle:           "Название",
		KeyAuthor:          "Автор",
		KeyActionList:      "Список",
		KeyActionAdd:       "Добавить",
		KeyActionSearch:    "Поиск",
		KeyActionCheckout:  "Выдать",
		KeyActionReturn:    "Вернуть",
		KeySuccess:         "Готово",
		KeyError:           "Ошибка",
		KeyBookAdded:       "Книга добавлена",
		KeyCheckedOut:      "Книга выдана",
		KeyReturned:        "Книга возвращена",
		KeyNoBooks:         "Книги не найдены",
		KeyBooksInCatalog:  "Книг в каталоге: %d",
		KeyInvalidID:       "неверный ID книги %q",
		KeyIDRequired:      "требуется ID книги",
		KeyMenuHeader:      "Каталог библиотеки",
		KeyMenuList:        "1. Список книг",
		KeyMenuAdd:         "2. Добавить книгу",
		KeyMenuSearch:      "3. Поиск",
		KeyMenuCheckout:    "4. Выдать",
		KeyMenuReturn:      "5. Вернуть",
		KeyMenuExit:        "6. Выход",
		KeyChooseOption:    "Выберите пункт: ",
		KeyPromptID:        "ID: ",
		KeyPromptBookID:    "ID книги: ",
		KeyPromptTitle:     "Название: ",
		KeyPromptAuthor:    "Автор: ",
		KeyPromptTitleOpt:  "Название (необязательно): ",
		KeyPromptAuthorOpt: "Автор (необязательно): ",
		KeyUnknownOption:   "Неизвестный пункт",
		KeyGUIUnavailable:  "Графический интерфейс недоступен, запуск в режиме CLI",
	}

	// Portuguese texts
	l.texts[LanguagePT] = map[string]string{
		KeyAppTitle:        "Catálogo da Biblioteca",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyShowSuccess:     "Confirmar ações bem-sucedidas",
		KeyAction:          "Ação",
		KeyExecute:         "Executar",
		KeyID:              "ID",
		KeyTitle:           "Título",
		KeyAuthor:          "Autor",
		KeyActionList:      "Listar",
		KeyActionAdd:       "Adicionar",
		KeyActionSearch:    "Buscar",
		KeyActionCheckout:  "Emprestar",
		KeyActionReturn:    "Devolver",
		KeySuccess:         "Sucesso",
		KeyError:           "Erro",
		KeyBookAdded:       "Livro adicionado",
		KeyCheckedOut:      "Emprestado",
		KeyReturned:        "Devolvido",
		KeyNoBooks:         "Nenhum livro encontrado",
		KeyBooksInCatalog:  "Livros no catálogo: %d",
		KeyInvalidID:       "ID de livro inválido %q",
		KeyIDRequired:      "o ID do livro é obrigatório",
		KeyMenuHeader:      "Catálogo da Biblioteca",
		KeyMenuList:        "1. Listar todos os livros",
		KeyMenuAdd:         "2. Adicionar livro",
		KeyMenuSearch:      "3. Buscar",
		KeyMenuCheckout:    "4. Emprestar",
		KeyMenuReturn:      "5. Devolver",
		KeyMenuExit:        "6. Sair",
		KeyChooseOption:    "Escolha uma opção: ",
		KeyPromptID:        "ID: ",
		KeyPromptBookID:    "ID do livro: ",
		KeyPromptTitle:     "Título: ",
		KeyPromptAuthor:    "Autor: ",
		KeyPromptTitleOpt:  "Título (opcional): ",
		KeyPromptAuthorOpt: "Autor (opcional): ",
		KeyUnknownOption:   "Opção desconhecida",
		KeyGUIUnavailable:  "Interface gráfica indisponível, executando em modo CLI",
	}
}

package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyHome            = "home"
	KeyHomeIntro       = "home_intro"
	KeyToolImages      = "tool_images"
	KeyToolImagesDesc  = "tool_images_desc"
	KeyToolMerge       = "tool_merge"
	KeyToolMergeDesc   = "tool_merge_desc"
	KeyOpenTool        = "open_tool"
	KeyAddFiles        = "add_files"
	KeyClearAll        = "clear_all"
	KeyConvert         = "convert"
	KeyMerge           = "merge"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyRemove          = "remove"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyOutputDirectory = "output_directory"
	KeyAutoReveal      = "auto_reveal"
	KeySettingsSaved   = "settings_saved"
	KeyDropHint        = "drop_hint"
	KeyQueuedFiles     = "queued_files"
	KeySomeIgnored     = "some_ignored"
	KeyMaxReached      = "max_reached"
	KeyNoValidFiles    = "no_valid_files"
	KeyTooFewPDFs      = "too_few_pdfs"
	KeyNoImages        = "no_images"
	KeyConverting      = "converting"
	KeyOperationFailed = "operation_failed"
	KeyConversionDone  = "conversion_done"
	KeySavedTo         = "saved_to"
	KeyErrorOpening    = "error_opening_file"
	KeyErrorSaving     = "error_saving_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
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
	if texts, exists := l.texts["en"]; exists {
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
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "DocDesk",
		KeyHome:            "Home",
		KeyHomeIntro:       "Small, local tools for everyday document chores. Files never leave this machine.",
		KeyToolImages:      "Images → PDF",
		KeyToolImagesDesc:  "Turn JPEG and PNG images into a single PDF, one page per image.",
		KeyToolMerge:       "Merge PDFs",
		KeyToolMergeDesc:   "Combine several PDF documents into one, in the order you arrange them.",
		KeyOpenTool:        "Open",
		KeyAddFiles:        "Add files",
		KeyClearAll:        "Clear all",
		KeyConvert:         "Convert",
		KeyMerge:           "Merge",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyRemove:          "Remove",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyOutputDirectory: "Output Directory",
		KeyAutoReveal:      "Reveal saved files in file manager",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyDropHint:        "Drop files here to add several at once; Add files picks one at a time. Drag rows to reorder.",
		KeyQueuedFiles:     "%d file(s) queued",
		KeySomeIgnored:     "Some files were ignored",
		KeyMaxReached:      "Maximum number of files reached",
		KeyNoValidFiles:    "No supported files in the selection",
		KeyTooFewPDFs:      "Add at least 2 PDF files to merge",
		KeyNoImages:        "Add at least 1 image to convert",
		KeyConverting:      "Converting...",
		KeyOperationFailed: "Operation failed. The queue was kept, you can retry.",
		KeyConversionDone:  "Done. Use Save to store the result.",
		KeySavedTo:         "Saved",
		KeyErrorOpening:    "Error opening file",
		KeyErrorSaving:     "Error saving file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "DocDesk",
		KeyHome:            "Главная",
		KeyHomeIntro:       "Небольшие локальные инструменты для работы с документами. Файлы не покидают этот компьютер.",
		KeyToolImages:      "Изображения → PDF",
		KeyToolImagesDesc:  "Собирает JPEG и PNG изображения в один PDF, по странице на изображение.",
		KeyToolMerge:       "Объединить PDF",
		KeyToolMergeDesc:   "Склеивает несколько PDF документов в один, в выбранном порядке.",
		KeyOpenTool:        "Открыть",
		KeyAddFiles:        "Добавить файлы",
		KeyClearAll:        "Очистить все",
		KeyConvert:         "Конвертировать",
		KeyMerge:           "Объединить",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeyRemove:          "Удалить",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyOutputDirectory: "Папка сохранения",
		KeyAutoReveal:      "Показывать сохраненные файлы в менеджере файлов",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyDropHint:        "Перетащите сюда сразу несколько файлов; кнопка «Добавить файлы» выбирает по одному. Порядок меняется перетаскиванием строк.",
		KeyQueuedFiles:     "Файлов в очереди: %d",
		KeySomeIgnored:     "Часть файлов была пропущена",
		KeyMaxReached:      "Достигнуто максимальное число файлов",
		KeyNoValidFiles:    "В выборе нет подходящих файлов",
		KeyTooFewPDFs:      "Добавьте минимум 2 PDF файла для объединения",
		KeyNoImages:        "Добавьте минимум 1 изображение",
		KeyConverting:      "Конвертация...",
		KeyOperationFailed: "Операция не удалась. Очередь сохранена, можно повторить.",
		KeyConversionDone:  "Готово. Нажмите «Сохранить», чтобы записать результат.",
		KeySavedTo:         "Сохранено",
		KeyErrorOpening:    "Ошибка открытия файла",
		KeyErrorSaving:     "Ошибка сохранения файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "DocDesk",
		KeyHome:            "Início",
		KeyHomeIntro:       "Pequenas ferramentas locais para tarefas com documentos. Os arquivos nunca saem desta máquina.",
		KeyToolImages:      "Imagens → PDF",
		KeyToolImagesDesc:  "Transforma imagens JPEG e PNG em um único PDF, uma página por imagem.",
		KeyToolMerge:       "Mesclar PDFs",
		KeyToolMergeDesc:   "Combina vários documentos PDF em um só, na ordem escolhida.",
		KeyOpenTool:        "Abrir",
		KeyAddFiles:        "Adicionar arquivos",
		KeyClearAll:        "Limpar tudo",
		KeyConvert:         "Converter",
		KeyMerge:           "Mesclar",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyBrowse:          "Navegar",
		KeyRemove:          "Remover",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyOutputDirectory: "Diretório de Saída",
		KeyAutoReveal:      "Revelar arquivos salvos no gerenciador de arquivos",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyDropHint:        "Arraste vários arquivos para cá de uma vez; Adicionar arquivos escolhe um por vez. Arraste linhas para reordenar.",
		KeyQueuedFiles:     "%d arquivo(s) na fila",
		KeySomeIgnored:     "Alguns arquivos foram ignorados",
		KeyMaxReached:      "Número máximo de arquivos atingido",
		KeyNoValidFiles:    "Nenhum arquivo compatível na seleção",
		KeyTooFewPDFs:      "Adicione pelo menos 2 PDFs para mesclar",
		KeyNoImages:        "Adicione pelo menos 1 imagem",
		KeyConverting:      "Convertendo...",
		KeyOperationFailed: "A operação falhou. A fila foi mantida, tente novamente.",
		KeyConversionDone:  "Pronto. Use Salvar para gravar o resultado.",
		KeySavedTo:         "Salvo",
		KeyErrorOpening:    "Erro ao abrir arquivo",
		KeyErrorSaving:     "Erro ao salvar arquivo",
	}
}

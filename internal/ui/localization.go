package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"

	"github.com/ytget/setlist/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyTabSongs            = "tab_songs"
	KeyTabSchedules        = "tab_schedules"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyLanguage            = "language"
	KeySearchDebounce      = "search_debounce"
	KeyRefreshDelay        = "refresh_delay"
	KeyDefaultKey          = "default_key"
	KeyStorageBackend      = "storage_backend"
	KeyRestartRequired     = "restart_required"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
	KeyAdd                 = "add"
	KeyEdit                = "edit"
	KeyDelete              = "delete"
	KeyRefresh             = "refresh"
	KeyCopy                = "copy"
	KeyCopied              = "copied"
	KeyReset               = "reset"
	KeySearch              = "search"
	KeyTitle               = "title"
	KeyArtist              = "artist"
	KeyKey                 = "key"
	KeyServiceName         = "service_name"
	KeySongs               = "songs"
	KeyNewSong             = "new_song"
	KeyEditSong            = "edit_song"
	KeyNewSchedule         = "new_schedule"
	KeyEditSchedule        = "edit_schedule"
	KeyNoSongs             = "no_songs"
	KeyNoSchedules         = "no_schedules"
	KeyNoMatches           = "no_matches"
	KeyConfirmTitle        = "confirm_title"
	KeyAreYouSure          = "are_you_sure"
	KeyConfirmDeleteSong   = "confirm_delete_song"
	KeyConfirmDeleteSched  = "confirm_delete_schedule"
	KeySelectedCount       = "selected_count"
	KeyImportPlaylist      = "import_playlist"
	KeyPlaylistURL         = "playlist_url"
	KeyImport              = "import"
	KeyImportStarted       = "import_started"
	KeyImportFinished      = "import_finished"
	KeyImportFailed        = "import_failed"
	KeyErrorLoading        = "error_loading"
	KeyErrorSaving         = "error_saving"
	KeyTitleRequired       = "title_required"
	KeyArtistRequired      = "artist_required"
	KeyKeyRequired         = "key_required"
	KeyKeyTooLong          = "key_too_long"
	KeyServiceNameRequired = "service_name_required"
	KeySongsRequired       = "songs_required"
)

// validationTextKeys maps model validation messages to localization keys
var validationTextKeys = map[string]string{
	model.MsgTitleRequired:       KeyTitleRequired,
	model.MsgArtistRequired:      KeyArtistRequired,
	model.MsgKeyRequired:         KeyKeyRequired,
	model.MsgKeyTooLong:          KeyKeyTooLong,
	model.MsgServiceNameRequired: KeyServiceNameRequired,
	model.MsgSongsRequired:       KeySongsRequired,
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when
// it is translated and English otherwise.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
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

// ValidationText translates a model validation message
func (l *Localization) ValidationText(msg string) string {
	if key, ok := validationTextKeys[msg]; ok {
		return l.GetText(key)
	}
	return msg
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

func systemLanguage() string {
	code := strings.ToLower(lang.SystemLocale().LanguageString())
	if idx := strings.IndexAny(code, "-_"); idx > 0 {
		code = code[:idx]
	}
	return code
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Setlist",
		KeyTabSongs:            "Songs",
		KeyTabSchedules:        "Schedules",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyLanguage:            "Language",
		KeySearchDebounce:      "Search delay (ms)",
		KeyRefreshDelay:        "Refresh delay (ms)",
		KeyDefaultKey:          "Default key for imports",
		KeyStorageBackend:      "Storage",
		KeyRestartRequired:     "Storage changes apply after restart",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyAdd:                 "Add",
		KeyEdit:                "Edit",
		KeyDelete:              "Delete",
		KeyRefresh:             "Refresh",
		KeyCopy:                "Copy",
		KeyCopied:              "Copied",
		KeyReset:               "Reset",
		KeySearch:              "Search by title or artist",
		KeyTitle:               "Title",
		KeyArtist:              "Artist",
		KeyKey:                 "Key",
		KeyServiceName:         "Service name",
		KeySongs:               "Songs",
		KeyNewSong:             "New song",
		KeyEditSong:            "Edit song",
		KeyNewSchedule:         "New schedule",
		KeyEditSchedule:        "Edit schedule",
		KeyNoSongs:             "No Songs yet!",
		KeyNoSchedules:         "No schedules yet",
		KeyNoMatches:           "Nothing found",
		KeyConfirmTitle:        "Confirm",
		KeyAreYouSure:          "Are you sure?",
		KeyConfirmDeleteSong:   "Delete this song?",
		KeyConfirmDeleteSched:  "Delete this schedule?",
		KeySelectedCount:       "Selected: %d",
		KeyImportPlaylist:      "Import playlist",
		KeyPlaylistURL:         "YouTube playlist URL (...?list=...)",
		KeyImport:              "Import",
		KeyImportStarted:       "Importing playlist...",
		KeyImportFinished:      "Imported %d songs, skipped %d",
		KeyImportFailed:        "Import failed",
		KeyErrorLoading:        "Error loading data",
		KeyErrorSaving:         "Error saving data",
		KeyTitleRequired:       "Title is required",
		KeyArtistRequired:      "Artist is required",
		KeyKeyRequired:         "Key is required",
		KeyKeyTooLong:          "Key must be at most 2 characters",
		KeyServiceNameRequired: "Service name is required",
		KeySongsRequired:       "Select at least 1 song",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Сетлист",
		KeyTabSongs:            "Песни",
		KeyTabSchedules:        "Расписания",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyLanguage:            "Язык",
		KeySearchDebounce:      "Задержка поиска (мс)",
		KeyRefreshDelay:        "Задержка обновления (мс)",
		KeyDefaultKey:          "Тональность при импорте",
		KeyStorageBackend:      "Хранилище",
		KeyRestartRequired:     "Смена хранилища применится после перезапуска",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyAdd:                 "Добавить",
		KeyEdit:                "Изменить",
		KeyDelete:              "Удалить",
		KeyRefresh:             "Обновить",
		KeyCopy:                "Копировать",
		KeyCopied:              "Скопировано",
		KeyReset:               "Сбросить",
		KeySearch:              "Поиск по названию или исполнителю",
		KeyTitle:               "Название",
		KeyArtist:              "Исполнитель",
		KeyKey:                 "Тональность",
		KeyServiceName:         "Название служения",
		KeySongs:               "Песни",
		KeyNewSong:             "Новая песня",
		KeyEditSong:            "Изменить песню",
		KeyNewSchedule:         "Новое расписание",
		KeyEditSchedule:        "Изменить расписание",
		KeyNoSongs:             "Песен пока нет!",
		KeyNoSchedules:         "Расписаний пока нет",
		KeyNoMatches:           "Ничего не найдено",
		KeyConfirmTitle:        "Подтверждение",
		KeyAreYouSure:          "Вы уверены?",
		KeyConfirmDeleteSong:   "Удалить эту песню?",
		KeyConfirmDeleteSched:  "Удалить это расписание?",
		KeySelectedCount:       "Выбрано: %d",
		KeyImportPlaylist:      "Импорт плейлиста",
		KeyPlaylistURL:         "URL плейлиста YouTube (...?list=...)",
		KeyImport:              "Импорт",
		KeyImportStarted:       "Импорт плейлиста...",
		KeyImportFinished:      "Импортировано песен: %d, пропущено: %d",
		KeyImportFailed:        "Ошибка импорта",
		KeyErrorLoading:        "Ошибка загрузки данных",
		KeyErrorSaving:         "Ошибка сохранения данных",
		KeyTitleRequired:       "Укажите название",
		KeyArtistRequired:      "Укажите исполнителя",
		KeyKeyRequired:         "Укажите тональность",
		KeyKeyTooLong:          "Тональность не длиннее 2 символов",
		KeyServiceNameRequired: "Укажите название служения",
		KeySongsRequired:       "Выберите хотя бы 1 песню",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Setlist",
		KeyTabSongs:            "Músicas",
		KeyTabSchedules:        "Escalas",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyLanguage:            "Idioma",
		KeySearchDebounce:      "Atraso da busca (ms)",
		KeyRefreshDelay:        "Atraso da atualização (ms)",
		KeyDefaultKey:          "Tom padrão na importação",
		KeyStorageBackend:      "Armazenamento",
		KeyRestartRequired:     "A troca de armazenamento vale após reiniciar",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyAdd:                 "Adicionar",
		KeyEdit:                "Editar",
		KeyDelete:              "Excluir",
		KeyRefresh:             "Atualizar",
		KeyCopy:                "Copiar",
		KeyCopied:              "Copiado",
		KeyReset:               "Limpar",
		KeySearch:              "Buscar por título ou artista",
		KeyTitle:               "Título",
		KeyArtist:              "Artista",
		KeyKey:                 "Tom",
		KeyServiceName:         "Nome do culto",
		KeySongs:               "Músicas",
		KeyNewSong:             "Nova música",
		KeyEditSong:            "Editar música",
		KeyNewSchedule:         "Nova escala",
		KeyEditSchedule:        "Editar escala",
		KeyNoSongs:             "Nenhuma música ainda!",
		KeyNoSchedules:         "Nenhuma escala ainda",
		KeyNoMatches:           "Nada encontrado",
		KeyConfirmTitle:        "Confirmar",
		KeyAreYouSure:          "Tem certeza?",
		KeyConfirmDeleteSong:   "Excluir esta música?",
		KeyConfirmDeleteSched:  "Excluir esta escala?",
		KeySelectedCount:       "Selecionadas: %d",
		KeyImportPlaylist:      "Importar playlist",
		KeyPlaylistURL:         "URL da playlist do YouTube (...?list=...)",
		KeyImport:              "Importar",
		KeyImportStarted:       "Importando playlist...",
		KeyImportFinished:      "%d músicas importadas, %d ignoradas",
		KeyImportFailed:        "Falha na importação",
		KeyErrorLoading:        "Erro ao carregar dados",
		KeyErrorSaving:         "Erro ao salvar dados",
		KeyTitleRequired:       "Título é obrigatório",
		KeyArtistRequired:      "Artista é obrigatório",
		KeyKeyRequired:         "Tom é obrigatório",
		KeyKeyTooLong:          "O tom deve ter no máximo 2 caracteres",
		KeyServiceNameRequired: "Nome do culto é obrigatório",
		KeySongsRequired:       "Selecione pelo menos 1 música",
	}
}

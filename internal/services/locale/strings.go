package locale

import "github.com/riordanpawley/taskmaster/internal/domain"

// Key names a translatable interface string
type Key string

const (
	KeyNewTask        Key = "modal.newTask"
	KeyEditTask       Key = "modal.editTask"
	KeyWhat           Key = "form.what"
	KeyWhy            Key = "form.why"
	KeyWho            Key = "form.who"
	KeyWhen           Key = "form.when"
	KeyPriority       Key = "form.priority"
	KeyBoardTitle     Key = "board.title"
	KeyBoardSubtitle  Key = "board.subtitle"
	KeyNewBoard       Key = "board.new"
	KeyDeleteBoard    Key = "board.delete"
	KeyConfirmDelete  Key = "board.confirmDelete"
	KeyToastDeleted   Key = "toast.deleted"
	KeyToastCompleted Key = "toast.completed"
	KeyToastUndo      Key = "toast.undo"
	KeySeconds        Key = "toast.seconds"
	KeyFallbackTask   Key = "fallback.task"
	KeyEmptyGroup     Key = "group.empty"
	KeyNotes          Key = "board.notes"
	KeyStatus         Key = "form.status"
	KeySave           Key = "form.save"
	KeyCancel         Key = "form.cancel"
	KeyYes            Key = "confirm.yes"
	KeyNo             Key = "confirm.no"
	KeyRequired       Key = "form.required"
	KeyInvalidDate    Key = "form.invalidDate"
	KeyInvalidNumber  Key = "form.invalidNumber"
	KeyBoardSettings  Key = "board.settings"
	KeyGroupSettings  Key = "group.settings"
	KeyWipLimit       Key = "group.wipLimit"
	KeyNoLimit        Key = "group.noLimit"
	KeyRetention      Key = "group.retention"
	KeyHidden         Key = "group.hidden"
	KeyFullWidth      Key = "group.fullWidth"
	KeySettings       Key = "settings.heading"
	KeyLanguage       Key = "settings.language"
	KeyDefaultPrio    Key = "settings.defaultPriority"
	KeyCardView       Key = "settings.cardView"
	KeyCardLayout     Key = "settings.cardLayout"
	KeyHelp           Key = "help.heading"
	KeySaveFailed     Key = "toast.saveFailed"
	KeyCleaned        Key = "toast.cleaned"
	KeySearch         Key = "search.placeholder"
)

var en = map[Key]string{
	KeyNewTask:        "New Task",
	KeyEditTask:       "Edit Task",
	KeyWhat:           "What needs to be done *",
	KeyWhy:            "Why",
	KeyWho:            "Who",
	KeyWhen:           "When (YYYY-MM-DD)",
	KeyPriority:       "Priority",
	KeyBoardTitle:     "Title",
	KeyBoardSubtitle:  "Description",
	KeyNewBoard:       "Create board",
	KeyDeleteBoard:    "Delete board",
	KeyConfirmDelete:  "Delete this board and all of its tasks?",
	KeyToastDeleted:   "Deleted:",
	KeyToastCompleted: "Completed:",
	KeyToastUndo:      "u to undo",
	KeySeconds:        "s",
	KeyFallbackTask:   "Task",
	KeyEmptyGroup:     "No tasks",
	KeyNotes:          "Notes",
	KeyStatus:         "Status",
	KeySave:           "Save",
	KeyCancel:         "Cancel",
	KeyYes:            "Yes",
	KeyNo:             "No",
	KeyRequired:       "This field is required",
	KeyInvalidDate:    "Use the YYYY-MM-DD format",
	KeyInvalidNumber:  "Enter a whole number of zero or more",
	KeyBoardSettings:  "Board Settings",
	KeyGroupSettings:  "Group settings",
	KeyWipLimit:       "WIP limit",
	KeyNoLimit:        "No limit",
	KeyRetention:      "Keep completed (days)",
	KeyHidden:         "Hidden",
	KeyFullWidth:      "Full width",
	KeySettings:       "Settings",
	KeyLanguage:       "Language",
	KeyDefaultPrio:    "Default priority",
	KeyCardView:       "Card view",
	KeyCardLayout:     "Card layout",
	KeyHelp:           "Keys",
	KeySaveFailed:     "Could not save:",
	KeyCleaned:        "Removed old completed tasks:",
	KeySearch:         "find task...",
}

var ru = map[Key]string{
	KeyNewTask:        "Новая задача",
	KeyEditTask:       "Редактирование задачи",
	KeyWhat:           "Что нужно сделать *",
	KeyWhy:            "Зачем",
	KeyWho:            "Кто",
	KeyWhen:           "Когда (ГГГГ-ММ-ДД)",
	KeyPriority:       "Приоритет",
	KeyBoardTitle:     "Название",
	KeyBoardSubtitle:  "Описание",
	KeyNewBoard:       "Создать доску",
	KeyDeleteBoard:    "Удалить доску",
	KeyConfirmDelete:  "Удалить эту доску и все её задачи?",
	KeyToastDeleted:   "Удалено:",
	KeyToastCompleted: "Выполнено:",
	KeyToastUndo:      "u, чтобы отменить",
	KeySeconds:        "с",
	KeyFallbackTask:   "Задача",
	KeyEmptyGroup:     "Нет задач",
	KeyNotes:          "Заметки",
	KeyStatus:         "Статус",
	KeySave:           "Сохранить",
	KeyCancel:         "Отмена",
	KeyYes:            "Да",
	KeyNo:             "Нет",
	KeyRequired:       "Обязательное поле",
	KeyInvalidDate:    "Используйте формат ГГГГ-ММ-ДД",
	KeyInvalidNumber:  "Введите целое число не меньше нуля",
	KeyBoardSettings:  "Настройки доски",
	KeyGroupSettings:  "Настройки группы",
	KeyWipLimit:       "WIP-лимит",
	KeyNoLimit:        "Без лимита",
	KeyRetention:      "Хранить выполненные (дней)",
	KeyHidden:         "Скрыта",
	KeyFullWidth:      "Во всю ширину",
	KeySettings:       "Настройки",
	KeyLanguage:       "Язык",
	KeyDefaultPrio:    "Приоритет по умолчанию",
	KeyCardView:       "Вид карточек",
	KeyCardLayout:     "Раскладка карточек",
	KeyHelp:           "Клавиши",
	KeySaveFailed:     "Не удалось сохранить:",
	KeyCleaned:        "Удалены старые выполненные задачи:",
	KeySearch:         "найти задачу...",
}

var groupLabels = map[domain.Language]map[domain.GroupID]string{
	domain.LanguageEN: {
		domain.GroupBacklog:       "Backlog",
		domain.GroupFocus:         "Focus",
		domain.GroupInProgress:    "In Progress",
		domain.GroupOrgIntentions: "Org Intentions",
		domain.GroupDelegated:     "Delegated",
		domain.GroupCompleted:     "Completed",
	},
	domain.LanguageRU: {
		domain.GroupBacklog:       "Бэклог",
		domain.GroupFocus:         "Фокус",
		domain.GroupInProgress:    "В работе",
		domain.GroupOrgIntentions: "Намерения",
		domain.GroupDelegated:     "Делегировано",
		domain.GroupCompleted:     "Выполнено",
	},
}

var priorityLabels = map[domain.Language]map[domain.Priority]string{
	domain.LanguageEN: {
		domain.PriorityLow:    "Low",
		domain.PriorityMedium: "Medium",
		domain.PriorityHigh:   "High",
	},
	domain.LanguageRU: {
		domain.PriorityLow:    "Низкий",
		domain.PriorityMedium: "Средний",
		domain.PriorityHigh:   "Высокий",
	},
}

var statusLabels = map[domain.Language]map[domain.Status]string{
	domain.LanguageEN: {
		domain.StatusNew:        "New",
		domain.StatusInProgress: "In Progress",
		domain.StatusWaiting:    "Waiting",
		domain.StatusCompleted:  "Completed",
	},
	domain.LanguageRU: {
		domain.StatusNew:        "Новая",
		domain.StatusInProgress: "В работе",
		domain.StatusWaiting:    "Ожидание",
		domain.StatusCompleted:  "Выполнена",
	},
}

// Translator returns interface strings in one language
type Translator struct {
	lang domain.Language
}

// NewTranslator creates a translator for a concrete language. Anything but Russian is English.
func NewTranslator(lang domain.Language) Translator {
	if lang != domain.LanguageRU {
		lang = domain.LanguageEN
	}
	return Translator{lang: lang}
}

// Language returns the translator's language
func (t Translator) Language() domain.Language {
	return t.lang
}

// T returns the string for key, or the key itself when it has no translation
func (t Translator) T(key Key) string {
	dict := en
	if t.lang == domain.LanguageRU {
		dict = ru
	}
	if s, ok := dict[key]; ok {
		return s
	}
	return string(key)
}

// Group returns the label of a group
func (t Translator) Group(id domain.GroupID) string {
	if label, ok := groupLabels[t.lang][id]; ok {
		return label
	}
	return string(id)
}

// Priority returns the label of a priority
func (t Translator) Priority(p domain.Priority) string {
	if label, ok := priorityLabels[t.lang][p]; ok {
		return label
	}
	return string(p)
}

// Status returns the label of a status
func (t Translator) Status(st domain.Status) string {
	if label, ok := statusLabels[t.lang][st]; ok {
		return label
	}
	return string(st)
}

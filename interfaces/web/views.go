package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"sync"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutName = "layout"

var pages = []string{"login", "index", "tasks", "contacts", "warehouse", "catalog", "calendar"}

var labels = map[string]string{
	"low":         "Низкий",
	"medium":      "Средний",
	"high":        "Высокий",
	"urgent":      "Срочный",
	"pending":     "Ожидает",
	"in_progress": "В работе",
	"completed":   "Выполнено",
	"cancelled":   "Отменено",
	"scheduled":   "Запланировано",
	"meeting":     "Встреча",
	"call":        "Звонок",
	"task":        "Задача",
	"reminder":    "Напоминание",
	"client":      "Клиент",
	"partner":     "Партнёр",
	"supplier":    "Поставщик",
	"employee":    "Сотрудник",
	"other":       "Другое",
	"in_stock":    "В наличии",
	"sold":        "Продан",
	"in_service":  "В сервисе",
}

var funcs = template.FuncMap{
	"label": func(s string) string {
		if l, ok := labels[s]; ok {
			return l
		}
		return s
	},
	// hhmm cuts "YYYY-MM-DDTHH:MM:SS" down to the time of day
	"hhmm": func(s string) string {
		if i := strings.IndexByte(s, 'T'); i >= 0 && len(s) >= i+6 {
			return s[i+1 : i+6]
		}
		return s
	},
	"money": func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', 0, 64)
	},
}

// Views renders the embedded page templates inside the shared layout.
// It satisfies fiber.Views.
type Views struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

func NewViews() *Views {
	return &Views{}
}

func (v *Views) Load() error {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(templatesFS,
			"templates/"+layoutName+".html",
			"templates/"+page+".html",
		)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = t
	}

	v.mu.Lock()
	v.templates = templates
	v.mu.Unlock()
	return nil
}

// Render executes the page inside the layout; explicit layout names are ignored
func (v *Views) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	v.mu.RLock()
	t, ok := v.templates[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	return t.ExecuteTemplate(w, layoutName, data)
}

package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/DragonKeeper_Go/internal/auth"
	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// PageData is passed to every template
type PageData struct {
	Title    string
	Flash    string
	Notice   string
	LoggedIn bool
	Data     any
}

// Renderer executes the embedded page templates inside the shared layout
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"title":     displayName,
	"countdown": countdown,
	"qty":       quantity,
}

// quantity reads an item count by name from an item-keyed map
func quantity(counts map[domain.ItemType]int, item string) int {
	return counts[domain.ItemType(item)]
}

// displayName turns identifiers like "mushroom-forest" into "Mushroom Forest"
func displayName(v any) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(fmt.Sprint(v))
	return cases.Title(language.English).String(s)
}

// capitalize upper-cases the first letter of a sentence and leaves the rest as written.
// Casers hold state, so each call builds its own.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.English).String(s[:size]) + s[size:]
}

// countdown formats a remaining duration as H:MM:SS or M:SS
func countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// NewRenderer parses every page template against the layout
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(f, "templates/"), ".html")
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Page renders a page with the given status
func (rd *Renderer) Page(w http.ResponseWriter, r *http.Request, status int, page, title, notice string, data any) {
	log := logger.FromContext(r.Context())

	t, ok := rd.pages[page]
	if !ok {
		log.Error("Unknown template", "page", page)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	_, loggedIn := auth.UserIDFromContext(r.Context())
	pd := PageData{
		Title:    title,
		Flash:    auth.PopFlash(w, r),
		Notice:   notice,
		LoggedIn: loggedIn,
		Data:     data,
	}

	// Render to a buffer first so a template error can still produce a 500
	buf := getBuffer()
	defer putBuffer(buf)
	if err := t.ExecuteTemplate(buf, "layout", pd); err != nil {
		log.Error("Failed to render template", "page", page, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error("Failed to write response buffer", "error", err)
	}
}

// Redirect stores a flash message and redirects with 303
func (rd *Renderer) Redirect(w http.ResponseWriter, r *http.Request, to, flash string) {
	if flash != "" {
		auth.SetFlash(w, flash)
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// Fail surfaces a service error that the page cannot show inline
func (rd *Renderer) Fail(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	kind, msg := classifyError(err)

	switch kind {
	case kindCredentials:
		rd.Redirect(w, r, "/login", msg)
	case kindToken:
		rd.Redirect(w, r, "/unconfirmed", msg)
	case kindNotFound:
		log.Warn("Not found", "path", r.URL.Path, "error", err)
		rd.Page(w, r, http.StatusNotFound, "error", "Not found", msg, nil)
	case kindNotice:
		// Pages normally re-render with the notice themselves
		rd.Page(w, r, http.StatusOK, "error", "Oops", msg, nil)
	default:
		log.Error("Request failed", "path", r.URL.Path, "error", err)
		rd.Page(w, r, http.StatusInternalServerError, "error", "Error", msg, nil)
	}
}

// NotFound renders the 404 page
func (rd *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rd.Page(w, r, http.StatusNotFound, "error", "Not found", ErrMsgNotFound, nil)
}

// currentUserID returns the session user. Routes behind auth.RequireLogin always have one.
func currentUserID(r *http.Request) string {
	id, _ := auth.UserIDFromContext(r.Context())
	return id
}

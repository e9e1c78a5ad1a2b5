package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/yuin/goldmark"

	"github.com/quickjot/quickjot/internal/server/notes"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer owns the embedded page templates and the markdown converter for
// note bodies. Note HTML is inserted pre-rendered; everything else goes
// through the usual auto-escaping.
type Renderer struct {
	tpl *template.Template
	md  goldmark.Markdown
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl, md: goldmark.New()}, nil
}

type loginPage struct {
	Failed bool
}

type noticePage struct {
	Message  string
	Redirect bool
}

type notePage struct {
	ID      string
	Body    template.HTML
	Created string
}

type appPage struct {
	Username string
	Count    int
	Notes    []notePage
}

// Login renders the entry form for establishing a session.
func (rd *Renderer) Login(w http.ResponseWriter, status int, failed bool) {
	rd.render(w, status, "login.html", loginPage{Failed: failed})
}

// Notice renders a short message page. redirect adds a link (and meta
// refresh) back to the entry point.
func (rd *Renderer) Notice(w http.ResponseWriter, status int, message string, redirect bool) {
	rd.render(w, status, "notice.html", noticePage{Message: message, Redirect: redirect})
}

// App renders the authenticated notes view for username.
func (rd *Renderer) App(w http.ResponseWriter, username string, list []notes.Note) {
	page := appPage{Username: username, Count: len(list)}
	for _, n := range list {
		page.Notes = append(page.Notes, notePage{
			ID:      n.ID.String(),
			Body:    rd.markdown(n.Body),
			Created: n.CreatedAt.Format(time.DateTime),
		})
	}
	rd.render(w, http.StatusOK, "app.html", page)
}

// markdown converts a note body to HTML. On conversion failure the body is
// shown as escaped plain text instead of failing the whole page.
func (rd *Renderer) markdown(body string) template.HTML {
	var buf bytes.Buffer
	if err := rd.md.Convert([]byte(body), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(body) + "</p>")
	}
	return template.HTML(buf.String())
}

func (rd *Renderer) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := rd.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

package handler

import (
	"html/template"
	"net/http"
	"net/url"
)

const nameCookie = "uraita_name"

// parseErrorFromQuery reads the error message, if any, carried over a
// redirect. The value is escaped before it reaches a template.
func parseErrorFromQuery(r *http.Request) template.HTML {
	msg := r.URL.Query().Get("error")
	if msg == "" {
		return ""
	}
	return template.HTML(template.HTMLEscapeString(msg))
}

func redirectWithError(w http.ResponseWriter, r *http.Request, targetURL, errMsg string) {
	u, err := url.Parse(targetURL)
	if err != nil {
		http.Redirect(w, r, targetURL, http.StatusSeeOther)
		return
	}
	q := u.Query()
	q.Set("error", errMsg)
	u.RawQuery = q.Encode()
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// readName returns the poster name remembered from earlier submissions.
// Cookie values are percent-encoded since names may contain non-ASCII runes.
func readName(r *http.Request) string {
	cookie, err := r.Cookie(nameCookie)
	if err != nil {
		return ""
	}
	name, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return name
}

func saveName(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     nameCookie,
		Value:    url.QueryEscape(name),
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

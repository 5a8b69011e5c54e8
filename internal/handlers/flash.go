package handlers

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "drmind_flash"

// Flash is a one-shot status banner carried across the redirect after a
// form submission. Kind is "success" or "error".
type Flash struct {
	Kind    string
	Message string
}

func setFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash reads and clears the pending flash, if any.
func popFlash(w http.ResponseWriter, r *http.Request) Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return Flash{}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return Flash{}
	}

	kind, message, found := strings.Cut(raw, "|")
	if !found {
		return Flash{}
	}
	return Flash{Kind: kind, Message: message}
}

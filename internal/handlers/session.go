package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/lojf/ecaplanner/internal/models"
	svc "github.com/lojf/ecaplanner/internal/services"
)

const guardianPhoneCookie = "guardian_phone"
const guardianNameCookie = "guardian_name"

const sessionTTL = 30 * 24 * time.Hour

type ctxKey int

const guardianKey ctxKey = iota

func setGuardianCookies(w http.ResponseWriter, phone, name string) {
	phone = svc.NormPhone(phone)
	name = strings.TrimSpace(name)
	if phone != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     guardianPhoneCookie,
			Value:    phone,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(sessionTTL),
		})
	}
	if name != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     guardianNameCookie,
			Value:    name,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(sessionTTL),
		})
	}
}

func clearGuardianCookies(w http.ResponseWriter) {
	for _, name := range []string{guardianPhoneCookie, guardianNameCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:    name,
			Value:   "",
			Path:    "/",
			Expires: time.Unix(0, 0),
			MaxAge:  -1,
		})
	}
}

func readGuardianPhone(r *http.Request) string {
	if c, err := r.Cookie(guardianPhoneCookie); err == nil {
		return c.Value
	}
	return ""
}

type guardianView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// POST /session {phone, name}
func SessionLogin(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in svc.GuardianInput
		if err := decodeJSON(r, &in); err != nil {
			badRequest(w, err.Error())
			return
		}
		g, err := env.Svc.Guardians.Upsert(r.Context(), in)
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		setGuardianCookies(w, g.Phone, g.Name)
		writeJSON(w, http.StatusOK, guardianView{ID: g.ID, Name: g.Name, Phone: g.Phone})
	}
}

// POST /session/logout
func SessionLogout(w http.ResponseWriter, r *http.Request) {
	clearGuardianCookies(w)
	w.WriteHeader(http.StatusNoContent)
}

// RequireGuardian resolves the session cookie to a guardian and stores it in
// the request context. Requests without a known guardian get a 401.
func RequireGuardian(env *Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			g, err := env.Svc.Guardians.ByPhone(r.Context(), readGuardianPhone(r))
			if err != nil {
				writeError(env, w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), guardianKey, g)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// guardianID returns the guardian stored by RequireGuardian, or 0.
func guardianID(r *http.Request) uint {
	if g, ok := r.Context().Value(guardianKey).(*models.Guardian); ok {
		return g.ID
	}
	return 0
}

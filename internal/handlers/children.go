package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lojf/ecaplanner/internal/models"
	svc "github.com/lojf/ecaplanner/internal/services"
)

type childView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Gender       string    `json:"gender"`
	Year         string    `json:"year"`
	Campus       string    `json:"campus"`
	HasEal       bool      `json:"hasEal"`
	ShowBoosters bool      `json:"showBoosters"`
	ShowVapp     bool      `json:"showVapp"`
	ShowAen      bool      `json:"showAen"`
	Selection    []string  `json:"selection"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toChildView(c *models.Child) childView {
	return childView{
		ID:           c.ID,
		Name:         c.Name,
		Gender:       c.Gender,
		Year:         c.Year,
		Campus:       c.Campus,
		HasEal:       c.HasEal,
		ShowBoosters: c.ShowBoosters,
		ShowVapp:     c.ShowVapp,
		ShowAen:      c.ShowAen,
		Selection:    c.SelectedIDs(),
		CreatedAt:    c.CreatedAt,
	}
}

// GET /children
func ListChildren(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kids, err := env.Svc.Children.List(r.Context(), guardianID(r))
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		out := make([]childView, 0, len(kids))
		for i := range kids {
			out = append(out, toChildView(&kids[i]))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// POST /children
func CreateChild(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in svc.ChildInput
		if err := decodeJSON(r, &in); err != nil {
			badRequest(w, err.Error())
			return
		}
		c, err := env.Svc.Children.Create(r.Context(), guardianID(r), in)
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		w.Header().Set("Location", "/children/"+c.ID)
		writeJSON(w, http.StatusCreated, toChildView(c))
	}
}

// GET /children/{id}
func GetChild(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := env.Svc.Children.Get(r.Context(), guardianID(r), chi.URLParam(r, "id"))
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toChildView(c))
	}
}

// PUT /children/{id}
func UpdateChild(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in svc.ChildInput
		if err := decodeJSON(r, &in); err != nil {
			badRequest(w, err.Error())
			return
		}
		c, err := env.Svc.Children.Update(r.Context(), guardianID(r), chi.URLParam(r, "id"), in)
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toChildView(c))
	}
}

// DELETE /children/{id}
func DeleteChild(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := env.Svc.Children.Delete(r.Context(), guardianID(r), chi.URLParam(r, "id")); err != nil {
			writeError(env, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/eca"
)

type campusView struct {
	Key        catalog.Campus `json:"key"`
	Name       string         `json:"name"`
	Loaded     bool           `json:"loaded"`
	Activities int            `json:"activities"`
}

type catalogActivity struct {
	catalog.Activity
	Tags          eca.Tags `json:"tags"`
	CategoryLabel string   `json:"categoryLabel"`
}

// GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /campuses
func ListCampuses(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loaded := map[catalog.Campus]bool{}
		for _, c := range env.Svc.Catalogs.Loaded() {
			loaded[c] = true
		}
		out := make([]campusView, 0, len(catalog.Campuses))
		for _, c := range catalog.Campuses {
			out = append(out, campusView{
				Key:        c,
				Name:       c.DisplayName(),
				Loaded:     loaded[c],
				Activities: env.Svc.Catalogs.For(c).Len(),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /campuses/{campus}/activities
func CampusActivities(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "campus")))
		if !catalog.ValidCampus(key) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "campus not found"})
			return
		}
		cat := env.Svc.Catalogs.For(catalog.Campus(key))
		acts := cat.Activities()
		out := make([]catalogActivity, 0, len(acts))
		for _, a := range acts {
			tags := eca.Classify(a)
			out = append(out, catalogActivity{
				Activity:      a,
				Tags:          tags,
				CategoryLabel: cat.CategoryLabel(string(tags.Category)),
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"campus":     key,
			"meta":       cat.Meta(),
			"activities": out,
		})
	}
}

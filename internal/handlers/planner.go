package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lojf/ecaplanner/internal/eca"
)

// GET /children/{id}/board?slot=after-school
func ChildBoard(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot := eca.ParseSlot(r.URL.Query().Get("slot"))
		days, err := env.Svc.Planner.Board(r.Context(), guardianID(r), chi.URLParam(r, "id"), slot)
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		if days == nil {
			days = []eca.BoardDay{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"slot": slot, "days": days})
	}
}

// GET /children/{id}/cost
func ChildCost(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cost, err := env.Svc.Planner.Cost(r.Context(), guardianID(r), chi.URLParam(r, "id"))
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, cost)
	}
}

// GET /children/{id}/summary
func ChildSummary(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := env.Svc.Planner.Summary(r.Context(), guardianID(r), chi.URLParam(r, "id"))
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		if sum.Days == nil {
			sum.Days = []eca.ScheduledDay{}
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

// POST /children/{id}/selections/{activityID}/toggle
func ToggleSelection(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := env.Svc.Selections.Toggle(r.Context(), guardianID(r),
			chi.URLParam(r, "id"), chi.URLParam(r, "activityID"))
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// DELETE /children/{id}/selections
func ResetSelection(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := env.Svc.Selections.Reset(r.Context(), guardianID(r), chi.URLParam(r, "id")); err != nil {
			writeError(env, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /summary
func FamilySummary(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fam, err := env.Svc.Planner.Family(r.Context(), guardianID(r))
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, fam)
	}
}

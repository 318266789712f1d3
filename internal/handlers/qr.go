package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
)

// GET /children/{id}/qr.png
//
// Encodes the child's summary URL so a scan opens the plan directly.
func ChildQR(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		// ensure the child exists and belongs to the guardian
		if _, err := env.Svc.Children.Get(r.Context(), guardianID(r), id); err != nil {
			writeError(env, w, r, err)
			return
		}

		png, err := qrcode.Encode(summaryURL(env, r, id), qrcode.Medium, 256)
		if err != nil {
			writeError(env, w, r, err)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}

func summaryURL(env *Env, r *http.Request, childID string) string {
	base := env.PublicBaseURL
	if base == "" {
		base = "http://" + r.Host
	}
	return base + "/children/" + childID + "/summary"
}

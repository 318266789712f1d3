package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// GET /summary.csv
//
// One row per scheduled pick of every child with a selection, followed by
// a total row per child.
func FamilySummaryCSV(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fam, err := env.Svc.Planner.Family(r.Context(), guardianID(r))
		if err != nil {
			writeError(env, w, r, err)
			return
		}

		filename := fmt.Sprintf("eca-plan-%s.csv", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)

		cw := csv.NewWriter(w)
		defer cw.Flush()

		_ = cw.Write([]string{"Child", "Day", "Start", "End", "Activity ID", "Activity", "Location", "Fee"})
		for _, child := range fam.Children {
			for _, day := range child.Days {
				for _, a := range day.Activities {
					fee := "free"
					if !a.IsFree {
						fee = strconv.Itoa(a.Fee)
					}
					_ = cw.Write([]string{
						child.Name, day.Day, a.Schedule.Time.Start, a.Schedule.Time.End,
						a.ID, a.Name, a.Location, fee,
					})
				}
			}
			_ = cw.Write([]string{child.Name, "", "", "", "", "Total", "", strconv.Itoa(child.Cost.TotalCost)})
		}
	}
}

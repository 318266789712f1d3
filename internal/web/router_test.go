package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/db"
	"github.com/lojf/ecaplanner/internal/eca"
	"github.com/lojf/ecaplanner/internal/handlers"
	"github.com/lojf/ecaplanner/internal/logger"
	"github.com/lojf/ecaplanner/internal/services"
)

func intPtr(n int) *int { return &n }

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	y16 := catalog.YearGroups{Min: intPtr(1), Max: intPtr(6)}
	mon := catalog.Schedule{Days: []string{"Monday"}, Time: catalog.TimeRange{Start: "15:30", End: "16:20"}}
	monThu := catalog.Schedule{Days: []string{"Monday", "Thursday"}, Time: mon.Time}
	chaofa := catalog.New(catalog.Meta{Source: "test"}, []catalog.Activity{
		{ID: "ART1", Name: "Art Club", IsFree: true, YearGroups: y16, Schedule: mon},
		{ID: "PEAL1", Name: "EAL Primary", IsFree: true, YearGroups: y16, Schedule: monThu},
	})
	reg := catalog.NewRegistry(map[catalog.Campus]*catalog.Catalog{catalog.Chaofa: chaofa})

	log := logger.Nop()
	env := &handlers.Env{
		Svc:           services.New(gdb, reg, eca.DefaultPricing, log),
		Log:           log,
		PublicBaseURL: "https://eca.example.com",
	}
	return Router(env)
}

type client struct {
	t       *testing.T
	h       http.Handler
	cookies []*http.Cookie
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	return rec
}

func (c *client) login(phone string) {
	c.t.Helper()
	rec := c.do(http.MethodPost, "/session", map[string]string{"phone": phone, "name": "Guardian"})
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
	c.cookies = rec.Result().Cookies()
	require.NotEmpty(c.t, c.cookies)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestRouterHealthz(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_RequiresSession(t *testing.T) {
	c := &client{t: t, h: testRouter(t)}
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/children", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/summary", nil).Code)

	rec := c.do(http.MethodPost, "/session", map[string]string{"phone": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Campuses(t *testing.T) {
	c := &client{t: t, h: testRouter(t)}

	rec := c.do(http.MethodGet, "/campuses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var campuses []struct {
		Key        string `json:"key"`
		Loaded     bool   `json:"loaded"`
		Activities int    `json:"activities"`
	}
	decode(t, rec, &campuses)
	require.Len(t, campuses, 2)
	assert.Equal(t, "chaofa", campuses[0].Key)
	assert.True(t, campuses[0].Loaded)
	assert.Equal(t, 2, campuses[0].Activities)
	assert.False(t, campuses[1].Loaded)

	rec = c.do(http.MethodGet, "/campuses/chaofa/activities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var doc struct {
		Activities []struct {
			ID   string `json:"id"`
			Tags struct {
				Category string `json:"category"`
			} `json:"tags"`
		} `json:"activities"`
	}
	decode(t, rec, &doc)
	require.Len(t, doc.Activities, 2)
	assert.Equal(t, "eal", doc.Activities[1].Tags.Category)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/campuses/phuket/activities", nil).Code)
}

func TestRouter_PlannerFlow(t *testing.T) {
	c := &client{t: t, h: testRouter(t)}
	c.login("081-234-5678")

	rec := c.do(http.MethodPost, "/children", map[string]any{"name": "Mali", "year": "3", "hasEal": true})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var child struct {
		ID     string `json:"id"`
		Campus string `json:"campus"`
	}
	decode(t, rec, &child)
	assert.Equal(t, "chaofa", child.Campus)
	base := "/children/" + child.ID

	rec = c.do(http.MethodPost, base+"/selections/PEAL1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = c.do(http.MethodPost, base+"/selections/ART1/toggle", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	var refusal struct {
		Reason string `json:"reason"`
	}
	decode(t, rec, &refusal)
	assert.Equal(t, "blackout", refusal.Reason)

	rec = c.do(http.MethodPost, base+"/selections/NOPE/toggle", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, base+"/cost", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cost eca.Cost
	decode(t, rec, &cost)
	assert.Equal(t, 0, cost.FreeUsed)
	assert.Equal(t, eca.EALFee, cost.TotalCost)

	rec = c.do(http.MethodGet, base+"/board?slot=after-school", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var board struct {
		Slot string         `json:"slot"`
		Days []eca.BoardDay `json:"days"`
	}
	decode(t, rec, &board)
	assert.Equal(t, "after-school", board.Slot)
	require.NotEmpty(t, board.Days)
	assert.True(t, board.Days[0].Blackout)

	rec = c.do(http.MethodGet, "/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fam eca.FamilySummary
	decode(t, rec, &fam)
	assert.Equal(t, 1, fam.ChildrenWithSelections)
	assert.Equal(t, eca.EALFee, fam.TotalCost)

	rec = c.do(http.MethodGet, "/summary.csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Child,Day,Start,End,Activity ID,Activity,Location,Fee\n"+
		"Mali,Monday,15:30,16:20,PEAL1,EAL Primary,,free\n"+
		"Mali,Thursday,15:30,16:20,PEAL1,EAL Primary,,free\n"+
		"Mali,,,,,Total,,25000\n", rec.Body.String())

	rec = c.do(http.MethodGet, base+"/qr.png", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, base+"/selections", nil).Code)
	rec = c.do(http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var after struct {
		Selection []string `json:"selection"`
	}
	decode(t, rec, &after)
	assert.Empty(t, after.Selection)

	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, base, nil).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, base, nil).Code)
}

func TestRouter_ValidationAndOwnership(t *testing.T) {
	h := testRouter(t)
	owner := &client{t: t, h: h}
	owner.login("0812345678")

	rec := owner.do(http.MethodPost, "/children", map[string]any{"name": " ", "year": "99"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var verr struct {
		Fields []services.FieldError `json:"fields"`
	}
	decode(t, rec, &verr)
	assert.Len(t, verr.Fields, 2)

	rec = owner.do(http.MethodPost, "/children", map[string]any{"name": "Kid", "year": "2", "bogus": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown fields rejected")

	rec = owner.do(http.MethodPost, "/children", map[string]any{"name": "Kid", "year": "2"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var child struct {
		ID string `json:"id"`
	}
	decode(t, rec, &child)

	other := &client{t: t, h: h}
	other.login("0898765432")
	assert.Equal(t, http.StatusNotFound, other.do(http.MethodGet, "/children/"+child.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, other.do(http.MethodGet, "/children/"+child.ID+"/qr.png", nil).Code)

	rec = owner.do(http.MethodPost, "/session/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/co2-watch/site/config"
	"github.com/co2-watch/site/dashboard"
	"github.com/co2-watch/site/password"
	"github.com/co2-watch/site/vehicle"
)

const fixtureCSV = `Manuf_name_EU,Fuel_type,Fuel_consumption,Engine_power,Engine_capacity,EWLTP,Mass_running_order
TOYOTA,PETROL,5.0,80,1200,120,1100
TOYOTA,DIESEL,4.5,90,1500,118,1250
BMW AG,PETROL,7.0,150,2000,180,1500
BMW AG,DIESEL,5.5,110,1995,145,1600
VOLKSWAGEN,PETROL,6.0,100,1400,140,1300
VOLKSWAGEN,PETROL,5.2,70,999,125,1150
`

const (
	adminUser     = "admin"
	adminPassword = "correct-horse-42"
)

// openQuery selects PETROL for every manufacturer with thresholds above
// every value: four rows.
var openQuery = url.Values{
	"applied":      {"1"},
	"manufacturer": {"TOYOTA", "BMW AG", "VOLKSWAGEN"},
	"fuel":         {"PETROL"},
	"max_fuel":     {"100"},
	"max_power":    {"1000"},
	"max_capacity": {"5000"},
}

var adminHash = func() string {
	h, err := password.Encode(adminPassword)
	if err != nil {
		panic(err)
	}
	return h
}()

type testEnv struct {
	app  *fiber.App
	fail atomic.Bool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	prevUser, prevHash := config.AdminUser, config.AdminPasswordHash
	config.AdminUser, config.AdminPasswordHash = adminUser, adminHash
	t.Cleanup(func() {
		config.AdminUser, config.AdminPasswordHash = prevUser, prevHash
	})

	env := &testEnv{}
	load := func() (*vehicle.Dataset, error) {
		if env.fail.Load() {
			return nil, errors.New("source unavailable")
		}
		return vehicle.LoadCSV(strings.NewReader(fixtureCSV), "fixture.csv")
	}
	svc, err := dashboard.NewService(load, time.Minute)
	require.NoError(t, err)
	Init(svc, false)

	env.app = fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	Register(env.app)
	return env
}

func (env *testEnv) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (env *testEnv) get(t *testing.T, target string) (*http.Response, string) {
	t.Helper()
	return env.do(t, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestHomeShowsDefaults(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Monitoring of CO2 emissions")
	assert.Contains(t, body, `id="filters"`)
	assert.Contains(t, body, `name="applied"`)

	// Half of each column maximum leaves no PETROL row.
	assert.Contains(t, body, "0 vehicles match the current filters.")
	assert.Contains(t, body, "No data for the current filters.")
}

func TestDashboardPartial(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/dashboard?"+openQuery.Encode())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="dashboard"`)
	assert.Contains(t, body, "4 vehicles match the current filters.")
	assert.Contains(t, body, "<svg")
	assert.NotContains(t, body, "<html")

	assert.True(t, strings.HasPrefix(resp.Header.Get("HX-Push-Url"), "/?"))
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "last_filter=")
}

func TestDashboardClearedManufacturers(t *testing.T) {
	env := newTestEnv(t)

	q := url.Values{"applied": {"1"}, "fuel": {"PETROL"}, "max_fuel": {"100"}}
	_, body := env.get(t, "/dashboard?"+q.Encode())
	assert.Contains(t, body, "0 vehicles match the current filters.")
}

func TestDashboardRejectsBadNumbers(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/dashboard?max_fuel=abc")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Error 400")
}

func TestHomeRestoresLastFilter(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "last_filter", Value: openQuery.Encode()})
	_, body := env.do(t, req)
	assert.Contains(t, body, "4 vehicles match the current filters.")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "last_filter", Value: "max_fuel=abc"})
	resp, body := env.do(t, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "0 vehicles match the current filters.")
}

func TestTablePageClamped(t *testing.T) {
	env := newTestEnv(t)

	q := url.Values{}
	for k, v := range openQuery {
		q[k] = v
	}
	q.Set("page", "99")

	resp, body := env.get(t, "/dashboard/table?"+q.Encode())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="data-table"`)
	assert.Contains(t, body, "Page 1 of 1")
	assert.Equal(t, 5, strings.Count(body, "<tr"), "header plus four rows")

	resp, _ = env.get(t, "/dashboard/table?page=0")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAPIOptions(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/api/options")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var opts dashboard.Options
	require.NoError(t, json.Unmarshal([]byte(body), &opts))
	assert.Equal(t, []string{"BMW AG", "TOYOTA", "VOLKSWAGEN"}, opts.Manufacturers)
	assert.Equal(t, []string{"PETROL", "DIESEL"}, opts.FuelTypes)
	require.Len(t, opts.Sliders, 3)
	assert.Equal(t, 150.0, opts.Sliders[1].Max)
	assert.Equal(t, 75.0, opts.Default.MaxPower)
	assert.Equal(t, []string{"PETROL"}, opts.Default.FuelTypes)
}

func TestAPIView(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/api/view?"+openQuery.Encode())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var v viewResponse
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	assert.Equal(t, 4, v.Count)
	assert.Equal(t, uint64(1), v.DatasetVersion)

	require.Len(t, v.ByManufacturer, 3)
	assert.Equal(t, "BMW AG", v.ByManufacturer[0].Key)
	assert.Equal(t, 180.0, v.ByManufacturer[0].Mean)
	assert.Equal(t, "VOLKSWAGEN", v.ByManufacturer[1].Key)
	assert.Equal(t, 132.5, v.ByManufacturer[1].Mean)

	// The fuel comparison ignores the fuel selection.
	require.Len(t, v.ByFuelType, 2)
	assert.Equal(t, dashboard.GroupMean{Key: "DIESEL", Mean: 131.5, Count: 2}, v.ByFuelType[0])
	assert.Equal(t, dashboard.GroupMean{Key: "PETROL", Mean: 141.3, Count: 4}, v.ByFuelType[1])
}

func TestAPIErrorsAreJSON(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/api/view?max_power=lots")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var e map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &e))
	assert.Contains(t, e["error"], "max_power")
}

func TestChartExport(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name        string
		target      string
		status      int
		contentType string
	}{
		{"svg", "/charts/manufacturer.svg?" + openQuery.Encode(), fiber.StatusOK, "image/svg+xml"},
		{"png scaled", "/charts/power-capacity.png?width=200&" + openQuery.Encode(), fiber.StatusOK, "image/png"},
		{"webp", "/charts/mass-consumption.webp?" + openQuery.Encode(), fiber.StatusOK, "image/webp"},
		{"fuel svg", "/charts/fuel-type.svg?" + openQuery.Encode(), fiber.StatusOK, "image/svg+xml"},
		{"unknown chart", "/charts/pie.svg", fiber.StatusNotFound, ""},
		{"unknown format", "/charts/manufacturer.gif", fiber.StatusNotFound, ""},
		{"no data", "/charts/manufacturer.svg", fiber.StatusNotFound, ""},
		{"bad width", "/charts/manufacturer.png?width=-5&" + openQuery.Encode(), fiber.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := env.get(t, tt.target)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
			}
		})
	}
}

func TestExportCSV(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/export.csv?"+openQuery.Encode())
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "co2-emissions.csv")

	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, vehicle.ColManufacturer, records[0][0])
	for _, r := range records[1:] {
		assert.Equal(t, "PETROL", r[1])
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/health")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var h map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &h))
	assert.Equal(t, "ok", h["status"])
	assert.Equal(t, 6.0, h["rows"])
	assert.Equal(t, "fixture.csv", h["source"])
}

func TestNotFoundPage(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.get(t, "/nope")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Error 404")
}

func adminRequest(method, target, user, pass string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if user != "" {
		req.SetBasicAuth(user, pass)
	}
	return req
}

func TestAdminAuth(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, adminRequest(http.MethodGet, "/admin", "", ""))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.do(t, adminRequest(http.MethodGet, "/admin", adminUser, "wrong-password-1"))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body := env.do(t, adminRequest(http.MethodGet, "/admin", adminUser, adminPassword))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Admin Dashboard")
	assert.Contains(t, body, "fixture.csv")
	assert.Contains(t, body, "Dashboard View Cache")
}

func TestAdminClearCache(t *testing.T) {
	env := newTestEnv(t)

	req := adminRequest(http.MethodPost, "/api/admin/cache/clear", adminUser, adminPassword)
	req.Header.Set("HX-Request", "true")
	resp, body := env.do(t, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "View cache cleared.")
	assert.Contains(t, body, `id="admin-section"`)
}

func TestAdminReload(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, adminRequest(http.MethodPost, "/api/admin/reload", adminUser, adminPassword))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","version":2}`, body)

	env.fail.Store(true)
	resp, body = env.do(t, adminRequest(http.MethodPost, "/api/admin/reload", adminUser, adminPassword))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "source unavailable")

	// The previous dataset is still served.
	_, body = env.get(t, "/health")
	assert.Contains(t, body, `"version":2`)
}

func TestAdminDisabledWithoutCredential(t *testing.T) {
	prev := config.AdminPasswordHash
	config.AdminPasswordHash = ""
	defer func() { config.AdminPasswordHash = prev }()

	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Get("/admin", AdminRequired(), HandleAdmin)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestQueryValuesKeepsRepeatedKeys(t *testing.T) {
	app := fiber.New()
	c := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(c)

	c.Request().SetRequestURI("/dashboard?manufacturer=BMW+AG&manufacturer=TOYOTA&fuel=PETROL")
	q := queryValues(c)
	assert.Equal(t, []string{"BMW AG", "TOYOTA"}, q["manufacturer"])
	assert.Equal(t, "PETROL", q.Get("fuel"))

	assert.False(t, isHTMX(c))
	c.Request().Header.Set("HX-Request", "true")
	assert.True(t, isHTMX(c))
}

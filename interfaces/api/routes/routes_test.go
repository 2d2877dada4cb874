package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"bizmanager/application/serviceimpl"
	"bizmanager/infrastructure/database"
	"bizmanager/interfaces/api/handlers"
	"bizmanager/interfaces/api/middleware"
	"bizmanager/interfaces/web"
	"bizmanager/pkg/testutil"
)

type testServer struct {
	t      *testing.T
	app    *fiber.App
	cookie string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewTestDB(t)

	store, err := serviceimpl.NewStaticCredentialStore("admin", "secret", "")
	if err != nil {
		t.Fatalf("credential store: %v", err)
	}
	auth := serviceimpl.NewAuthService(store, "test-secret", time.Hour)
	sessions := session.New(session.Config{Expiration: time.Hour})

	h := handlers.NewHandlers(&handlers.Services{
		TaskService:     serviceimpl.NewTaskService(database.NewTaskRepository(db), nil),
		CalendarService: serviceimpl.NewCalendarService(database.NewCalendarEventRepository(db), nil),
		ContactService:  serviceimpl.NewContactService(database.NewContactRepository(db), nil, nil, 0),
		CarService:      serviceimpl.NewCarService(database.NewCarRepository(db), nil),
		AuthService:     auth,
		Sessions:        sessions,
	})

	app := fiber.New(fiber.Config{
		Views:        web.NewViews(),
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(middleware.RequestIDMiddleware())
	SetupRoutes(app, h, Options{Sessions: sessions, AuthService: auth})

	return &testServer{t: t, app: app}
}

func (s *testServer) do(method, target, contentType, body string, header ...string) *http.Response {
	s.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s.cookie != "" {
		req.Header.Set("Cookie", s.cookie)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := s.app.Test(req, -1)
	if err != nil {
		s.t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func (s *testServer) json(method, target, body string) (*http.Response, []byte) {
	s.t.Helper()
	resp := s.do(method, target, fiber.MIMEApplicationJSON, body)
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		s.t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func (s *testServer) login() {
	s.t.Helper()
	form := url.Values{"username": {"admin"}, "password": {"secret"}}
	resp := s.do(http.MethodPost, "/login", fiber.MIMEApplicationForm, form.Encode())
	if resp.StatusCode != http.StatusFound {
		s.t.Fatalf("login status = %d", resp.StatusCode)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			s.cookie = c.Name + "=" + c.Value
		}
	}
	if s.cookie == "" {
		s.t.Fatalf("login did not set a session cookie")
	}
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return v
}

func TestAnonymousAccessRedirectsToLogin(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/tasks", "/api/tasks?status=pending", "/calendar/week"} {
		resp := s.do(http.MethodGet, target, "", "")
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("%s: status = %d, want 302", target, resp.StatusCode)
		}
		want := "/login?next=" + url.QueryEscape(target)
		if got := resp.Header.Get("Location"); got != want {
			t.Fatalf("%s: Location = %q, want %q", target, got, want)
		}
	}

	if resp := s.do(http.MethodGet, "/catalog", "", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("catalog should be public, got %d", resp.StatusCode)
	}
	if resp := s.do(http.MethodGet, "/health", "", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("health should be public, got %d", resp.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	resp := s.do(http.MethodPost, "/login", fiber.MIMEApplicationForm, form.Encode())
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "Неверный логин или пароль") {
		t.Fatalf("bad login: status %d body %s", resp.StatusCode, body)
	}

	form = url.Values{"username": {"admin"}, "password": {"secret"}, "next": {"/warehouse"}}
	resp = s.do(http.MethodPost, "/login", fiber.MIMEApplicationForm, form.Encode())
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/warehouse" {
		t.Fatalf("login redirect: %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	form.Set("next", "https://evil.example.com/")
	resp = s.do(http.MethodPost, "/login", fiber.MIMEApplicationForm, form.Encode())
	if resp.Header.Get("Location") != "/" {
		t.Fatalf("external next must fall back to /, got %q", resp.Header.Get("Location"))
	}

	s.login()
	if resp := s.do(http.MethodGet, "/login", "", ""); resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/" {
		t.Fatalf("authenticated /login should redirect home, got %d", resp.StatusCode)
	}
	if resp := s.do(http.MethodGet, "/", "", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("index status = %d", resp.StatusCode)
	}

	resp = s.do(http.MethodGet, "/logout", "", "")
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/login" {
		t.Fatalf("logout: %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	if resp := s.do(http.MethodGet, "/tasks", "", ""); resp.StatusCode != http.StatusFound {
		t.Fatalf("session should be gone after logout, got %d", resp.StatusCode)
	}
}

func TestTaskAPI(t *testing.T) {
	s := newTestServer(t)
	s.login()

	resp, body := s.json(http.MethodPost, "/api/tasks", `{"title":"Sign contract","priority":"high"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d %s", resp.StatusCode, body)
	}
	task := decode[map[string]any](t, body)
	if task["status"] != "pending" || task["priority"] != "high" || task["completed_at"] != nil {
		t.Fatalf("unexpected task %v", task)
	}
	id := int(task["id"].(float64))

	resp, body = s.json(http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), `{"status":"completed"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: %d %s", resp.StatusCode, body)
	}
	task = decode[map[string]any](t, body)
	if task["completed_at"] == nil || task["title"] != "Sign contract" {
		t.Fatalf("unexpected updated task %v", task)
	}

	resp, body = s.json(http.MethodGet, "/api/tasks?status=completed", "")
	if list := decode[[]map[string]any](t, body); resp.StatusCode != http.StatusOK || len(list) != 1 {
		t.Fatalf("filtered list: %d %s", resp.StatusCode, body)
	}
	resp, body = s.json(http.MethodGet, "/api/tasks?status=all&priority=all", "")
	if list := decode[[]map[string]any](t, body); resp.StatusCode != http.StatusOK || len(list) != 1 {
		t.Fatalf("unfiltered list: %d %s", resp.StatusCode, body)
	}

	if resp := s.do(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), "", ""); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		resp, body := s.json(method, fmt.Sprintf("/api/tasks/%d", id), "")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s after delete: %d %s", method, resp.StatusCode, body)
		}
	}
	resp, _ = s.json(http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), `{"title":"x"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("update after delete = %d", resp.StatusCode)
	}
}

func TestValidationErrors(t *testing.T) {
	s := newTestServer(t)
	s.login()

	tests := []struct {
		name   string
		target string
		body   string
		field  string
	}{
		{"missing title", "/api/tasks", `{"priority":"high"}`, "title"},
		{"bad priority", "/api/tasks", `{"title":"x","priority":"asap"}`, "priority"},
		{"bad due date", "/api/tasks", `{"title":"x","due_date":"someday"}`, "due_date"},
		{"missing event start", "/api/events", `{"title":"x","end":"2024-01-01T10:00:00"}`, "start_time"},
		{"missing vin", "/api/cars", `{"brand":"Lada","model":"Vesta"}`, "vin"},
		{"bad category", "/api/contacts", `{"first_name":"A","last_name":"B","category":"vip"}`, "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := s.json(http.MethodPost, tt.target, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, body %s", resp.StatusCode, body)
			}
			env := decode[struct {
				Success bool `json:"success"`
				Error   struct {
					Code    string            `json:"code"`
					Details map[string]string `json:"details"`
				} `json:"error"`
			}](t, body)
			if env.Success || env.Error.Code != "VALIDATION_ERROR" {
				t.Fatalf("unexpected envelope %s", body)
			}
			if _, ok := env.Error.Details[tt.field]; !ok {
				t.Fatalf("details %v missing %q", env.Error.Details, tt.field)
			}
		})
	}
}

func TestDuplicateVINConflict(t *testing.T) {
	s := newTestServer(t)
	s.login()

	car := `{"vin":"XTA21100000000001","brand":"Lada","model":"Vesta"}`
	if resp, body := s.json(http.MethodPost, "/api/cars", car); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d %s", resp.StatusCode, body)
	}
	resp, body := s.json(http.MethodPost, "/api/cars", car)
	if resp.StatusCode != http.StatusConflict || !strings.Contains(string(body), "CONFLICT") {
		t.Fatalf("duplicate: %d %s", resp.StatusCode, body)
	}

	resp, body = s.json(http.MethodPost, "/api/cars", `{"vin":"XTA21100000000002","brand":"Lada","model":"Granta"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create second: %d %s", resp.StatusCode, body)
	}
	id := int(decode[map[string]any](t, body)["id"].(float64))
	resp, body = s.json(http.MethodPut, fmt.Sprintf("/api/cars/%d", id), `{"vin":"XTA21100000000001"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("update to taken vin: %d %s", resp.StatusCode, body)
	}
	resp, body = s.json(http.MethodGet, fmt.Sprintf("/api/cars/%d", id), "")
	if got := decode[map[string]any](t, body)["vin"]; resp.StatusCode != http.StatusOK || got != "XTA21100000000002" {
		t.Fatalf("rejected update must keep the vin, got %v", got)
	}
}

func TestEventRangeFilter(t *testing.T) {
	s := newTestServer(t)
	s.login()

	for _, start := range []string{"2024-03-01T09:00:00", "2024-03-05T09:00:00", "2024-03-20T09:00:00"} {
		body := fmt.Sprintf(`{"title":"e","start":%q,"end":%q}`, start, start)
		if resp, data := s.json(http.MethodPost, "/api/events", body); resp.StatusCode != http.StatusCreated {
			t.Fatalf("create: %d %s", resp.StatusCode, data)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"start=2024-03-01T00:00:00&end=2024-03-10T00:00:00", 2},
		{"start=2024-03-01T00:00:00", 3},
		{"start=garbage&end=2024-03-10T00:00:00", 3},
		{"view=week&date=2024-03-06", 1},
		{"view=month&date=2024-03-15", 3},
		{"view=day&date=2024-03-20&start=2024-03-01T00:00:00&end=2024-03-02T00:00:00", 1},
	}
	for _, tt := range tests {
		resp, body := s.json(http.MethodGet, "/api/events?"+tt.query, "")
		list := decode[[]map[string]any](t, body)
		if resp.StatusCode != http.StatusOK || len(list) != tt.want {
			t.Errorf("%s: status %d, got %d events, want %d", tt.query, resp.StatusCode, len(list), tt.want)
		}
	}

	if resp := s.do(http.MethodGet, "/calendar/fortnight?date=nonsense", "", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("calendar page status = %d", resp.StatusCode)
	}
}

func TestBearerToken(t *testing.T) {
	s := newTestServer(t)

	resp, body := s.json(http.MethodPost, "/api/auth/token", `{"username":"admin","password":"nope"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad credentials: %d %s", resp.StatusCode, body)
	}

	resp, body = s.json(http.MethodPost, "/api/auth/token", `{"username":"admin","password":"secret"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("token: %d %s", resp.StatusCode, body)
	}
	token := decode[map[string]any](t, body)["token"].(string)

	resp = s.do(http.MethodGet, "/api/cars", "", "", "Authorization", "Bearer "+token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bearer request status = %d", resp.StatusCode)
	}
	resp = s.do(http.MethodGet, "/api/cars", "", "", "Authorization", "bearer "+token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("lowercase scheme status = %d", resp.StatusCode)
	}
	resp = s.do(http.MethodGet, "/api/cars", "", "", "Authorization", "Basic "+token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("non-bearer scheme status = %d", resp.StatusCode)
	}
	resp = s.do(http.MethodGet, "/api/cars", "", "", "Authorization", "Bearer "+token+"x")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("tampered token status = %d", resp.StatusCode)
	}
}

func TestEntityCRUD(t *testing.T) {
	tests := []struct {
		name      string
		resource  string
		create    string
		update    string
		changed   map[string]any
		unchanged map[string]any
	}{
		{
			name:      "contacts",
			resource:  "/api/contacts",
			create:    `{"first_name":"Ivan","last_name":"Petrov","phone":"+79000000000","category":"client","address_city":"Kazan"}`,
			update:    `{"phone":"+79111111111"}`,
			changed:   map[string]any{"phone": "+79111111111"},
			unchanged: map[string]any{"first_name": "Ivan", "last_name": "Petrov", "category": "client", "address_city": "Kazan"},
		},
		{
			name:      "events",
			resource:  "/api/events",
			create:    `{"title":"Supplier meeting","start":"2024-04-01T10:00:00","end":"2024-04-01T11:00:00","location":"Office"}`,
			update:    `{"location":"Cafe"}`,
			changed:   map[string]any{"location": "Cafe"},
			unchanged: map[string]any{"title": "Supplier meeting", "start": "2024-04-01T10:00:00", "end": "2024-04-01T11:00:00"},
		},
		{
			name:      "cars",
			resource:  "/api/cars",
			create:    `{"vin":"XTA21100000000100","brand":"Lada","model":"Niva","color":"white","status":"in_stock"}`,
			update:    `{"color":"red"}`,
			changed:   map[string]any{"color": "red"},
			unchanged: map[string]any{"vin": "XTA21100000000100", "brand": "Lada", "model": "Niva", "status": "in_stock"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.login()

			resp, body := s.json(http.MethodPost, tt.resource, tt.create)
			if resp.StatusCode != http.StatusCreated {
				t.Fatalf("create: %d %s", resp.StatusCode, body)
			}
			id := int(decode[map[string]any](t, body)["id"].(float64))
			item := fmt.Sprintf("%s/%d", tt.resource, id)

			resp, body = s.json(http.MethodGet, tt.resource, "")
			list := decode[[]map[string]any](t, body)
			if resp.StatusCode != http.StatusOK || len(list) != 1 || int(list[0]["id"].(float64)) != id {
				t.Fatalf("list after create: %d %s", resp.StatusCode, body)
			}
			for field, want := range tt.unchanged {
				if list[0][field] != want {
					t.Errorf("listed %s = %v, want %v", field, list[0][field], want)
				}
			}

			resp, body = s.json(http.MethodPut, item, tt.update)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("partial update: %d %s", resp.StatusCode, body)
			}
			resp, body = s.json(http.MethodGet, item, "")
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("get: %d %s", resp.StatusCode, body)
			}
			got := decode[map[string]any](t, body)
			for field, want := range tt.changed {
				if got[field] != want {
					t.Errorf("updated %s = %v, want %v", field, got[field], want)
				}
			}
			for field, want := range tt.unchanged {
				if got[field] != want {
					t.Errorf("untouched %s = %v, want %v", field, got[field], want)
				}
			}

			if resp := s.do(http.MethodDelete, item, "", ""); resp.StatusCode != http.StatusNoContent {
				t.Fatalf("delete status = %d", resp.StatusCode)
			}
			if resp, body := s.json(http.MethodPut, item, tt.update); resp.StatusCode != http.StatusNotFound {
				t.Fatalf("update after delete: %d %s", resp.StatusCode, body)
			}
			if resp, body := s.json(http.MethodDelete, item, ""); resp.StatusCode != http.StatusNotFound {
				t.Fatalf("delete after delete: %d %s", resp.StatusCode, body)
			}
		})
	}
}

func TestEventDayViewDefaultsToUTCToday(t *testing.T) {
	local := time.Local
	time.Local = time.FixedZone("UTC+14", 14*60*60)
	t.Cleanup(func() { time.Local = local })

	s := newTestServer(t)
	s.login()

	today := time.Now().UTC()
	for _, hour := range []int{0, 23} {
		start := time.Date(today.Year(), today.Month(), today.Day(), hour, 30, 0, 0, time.UTC).Format("2006-01-02T15:04:05")
		body := fmt.Sprintf(`{"title":"e","start":%q,"end":%q}`, start, start)
		if resp, data := s.json(http.MethodPost, "/api/events", body); resp.StatusCode != http.StatusCreated {
			t.Fatalf("create: %d %s", resp.StatusCode, data)
		}
	}

	for _, query := range []string{"view=day", "view=day&date=" + today.Format("2006-01-02")} {
		resp, body := s.json(http.MethodGet, "/api/events?"+query, "")
		if list := decode[[]map[string]any](t, body); resp.StatusCode != http.StatusOK || len(list) != 2 {
			t.Errorf("%s: status %d, got %d events, want 2", query, resp.StatusCode, len(list))
		}
	}
}

func TestHealthReportsFailingCheck(t *testing.T) {
	app := fiber.New()
	SetupHealthRoutes(app, map[string]HealthCheck{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("connection refused") },
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	health := decode[struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}](t, body)
	if health.Status != "degraded" || health.Checks["database"] != "ok" || health.Checks["redis"] != "unavailable" {
		t.Fatalf("unexpected health %s", body)
	}
}

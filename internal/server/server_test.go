package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/trainboard-go/internal/logging"
	"github.com/ukaji3/trainboard-go/pkg/trainboard"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/view"
)

type stubSource struct {
	err error
}

func (s stubSource) FetchSheet(_ context.Context, name string) (models.Sheet, error) {
	if s.err != nil {
		return models.Sheet{}, s.err
	}
	switch name {
	case models.SheetWeeklyPlan:
		return models.Sheet{
			Name:   name,
			Header: models.Header{"训练日", "动作名称", "目标RPE"},
			Rows: []models.Row{
				{"第1天", "深蹲", "8"},
				{"", "卧推", "7"},
				{"第2天", "<script>", ""},
			},
		}, nil
	default:
		return models.Sheet{Name: name}, nil
	}
}

func newTestServer(src stubSource) *Server {
	return New(Config{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second}, src, trainboard.DefaultOptions(), logging.NopLogger())
}

func get(t *testing.T, h http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDashboard_Desktop(t *testing.T) {
	h := newTestServer(stubSource{}).Handler()
	rec := get(t, h, "/?vw=1280", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, `rowspan="2"`)
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<td><script>")
}

func TestDashboard_NarrowFromClientHint(t *testing.T) {
	h := newTestServer(stubSource{}).Handler()
	rec := get(t, h, "/?day=%E7%AC%AC2%E5%A4%A9", map[string]string{"Sec-CH-Viewport-Width": "390"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `class="day-card"`)
	assert.NotContains(t, body, "深蹲")
}

func TestDashboard_FetchFailure(t *testing.T) {
	h := newTestServer(stubSource{err: errors.New("quota exceeded")}).Handler()
	rec := get(t, h, "/", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "连接失败：")
	assert.Contains(t, body, "quota exceeded")
	assert.Equal(t, 1, strings.Count(body, `class="error-banner"`))
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(stubSource{}).Handler(), "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMetrics(t *testing.T) {
	h := newTestServer(stubSource{}).Handler()
	get(t, h, "/?vw=400", nil)

	rec := get(t, h, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `trainboard_renders_total{mode="narrow",outcome="ok"} 1`)
	assert.Contains(t, string(body), `trainboard_sheet_fetches_total{result="ok",sheet="动作库"} 1`)
}

func TestUnknownPath(t *testing.T) {
	rec := get(t, newTestServer(stubSource{}).Handler(), "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestID_ReusesValidIncoming(t *testing.T) {
	id := uuid.NewString()
	rec := get(t, newTestServer(stubSource{}).Handler(), "/healthz", map[string]string{RequestIDHeader: id})
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	rec = get(t, newTestServer(stubSource{}).Handler(), "/healthz", map[string]string{RequestIDHeader: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestParseViewport(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		headers map[string]string
		want    view.Viewport
	}{
		{"absent", "/", nil, view.Viewport{}},
		{"query", "/?vw=500", nil, view.Viewport{Width: 500}},
		{"query wins", "/?vw=500", map[string]string{"Viewport-Width": "1200"}, view.Viewport{Width: 500}},
		{"client hint", "/", map[string]string{"Sec-CH-Viewport-Width": "767.5"}, view.Viewport{Width: 767}},
		{"legacy hint", "/", map[string]string{"Viewport-Width": "1024"}, view.Viewport{Width: 1024}},
		{"malformed", "/?vw=wide", nil, view.Viewport{}},
		{"negative", "/?vw=-3", nil, view.Viewport{}},
		{"not a number", "/?vw=NaN", nil, view.Viewport{}},
		{"infinite", "/?vw=Inf", nil, view.Viewport{}},
		{"out of range", "/?vw=1e300", nil, view.Viewport{}},
		{"out of range falls back to hint", "/?vw=1e300", map[string]string{"Viewport-Width": "390"}, view.Viewport{Width: 390}},
		{"largest width", "/?vw=2147483647", nil, view.Viewport{Width: 2147483647}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ParseViewport(req))
		})
	}
}

func TestParseSelection(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?tab=library&day=A&day=B&type=X&filtered=type", nil)
	sel := ParseSelection(req)
	assert.Equal(t, "library", sel.Tab)
	assert.Equal(t, []string{"A", "B"}, sel.Days)
	assert.Equal(t, "A", sel.Day)
	assert.Equal(t, []string{"X"}, sel.Types)
	assert.True(t, sel.TypesSet)
	assert.False(t, sel.DaysSet)

	sel = ParseSelection(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, sel.TypesSet)
	assert.Empty(t, sel.Days)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	s := newTestServer(stubSource{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

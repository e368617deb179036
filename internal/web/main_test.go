package web

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superior-limousine/website/internal/config"
	"github.com/superior-limousine/website/internal/web/navigation"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg, err := config.ReadConfig("../../etc/")
	require.NoError(t, err)

	cfg.Log.Console.Enabled = false

	s, err := New(&cfg)
	require.NoError(t, err)

	return s
}

func request(t *testing.T, s *Service, target string) (int, string) {
	t.Helper()

	resp, err := s.App.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestNew(t *testing.T) {
	s := newTestService(t)

	assert.True(t, s.Alive())
	assert.Equal(t, navigation.DefaultLinks, s.Nav().Links())
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestNew_DuplicateRoutes(t *testing.T) {
	cfg := config.Config{
		Webserver: config.Webserver{CheckAliveURI: "/checkalive"},
		Nav: config.Nav{Links: []navigation.Link{
			{Label: "Home", Route: "/"},
			{Label: "Start", Route: "/"},
		}},
	}

	_, err := New(&cfg)
	require.ErrorIs(t, err, navigation.ErrDuplicateRoute)
}

func TestPagesFromEmbeddedTemplates(t *testing.T) {
	s := newTestService(t)

	for _, l := range navigation.DefaultLinks {
		status, body := request(t, s, l.Route)

		require.Equal(t, fiber.StatusOK, status, l.Route)
		assert.Contains(t, body, `aria-current="page">`+l.Label+`</a>`, l.Route)
		assert.Equal(t, 1, strings.Count(body, `aria-current="page"`), l.Route)
	}
}

func TestToggleThenSelect(t *testing.T) {
	s := newTestService(t)

	// closed -> toggle
	_, body := request(t, s, "/services")
	assert.NotContains(t, body, `id="mobile-menu"`)
	assert.Contains(t, body, `href="/services?menu=open"`)

	// open -> toggle
	_, body = request(t, s, "/services?menu=open")
	assert.Contains(t, body, `id="mobile-menu"`)

	// following a link from the open menu renders the target closed
	_, body = request(t, s, "/fleet")
	assert.NotContains(t, body, `id="mobile-menu"`)
}

func TestStaticFiles(t *testing.T) {
	status, body := request(t, newTestService(t), "/static/css/site.css")

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "@keyframes marquee")
}

func TestNotFound(t *testing.T) {
	status, body := request(t, newTestService(t), "/limousines")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.NotContains(t, body, `aria-current="page"`)
}

func TestCheckAlive(t *testing.T) {
	s := newTestService(t)

	status, body := request(t, s, "/checkalive")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body)

	s.alive.Store(false)

	status, _ = request(t, s, "/checkalive")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestMetrics(t *testing.T) {
	s := newTestService(t)

	_, _ = request(t, s, "/fleet?menu=open")

	status, body := request(t, s, "/metrics")

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `site_page_views_total{route="/fleet"}`)
	assert.Contains(t, body, `site_menu_renders_total{state="open"}`)
}

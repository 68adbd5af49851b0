// test/e2e/e2e_test.go
package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-signups/internal/common/logger"
	"activity-signups/internal/common/observability"
	"activity-signups/internal/registry"
	"activity-signups/internal/server"
)

var obs *observability.Observability

func TestMain(m *testing.M) {
	// One shared meter provider; the Prometheus exporter registers global
	// collectors and must not be constructed per test.
	obs = observability.New("activity-server-e2e")

	code := m.Run()

	obs.Shutdown()
	os.Exit(code)
}

func startServer(t *testing.T) (*httptest.Server, *registry.Registry) {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html></html>"), 0o644))

	reg := registry.New(registry.DefaultRoster())
	mux := server.NewRouter(reg, staticDir, logger.NewNoOpLogger(), obs)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, reg
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postJSON(t *testing.T, url string) (int, map[string]string) {
	t.Helper()

	resp, err := http.Post(url, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestSignupLifecycle(t *testing.T) {
	ts, reg := startServer(t)

	// 1. The full roster is served.
	resp, err := http.Get(ts.URL + "/activities")
	require.NoError(t, err)
	var activities map[string]registry.Activity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&activities))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, activities, 9)

	// 2. A new student signs up for Chess Club.
	status, body := postJSON(t, ts.URL+"/activities/Chess%20Club/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", body["message"])
	assert.Equal(t, 3, reg.ParticipantCount("Chess Club"))

	// 3. The duplicate attempt is rejected without changing the roster.
	status, body = postJSON(t, ts.URL+"/activities/Chess%20Club/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Student already signed up for this activity", body["detail"])
	assert.Equal(t, 3, reg.ParticipantCount("Chess Club"))

	// 4. The student unregisters again.
	status, body = postJSON(t, ts.URL+"/activities/Chess%20Club/unregister?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Unregistered newstudent@mergington.edu from Chess Club", body["message"])
	assert.Equal(t, 2, reg.ParticipantCount("Chess Club"))

	// 5. A second unregister fails because the student is gone.
	status, body = postJSON(t, ts.URL+"/activities/Chess%20Club/unregister?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Student is not signed up for this activity", body["detail"])
}

func TestUnknownActivity(t *testing.T) {
	ts, _ := startServer(t)

	for _, op := range []string{"signup", "unregister"} {
		t.Run(op, func(t *testing.T) {
			url := fmt.Sprintf("%s/activities/Nonexistent%%20Club/%s?email=student@mergington.edu", ts.URL, op)
			status, body := postJSON(t, url)
			require.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, "Activity not found", body["detail"])
		})
	}
}

func TestRootRedirectAndStatic(t *testing.T) {
	ts, _ := startServer(t)

	resp, err := noRedirectClient().Get(ts.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/static/index.html", resp.Header.Get("Location"))

	// Following the redirect serves the static front-end.
	resp, err = http.Get(ts.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := startServer(t)

	_, _ = postJSON(t, ts.URL+"/activities/Drama%20Club/signup?email=metrics@mergington.edu")

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	ts, _ := startServer(t)

	resp, err := http.Get(ts.URL + "/activities")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

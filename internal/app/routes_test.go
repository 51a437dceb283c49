package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IT-Nick/quantum-quiz/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t     *testing.T
	srv   *httptest.Server
	token string
}

func (c *apiClient) do(method, path, body string) (int, []byte) {
	c.t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, c.srv.URL+path, r)
	require.NoError(c.t, err)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, data
}

func (c *apiClient) view(method, path, body string) *dto.ScreenView {
	c.t.Helper()
	code, data := c.do(method, path, body)
	require.Equal(c.t, http.StatusOK, code, string(data))
	var v dto.ScreenView
	require.NoError(c.t, json.Unmarshal(data, &v))
	return &v
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()
	srv := httptest.NewServer(newTestApp(t).Router())
	t.Cleanup(srv.Close)
	return &apiClient{t: t, srv: srv}
}

func (c *apiClient) login() {
	c.t.Helper()
	code, data := c.do(http.MethodPost, "/api/auth/guest", "")
	require.Equal(c.t, http.StatusOK, code)
	var out struct {
		AccessToken string `json:"access_token"`
		Subject     string `json:"subject"`
	}
	require.NoError(c.t, json.Unmarshal(data, &out))
	require.NotEmpty(c.t, out.AccessToken)
	assert.Contains(c.t, out.Subject, "guest|")
	c.token = out.AccessToken
}

func TestAPI_PublicRoutes(t *testing.T) {
	c := newAPIClient(t)

	code, _ := c.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)

	code, data := c.do(http.MethodGet, "/api/content/sections", "")
	require.Equal(t, http.StatusOK, code)
	var sections struct {
		InitialSection string `json:"initial_section"`
		Sections       []struct {
			ID string `json:"id"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(data, &sections))
	assert.Equal(t, "basics", sections.InitialSection)
	assert.Len(t, sections.Sections, 5)

	code, data = c.do(http.MethodGet, "/api/share", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"link":"https://t.me/quantum_quiz_bot?start=quiz","qr_code_url":"https://quiz.example/api/share/qr.png"}`, string(data))

	code, data = c.do(http.MethodGet, "/api/share/qr.png", "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestAPI_RequiresToken(t *testing.T) {
	c := newAPIClient(t)

	code, data := c.do(http.MethodGet, "/api/session", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Contains(t, string(data), "error")

	c.token = "forged"
	code, _ = c.do(http.MethodPost, "/api/quiz/submit", "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAPI_QuizFlow(t *testing.T) {
	c := newAPIClient(t)
	c.login()

	v := c.view(http.MethodGet, "/api/session", "")
	assert.Equal(t, "home", string(v.Screen))
	require.NotNil(t, v.Home)

	code, _ := c.do(http.MethodPost, "/api/quiz/select", `{"index":1}`)
	assert.Equal(t, http.StatusConflict, code)

	v = c.view(http.MethodPost, "/api/session/navigate", `{"screen":"quiz"}`)
	require.NotNil(t, v.Quiz)
	assert.Equal(t, 1, v.Quiz.Current)
	assert.True(t, v.CanGoBack)

	code, _ = c.do(http.MethodPost, "/api/quiz/select", `{"index":9}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = c.do(http.MethodPost, "/api/quiz/select", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = c.do(http.MethodPost, "/api/quiz/select", `not json`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = c.do(http.MethodPost, "/api/session/navigate", `{"screen":"settings"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	for _, idx := range []string{"1", "1", "0", "2", "1"} {
		v = c.view(http.MethodPost, "/api/quiz/select", `{"index":`+idx+`}`)
		assert.True(t, v.Quiz.CanSubmit)
		v = c.view(http.MethodPost, "/api/quiz/submit", "")
		assert.Equal(t, "correct", v.Quiz.Options[v.Quiz.Selected].State)
		v = c.view(http.MethodPost, "/api/quiz/advance", "")
	}
	require.NotNil(t, v.Quiz.Result)
	assert.Equal(t, 100, v.Quiz.Result.Percentage)
	assert.Equal(t, "perfect", v.Quiz.Result.Tier)

	v = c.view(http.MethodPost, "/api/session/navigate", `{"screen":"content"}`)
	require.NotNil(t, v.Content)
	assert.True(t, v.Content.Sections[0].Expanded)

	code, _ = c.do(http.MethodPost, "/api/content/sections/nope/toggle", "")
	assert.Equal(t, http.StatusNotFound, code)
	v = c.view(http.MethodPost, "/api/content/sections/future/toggle", "")
	assert.True(t, v.Content.Sections[4].Expanded)

	v = c.view(http.MethodPost, "/api/session/back", "")
	require.NotNil(t, v.Quiz)
	require.NotNil(t, v.Quiz.Result)

	v = c.view(http.MethodPost, "/api/quiz/restart", "")
	assert.Nil(t, v.Quiz.Result)
	assert.Equal(t, 1, v.Quiz.Current)

	v = c.view(http.MethodPost, "/api/session/reset", "")
	assert.Equal(t, "home", string(v.Screen))
	assert.False(t, v.CanGoBack)
}

func TestAPI_GuestsAreIsolated(t *testing.T) {
	a := newAPIClient(t)
	a.login()
	b := &apiClient{t: t, srv: a.srv}
	b.login()

	a.view(http.MethodPost, "/api/session/navigate", `{"screen":"quiz"}`)

	v := b.view(http.MethodGet, "/api/session", "")
	assert.Equal(t, "home", string(v.Screen))
}

// nolint: funlen
package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecatalog/errs"
	"moviecatalog/httpserver"
	"moviecatalog/pkg/config"
)

func TestNew(t *testing.T) {
	server := mustCreateServer(t)

	assert.NotNil(t, server.Router, "Router should be initialized")
	assert.Equal(t, ":8080", server.Addr, "Default address should be :8080")
	assert.Empty(t, server.AllowOrigins, "CORS is off until origins are configured")
}

func TestNew_WithConfig(t *testing.T) {
	cfg := &config.Config{Port: 3000, AllowOrigins: "https://a.example,https://b.example"}

	server, err := httpserver.New(httpserver.WithConfig(cfg))

	require.NoError(t, err)
	assert.Equal(t, ":3000", server.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, server.AllowOrigins)
}

func TestNew_WithNilLogger(t *testing.T) {
	_, err := httpserver.New(httpserver.WithLogger(nil))

	assert.Error(t, err)
}

func TestServerStartAndShutdown(t *testing.T) {
	server := mustCreateServer(t)
	port := allocateRandomPort(t)
	server.Addr = fmt.Sprintf("127.0.0.1:%d", port)

	errChan := startServerAsync(server)
	waitForServerReady(t, port)

	assertServerStopsGracefully(t, server, errChan)
}

func TestRegisterGlobalMiddlewares(t *testing.T) {
	server := mustCreateServer(t)
	addTestRoute(server)

	response := makeRequest(server, http.MethodGet, "/test", nil)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.NotEmpty(t, response.Header().Get(echo.HeaderXRequestID), "Request ID middleware should add header")
	assert.NotEmpty(t, response.Header().Get(echo.HeaderXContentTypeOptions), "Secure middleware should add headers")
}

func TestCORSConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		allowOrigins  string
		requestOrigin string
		expectCORS    bool
	}{
		{
			name:          "wildcard allows all origins",
			allowOrigins:  "*",
			requestOrigin: "https://example.com",
			expectCORS:    true,
		},
		{
			name:          "specific origin is allowed",
			allowOrigins:  "https://example.com",
			requestOrigin: "https://example.com",
			expectCORS:    true,
		},
		{
			name:          "other origin is rejected",
			allowOrigins:  "https://example.com",
			requestOrigin: "https://evil.example",
			expectCORS:    false,
		},
		{
			name:          "empty origins disables CORS",
			allowOrigins:  "",
			requestOrigin: "https://example.com",
			expectCORS:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, err := httpserver.New(httpserver.WithConfig(&config.Config{AllowOrigins: tt.allowOrigins}))
			require.NoError(t, err)
			addTestRoute(server)

			response := makeRequest(server, http.MethodGet, "/test", map[string]string{"Origin": tt.requestOrigin})

			corsHeader := response.Header().Get(echo.HeaderAccessControlAllowOrigin)
			if tt.expectCORS {
				assert.NotEmpty(t, corsHeader, "CORS header should be present")
			} else {
				assert.Empty(t, corsHeader, "CORS header should not be present")
			}
		})
	}
}

func TestMiddlewareRecoveryBehavior(t *testing.T) {
	server := mustCreateServer(t)
	server.Router.GET("/panic", func(c echo.Context) error {
		panic("test panic")
	})

	response := makeRequest(server, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, response.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, response.Body.String())
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name               string
		error              error
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "invalid error returns 400 fail",
			error:              errs.Errorf(errs.EINVALID, "invalid input"),
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"status":"fail","message":"invalid input"}`,
		},
		{
			name:               "conflict error returns 400 fail",
			error:              errs.Errorf(errs.ECONFLICT, "genre name already exists"),
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"status":"fail","message":"genre name already exists"}`,
		},
		{
			name:               "not found error returns 404",
			error:              errs.Errorf(errs.ENOTFOUND, "Cannot find any movie with ID 1"),
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"message":"Cannot find any movie with ID 1"}`,
		},
		{
			name:               "not implemented error returns 501",
			error:              errs.Errorf(errs.ENOTIMPLEMENTED, "feature not implemented"),
			expectedStatusCode: http.StatusNotImplemented,
			expectedBody:       `{"message":"feature not implemented"}`,
		},
		{
			name:               "internal error hides its message",
			error:              errs.Errorf(errs.EINTERNAL, "database connection failed"),
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"message":"Internal Server Error"}`,
		},
		{
			name:               "unknown error returns 500",
			error:              fmt.Errorf("wrapped error: %w", errors.New("original error")),
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"message":"Internal Server Error"}`,
		},
		{
			name:               "context error returns 500",
			error:              context.DeadlineExceeded,
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"message":"Internal Server Error"}`,
		},
		{
			name:               "echo bad request becomes a fail envelope",
			error:              echo.NewHTTPError(http.StatusBadRequest, "Syntax error"),
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"status":"fail","message":"Syntax error"}`,
		},
		{
			name:               "echo http error preserves status code",
			error:              echo.NewHTTPError(http.StatusForbidden, "forbidden"),
			expectedStatusCode: http.StatusForbidden,
			expectedBody:       `{"message":"forbidden"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := mustCreateServer(t)
			server.Router.GET("/error", func(c echo.Context) error {
				return tt.error
			})

			response := makeRequest(server, http.MethodGet, "/error", nil)

			assert.Equal(t, tt.expectedStatusCode, response.Code)
			assert.JSONEq(t, tt.expectedBody, response.Body.String())
		})
	}
}

func TestUnmatchedRoute(t *testing.T) {
	server := mustCreateServer(t)

	response := makeRequest(server, http.MethodGet, "/api/unknown", nil)

	assert.Equal(t, http.StatusNotFound, response.Code)
	assert.JSONEq(t, `{"message":"Resource not found"}`, response.Body.String())
}

func TestServicesNotConfigured(t *testing.T) {
	server, err := httpserver.New()
	require.NoError(t, err)

	for _, path := range []string{"/api/movies", "/api/genres"} {
		response := makeRequest(server, http.MethodGet, path, nil)

		assert.Equal(t, http.StatusNotImplemented, response.Code, path)
	}
}

func TestSwaggerRoutes(t *testing.T) {
	server := mustCreateServer(t)

	redirect := makeRequest(server, http.MethodGet, "/api-docs", nil)
	assert.Equal(t, http.StatusMovedPermanently, redirect.Code)
	assert.Equal(t, "/api-docs/index.html", redirect.Header().Get(echo.HeaderLocation))

	spec := makeRequest(server, http.MethodGet, "/api-docs/doc.json", nil)
	require.Equal(t, http.StatusOK, spec.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(spec.Body.Bytes(), &doc))
	assert.Contains(t, doc["paths"], "/api/movies")
	assert.Contains(t, doc["paths"], "/api/genres/{id}")
	for _, name := range []string{"httpserver.Response", "movie.Movie", "movie.SearchResult", "genre.SearchResult", "httpserver.MovieRequest"} {
		assert.Contains(t, doc["definitions"], name)
	}
}

// Helper functions for test setup and assertions

func mustCreateServer(t testing.TB, options ...httpserver.Options) *httpserver.Server {
	t.Helper()
	server, err := httpserver.New(options...)
	require.NoError(t, err)
	return server
}

func allocateRandomPort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func startServerAsync(server *httpserver.Server) chan error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()
	return errChan
}

func waitForServerReady(t *testing.T, port int) {
	t.Helper()
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)
}

func assertServerStopsGracefully(t *testing.T, server *httpserver.Server, errChan chan error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := server.Shutdown(ctx)
	assert.NoError(t, err, "Shutdown should complete without error")

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("Unexpected error during shutdown: %v", err)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Server did not stop within timeout")
	}
}

func makeRequest(server *httpserver.Server, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	return makeJSONRequest(server, method, path, "", headers)
}

func makeJSONRequest(server *httpserver.Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func addTestRoute(server *httpserver.Server) {
	server.Router.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "test")
	})
}

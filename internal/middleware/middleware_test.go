package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(status, gin.H{"request_id": GetRequestID(c)})
	})
	return router
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing", incoming: "", keep: false},
		{name: "kept when valid", incoming: "9b2f4c3e-1d2a-4e5f-8a6b-7c8d9e0f1a2b", keep: true},
		{name: "replaced when not a uuid", incoming: "abc; drop", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(http.StatusOK)
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			id := w.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(id)
			require.NoError(t, err)
			if tt.keep {
				assert.Equal(t, tt.incoming, id)
			} else {
				assert.NotEqual(t, tt.incoming, id)
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, id, body["request_id"])
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	previousOut, previousFormatter, previousLevel := log.StandardLogger().Out, log.StandardLogger().Formatter, log.GetLevel()
	log.SetOutput(&buf)
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
	t.Cleanup(func() {
		log.SetOutput(previousOut)
		log.SetFormatter(previousFormatter)
		log.SetLevel(previousLevel)
	})

	tests := []struct {
		status int
		level  string
		msg    string
	}{
		{status: http.StatusOK, level: "info", msg: "Request served"},
		{status: http.StatusNotFound, level: "warning", msg: "Request rejected"},
		{status: http.StatusInternalServerError, level: "error", msg: "Request failed"},
	}

	for _, tt := range tests {
		buf.Reset()
		router := setupRouter(tt.status)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, tt.level, entry["level"])
		assert.Equal(t, tt.msg, entry["msg"])
		assert.Equal(t, "/ping", entry["path"])
		assert.Equal(t, float64(tt.status), entry["status"])
		assert.Equal(t, w.Header().Get(RequestIDHeader), entry["request_id"])
	}
}

package mazeapi

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-mazegen/infrastruture/encoder"
	"github.com/beka-birhanu/vinom-mazegen/service/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newEngine(t *testing.T, maxDimension int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, err := NewMazeController(maxDimension, nil, nil)
	require.NoError(t, err)

	engine := gin.New()
	c.RegisterPublic(engine.Group("/v1"))
	return engine
}

func get(engine *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestNewMazeController(t *testing.T) {
	_, err := NewMazeController(0, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidMaxDimension)
}

func TestGenerateJSON(t *testing.T) {
	engine := newEngine(t, 20)

	w := get(engine, "/v1/mazes?rows=3&columns=4&seed=42")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var snapshot dto.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, 3, snapshot.Rows)
	assert.Equal(t, 4, snapshot.Columns)
	assert.Equal(t, int64(42), snapshot.Seed)
	assert.Equal(t, "finished", snapshot.Status)
	assert.True(t, snapshot.Perfect)
	assert.Equal(t, 2*(3*4-1), snapshot.Steps)
	assert.Len(t, snapshot.Cells, 12)

	// Same seed, same maze.
	again := get(engine, "/v1/mazes?rows=3&columns=4&seed=42")
	var other dto.Snapshot
	require.NoError(t, json.Unmarshal(again.Body.Bytes(), &other))
	assert.Equal(t, snapshot.Cells, other.Cells)
	assert.NotEqual(t, snapshot.ID, other.ID)
}

func TestGenerateFormats(t *testing.T) {
	engine := newEngine(t, 20)

	w := get(engine, "/v1/mazes?rows=2&columns=2&seed=1&format=yaml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))
	var fromYAML dto.Snapshot
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &fromYAML))
	assert.Equal(t, "finished", fromYAML.Status)

	w = get(engine, "/v1/mazes?rows=2&columns=2&seed=1&format=pb")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-protobuf", w.Header().Get("Content-Type"))
	fromPB, err := (&encoder.Protobuf{}).Unmarshal(w.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, fromYAML.Cells, fromPB.Cells)
}

func TestGenerateBadRequests(t *testing.T) {
	engine := newEngine(t, 10)

	for name, url := range map[string]string{
		"missing rows":   "/v1/mazes?columns=3",
		"zero columns":   "/v1/mazes?rows=3&columns=0",
		"negative rows":  "/v1/mazes?rows=-2&columns=3",
		"not a number":   "/v1/mazes?rows=abc&columns=3",
		"too large":      "/v1/mazes?rows=11&columns=3",
		"unknown format": "/v1/mazes?rows=2&columns=3&format=xml",
		"huge cells":     "/v1/mazes/image?rows=2&columns=3&cell_size=64",
	} {
		t.Run(name, func(t *testing.T) {
			w := get(engine, url)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestImage(t *testing.T) {
	engine := newEngine(t, 10)

	w := get(engine, "/v1/mazes/image?rows=2&columns=3&seed=5&cell_size=4")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Maze-Id"))

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 3*5+1, img.Bounds().Dx())
	assert.Equal(t, 2*5+1, img.Bounds().Dy())

	w = get(engine, "/v1/mazes/image?rows=2&columns=3&cell_size=2")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

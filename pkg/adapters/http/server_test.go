package http_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fourline/fourline"
	httpadapter "github.com/fourline/fourline/pkg/adapters/http"
	"github.com/fourline/fourline/pkg/domain"
	"github.com/fourline/fourline/pkg/observability"
	"github.com/fourline/fourline/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T, opts ...httpadapter.Option) http.Handler {
	t.Helper()
	return httpadapter.NewHandler(fourline.New(), opts...)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body string) (*httptest.ResponseRecorder, ports.Snapshot) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var snap ports.Snapshot
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	}
	return rec, snap
}

func cellAt(snap ports.Snapshot, row, column int) ports.CellSnapshot {
	for _, c := range snap.Cells {
		if c.Row == row && c.Column == column {
			return c
		}
	}
	return ports.CellSnapshot{}
}

func TestHandler_GetState(t *testing.T) {
	handler := newHandler(t)

	rec, snap := doJSON(t, handler, http.MethodGet, "/state", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Len(t, snap.Cells, domain.Cells)
	assert.Equal(t, "player1", snap.Player)
	assert.Equal(t, ports.StatusInProgress, snap.Status)
}

func TestHandler_PostMove(t *testing.T) {
	handler := newHandler(t)

	rec, snap := doJSON(t, handler, http.MethodPost, "/moves", `{"column":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	placed := cellAt(snap, 5, 3)
	assert.Equal(t, ports.CellPlaced, placed.State)
	assert.Equal(t, "red", placed.Color)
	assert.Equal(t, "player2", snap.Player)
}

func TestHandler_PreviewLifecycle(t *testing.T) {
	handler := newHandler(t)

	rec, snap := doJSON(t, handler, http.MethodPost, "/preview", `{"column":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ports.CellPreview, cellAt(snap, 5, 0).State)
	assert.Equal(t, "player1", snap.Player, "previewing does not pass the turn")

	rec, snap = doJSON(t, handler, http.MethodDelete, "/preview", `{"column":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ports.CellEmpty, cellAt(snap, 5, 0).State)
}

func TestHandler_PreviewThenMoveSameColumn(t *testing.T) {
	handler := newHandler(t)

	rec, snap := doJSON(t, handler, http.MethodPost, "/preview", `{"column":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, ports.CellPreview, cellAt(snap, 5, 3).State)

	rec, snap = doJSON(t, handler, http.MethodPost, "/moves", `{"column":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	placed := cellAt(snap, 5, 3)
	assert.Equal(t, ports.CellPlaced, placed.State)
	assert.Equal(t, "red", placed.Color)
	assert.Equal(t, ports.CellEmpty, cellAt(snap, 4, 3).State, "the hover commits, it does not stack")
	assert.Equal(t, "player2", snap.Player)

	// The opponent's move in the same column lands with their own color.
	rec, snap = doJSON(t, handler, http.MethodPost, "/moves", `{"column":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	placed = cellAt(snap, 4, 3)
	assert.Equal(t, ports.CellPlaced, placed.State)
	assert.Equal(t, "yellow", placed.Color)
	assert.Equal(t, "player1", snap.Player)
}

func TestHandler_BadRequests(t *testing.T) {
	handler := newHandler(t)

	for name, body := range map[string]string{
		"malformed json":   `{"column":`,
		"column too large": `{"column":7}`,
		"column negative":  `{"column":-1}`,
		"wrong value type": `{"column":"three"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec, _ := doJSON(t, handler, http.MethodPost, "/moves", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Reset(t *testing.T) {
	handler := newHandler(t)

	_, snap := doJSON(t, handler, http.MethodPost, "/moves", `{"column":2}`)
	require.Equal(t, ports.CellPlaced, cellAt(snap, 5, 2).State)

	rec, snap := doJSON(t, handler, http.MethodPost, "/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ports.CellEmpty, cellAt(snap, 5, 2).State)
	assert.Equal(t, "player1", snap.Player)
}

func TestHandler_CORSPreflight(t *testing.T) {
	handler := newHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/moves", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandler_MetricsEndpoint(t *testing.T) {
	registry := prometheus.NewRegistry()
	game := fourline.New(fourline.WithRecorder(observability.NewRecorder(registry)))
	handler := httpadapter.NewHandler(game,
		httpadapter.WithMetrics(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
	)

	doJSON(t, handler, http.MethodPost, "/moves", `{"column":1}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fourline_transitions_total")
}

func TestHandler_EventStream(t *testing.T) {
	server := httptest.NewServer(newHandler(t))
	defer server.Close()

	resp, err := http.Get(server.URL + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// The first event is the current snapshot.
	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(line, "data: "))

	var snap ports.Snapshot
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "data: ")), &snap))
	assert.Equal(t, ports.StatusInProgress, snap.Status)
	assert.Len(t, snap.Cells, domain.Cells)
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/gridpath/model"
)

func startServer(t *testing.T) (*httptest.Server, string) {
	s := NewComparatorServer()
	go s.Loop()
	ts := httptest.NewServer(NewRouter(s))
	return ts, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestSessionTurn(t *testing.T) {
	gs := NewSession("test")

	errs := gs.Turn(ViewerCommand{Viewer: 1, Commands: []model.Command{
		model.EditTerrain(model.TERRAIN_MUD, 20, 15),
		{Kind: model.CommandKind(42)},
		model.Run(model.BFS),
	}})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "unknown command")
	rm := gs.Controller.Snapshot()
	assert.True(t, rm.Cells[20][15].Mud)
	assert.True(t, rm.BFS.Found)
	assert.Equal(t, 34, rm.BFS.TrueCost)
}

func TestResponseCodes(t *testing.T) {
	assert.Equal(t, http.StatusOK, SESSION_READY.ToHttp())
	assert.Equal(t, http.StatusNotFound, SESSION_NOT_FOUND.ToHttp())
	assert.Equal(t, http.StatusBadRequest, SESSION_INVALIDE.ToHttp())
	assert.Panics(t, func() { ResponseCode(9).ToHttp() })
}

func TestPlayRoundTrip(t *testing.T) {
	ts, wsURL := startServer(t)
	defer ts.Close()

	first, err := Dial(wsURL + URI_PLAY)
	require.NoError(t, err)
	defer first.Close()

	assert.NotEmpty(t, first.SessionId)
	assert.Equal(t, int32(1), first.ViewerKey)
	assert.Equal(t, model.MODE_IDLE, first.Snapshot().Mode)

	for c := 10; c <= 30; c++ {
		require.NoError(t, first.Apply(model.EditTerrain(model.TERRAIN_MUD, c, 15)))
	}
	require.NoError(t, first.Apply(model.Run(model.DIJKSTRA)))
	assert.Eventually(t, func() bool {
		return first.Snapshot().Dijkstra.Found
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 32, first.Snapshot().Dijkstra.WeightedCost)

	second, err := Dial(wsURL + "/play/" + first.SessionId)
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, first.SessionId, second.SessionId)
	assert.Equal(t, int32(2), second.ViewerKey)
	assert.True(t, second.Snapshot().Dijkstra.Ran)

	require.NoError(t, second.Apply(model.Run(model.BFS)))
	for _, rc := range []*RemoteCore{first, second} {
		rc := rc
		assert.Eventually(t, func() bool {
			return rc.Snapshot().Mode == model.MODE_BOTH
		}, time.Second, 10*time.Millisecond)
	}
	rm := first.Snapshot()
	assert.Equal(t, model.BFS, rm.Last)
	assert.Equal(t, model.VERDICT_MUD, rm.Comparison().Verdict)

	require.NoError(t, second.Apply(model.Run(model.Algorithm(5))))
	assert.Eventually(t, func() bool {
		return len(second.Rejected()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, first.Rejected())
}

func TestJoinUnknownSession(t *testing.T) {
	ts, wsURL := startServer(t)
	defer ts.Close()

	_, err := Dial(wsURL + "/play/does-not-exist")
	assert.Error(t, err)
}

func TestStateEndpoint(t *testing.T) {
	ts, wsURL := startServer(t)
	defer ts.Close()

	rc, err := Dial(wsURL + URI_PLAY)
	require.NoError(t, err)
	defer rc.Close()

	require.NoError(t, rc.Apply(model.EditTerrain(model.TERRAIN_WALL, 1, 1)))
	require.NoError(t, rc.Apply(model.Run(model.BFS)))
	assert.Eventually(t, func() bool {
		return rc.Snapshot().BFS.Ran
	}, time.Second, 10*time.Millisecond)

	resp, err := http.Get(ts.URL + "/state/" + rc.SessionId)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sv StateView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sv))
	assert.Equal(t, rc.SessionId, sv.Session)
	assert.Equal(t, "SINGLE", sv.Mode)
	assert.Equal(t, "BFS", sv.Last)
	assert.Equal(t, [][2]int{{1, 1}}, sv.Walls)
	assert.Len(t, sv.Current, 29)
	assert.Empty(t, sv.Previous)
	require.NotNil(t, sv.BFS.Hops)
	assert.Equal(t, 30, *sv.BFS.Hops)
	assert.True(t, sv.BFS.Found)
	assert.False(t, sv.Dijkstra.Ran)

	missing, err := http.Get(ts.URL + "/state/nope")
	require.NoError(t, err)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

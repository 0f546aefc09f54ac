package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/account/password"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/account/token"
	"github.com/riskibarqy/sports-schedule/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/sports-schedule/internal/platform/id"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
	"github.com/riskibarqy/sports-schedule/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	router http.Handler
	store  *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC))
	store := memory.NewStore()
	store.SeedDemo()

	ids, err := idgen.NewObjectIDGenerator(clock)
	require.NoError(t, err)
	tokens, err := token.NewManager(token.Config{
		Secret:   "router-test-secret-0123456789",
		Issuer:   "sports-schedule",
		TTL:      time.Hour,
		GuestTTL: 24 * time.Hour,
	}, clock)
	require.NoError(t, err)

	logger := logging.NewNop()
	integrity := usecase.NewIntegrityEngine(memory.NewUnitOfWork(store), logger)
	planner := usecase.NewEventQueryPlanner(store.Leagues(), clock, time.UTC)
	handler := NewHandler(
		usecase.NewLeagueService(store.Leagues(), integrity, ids),
		usecase.NewTeamService(store.Teams(), store.Leagues(), integrity, ids),
		usecase.NewEventService(planner, store.Events(), store.Leagues(), store.Teams(), ids, time.UTC),
		usecase.NewAuthService(store.Users(), tokens, password.NewBcryptHasher(bcrypt.MinCost), ids, true),
		"maps-key-123",
		false,
		logger,
	)

	return &testServer{
		router: NewRouter(handler, tokens, logger, true, []string{"*"}),
		store:  store,
	}
}

type envelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       any            `json:"data"`
	Error      map[string]any `json:"error"`
}

func (s *testServer) do(t *testing.T, method, path, bearer string, body any) (int, envelope) {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = sonic.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var out envelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	assert.Equal(t, "2.0", out.APIVersion)
	return rec.Code, out
}

func dataMap(t *testing.T, env envelope) map[string]any {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	require.True(t, ok, "expected object data, got %T", env.Data)
	return m
}

func dataList(t *testing.T, env envelope) []any {
	t.Helper()
	l, ok := env.Data.([]any)
	require.True(t, ok, "expected list data, got %T", env.Data)
	return l
}

func (s *testServer) registerAdmin(t *testing.T) string {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/register", "", map[string]any{
		"username": "director",
		"password": "correct horse",
		"isAdmin":  true,
	})
	require.Equal(t, http.StatusCreated, status)
	data := dataMap(t, env)
	require.Equal(t, true, data["isAdmin"])
	return data["token"].(string)
}

func TestRouter_Healthz(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", dataMap(t, env)["status"])
}

func TestRouter_AccessControl(t *testing.T) {
	s := newTestServer(t)
	league := map[string]any{"season": "fall", "sport": "rugby", "ageGroup": "u16", "division": "a", "gender": "boys"}

	status, env := s.do(t, http.MethodPost, "/api/leagues", "", league)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHENTICATED", env.Error["status"])

	status, _ = s.do(t, http.MethodPost, "/api/leagues", "not-a-jwt", league)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(t, http.MethodPost, "/api/guest", "", nil)
	require.Equal(t, http.StatusOK, status)
	guest := dataMap(t, env)["token"].(string)

	status, env = s.do(t, http.MethodPost, "/api/leagues", guest, league)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, env.Error["message"], "admin access required")

	status, env = s.do(t, http.MethodGet, "/api/dashboard-data", guest, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Guest", dataMap(t, env)["userName"])
	assert.Equal(t, false, dataMap(t, env)["isAdmin"])

	status, _ = s.do(t, http.MethodGet, "/api/admin-data", guest, nil)
	assert.Equal(t, http.StatusForbidden, status)

	admin := s.registerAdmin(t)
	status, _ = s.do(t, http.MethodGet, "/api/admin-data", admin, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = s.do(t, http.MethodPost, "/api/login", "", map[string]any{"username": "director", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, env.Error["message"], "invalid credentials")

	status, env = s.do(t, http.MethodPost, "/api/register", "", map[string]any{"username": "Director", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "ALREADY_EXISTS", env.Error["status"])
}

func TestRouter_ScheduleLifecycle(t *testing.T) {
	s := newTestServer(t)
	admin := s.registerAdmin(t)

	status, env := s.do(t, http.MethodPost, "/api/leagues", admin, map[string]any{
		"season": "Fall", "sport": "Rugby", "ageGroup": "U16", "division": "A", "gender": "Boys",
	})
	require.Equal(t, http.StatusCreated, status)
	leagueID := dataMap(t, env)["id"].(string)
	assert.Equal(t, "League created", dataMap(t, env)["message"])

	status, env = s.do(t, http.MethodGet, "/api/leagues/"+leagueID, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "rugby", dataMap(t, env)["sport"])

	status, env = s.do(t, http.MethodPost, "/api/teams", admin, map[string]any{
		"leagueId": leagueID, "name": "Ridley Tigers", "school": "Ridley College", "location": "St. Catharines",
	})
	require.Equal(t, http.StatusCreated, status)
	teamID := dataMap(t, env)["id"].(string)

	status, env = s.do(t, http.MethodPost, "/api/events", admin, map[string]any{
		"type": "game", "leagueId": leagueID, "location": "Ridley Field",
		"date": "2025-10-22", "time": "15:00",
		"opposingTeam": "Ridley Tigers", "opposingTeamId": teamID,
	})
	require.Equal(t, http.StatusCreated, status)
	eventID := dataMap(t, env)["id"].(string)

	status, env = s.do(t, http.MethodGet, "/api/events/"+eventID, "", nil)
	require.Equal(t, http.StatusOK, status)
	detail := dataMap(t, env)
	assert.Equal(t, teamID, detail["opposingTeamId"])
	assert.Equal(t, "2025-10-22T00:00:00Z", detail["date"])
	assert.Equal(t, "Ridley College", detail["team"].(map[string]any)["school"])
	assert.Equal(t, "u16", detail["league"].(map[string]any)["ageGroup"])

	status, env = s.do(t, http.MethodGet, "/api/events?dateRange=thisSeason&leagueIds="+leagueID+","+memory.LeagueIDBasketballU16, "", nil)
	require.Equal(t, http.StatusOK, status)
	events := dataList(t, env)
	require.Len(t, events, 1)
	assert.Equal(t, eventID, events[0].(map[string]any)["id"])

	status, env = s.do(t, http.MethodDelete, "/api/teams/"+teamID, admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, dataMap(t, env)["eventsUnlinked"])

	status, env = s.do(t, http.MethodGet, "/api/events/"+eventID, "", nil)
	require.Equal(t, http.StatusOK, status)
	detail = dataMap(t, env)
	assert.Nil(t, detail["opposingTeamId"])
	assert.Nil(t, detail["team"])
	assert.Equal(t, "Bayview Glen", detail["opposingTeam"])

	status, env = s.do(t, http.MethodDelete, "/api/leagues/"+leagueID, admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, dataMap(t, env)["eventsDeleted"])

	status, _ = s.do(t, http.MethodGet, "/api/events/"+eventID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(t, http.MethodGet, "/api/leagues/"+leagueID+"/teams", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.do(t, http.MethodDelete, "/api/leagues/"+leagueID, admin, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_EventQueryRules(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/events?leagueIds="+memory.LeagueIDBasketballU16+"&dateRange=thisSeason", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, dataList(t, env))

	status, env = s.do(t, http.MethodGet, "/api/events?dateRange=nextSeason", "", nil)
	require.Equal(t, http.StatusOK, status)
	events := dataList(t, env)
	require.Len(t, events, 1)
	assert.Equal(t, memory.LeagueIDBasketballU16, events[0].(map[string]any)["leagueId"])

	status, _ = s.do(t, http.MethodGet, "/api/events?dateRange=someday", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodGet, "/api/events?leagueIds=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodGet, "/api/events?startDate=yesterday", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRouter_RejectsUnknownFieldsAndBadIDs(t *testing.T) {
	s := newTestServer(t)
	admin := s.registerAdmin(t)

	status, _ := s.do(t, http.MethodPost, "/api/teams", admin, map[string]any{
		"leagueId": memory.LeagueIDSoccerU14Boys, "name": "A", "school": "B", "location": "C", "mascot": "D",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodGet, "/api/teams/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodDelete, "/api/leagues/not-an-id", admin, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodPut, "/api/events/"+missingID, admin, map[string]any{
		"type": "game", "leagueId": memory.LeagueIDSoccerU14Boys, "location": "x", "date": "2025-10-01", "time": "10:00",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_MapsKeyAndLists(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(t, http.MethodGet, "/api/maps-key", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "maps-key-123", dataMap(t, env)["key"])

	status, env = s.do(t, http.MethodGet, "/api/leagues", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, dataList(t, env), 3)

	status, env = s.do(t, http.MethodGet, "/api/teams", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, dataList(t, env), 5)

	status, env = s.do(t, http.MethodGet, "/api/teams/"+memory.TeamIDHavergal, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "basketball", dataMap(t, env)["league"].(map[string]any)["sport"])
}

const missingID = "68cc2c80ffffffffff000009"

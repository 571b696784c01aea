package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"summoner-rating/internal/domain"
	"testing"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlayerRater struct {
	mock.Mock
}

func (m *MockPlayerRater) RatePlayer(ctx context.Context, playerName string) (*domain.Rating, error) {
	args := m.Called(ctx, playerName)
	if r := args.Get(0); r != nil {
		return r.(*domain.Rating), args.Error(1)
	}
	return nil, args.Error(1)
}

func sampleRating() *domain.Rating {
	return &domain.Rating{
		ID:    "V1StGXR8_Z5jdHi6B-myT",
		Name:  "Faker",
		Tier:  domain.TierGold,
		Value: 4200,
		Matches: []domain.MatchScore{
			{GameID: 100, Score: 3000},
			{GameID: 101, Score: 1200},
		},
	}
}

func newTestServer(t *testing.T, rater PlayerRater) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewHTTPHandler(NewRatingServer(rater, zerolog.Nop()), zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func TestRatePlayer_Client(t *testing.T) {
	rater := new(MockPlayerRater)
	rater.On("RatePlayer", mock.Anything, "Faker").Return(sampleRating(), nil)

	srv := newTestServer(t, rater)
	client := NewRatingServiceClient(srv.Client(), srv.URL)

	resp, err := client.RatePlayer(context.Background(), connect.NewRequest(&RatePlayerRequest{Name: "Faker"}))
	require.NoError(t, err)

	assert.Equal(t, "V1StGXR8_Z5jdHi6B-myT", resp.Msg.RatingID)
	assert.Equal(t, "Faker", resp.Msg.Name)
	assert.Equal(t, "gold", resp.Msg.Tier)
	assert.Equal(t, 4200, resp.Msg.Rating)
	assert.Equal(t, []MatchScore{{GameID: 100, Score: 3000}, {GameID: 101, Score: 1200}}, resp.Msg.Matches)
	assert.NotEmpty(t, resp.Header().Get("X-Request-ID"))
	rater.AssertExpectations(t)
}

func TestRatePlayer_PlainJSON(t *testing.T) {
	rater := new(MockPlayerRater)
	rater.On("RatePlayer", mock.Anything, "Faker").Return(sampleRating(), nil)

	srv := newTestServer(t, rater)

	body := bytes.NewBufferString(`{"name":"Faker"}`)
	resp, err := http.Post(srv.URL+RatingServiceRatePlayerProcedure, "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Faker", out["name"])
	assert.Equal(t, float64(4200), out["rating"])
	assert.Len(t, out["matches"], 2)
}

func TestRatePlayer_ErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     connect.Code
		httpCode int
	}{
		{"not found", fmt.Errorf("summoner %q: %w", "Faker", domain.ErrNotFound), connect.CodeNotFound, http.StatusNotFound},
		{"invalid argument", domain.ErrInvalidArgument, connect.CodeInvalidArgument, http.StatusBadRequest},
		{"unknown tier", fmt.Errorf("tier %q: %w", "wood", domain.ErrUnknownTier), connect.CodeFailedPrecondition, http.StatusBadRequest},
		{"invalid match", domain.ErrInvalidMatch, connect.CodeFailedPrecondition, http.StatusBadRequest},
		{"upstream failure", errors.New("riot api returned status 500"), connect.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rater := new(MockPlayerRater)
			rater.On("RatePlayer", mock.Anything, "Faker").Return(nil, tt.err)

			srv := newTestServer(t, rater)

			client := NewRatingServiceClient(srv.Client(), srv.URL)
			_, err := client.RatePlayer(context.Background(), connect.NewRequest(&RatePlayerRequest{Name: "Faker"}))
			require.Error(t, err)
			assert.Equal(t, tt.code, connect.CodeOf(err))

			resp, err := http.Post(srv.URL+RatingServiceRatePlayerProcedure, "application/json", bytes.NewBufferString(`{"name":"Faker"}`))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.httpCode, resp.StatusCode)
		})
	}
}

func TestToConnectError_DeadlineExceeded(t *testing.T) {
	err := toConnectError(fmt.Errorf("fetching match: %w", context.DeadlineExceeded))
	assert.Equal(t, connect.CodeDeadlineExceeded, err.Code())
}

func TestHTTPHandler_RequestIDPropagation(t *testing.T) {
	rater := new(MockPlayerRater)
	rater.On("RatePlayer", mock.Anything, "Faker").Return(sampleRating(), nil)

	srv := newTestServer(t, rater)

	const id = "5f0c6a4e-2b1d-4c7e-9f3a-8d2b6e1c0a97"
	req, err := http.NewRequest(http.MethodPost, srv.URL+RatingServiceRatePlayerProcedure, bytes.NewBufferString(`{"name":"Faker"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", id)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, id, resp.Header.Get("X-Request-ID"))
}

func TestHTTPHandler_Healthz(t *testing.T) {
	srv := newTestServer(t, new(MockPlayerRater))

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

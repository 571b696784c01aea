package server

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	RatingServiceName = "rating.v1.RatingService"

	RatingServicePath                = "/" + RatingServiceName + "/"
	RatingServiceRatePlayerProcedure = RatingServicePath + "RatePlayer"
)

type RatePlayerRequest struct {
	Name string `json:"name"`
}

type MatchScore struct {
	GameID int64 `json:"game_id"`
	Score  int   `json:"score"`
}

type RatePlayerResponse struct {
	RatingID string       `json:"rating_id"`
	Name     string       `json:"name"`
	Tier     string       `json:"tier"`
	Rating   int          `json:"rating"`
	Matches  []MatchScore `json:"matches"`
}

type RatingServiceHandler interface {
	RatePlayer(context.Context, *connect.Request[RatePlayerRequest]) (*connect.Response[RatePlayerResponse], error)
}

// NewRatingServiceHandler returns the mount path and handler for the rating
// service. Messages are plain structs, so callers must use application/json.
func NewRatingServiceHandler(svc RatingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(RatingServiceRatePlayerProcedure, connect.NewUnaryHandler(
		RatingServiceRatePlayerProcedure,
		svc.RatePlayer,
		opts...,
	))
	return RatingServicePath, mux
}

type RatingServiceClient struct {
	ratePlayer *connect.Client[RatePlayerRequest, RatePlayerResponse]
}

func NewRatingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *RatingServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &RatingServiceClient{
		ratePlayer: connect.NewClient[RatePlayerRequest, RatePlayerResponse](
			httpClient,
			baseURL+RatingServiceRatePlayerProcedure,
			opts...,
		),
	}
}

func (c *RatingServiceClient) RatePlayer(ctx context.Context, req *connect.Request[RatePlayerRequest]) (*connect.Response[RatePlayerResponse], error) {
	return c.ratePlayer.CallUnary(ctx, req)
}

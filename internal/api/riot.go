package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"summoner-rating/internal/config"
	"summoner-rating/internal/constants"
	"summoner-rating/internal/domain"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type RiotClient struct {
	apiKey      string
	baseURL     string
	client      *fasthttp.Client
	logger      zerolog.Logger
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo is the last rate-limit state reported by the API. Limits are
// kept in Riot's "count:window" notation, e.g. "20:1,100:120".
type RateLimitInfo struct {
	AppLimit    string `json:"app_limit"`
	AppCount    string `json:"app_count"`
	MethodLimit string `json:"method_limit"`
	MethodCount string `json:"method_count"`

	// seconds, only set on 429 responses
	RetryAfter int `json:"retry_after"`

	UpdatedAt time.Time `json:"updated_at"`
}

// APIError is returned for any non-200 response. A 404 matches
// domain.ErrNotFound under errors.Is.
type APIError struct {
	StatusCode int
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("riot api error: %d on %s", e.StatusCode, e.Path)
}

func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotFound && e.StatusCode == fasthttp.StatusNotFound
}

func NewRiotClient(cfg *config.Config, logger zerolog.Logger) *RiotClient {
	return &RiotClient{
		apiKey:  cfg.RiotAPIKey,
		baseURL: cfg.APIBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.RiotClientMaxConnsPerHost,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: constants.RiotClientIdleConn,
		},
		logger: logger,
	}
}

func (c *RiotClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *RiotClient) updateRateLimit(resp *fasthttp.Response) RateLimitInfo {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if v := string(resp.Header.Peek("X-App-Rate-Limit")); v != "" {
		c.rateLimit.AppLimit = v
	}
	if v := string(resp.Header.Peek("X-App-Rate-Limit-Count")); v != "" {
		c.rateLimit.AppCount = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit")); v != "" {
		c.rateLimit.MethodLimit = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); v != "" {
		c.rateLimit.MethodCount = v
	}
	c.rateLimit.RetryAfter = 0
	if v := string(resp.Header.Peek("Retry-After")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.rateLimit.RetryAfter = secs
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
	return c.rateLimit
}

func (c *RiotClient) hostFor(region string) string {
	return strings.TrimRight(strings.ReplaceAll(c.baseURL, "{region}", strings.ToLower(region)), "/")
}

func (c *RiotClient) GetSummonerByName(ctx context.Context, region, name string) (*SummonerResponse, error) {
	path := fmt.Sprintf("/lol/summoner/v4/summoners/by-name/%s", url.PathEscape(name))
	return doRequest[SummonerResponse](ctx, c, region, path)
}

func (c *RiotClient) GetMatchlist(ctx context.Context, region, accountID string, queueID, limit int) (*MatchlistResponse, error) {
	q := url.Values{}
	q.Set("queue", strconv.Itoa(queueID))
	q.Set("endIndex", strconv.Itoa(limit))
	path := fmt.Sprintf("/lol/match/v4/matchlists/by-account/%s?%s", url.PathEscape(accountID), q.Encode())
	return doRequest[MatchlistResponse](ctx, c, region, path)
}

func (c *RiotClient) GetMatch(ctx context.Context, region string, gameID int64) (*MatchResponse, error) {
	path := fmt.Sprintf("/lol/match/v4/matches/%d", gameID)
	return doRequest[MatchResponse](ctx, c, region, path)
}

func (c *RiotClient) GetLeagueEntries(ctx context.Context, region, summonerID string) ([]LeagueEntry, error) {
	path := fmt.Sprintf("/lol/league/v4/entries/by-summoner/%s", url.PathEscape(summonerID))
	entries, err := doRequest[[]LeagueEntry](ctx, c, region, path)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func doRequest[T any](ctx context.Context, client *RiotClient, region, path string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(client.hostFor(region) + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			if errors.Is(err, fasthttp.ErrTimeout) {
				return nil, fmt.Errorf("request to %s timed out: %w", path, err)
			}
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	limits := client.updateRateLimit(resp)
	client.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("app_count", limits.AppCount).
		Str("method_count", limits.MethodCount).
		Msg("riot api response")

	if resp.StatusCode() != fasthttp.StatusOK {
		if resp.StatusCode() == fasthttp.StatusTooManyRequests {
			client.logger.Warn().
				Str("path", path).
				Int("retry_after", limits.RetryAfter).
				Msg("riot api rate limit exceeded")
		}
		return nil, &APIError{StatusCode: resp.StatusCode(), Path: path}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &result, nil
}

type SummonerResponse struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	Puuid         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

type MatchlistResponse struct {
	Matches    []MatchReference `json:"matches"`
	StartIndex int              `json:"startIndex"`
	EndIndex   int              `json:"endIndex"`
	TotalGames int              `json:"totalGames"`
}

type MatchReference struct {
	GameID     int64  `json:"gameId"`
	PlatformID string `json:"platformId"`
	Champion   int    `json:"champion"`
	Queue      int    `json:"queue"`
	Season     int    `json:"season"`
	Timestamp  int64  `json:"timestamp"`
	Role       string `json:"role"`
	Lane       string `json:"lane"`
}

type MatchResponse struct {
	GameID                int64                 `json:"gameId"`
	PlatformID            string                `json:"platformId"`
	QueueID               int                   `json:"queueId"`
	GameDuration          int                   `json:"gameDuration"`
	GameCreation          int64                 `json:"gameCreation"`
	GameVersion           string                `json:"gameVersion"`
	ParticipantIdentities []ParticipantIdentity `json:"participantIdentities"`
	Participants          []Participant         `json:"participants"`
	Teams                 []TeamStats           `json:"teams"`
}

type ParticipantIdentity struct {
	ParticipantID int `json:"participantId"`
	Player        struct {
		SummonerName      string `json:"summonerName"`
		AccountID         string `json:"accountId"`
		CurrentAccountID  string `json:"currentAccountId"`
		SummonerID        string `json:"summonerId"`
		PlatformID        string `json:"platformId"`
		CurrentPlatformID string `json:"currentPlatformId"`
	} `json:"player"`
}

type Participant struct {
	ParticipantID int              `json:"participantId"`
	TeamID        int              `json:"teamId"`
	ChampionID    int              `json:"championId"`
	Stats         ParticipantStats `json:"stats"`
}

type ParticipantStats struct {
	Kills                int  `json:"kills"`
	Deaths               int  `json:"deaths"`
	Assists              int  `json:"assists"`
	TripleKills          int  `json:"tripleKills"`
	QuadraKills          int  `json:"quadraKills"`
	PentaKills           int  `json:"pentaKills"`
	TotalDamageDealt     int  `json:"totalDamageDealt"`
	TotalHeal            int  `json:"totalHeal"`
	VisionScore          int  `json:"visionScore"`
	GoldEarned           int  `json:"goldEarned"`
	InhibitorKills       int  `json:"inhibitorKills"`
	TotalMinionsKilled   int  `json:"totalMinionsKilled"`
	WardsPlaced          int  `json:"wardsPlaced"`
	WardsKilled          int  `json:"wardsKilled"`
	FirstBloodKill       bool `json:"firstBloodKill"`
	FirstBloodAssist     bool `json:"firstBloodAssist"`
	FirstTowerKill       bool `json:"firstTowerKill"`
	FirstTowerAssist     bool `json:"firstTowerAssist"`
	FirstInhibitorKill   bool `json:"firstInhibitorKill"`
	FirstInhibitorAssist bool `json:"firstInhibitorAssist"`
}

// TeamStats.Win is "Win" or "Fail".
type TeamStats struct {
	TeamID          int    `json:"teamId"`
	Win             string `json:"win"`
	TowerKills      int    `json:"towerKills"`
	InhibitorKills  int    `json:"inhibitorKills"`
	BaronKills      int    `json:"baronKills"`
	DragonKills     int    `json:"dragonKills"`
	RiftHeraldKills int    `json:"riftHeraldKills"`
}

type LeagueEntry struct {
	LeagueID     string `json:"leagueId"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	SummonerID   string `json:"summonerId"`
	SummonerName string `json:"summonerName"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

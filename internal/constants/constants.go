package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 60 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	DefaultRegion            = "na1"
	DefaultQueueID           = 420 // ranked solo/duo
	DefaultFastGameMinutes   = 25
	DefaultMatchHistoryLimit = 1
	MaxMatchHistoryLimit     = 100 // matchlist endpoint caps a page at 100
	DefaultAPIBaseURL        = "https://{region}.api.riotgames.com"
	DefaultServerPort        = "8080"
	DefaultLogLevel          = "info"
)

const (
	RiotClientMaxConnsPerHost = 20
	RiotClientIdleConn        = 1 * time.Minute
)

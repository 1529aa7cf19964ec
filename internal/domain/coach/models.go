package coach

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DefaultLast is the recent-game window used when the form holds no usable number.
const DefaultLast = 10

// IngestRequest asks the service to load recent game logs for a team/season.
type IngestRequest struct {
	Team   string `json:"team"`
	Season string `json:"season"`
	Last   int    `json:"last"`
}

// IngestResponse reports how many documents the service added.
type IngestResponse struct {
	Status    string `json:"status,omitempty"`
	DocsAdded int    `json:"docs_added"`
}

// RecommendRequest asks for a rotation against an opponent.
// Limit is left to the service default when zero.
type RecommendRequest struct {
	Team     string `json:"team"`
	Season   string `json:"season"`
	Opponent string `json:"opponent"`
	Limit    int    `json:"limit,omitempty"`
}

// RecommendResponse is the suggested rotation plus the game samples backing it.
// Missing arrays decode as nil and are treated as empty.
type RecommendResponse struct {
	SuggestedLineup []PlayerStat `json:"suggested_lineup"`
	SupportingGames []GameSample `json:"supporting_games"`
}

// PlayerStat is one player's recent averages.
type PlayerStat struct {
	Player          string  `json:"player"`
	AvgMinutes      float64 `json:"avg_minutes"`
	AvgPts          float64 `json:"avg_pts"`
	AvgReb          float64 `json:"avg_reb"`
	AvgAst          float64 `json:"avg_ast"`
	OpponentHistory Truthy  `json:"opponent_history"`
}

// GameSample is a single historical game cited as evidence.
type GameSample struct {
	Player   string  `json:"player"`
	GameDate string  `json:"game_date"`
	Opponent string  `json:"opponent"`
	Minutes  float64 `json:"minutes"`
	Pts      float64 `json:"pts"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	LoadedDocs string `json:"loaded_docs"`
}

// Truthy is a presence flag that accepts any JSON value.
// false, 0, "", null and absence are false; everything else is true.
type Truthy bool

// UnmarshalJSON applies JSON truthiness instead of requiring a boolean.
func (t *Truthy) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")):
		*t = false
	case bytes.Equal(raw, []byte("true")):
		*t = true
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*t = s != ""
	case raw[0] == '{' || raw[0] == '[':
		*t = true
	default:
		n, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return err
		}
		*t = n != 0
	}
	return nil
}

// MarshalJSON always emits a boolean.
func (t Truthy) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(t))
}

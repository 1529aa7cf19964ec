package testutil

import "github.com/preston-bernstein/nba-coach-client/internal/domain/coach"

// SamplePlayer returns a minimal lineup entry with the provided name.
func SamplePlayer(name string, opponentHistory bool) coach.PlayerStat {
	return coach.PlayerStat{
		Player:          name,
		AvgMinutes:      32.5,
		AvgPts:          18.25,
		AvgReb:          6,
		AvgAst:          4.5,
		OpponentHistory: coach.Truthy(opponentHistory),
	}
}

// SampleGame returns a supporting game sample for the player.
func SampleGame(player, opponent string) coach.GameSample {
	return coach.GameSample{
		Player:   player,
		GameDate: "2025-01-15",
		Opponent: opponent,
		Minutes:  34,
		Pts:      21,
	}
}

// SampleRecommendation builds a response with one player and one supporting game.
func SampleRecommendation(player, opponent string) coach.RecommendResponse {
	return coach.RecommendResponse{
		SuggestedLineup: []coach.PlayerStat{SamplePlayer(player, true)},
		SupportingGames: []coach.GameSample{SampleGame(player, opponent)},
	}
}

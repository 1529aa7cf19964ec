package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/preston-bernstein/nba-coach-client/internal/domain/coach"
)

const (
	headingLineup  = "Suggested Rotation"
	headingSamples = "Supporting Samples"
	placeholder    = "No data"
	badge          = "Has opponent sample"
)

// Result renders a recommendation as two sections of cards, in payload order.
// An empty or missing collection renders the "No data" placeholder instead of a table.
func Result(resp coach.RecommendResponse) View {
	var b strings.Builder

	b.WriteString(headingLineup)
	b.WriteString("\n")
	b.WriteString(lineupSection(resp.SuggestedLineup))
	b.WriteString("\n\n")
	b.WriteString(headingSamples)
	b.WriteString("\n")
	b.WriteString(samplesSection(resp.SupportingGames))

	return View{Kind: KindResult, Text: b.String()}
}

func lineupSection(players []coach.PlayerStat) string {
	if len(players) == 0 {
		return placeholder
	}
	t := newTable()
	t.AppendHeader(table.Row{"Player", "Averages", ""})
	for _, p := range players {
		t.AppendRow(table.Row{p.Player, lineupStats(p), lineupBadge(p)})
	}
	return t.Render()
}

func samplesSection(games []coach.GameSample) string {
	if len(games) == 0 {
		return placeholder
	}
	t := newTable()
	t.AppendHeader(table.Row{"Player", "Game", "Line"})
	for _, g := range games {
		t.AppendRow(table.Row{
			g.Player,
			fmt.Sprintf("%s vs %s", g.GameDate, g.Opponent),
			fmt.Sprintf("%s MIN, %s PTS", number(g.Minutes), number(g.Pts)),
		})
	}
	return t.Render()
}

func lineupStats(p coach.PlayerStat) string {
	return fmt.Sprintf("Minutes %s | PTS %s | REB %s | AST %s",
		number(p.AvgMinutes), number(p.AvgPts), number(p.AvgReb), number(p.AvgAst))
}

func lineupBadge(p coach.PlayerStat) string {
	if p.OpponentHistory {
		return badge
	}
	return ""
}

// number prints the shortest representation that round-trips, so 36.25 stays 36.25 and 31.0 prints as 31.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

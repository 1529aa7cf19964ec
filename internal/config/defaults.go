package config

import "strconv"

// FormDefaults pre-fills the input form before the user edits it.
type FormDefaults struct {
	Team     string
	Season   string
	Last     int
	Opponent string
}

// LastString renders Last the way a text field would hold it.
func (d FormDefaults) LastString() string {
	return strconv.Itoa(d.Last)
}

func loadDefaults() FormDefaults {
	return FormDefaults{
		Team:     envOrDefault(envTeam, defaultTeam),
		Season:   envOrDefault(envSeason, defaultSeason),
		Last:     intEnvOrDefault(envLast, defaultLast),
		Opponent: envOrDefault(envOpponent, ""),
	}
}

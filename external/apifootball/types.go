package apifootball

import (
	"fmt"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// envelope is the common API-Football v3 response wrapper. The errors field is
// an empty array on success and an object of messages on failure.
type envelope[T any] struct {
	Get        string         `json:"get"`
	Errors     providerErrors `json:"errors"`
	Results    int            `json:"results"`
	Response   []T            `json:"response"`
	Parameters map[string]any `json:"parameters"`
}

type providerErrors []string

func (e *providerErrors) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" || trimmed == "[]" {
		*e = nil
		return nil
	}

	var asMap map[string]string
	if err := sonic.Unmarshal(data, &asMap); err == nil {
		out := make([]string, 0, len(asMap))
		for key, value := range asMap {
			out = append(out, fmt.Sprintf("%s: %s", key, value))
		}
		*e = out
		return nil
	}

	var asList []string
	if err := sonic.Unmarshal(data, &asList); err == nil {
		*e = asList
		return nil
	}

	return fmt.Errorf("unrecognized errors payload: %s", trimmed)
}

type fixtureItem struct {
	Fixture fixtureCore  `json:"fixture"`
	League  fixtureGroup `json:"league"`
	Teams   fixtureTeams `json:"teams"`
	Goals   goalPair     `json:"goals"`
	Score   fixtureScore `json:"score"`
}

type fixtureCore struct {
	ID        int64         `json:"id"`
	Date      string        `json:"date"`
	Timestamp int64         `json:"timestamp"`
	Venue     fixtureVenue  `json:"venue"`
	Status    fixtureStatus `json:"status"`
}

type fixtureVenue struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type fixtureStatus struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type fixtureGroup struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

type fixtureTeams struct {
	Home teamRef `json:"home"`
	Away teamRef `json:"away"`
}

type teamRef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Winner *bool  `json:"winner"`
}

type goalPair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type fixtureScore struct {
	Halftime  goalPair `json:"halftime"`
	Fulltime  goalPair `json:"fulltime"`
	Extratime goalPair `json:"extratime"`
	Penalty   goalPair `json:"penalty"`
}

type teamItem struct {
	Team  teamCore  `json:"team"`
	Venue teamVenue `json:"venue"`
}

type teamCore struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Founded  int    `json:"founded"`
	National bool   `json:"national"`
	Logo     string `json:"logo"`
}

type teamVenue struct {
	ID       *int64 `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

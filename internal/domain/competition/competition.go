package competition

import (
	"sort"
	"strings"
)

// Competition is one supported tournament, addressed by a short key.
type Competition struct {
	Key      string
	LeagueID int64
	Name     string
}

// Table is a read-only mapping of competition keys to provider league ids. It
// is injected into the sync service so tests can substitute their own table.
type Table map[string]Competition

// DefaultTable lists the competitions the tracker supports out of the box.
// Deployments can override or extend it through configuration.
func DefaultTable() Table {
	return Table{
		"brasileirao_a":  {Key: "brasileirao_a", LeagueID: 71, Name: "Brasileirão Série A"},
		"brasileirao_b":  {Key: "brasileirao_b", LeagueID: 72, Name: "Brasileirão Série B"},
		"copa_do_brasil": {Key: "copa_do_brasil", LeagueID: 73, Name: "Copa do Brasil"},
		"libertadores":   {Key: "libertadores", LeagueID: 13, Name: "Copa Libertadores"},
		"sul_americana":  {Key: "sul_americana", LeagueID: 11, Name: "Copa Sul-Americana"},
	}
}

// Resolve looks up a competition by key.
func (t Table) Resolve(key string) (Competition, bool) {
	c, ok := t[strings.ToLower(strings.TrimSpace(key))]
	return c, ok
}

// Keys returns the supported keys in stable order.
func (t Table) Keys() []string {
	out := make([]string, 0, len(t))
	for key := range t {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

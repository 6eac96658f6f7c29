package team

import "time"

// Team is a club as reported by the sport data provider.
type Team struct {
	TeamID    int64
	Name      string
	Country   string
	Founded   int
	LogoURL   string
	CreatedAt time.Time
}

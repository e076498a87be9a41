package entity

import "time"

// Team is one side of a sporting fixture
type Team struct {
	FullName     string
	Abbreviation string // Key of the team's logo asset
	City         string
	Conference   string
}

// Event is a sporting fixture between a home and a visiting team
type Event struct {
	ID          string
	HomeTeam    Team
	VisitorTeam Team
	StartsAt    *time.Time
}

// Team returns the team playing on the given side
func (e *Event) Team(side TeamSide) (Team, bool) {
	switch side {
	case TeamSideHome:
		return e.HomeTeam, true
	case TeamSideVisitor:
		return e.VisitorTeam, true
	default:
		return Team{}, false
	}
}

// Fixture renders the one-line "<visitor> @ <home>" summary
func (e *Event) Fixture() string {
	return e.VisitorTeam.FullName + " @ " + e.HomeTeam.FullName
}

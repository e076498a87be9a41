package entity

import "time"

// LogoSize is the rendered width and height of a team logo, in pixels
const LogoSize = 24

// Logo is a team logo that was confirmed to exist
type Logo struct {
	URL  string
	Alt  string
	Size int
}

// NewLogo builds a logo for the given team with accessible alt text
func NewLogo(url, teamName string) *Logo {
	return &Logo{
		URL:  url,
		Alt:  teamName + " logo",
		Size: LogoSize,
	}
}

// LogoProbe is the cached outcome of an asset existence probe
type LogoProbe struct {
	URL       string    `json:"url"`
	Exists    bool      `json:"exists"`
	CheckedAt time.Time `json:"checkedAt"`
}

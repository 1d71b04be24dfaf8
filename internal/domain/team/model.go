package team

import "fmt"

// Team is a club registered for one season.
type Team struct {
	ID             string
	SeasonID       string
	Name           string
	Short          string
	LogoURL        string
	PrimaryColor   string
	SecondaryColor string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.SeasonID == "" {
		return fmt.Errorf("team season id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

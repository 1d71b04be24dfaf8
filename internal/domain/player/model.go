package player

import (
	"fmt"
	"time"
)

// Position groups players into the two registration categories the league
// tracks. Outfield covers defenders, midfielders and forwards alike.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionOutfield   Position = "OUT"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionOutfield:   {},
}

// ContractStatus drives transfer eligibility. See the transfer package for
// the state machine built on top of it.
type ContractStatus string

const (
	ContractFreeAgent ContractStatus = "free_agent"
	ContractNormal    ContractStatus = "normal"
	ContractSeasonal  ContractStatus = "seasonal"
)

var AllContractStatuses = map[ContractStatus]struct{}{
	ContractFreeAgent: {},
	ContractNormal:    {},
	ContractSeasonal:  {},
}

// Contract binds a player to a team. EndsAt nil means open-ended.
type Contract struct {
	TeamID   string
	SeasonID string
	StartsAt time.Time
	EndsAt   *time.Time
	Value    int64
}

// Player is a registered athlete. An empty TeamID means free agent.
type Player struct {
	ID             string
	Name           string
	Position       Position
	TeamID         string
	ContractStatus ContractStatus
	Contract       *Contract
	PhotoURL       string
}

func (p Player) IsFreeAgent() bool {
	return p.TeamID == ""
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if _, ok := AllContractStatuses[p.ContractStatus]; !ok {
		return fmt.Errorf("invalid contract status: %s", p.ContractStatus)
	}

	// Free agency and team assignment must agree in both directions.
	if p.ContractStatus == ContractFreeAgent && p.TeamID != "" {
		return fmt.Errorf("free agent cannot have a team assignment")
	}
	if p.ContractStatus != ContractFreeAgent && p.TeamID == "" {
		return fmt.Errorf("contracted player must have a team assignment")
	}
	if p.ContractStatus == ContractSeasonal && p.Contract == nil {
		return fmt.Errorf("seasonal contract status requires contract details")
	}

	// Contract.TeamID and TeamID may legitimately diverge: a loan moves the
	// player while the parent contract stays put. No cross-check here.

	return nil
}

package models

import (
	"time"

	"github.com/mwalsh-dev/statduel/pkg/database"
	"gorm.io/gorm"
)

// Player is one fully merged season line for an athlete. Stats are kept as the
// strings scraped from the source tables; consumers parse them as needed.
type Player struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PlayerName string `gorm:"size:100;uniqueIndex;not null" json:"player_name"`
	TeamAbbr   string `gorm:"size:10" json:"team_abbr"`
	ImageURL   string `gorm:"size:255" json:"image_url,omitempty"`

	PointsPerGame                string `gorm:"size:20" json:"points_per_game"`
	AssistsPerGame               string `gorm:"size:20" json:"assists_per_game"`
	ReboundsPerGame              string `gorm:"size:20" json:"rebounds_per_game"`
	BlocksPerGame                string `gorm:"size:20" json:"blocks_per_game"`
	StealsPerGame                string `gorm:"size:20" json:"steals_per_game"`
	TurnoversPerGame             string `gorm:"size:20" json:"turnovers_per_game"`
	FieldGoalPercentage          string `gorm:"size:20" json:"field_goal_percentage"`
	ThreePointPercentage         string `gorm:"size:20" json:"three_point_percentage"`
	FreeThrowPercentage          string `gorm:"size:20" json:"free_throw_percentage"`
	EffectiveFieldGoalPercentage string `gorm:"size:20" json:"effective_field_goal_percentage"`
	ThreePointersPerGame         string `gorm:"size:20" json:"three_pointers_per_game"`
	MinutesPlayedPerGame         string `gorm:"size:20" json:"minutes_played_per_game"`
	PlayerEfficiencyRating       string `gorm:"size:20" json:"player_efficiency_rating"`
	BoxPlusMinus                 string `gorm:"size:20" json:"box_plus_minus"`
	UsageRate                    string `gorm:"size:20" json:"usage_rate"`
	TotalMinutesPlayed           string `gorm:"size:20" json:"total_minutes_played"`
	TotalPoints                  string `gorm:"size:20" json:"total_points"`
	TotalRebounds                string `gorm:"size:20" json:"total_rebounds"`
	TotalAssists                 string `gorm:"size:20" json:"total_assists"`
	TotalFieldGoals              string `gorm:"size:20" json:"total_field_goals"`
	TotalThreePointers           string `gorm:"size:20" json:"total_three_pointers"`
	TotalSteals                  string `gorm:"size:20" json:"total_steals"`
	TotalBlocks                  string `gorm:"size:20" json:"total_blocks"`
	TotalTurnovers               string `gorm:"size:20" json:"total_turnovers"`
	TripleDoubles                string `gorm:"size:20" json:"triple_doubles"`

	CreatedAt time.Time `json:"created_at"`
}

func (Player) TableName() string {
	return "players"
}

// Stat returns the raw string value for a category key, "" for unknown keys.
func (p *Player) Stat(key string) string {
	switch key {
	case "points_per_game":
		return p.PointsPerGame
	case "assists_per_game":
		return p.AssistsPerGame
	case "rebounds_per_game":
		return p.ReboundsPerGame
	case "blocks_per_game":
		return p.BlocksPerGame
	case "steals_per_game":
		return p.StealsPerGame
	case "turnovers_per_game":
		return p.TurnoversPerGame
	case "field_goal_percentage":
		return p.FieldGoalPercentage
	case "three_point_percentage":
		return p.ThreePointPercentage
	case "free_throw_percentage":
		return p.FreeThrowPercentage
	case "effective_field_goal_percentage":
		return p.EffectiveFieldGoalPercentage
	case "three_pointers_per_game":
		return p.ThreePointersPerGame
	case "minutes_played_per_game":
		return p.MinutesPlayedPerGame
	case "player_efficiency_rating":
		return p.PlayerEfficiencyRating
	case "box_plus_minus":
		return p.BoxPlusMinus
	case "usage_rate":
		return p.UsageRate
	case "total_minutes_played":
		return p.TotalMinutesPlayed
	case "total_points":
		return p.TotalPoints
	case "total_rebounds":
		return p.TotalRebounds
	case "total_assists":
		return p.TotalAssists
	case "total_field_goals":
		return p.TotalFieldGoals
	case "total_three_pointers":
		return p.TotalThreePointers
	case "total_steals":
		return p.TotalSteals
	case "total_blocks":
		return p.TotalBlocks
	case "total_turnovers":
		return p.TotalTurnovers
	case "triple_doubles":
		return p.TripleDoubles
	default:
		return ""
	}
}

// SetStat assigns the value for a category key. Unknown keys are ignored,
// mirroring the missing-column tolerance of the extractor.
func (p *Player) SetStat(key, value string) {
	switch key {
	case "points_per_game":
		p.PointsPerGame = value
	case "assists_per_game":
		p.AssistsPerGame = value
	case "rebounds_per_game":
		p.ReboundsPerGame = value
	case "blocks_per_game":
		p.BlocksPerGame = value
	case "steals_per_game":
		p.StealsPerGame = value
	case "turnovers_per_game":
		p.TurnoversPerGame = value
	case "field_goal_percentage":
		p.FieldGoalPercentage = value
	case "three_point_percentage":
		p.ThreePointPercentage = value
	case "free_throw_percentage":
		p.FreeThrowPercentage = value
	case "effective_field_goal_percentage":
		p.EffectiveFieldGoalPercentage = value
	case "three_pointers_per_game":
		p.ThreePointersPerGame = value
	case "minutes_played_per_game":
		p.MinutesPlayedPerGame = value
	case "player_efficiency_rating":
		p.PlayerEfficiencyRating = value
	case "box_plus_minus":
		p.BoxPlusMinus = value
	case "usage_rate":
		p.UsageRate = value
	case "total_minutes_played":
		p.TotalMinutesPlayed = value
	case "total_points":
		p.TotalPoints = value
	case "total_rebounds":
		p.TotalRebounds = value
	case "total_assists":
		p.TotalAssists = value
	case "total_field_goals":
		p.TotalFieldGoals = value
	case "total_three_pointers":
		p.TotalThreePointers = value
	case "total_steals":
		p.TotalSteals = value
	case "total_blocks":
		p.TotalBlocks = value
	case "total_turnovers":
		p.TotalTurnovers = value
	case "triple_doubles":
		p.TripleDoubles = value
	}
}

// ReplaceAllPlayers swaps the full player table for a fresh ingestion result in
// a single transaction, so a failed run never leaves the table half-empty.
func ReplaceAllPlayers(db *database.DB, players []Player) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Player{}).Error; err != nil {
			return err
		}
		if len(players) == 0 {
			return nil
		}
		return tx.CreateInBatches(players, 100).Error
	})
}

// GetAllPlayers fetches every player in insertion order.
func GetAllPlayers(db *database.DB) ([]Player, error) {
	var players []Player
	err := db.Order("id ASC").Find(&players).Error
	return players, err
}

// GetPlayerByID fetches one player by surrogate id.
func GetPlayerByID(db *database.DB, id uint) (*Player, error) {
	var player Player
	err := db.First(&player, id).Error
	return &player, err
}

// CountPlayers returns the current size of the player pool.
func CountPlayers(db *database.DB) (int64, error) {
	var count int64
	err := db.Model(&Player{}).Count(&count).Error
	return count, err
}

package models

// Action is a static catalog row, read-only at runtime. Level and the
// required evolution stage are both 1-3.
type Action struct {
	ActionID       uint   `gorm:"primaryKey" json:"action_id"`
	Name           string `gorm:"size:30;not null" json:"name"`
	Price          int64  `gorm:"not null" json:"price"`
	ActionLevel    int    `gorm:"not null;default:1" json:"action_level"`
	EvolutionStage int    `gorm:"not null;default:1" json:"evolution_stage"`
	Category       string `gorm:"size:10;not null;index" json:"category"`
}

func (Action) TableName() string {
	return "actions"
}

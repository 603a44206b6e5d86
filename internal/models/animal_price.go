package models

// AnimalPrice is the static price sheet: base price per (category, tier) with
// flat increments for evolution stages 2 and 3.
type AnimalPrice struct {
	Category        string `gorm:"size:20;primaryKey" json:"category"`
	Tier            string `gorm:"size:20;primaryKey" json:"tier"`
	BasePrice       int64  `gorm:"not null" json:"base_price"`
	Stage2Increment int64  `gorm:"not null" json:"stage2_increment"`
	Stage3Increment int64  `gorm:"not null" json:"stage3_increment"`
}

func (AnimalPrice) TableName() string {
	return "animal_prices"
}

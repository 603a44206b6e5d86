package models

// EmotionMessage maps an action category and a reaction level to the line the
// animal says after a care action.
type EmotionMessage struct {
	EmotionMessageID uint   `gorm:"primaryKey" json:"emotion_message_id"`
	Category         string `gorm:"size:10;not null;index" json:"category"`
	Level            int    `gorm:"not null" json:"level"`
	Message          string `gorm:"size:255;not null" json:"message"`
}

func (EmotionMessage) TableName() string {
	return "emotion_messages"
}

package database

import (
	"tamapet/internal/domain"
	"tamapet/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed upserts the static catalogs (actions, prices, attendance rewards,
// minigames, emotion messages). Safe to run on every startup.
func Seed(db *gorm.DB) error {
	actions := []models.Action{
		{ActionID: 1, Name: "Snack", Price: 30, ActionLevel: 1, EvolutionStage: 1, Category: domain.CategoryFeed},
		{ActionID: 2, Name: "Meal", Price: 70, ActionLevel: 2, EvolutionStage: 2, Category: domain.CategoryFeed},
		{ActionID: 3, Name: "Feast", Price: 120, ActionLevel: 3, EvolutionStage: 3, Category: domain.CategoryFeed},
		{ActionID: 4, Name: "Ball", Price: 20, ActionLevel: 1, EvolutionStage: 1, Category: domain.CategoryPlay},
		{ActionID: 5, Name: "Frisbee", Price: 60, ActionLevel: 2, EvolutionStage: 2, Category: domain.CategoryPlay},
		{ActionID: 6, Name: "Picnic", Price: 110, ActionLevel: 3, EvolutionStage: 3, Category: domain.CategoryPlay},
		{ActionID: 7, Name: "Flower", Price: 50, ActionLevel: 1, EvolutionStage: 1, Category: domain.CategoryGift},
		{ActionID: 8, Name: "Toy", Price: 120, ActionLevel: 2, EvolutionStage: 2, Category: domain.CategoryGift},
		{ActionID: 9, Name: "Jewel", Price: 200, ActionLevel: 3, EvolutionStage: 3, Category: domain.CategoryGift},
	}

	prices := []models.AnimalPrice{
		{Category: domain.CategoryFeed, Tier: "basic", BasePrice: 30, Stage2Increment: 10, Stage3Increment: 20},
		{Category: domain.CategoryFeed, Tier: "standard", BasePrice: 60, Stage2Increment: 10, Stage3Increment: 20},
		{Category: domain.CategoryFeed, Tier: "deluxe", BasePrice: 90, Stage2Increment: 10, Stage3Increment: 20},
		{Category: domain.CategoryPlay, Tier: "basic", BasePrice: 20, Stage2Increment: 10, Stage3Increment: 20},
		{Category: domain.CategoryPlay, Tier: "standard", BasePrice: 50, Stage2Increment: 10, Stage3Increment: 20},
		{Category: domain.CategoryPlay, Tier: "deluxe", BasePrice: 80, Stage2Increment: 10, Stage3Increment: 20},
		{Category: domain.CategoryGift, Tier: "basic", BasePrice: 50, Stage2Increment: 20, Stage3Increment: 30},
		{Category: domain.CategoryGift, Tier: "standard", BasePrice: 100, Stage2Increment: 20, Stage3Increment: 30},
		{Category: domain.CategoryGift, Tier: "deluxe", BasePrice: 150, Stage2Increment: 20, Stage3Increment: 30},
	}

	rewards := []models.AttendanceReward{
		{AttendanceRewardID: 1, RewardAmount: 100, RewardType: "money"},
		{AttendanceRewardID: 2, RewardAmount: 100, RewardType: "money"},
		{AttendanceRewardID: 3, RewardAmount: 150, RewardType: "money"},
		{AttendanceRewardID: 4, RewardAmount: 150, RewardType: "money"},
		{AttendanceRewardID: 5, RewardAmount: 200, RewardType: "money"},
		{AttendanceRewardID: 6, RewardAmount: 200, RewardType: "money"},
		{AttendanceRewardID: 7, RewardAmount: 300, RewardType: "money"},
	}

	games := []models.Minigame{
		{MinigameID: 1, Name: "Wing Flap", Description: "Tap to keep the chick airborne", MaxPlay: 3},
		{MinigameID: 2, Name: "Bone Catch", Description: "Catch falling bones with the shiba", MaxPlay: 3},
	}

	messages := []models.EmotionMessage{
		{EmotionMessageID: 1, Category: domain.CategoryFeed, Level: 1, Message: "...not hungry right now."},
		{EmotionMessageID: 2, Category: domain.CategoryFeed, Level: 2, Message: "Yum, thanks!"},
		{EmotionMessageID: 3, Category: domain.CategoryFeed, Level: 3, Message: "That was delicious!!"},
		{EmotionMessageID: 4, Category: domain.CategoryPlay, Level: 1, Message: "...maybe later."},
		{EmotionMessageID: 5, Category: domain.CategoryPlay, Level: 2, Message: "That was fun!"},
		{EmotionMessageID: 6, Category: domain.CategoryPlay, Level: 3, Message: "Best day ever!!"},
		{EmotionMessageID: 7, Category: domain.CategoryGift, Level: 1, Message: "...what is this?"},
		{EmotionMessageID: 8, Category: domain.CategoryGift, Level: 2, Message: "For me? Thank you!"},
		{EmotionMessageID: 9, Category: domain.CategoryGift, Level: 3, Message: "I'll treasure it forever!!"},
	}

	for _, batch := range []any{&actions, &prices, &rewards, &games, &messages} {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(batch).Error; err != nil {
			return err
		}
	}
	log.Debug("static catalogs seeded")
	return nil
}

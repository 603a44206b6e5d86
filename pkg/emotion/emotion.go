// Package emotion is the client for the external emotion-model service. The
// model maps a fixed 16-field feature vector to a predicted emotional delta;
// its internals are opaque to the backend.
package emotion

import "context"

// FeatureVector is the model's input contract. Field order, names and types
// are fixed; none are optional. Exactly one animal_type_* flag and exactly
// one action_* flag must be set to 1.
type FeatureVector struct {
	CurrentEmotion    int     `json:"current_emotion"`
	ActionCount       int     `json:"action_count"`
	UserPatternBias   float64 `json:"user_pattern_bias"`
	DaysSinceLastCare int     `json:"days_since_last_care"`

	AnimalTypeChick int `json:"animal_type_chick"`
	AnimalTypeDuck  int `json:"animal_type_duck"`
	AnimalTypeShiba int `json:"animal_type_shiba"`

	ActionFeed1 int `json:"action_feed1"`
	ActionFeed2 int `json:"action_feed2"`
	ActionFeed3 int `json:"action_feed3"`
	ActionPlay1 int `json:"action_play1"`
	ActionPlay2 int `json:"action_play2"`
	ActionPlay3 int `json:"action_play3"`
	ActionGift1 int `json:"action_gift1"`
	ActionGift2 int `json:"action_gift2"`
	ActionGift3 int `json:"action_gift3"`
}

// SetSpecies sets the one-hot species flag.
func (f *FeatureVector) SetSpecies(species string) {
	f.AnimalTypeChick = 0
	f.AnimalTypeDuck = 0
	f.AnimalTypeShiba = 0
	switch species {
	case "chick":
		f.AnimalTypeChick = 1
	case "duck":
		f.AnimalTypeDuck = 1
	case "shiba":
		f.AnimalTypeShiba = 1
	}
}

// SetAction sets the one-hot action flag for a category and level (1-3).
func (f *FeatureVector) SetAction(category string, level int) {
	type key struct {
		cat   string
		level int
	}
	fields := map[key]*int{
		{"feed", 1}: &f.ActionFeed1, {"feed", 2}: &f.ActionFeed2, {"feed", 3}: &f.ActionFeed3,
		{"play", 1}: &f.ActionPlay1, {"play", 2}: &f.ActionPlay2, {"play", 3}: &f.ActionPlay3,
		{"gift", 1}: &f.ActionGift1, {"gift", 2}: &f.ActionGift2, {"gift", 3}: &f.ActionGift3,
	}
	if p, ok := fields[key{category, level}]; ok {
		*p = 1
	}
}

// Predictor returns the predicted emotional delta for a feature vector. The
// sign and magnitude are unconstrained.
type Predictor interface {
	Predict(ctx context.Context, features FeatureVector) (float64, error)
}

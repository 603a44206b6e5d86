package domain

import "time"

// Action categories.
const (
	CategoryFeed = "feed"
	CategoryPlay = "play"
	CategoryGift = "gift"
)

// Categories lists every valid action category.
var Categories = []string{CategoryFeed, CategoryPlay, CategoryGift}

// Animal species, one per slot.
const (
	SpeciesShiba = "shiba"
	SpeciesChick = "chick"
	SpeciesDuck  = "duck"
)

// Animal slots. Each user owns at most one animal per slot, and the species
// per slot is fixed.
const (
	SlotShiba = 1
	SlotChick = 2
	SlotDuck  = 3
)

// SpeciesForSlot maps an animal slot to its fixed species.
var SpeciesForSlot = map[int]string{
	SlotShiba: SpeciesShiba,
	SlotChick: SpeciesChick,
	SlotDuck:  SpeciesDuck,
}

// BirthdayForSlot maps an animal slot to its fixed species birthday.
var BirthdayForSlot = map[int]time.Time{
	SlotShiba: time.Date(2001, time.January, 4, 0, 0, 0, 0, time.UTC),
	SlotChick: time.Date(2003, time.December, 22, 0, 0, 0, 0, time.UTC),
	SlotDuck:  time.Date(2004, time.April, 19, 0, 0, 0, 0, time.UTC),
}

// Emotion bounds and evolution thresholds.
const (
	EmotionMin = 0
	EmotionMax = 100

	// Evolution stage is derived from emotion: stage 2 from 70, stage 3 from 90.
	Stage2Threshold = 70
	Stage3Threshold = 90
)

// Money transaction directions.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Money transaction source tags.
const (
	SourceCare       = "care"
	SourceAttendance = "attendance"
	SourceBirthday   = "birthday"
	SourceMinigame   = "minigame"
	SourceReturn     = "runaway_return"
)

// AttendanceCycle is the length of the repeating attendance reward board.
const AttendanceCycle = 7

// EvolutionStageFor derives the evolution stage from an emotion value.
func EvolutionStageFor(emotion int64) int {
	switch {
	case emotion >= Stage3Threshold:
		return 3
	case emotion >= Stage2Threshold:
		return 2
	default:
		return 1
	}
}

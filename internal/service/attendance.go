package service

import (
	"context"
	"errors"
	"time"

	"tamapet/internal/domain"
	"tamapet/internal/models"
	"tamapet/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceService handles the daily check-in and the reward board. The
// reward tier repeats on a 7-day cycle: ((count-1) mod 7) + 1.
type AttendanceService struct {
	db         *gorm.DB
	loc        *time.Location
	attendance *repository.AttendanceRepository
	ledger     *LedgerService
}

func NewAttendanceService(db *gorm.DB, loc *time.Location, attendance *repository.AttendanceRepository, ledger *LedgerService) *AttendanceService {
	return &AttendanceService{db: db, loc: loc, attendance: attendance, ledger: ledger}
}

// BoardItem is one day of the attendance board.
type BoardItem struct {
	Day       int   `json:"day"`
	Reward    int64 `json:"reward"`
	CheckedIn bool  `json:"checked_in"`
}

// BoardData is the attendance view: whether today's check-in happened, the
// running total, today's tier and reward, and the 7-day board.
type BoardData struct {
	AlreadyCheckedIn bool        `json:"already_checked_in"`
	TotalAttendance  int         `json:"total_attendance"`
	TodayIndex       int         `json:"today_index"`
	TodayReward      int64       `json:"today_reward"`
	Board            []BoardItem `json:"board"`
}

// rewardIndex maps a cumulative check-in count to its board day.
func rewardIndex(count int) int {
	return (count-1)%domain.AttendanceCycle + 1
}

// Board returns the attendance view without checking in.
func (s *AttendanceService) Board(ctx context.Context, userID uuid.UUID) (*BoardData, error) {
	logs, err := s.attendance.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	rewards, err := s.attendance.ListRewards()
	if err != nil {
		return nil, err
	}

	today := dayStart(time.Now(), s.loc)
	total := len(logs)
	already := false
	for _, l := range logs {
		if dayStart(l.Date, s.loc).Equal(today) {
			already = true
			break
		}
	}

	// Today's tier: the current count if already checked in, otherwise the
	// count the next check-in would reach.
	count := total
	if !already {
		count = total + 1
	}
	index := rewardIndex(count)

	data := &BoardData{
		AlreadyCheckedIn: already,
		TotalAttendance:  total,
		TodayIndex:       index,
		Board:            make([]BoardItem, 0, len(rewards)),
	}
	checked := make(map[int]bool, len(logs))
	for _, l := range logs {
		checked[l.AttendanceRewardID] = true
	}
	for _, r := range rewards {
		if r.AttendanceRewardID == index {
			data.TodayReward = r.RewardAmount
		}
		data.Board = append(data.Board, BoardItem{
			Day:       r.AttendanceRewardID,
			Reward:    r.RewardAmount,
			CheckedIn: checked[r.AttendanceRewardID],
		})
	}
	return data, nil
}

// CheckIn records today's attendance and credits the tier reward through the
// ledger. At most one check-in per calendar day.
func (s *AttendanceService) CheckIn(ctx context.Context, userID uuid.UUID) (*BoardData, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attendance := s.attendance.WithTx(tx)

		today := dayStart(time.Now(), s.loc)
		existing, err := attendance.GetForDate(userID, today)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.Conflict("already checked in today")
		}

		total, err := attendance.CountByUser(userID)
		if err != nil {
			return err
		}
		index := rewardIndex(int(total) + 1)

		reward, err := attendance.GetReward(index)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := attendance.CreateLog(&models.AttendanceLog{
			Date:               today,
			UserID:             userID,
			AttendanceRewardID: index,
		}); err != nil {
			return err
		}

		if reward != nil && reward.RewardAmount > 0 {
			if _, err := s.ledger.Apply(tx, userID, reward.RewardAmount, domain.SourceAttendance); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Board(ctx, userID)
}

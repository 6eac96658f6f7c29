package usecase

import (
	"context"
	"fmt"

	"github.com/rbarros/matchday/internal/domain/attendance"
)

type StatsService struct {
	attendanceRepo attendance.Repository
}

func NewStatsService(attendanceRepo attendance.Repository) *StatsService {
	return &StatsService{attendanceRepo: attendanceRepo}
}

// Statistics aggregates the attendance history. A zero teamID means all
// teams; the win/draw/loss record is only computed for a specific team.
func (s *StatsService) Statistics(ctx context.Context, teamID int64) (attendance.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Statistics")
	defer span.End()

	if teamID < 0 {
		return attendance.Stats{}, fmt.Errorf("%w: team id must not be negative", ErrInvalidInput)
	}

	stats, err := s.attendanceRepo.Statistics(ctx, teamID)
	if err != nil {
		return attendance.Stats{}, fmt.Errorf("aggregate attendance statistics: %w", err)
	}

	return stats, nil
}

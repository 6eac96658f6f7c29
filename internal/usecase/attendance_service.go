package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rbarros/matchday/internal/domain/attendance"
	"github.com/rbarros/matchday/internal/platform/logging"
)

type AttendanceService struct {
	attendanceRepo attendance.Repository
	logger         *logging.Logger
}

func NewAttendanceService(attendanceRepo attendance.Repository, logger *logging.Logger) *AttendanceService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AttendanceService{attendanceRepo: attendanceRepo, logger: logger}
}

// Mark records that the user attended a fixture. It returns false, without an
// error, when the fixture was already marked.
func (s *AttendanceService) Mark(ctx context.Context, fixtureID int64, notes string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.Mark")
	defer span.End()

	if fixtureID <= 0 {
		return false, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	outcome, err := s.attendanceRepo.Mark(ctx, fixtureID, notes)
	if err != nil {
		if errors.Is(err, attendance.ErrFixtureMissing) {
			return false, fmt.Errorf("%w: fixture=%d", ErrNotFound, fixtureID)
		}
		return false, fmt.Errorf("mark attendance fixture=%d: %w", fixtureID, err)
	}
	if outcome == attendance.MarkAlreadyExists {
		s.logger.DebugContext(ctx, "fixture already marked as attended", "fixture_id", fixtureID)
		return false, nil
	}

	return true, nil
}

// Unmark removes an attendance mark. It returns false when no mark existed.
func (s *AttendanceService) Unmark(ctx context.Context, fixtureID int64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.Unmark")
	defer span.End()

	if fixtureID <= 0 {
		return false, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	removed, err := s.attendanceRepo.Unmark(ctx, fixtureID)
	if err != nil {
		return false, fmt.Errorf("unmark attendance fixture=%d: %w", fixtureID, err)
	}

	return removed, nil
}

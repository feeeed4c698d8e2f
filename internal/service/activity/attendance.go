package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// CheckAttendance records the caller's check-in for today and grants the
// attendance reward. A second check-in on the same day yields
// ErrAlreadyCheckedIn.
func (s *Service) CheckAttendance(ctx context.Context) (*domain.Attendance, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	a := domain.Attendance{
		ID:         uuid.New(),
		UserID:     userID,
		AttendedOn: domain.DayOf(now, s.cfg.Location),
		CreatedAt:  now,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.attendance.Create(txCtx, a); err != nil {
			return fmt.Errorf("create attendance: %w", err)
		}
		err := s.rewards.Grant(txCtx, domain.RewardGrant{
			UserID:    userID,
			Source:    domain.RewardSourceAttendance,
			SourceID:  a.ID,
			GrantedOn: a.AttendedOn,
			Exp:       s.cfg.AttendanceExp,
			Points:    s.cfg.AttendancePoints,
		})
		if err != nil {
			return fmt.Errorf("grant attendance reward: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "attendance checked", slog.String("user_id", userID.String()))

	return &a, nil
}

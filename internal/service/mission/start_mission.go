package mission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// StartMission opens the caller's attempt at a mission and moves it straight
// to IN_PROGRESS. A user holds at most one attempt per mission.
func (s *Service) StartMission(ctx context.Context, input StartMissionInput) (*domain.UserMission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var um *domain.UserMission
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m, err := s.missions.GetMission(txCtx, input.MissionID)
		if err != nil {
			return fmt.Errorf("get mission: %w", err)
		}
		if m.IsDeleted() {
			return fmt.Errorf("mission %s: %w", m.ID, domain.ErrDeleted)
		}

		now := s.now()
		um = &domain.UserMission{
			ID:        uuid.New(),
			UserID:    userID,
			MissionID: m.ID,
			State:     domain.UserMissionStateNotStarted,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.missions.CreateUserMission(txCtx, um); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("mission %s already started: %w", m.ID, domain.ErrConflict)
			}
			return fmt.Errorf("create user mission: %w", err)
		}

		return s.transition(txCtx, um, domain.UserMissionStateInProgress, now)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.MissionTransition(domain.UserMissionStateNotStarted, domain.UserMissionStateInProgress)
	s.log.InfoContext(ctx, "mission started",
		slog.String("user_id", userID.String()),
		slog.String("user_mission_id", um.ID.String()),
	)

	return um, nil
}

// transition applies next to um and persists the new state together with
// its log entry. It must run inside a transaction.
func (s *Service) transition(ctx context.Context, um *domain.UserMission, next domain.UserMissionState, now time.Time) error {
	entry, err := um.Transition(next, now)
	if err != nil {
		return err
	}
	if err := s.missions.UpdateState(ctx, um.ID, um.State, now); err != nil {
		return fmt.Errorf("update state: %w", err)
	}
	if err := s.missions.AppendLog(ctx, entry); err != nil {
		return fmt.Errorf("append state log: %w", err)
	}
	return nil
}

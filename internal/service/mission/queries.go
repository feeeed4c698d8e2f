package mission

import (
	"context"
	"fmt"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// GetUserMission returns one of the caller's user missions.
func (s *Service) GetUserMission(ctx context.Context, input UserMissionInput) (*domain.UserMission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	um, err := s.missions.GetUserMission(ctx, userID, input.UserMissionID)
	if err != nil {
		return nil, fmt.Errorf("get user mission: %w", err)
	}
	return um, nil
}

// ListStateLogs returns the transition history of one of the caller's user
// missions, oldest first.
func (s *Service) ListStateLogs(ctx context.Context, input UserMissionInput) ([]domain.UserMissionStateLog, error) {
	um, err := s.GetUserMission(ctx, input)
	if err != nil {
		return nil, err
	}

	logs, err := s.missions.ListLogs(ctx, um.ID)
	if err != nil {
		return nil, fmt.Errorf("list state logs: %w", err)
	}
	return logs, nil
}

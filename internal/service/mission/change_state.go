package mission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// ChangeState moves one of the caller's user missions to input.Next. The
// row is locked for the whole transaction so the state, its log entry and
// any reward commit together. Entering REWARD_RECEIVED pays the mission
// reward exactly once.
func (s *Service) ChangeState(ctx context.Context, input ChangeStateInput) (*domain.UserMission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		um   *domain.UserMission
		prev domain.UserMissionState
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		um, err = s.missions.GetUserMissionForUpdate(txCtx, userID, input.UserMissionID)
		if err != nil {
			return fmt.Errorf("get user mission: %w", err)
		}
		prev = um.State

		now := s.now()
		if err := s.transition(txCtx, um, input.Next, now); err != nil {
			return err
		}

		if um.State != domain.UserMissionStateRewardReceived {
			return nil
		}

		m, err := s.missions.GetMission(txCtx, um.MissionID)
		if err != nil {
			return fmt.Errorf("get mission: %w", err)
		}
		err = s.rewards.Grant(txCtx, domain.RewardGrant{
			UserID:    userID,
			Source:    domain.RewardSourceMission,
			SourceID:  um.ID,
			GrantedOn: domain.DayOf(now, s.loc),
			Exp:       m.RewardExp,
			Points:    m.RewardPoints,
		})
		if err != nil {
			return fmt.Errorf("grant mission reward: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.MissionTransition(prev, um.State)
	s.log.InfoContext(ctx, "user mission state changed",
		slog.String("user_mission_id", um.ID.String()),
		slog.String("from", prev.String()),
		slog.String("to", um.State.String()),
	)

	return um, nil
}

// ReceiveReward claims the reward of a mission whose feedback is complete.
func (s *Service) ReceiveReward(ctx context.Context, input ReceiveRewardInput) (*domain.UserMission, error) {
	return s.ChangeState(ctx, ChangeStateInput{
		UserMissionID: input.UserMissionID,
		Next:          domain.UserMissionStateRewardReceived,
	})
}

package quest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// CompleteQuest validates the quest condition and marks the caller's user
// quest as completed, granting the quest reward once per reset cycle. The row stays locked
// from read to write so concurrent completions and resets serialize.
func (s *Service) CompleteQuest(ctx context.Context, input CompleteQuestInput) (*QuestSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		summary   QuestSummary
		questType domain.QuestType
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		uq, err := s.userQuests.GetByIDForUpdate(txCtx, userID, input.UserQuestID)
		if err != nil {
			return fmt.Errorf("get user quest: %w", err)
		}
		if uq.Completed {
			return domain.ErrQuestAlreadyCompleted
		}

		q, err := s.quests.GetByID(txCtx, uq.QuestID)
		if err != nil {
			return fmt.Errorf("get quest: %w", err)
		}
		if q.IsDeleted() {
			return fmt.Errorf("quest %s: %w", q.ID, domain.ErrDeleted)
		}
		questType = q.Type

		validator, err := s.registry.Get(q.Type)
		if err != nil {
			return err
		}
		valid, err := validator.IsValid(txCtx, *uq)
		if err != nil {
			return fmt.Errorf("validate %s: %w", q.Type, err)
		}
		if !valid {
			return domain.ErrQuestNotCompletable
		}

		now := s.now()
		if err := uq.Complete(now); err != nil {
			return err
		}
		if err := s.userQuests.MarkCompleted(txCtx, uq.ID, now); err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}

		err = s.rewards.Grant(txCtx, domain.RewardGrant{
			UserID:    userID,
			Source:    domain.RewardSourceQuest,
			SourceID:  uq.ID,
			GrantedOn: domain.DayOf(now, s.cfg.Location),
			Cycle:     uq.Cycle,
			Exp:       s.cfg.RewardExp,
			Points:    s.cfg.RewardPoints,
		})
		if err != nil {
			return fmt.Errorf("grant quest reward: %w", err)
		}

		view, err := s.userQuests.GetView(txCtx, uq.ID)
		if err != nil {
			return fmt.Errorf("load user quest: %w", err)
		}
		summary = toSummary(*view)
		return nil
	})
	if errors.Is(err, domain.ErrQuestNotCompletable) {
		s.metrics.QuestRejected(questType)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.QuestCompleted(questType)
	s.log.InfoContext(ctx, "quest completed",
		slog.String("user_id", userID.String()),
		slog.String("user_quest_id", input.UserQuestID.String()),
		slog.String("type", questType.String()),
	)

	return &summary, nil
}

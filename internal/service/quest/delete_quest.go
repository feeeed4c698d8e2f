package quest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// DeleteQuest soft-deletes a quest template (admin only). Existing user
// quests stay in place but can no longer be completed.
func (s *Service) DeleteQuest(ctx context.Context, input DeleteQuestInput) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return err
	}

	existing, err := s.quests.GetByID(ctx, input.QuestID)
	if err != nil {
		return fmt.Errorf("get quest: %w", err)
	}
	if existing.IsDeleted() {
		return fmt.Errorf("quest %s: %w", input.QuestID, domain.ErrDeleted)
	}

	if err := s.quests.SoftDelete(ctx, input.QuestID, s.now()); err != nil {
		return fmt.Errorf("delete quest: %w", err)
	}

	s.log.InfoContext(ctx, "quest deleted", slog.String("quest_id", input.QuestID.String()))

	return nil
}

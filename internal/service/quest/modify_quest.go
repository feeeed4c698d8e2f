package quest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// ModifyQuest edits the name and url of an active quest (admin only).
func (s *Service) ModifyQuest(ctx context.Context, input ModifyQuestInput) (*domain.Quest, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.quests.GetByID(ctx, input.QuestID)
	if err != nil {
		return nil, fmt.Errorf("get quest: %w", err)
	}
	if existing.IsDeleted() {
		return nil, fmt.Errorf("quest %s: %w", input.QuestID, domain.ErrDeleted)
	}

	q, err := s.quests.Update(ctx, input.QuestID, domain.QuestModifyParams{
		Name: strings.TrimSpace(input.Name),
		URL:  strings.TrimSpace(input.URL),
	})
	if err != nil {
		return nil, fmt.Errorf("update quest: %w", err)
	}

	s.log.InfoContext(ctx, "quest modified", slog.String("quest_id", q.ID.String()))

	return q, nil
}

package quest

import (
	"context"
	"fmt"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// GetAllQuests returns the caller's quests with their progress.
func (s *Service) GetAllQuests(ctx context.Context) ([]QuestSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	views, err := s.userQuests.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user quests: %w", err)
	}

	out := make([]QuestSummary, 0, len(views))
	for _, v := range views {
		out = append(out, toSummary(v))
	}
	return out, nil
}

package quest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/pkg/ctxutil"
)

// ResetQuests clears every completion flag in one transaction (admin only).
// It returns the number of user quests that were reset.
func (s *Service) ResetQuests(ctx context.Context) (int64, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return 0, domain.ErrForbidden
	}

	var n int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		n, err = s.userQuests.ResetAll(txCtx, s.now())
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("reset quests: %w", err)
	}

	s.metrics.QuestsReset(n)
	s.log.InfoContext(ctx, "quests reset", slog.Int64("reset", n))

	return n, nil
}

package quest

import (
	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

// Progress labels shown to users.
const (
	ProgressDone       = "완료"
	ProgressInProgress = "진행중"
)

// QuestSummary is the user-facing projection of a user quest.
type QuestSummary struct {
	UserQuestID uuid.UUID
	QuestID     uuid.UUID
	Username    string
	QuestName   string
	QuestType   domain.QuestType
	URL         string
	Completed   bool
	Progress    string
}

func toSummary(v domain.UserQuestView) QuestSummary {
	progress := ProgressInProgress
	if v.Completed {
		progress = ProgressDone
	}
	return QuestSummary{
		UserQuestID: v.ID,
		QuestID:     v.QuestID,
		Username:    v.Username,
		QuestName:   v.QuestName,
		QuestType:   v.QuestType,
		URL:         v.QuestURL,
		Completed:   v.Completed,
		Progress:    progress,
	}
}

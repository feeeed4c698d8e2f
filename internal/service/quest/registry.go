package quest

import (
	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

// Validators lists one validator per quest type.
type Validators struct {
	Attendance    QuestValidator
	QuestClear    QuestValidator
	MissionReward QuestValidator
	PraiseComment QuestValidator
	WriteDiary    QuestValidator
}

// NewValidators wires the standard validators to their evidence sources.
func NewValidators(
	clock DayClock,
	attendance attendanceChecker,
	userQuests completedQuestChecker,
	missions missionTransitionChecker,
	praise praiseCommentChecker,
	diaries diaryChecker,
) Validators {
	return Validators{
		Attendance:    NewAttendanceValidator(attendance, clock),
		QuestClear:    NewQuestClearValidator(userQuests),
		MissionReward: NewMissionRewardValidator(missions, clock),
		PraiseComment: NewPraiseCommentValidator(praise, clock),
		WriteDiary:    NewWriteDiaryValidator(diaries, clock),
	}
}

// Registry maps every quest type to its validator. It is built once at
// startup and read-only afterwards.
type Registry struct {
	byType map[domain.QuestType]QuestValidator
}

// NewRegistry builds the registry. Every value of domain.AllQuestTypes must
// resolve to a non-nil validator, otherwise construction fails with
// *domain.UnregisteredQuestTypeError.
func NewRegistry(v Validators) (*Registry, error) {
	types := domain.AllQuestTypes()
	byType := make(map[domain.QuestType]QuestValidator, len(types))

	for _, t := range types {
		var qv QuestValidator
		switch t {
		case domain.QuestTypeAttendance:
			qv = v.Attendance
		case domain.QuestTypeQuestClear:
			qv = v.QuestClear
		case domain.QuestTypeMissionReward:
			qv = v.MissionReward
		case domain.QuestTypePraiseComment:
			qv = v.PraiseComment
		case domain.QuestTypeWriteDiary:
			qv = v.WriteDiary
		}
		if qv == nil {
			return nil, &domain.UnregisteredQuestTypeError{Type: t}
		}
		byType[t] = qv
	}

	return &Registry{byType: byType}, nil
}

// Get returns the validator for t.
func (r *Registry) Get(t domain.QuestType) (QuestValidator, error) {
	v, ok := r.byType[t]
	if !ok {
		return nil, &domain.UnregisteredQuestTypeError{Type: t}
	}
	return v, nil
}

// Types returns the registered quest types in declaration order.
func (r *Registry) Types() []domain.QuestType {
	out := make([]domain.QuestType, 0, len(r.byType))
	for _, t := range domain.AllQuestTypes() {
		if _, ok := r.byType[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

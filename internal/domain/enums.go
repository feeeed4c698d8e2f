package domain

// QuestType selects the completion rule applied to a quest.
type QuestType string

const (
	QuestTypeAttendance    QuestType = "ATTENDANCE"
	QuestTypeQuestClear    QuestType = "QUEST_CLEAR"
	QuestTypeMissionReward QuestType = "MISSION_REWARD"
	QuestTypePraiseComment QuestType = "PRAISE_COMMENT"
	QuestTypeWriteDiary    QuestType = "WRITE_DIARY"
)

// AllQuestTypes returns every member of the QuestType enumeration.
// Adding a type here without a validator makes the quest registry fail at startup.
func AllQuestTypes() []QuestType {
	return []QuestType{
		QuestTypeAttendance,
		QuestTypeQuestClear,
		QuestTypeMissionReward,
		QuestTypePraiseComment,
		QuestTypeWriteDiary,
	}
}

func (t QuestType) String() string { return string(t) }

func (t QuestType) IsValid() bool {
	switch t {
	case QuestTypeAttendance, QuestTypeQuestClear, QuestTypeMissionReward,
		QuestTypePraiseComment, QuestTypeWriteDiary:
		return true
	}
	return false
}

// UserMissionState is the lifecycle stage of a user's mission attempt.
type UserMissionState string

const (
	UserMissionStateNotStarted        UserMissionState = "NOT_STARTED"
	UserMissionStateInProgress        UserMissionState = "IN_PROGRESS"
	UserMissionStateAborted           UserMissionState = "ABORTED"
	UserMissionStateCompleted         UserMissionState = "COMPLETED"
	UserMissionStateInFeedback        UserMissionState = "IN_FEEDBACK"
	UserMissionStateFeedbackCompleted UserMissionState = "FEEDBACK_COMPLETED"
	UserMissionStateRewardReceived    UserMissionState = "REWARD_RECEIVED"
)

func (s UserMissionState) String() string { return string(s) }

func (s UserMissionState) IsValid() bool {
	switch s {
	case UserMissionStateNotStarted, UserMissionStateInProgress, UserMissionStateAborted,
		UserMissionStateCompleted, UserMissionStateInFeedback,
		UserMissionStateFeedbackCompleted, UserMissionStateRewardReceived:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves this state.
func (s UserMissionState) IsTerminal() bool {
	return s == UserMissionStateAborted || s == UserMissionStateRewardReceived
}

// RewardSource identifies what a reward grant was issued for.
type RewardSource string

const (
	RewardSourceQuest      RewardSource = "QUEST"
	RewardSourceMission    RewardSource = "MISSION"
	RewardSourceAttendance RewardSource = "ATTENDANCE"
)

func (r RewardSource) String() string { return string(r) }

func (r RewardSource) IsValid() bool {
	switch r {
	case RewardSourceQuest, RewardSourceMission, RewardSourceAttendance:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

package quest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

var _ QuestValidator = &QuestValidatorMock{}

type QuestValidatorMock struct {
	IsValidFunc func(ctx context.Context, uq domain.UserQuest) (bool, error)

	calls struct {
		IsValid []struct {
			Ctx context.Context
			Uq  domain.UserQuest
		}
	}
	lockIsValid sync.RWMutex
}

func (mock *QuestValidatorMock) IsValid(ctx context.Context, uq domain.UserQuest) (bool, error) {
	if mock.IsValidFunc == nil {
		panic("QuestValidatorMock.IsValidFunc: method is nil but QuestValidator.IsValid was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Uq  domain.UserQuest
	}{
		Ctx: ctx,
		Uq:  uq,
	}
	mock.lockIsValid.Lock()
	mock.calls.IsValid = append(mock.calls.IsValid, callInfo)
	mock.lockIsValid.Unlock()
	return mock.IsValidFunc(ctx, uq)
}

func (mock *QuestValidatorMock) IsValidCalls() []struct {
	Ctx context.Context
	Uq  domain.UserQuest
} {
	mock.lockIsValid.RLock()
	calls := mock.calls.IsValid
	mock.lockIsValid.RUnlock()
	return calls
}

var _ attendanceChecker = &attendanceCheckerMock{}

type attendanceCheckerMock struct {
	ExistsBetweenFunc func(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) (bool, error)

	calls struct {
		ExistsBetween []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Start  time.Time
			End    time.Time
		}
	}
	lockExistsBetween sync.RWMutex
}

func (mock *attendanceCheckerMock) ExistsBetween(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) (bool, error) {
	if mock.ExistsBetweenFunc == nil {
		panic("attendanceCheckerMock.ExistsBetweenFunc: method is nil but attendanceChecker.ExistsBetween was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Start  time.Time
		End    time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		Start:  start,
		End:    end,
	}
	mock.lockExistsBetween.Lock()
	mock.calls.ExistsBetween = append(mock.calls.ExistsBetween, callInfo)
	mock.lockExistsBetween.Unlock()
	return mock.ExistsBetweenFunc(ctx, userID, start, end)
}

func (mock *attendanceCheckerMock) ExistsBetweenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
} {
	mock.lockExistsBetween.RLock()
	calls := mock.calls.ExistsBetween
	mock.lockExistsBetween.RUnlock()
	return calls
}

var _ completedQuestChecker = &completedQuestCheckerMock{}

type completedQuestCheckerMock struct {
	ExistsCompletedByUserFunc func(ctx context.Context, userID uuid.UUID) (bool, error)

	calls struct {
		ExistsCompletedByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockExistsCompletedByUser sync.RWMutex
}

func (mock *completedQuestCheckerMock) ExistsCompletedByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	if mock.ExistsCompletedByUserFunc == nil {
		panic("completedQuestCheckerMock.ExistsCompletedByUserFunc: method is nil but completedQuestChecker.ExistsCompletedByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockExistsCompletedByUser.Lock()
	mock.calls.ExistsCompletedByUser = append(mock.calls.ExistsCompletedByUser, callInfo)
	mock.lockExistsCompletedByUser.Unlock()
	return mock.ExistsCompletedByUserFunc(ctx, userID)
}

func (mock *completedQuestCheckerMock) ExistsCompletedByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockExistsCompletedByUser.RLock()
	calls := mock.calls.ExistsCompletedByUser
	mock.lockExistsCompletedByUser.RUnlock()
	return calls
}

var _ missionTransitionChecker = &missionTransitionCheckerMock{}

type missionTransitionCheckerMock struct {
	ExistsTransitionBetweenFunc func(ctx context.Context, userID uuid.UUID, state domain.UserMissionState, start time.Time, end time.Time) (bool, error)

	calls struct {
		ExistsTransitionBetween []struct {
			Ctx    context.Context
			UserID uuid.UUID
			State  domain.UserMissionState
			Start  time.Time
			End    time.Time
		}
	}
	lockExistsTransitionBetween sync.RWMutex
}

func (mock *missionTransitionCheckerMock) ExistsTransitionBetween(ctx context.Context, userID uuid.UUID, state domain.UserMissionState, start time.Time, end time.Time) (bool, error) {
	if mock.ExistsTransitionBetweenFunc == nil {
		panic("missionTransitionCheckerMock.ExistsTransitionBetweenFunc: method is nil but missionTransitionChecker.ExistsTransitionBetween was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		State  domain.UserMissionState
		Start  time.Time
		End    time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		State:  state,
		Start:  start,
		End:    end,
	}
	mock.lockExistsTransitionBetween.Lock()
	mock.calls.ExistsTransitionBetween = append(mock.calls.ExistsTransitionBetween, callInfo)
	mock.lockExistsTransitionBetween.Unlock()
	return mock.ExistsTransitionBetweenFunc(ctx, userID, state, start, end)
}

func (mock *missionTransitionCheckerMock) ExistsTransitionBetweenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	State  domain.UserMissionState
	Start  time.Time
	End    time.Time
} {
	mock.lockExistsTransitionBetween.RLock()
	calls := mock.calls.ExistsTransitionBetween
	mock.lockExistsTransitionBetween.RUnlock()
	return calls
}

var _ praiseCommentChecker = &praiseCommentCheckerMock{}

type praiseCommentCheckerMock struct {
	ExistsCommentBetweenFunc func(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) (bool, error)

	calls struct {
		ExistsCommentBetween []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Start  time.Time
			End    time.Time
		}
	}
	lockExistsCommentBetween sync.RWMutex
}

func (mock *praiseCommentCheckerMock) ExistsCommentBetween(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) (bool, error) {
	if mock.ExistsCommentBetweenFunc == nil {
		panic("praiseCommentCheckerMock.ExistsCommentBetweenFunc: method is nil but praiseCommentChecker.ExistsCommentBetween was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Start  time.Time
		End    time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		Start:  start,
		End:    end,
	}
	mock.lockExistsCommentBetween.Lock()
	mock.calls.ExistsCommentBetween = append(mock.calls.ExistsCommentBetween, callInfo)
	mock.lockExistsCommentBetween.Unlock()
	return mock.ExistsCommentBetweenFunc(ctx, userID, start, end)
}

func (mock *praiseCommentCheckerMock) ExistsCommentBetweenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
} {
	mock.lockExistsCommentBetween.RLock()
	calls := mock.calls.ExistsCommentBetween
	mock.lockExistsCommentBetween.RUnlock()
	return calls
}

var _ diaryChecker = &diaryCheckerMock{}

type diaryCheckerMock struct {
	ExistsBetweenFunc func(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) (bool, error)

	calls struct {
		ExistsBetween []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Start  time.Time
			End    time.Time
		}
	}
	lockExistsBetween sync.RWMutex
}

func (mock *diaryCheckerMock) ExistsBetween(ctx context.Context, userID uuid.UUID, start time.Time, end time.Time) (bool, error) {
	if mock.ExistsBetweenFunc == nil {
		panic("diaryCheckerMock.ExistsBetweenFunc: method is nil but diaryChecker.ExistsBetween was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Start  time.Time
		End    time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		Start:  start,
		End:    end,
	}
	mock.lockExistsBetween.Lock()
	mock.calls.ExistsBetween = append(mock.calls.ExistsBetween, callInfo)
	mock.lockExistsBetween.Unlock()
	return mock.ExistsBetweenFunc(ctx, userID, start, end)
}

func (mock *diaryCheckerMock) ExistsBetweenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
} {
	mock.lockExistsBetween.RLock()
	calls := mock.calls.ExistsBetween
	mock.lockExistsBetween.RUnlock()
	return calls
}

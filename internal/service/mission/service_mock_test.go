package mission

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

var _ missionRepo = &missionRepoMock{}

type missionRepoMock struct {
	CreateMissionFunc           func(ctx context.Context, m *domain.Mission) (*domain.Mission, error)
	GetMissionFunc              func(ctx context.Context, id uuid.UUID) (*domain.Mission, error)
	CreateUserMissionFunc       func(ctx context.Context, um *domain.UserMission) error
	GetUserMissionFunc          func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserMission, error)
	GetUserMissionForUpdateFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserMission, error)
	UpdateStateFunc             func(ctx context.Context, id uuid.UUID, state domain.UserMissionState, at time.Time) error
	AppendLogFunc               func(ctx context.Context, l domain.UserMissionStateLog) error
	ListLogsFunc                func(ctx context.Context, userMissionID uuid.UUID) ([]domain.UserMissionStateLog, error)

	calls struct {
		CreateMission []struct {
			Ctx context.Context
			M   *domain.Mission
		}
		GetMission []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateUserMission []struct {
			Ctx context.Context
			Um  *domain.UserMission
		}
		GetUserMission []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		GetUserMissionForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		UpdateState []struct {
			Ctx   context.Context
			Id    uuid.UUID
			State domain.UserMissionState
			At    time.Time
		}
		AppendLog []struct {
			Ctx context.Context
			L   domain.UserMissionStateLog
		}
		ListLogs []struct {
			Ctx           context.Context
			UserMissionID uuid.UUID
		}
	}
	lockCreateMission           sync.RWMutex
	lockGetMission              sync.RWMutex
	lockCreateUserMission       sync.RWMutex
	lockGetUserMission          sync.RWMutex
	lockGetUserMissionForUpdate sync.RWMutex
	lockUpdateState             sync.RWMutex
	lockAppendLog               sync.RWMutex
	lockListLogs                sync.RWMutex
}

func (mock *missionRepoMock) CreateMission(ctx context.Context, m *domain.Mission) (*domain.Mission, error) {
	if mock.CreateMissionFunc == nil {
		panic("missionRepoMock.CreateMissionFunc: method is nil but missionRepo.CreateMission was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Mission
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreateMission.Lock()
	mock.calls.CreateMission = append(mock.calls.CreateMission, callInfo)
	mock.lockCreateMission.Unlock()
	return mock.CreateMissionFunc(ctx, m)
}

func (mock *missionRepoMock) CreateMissionCalls() []struct {
	Ctx context.Context
	M   *domain.Mission
} {
	mock.lockCreateMission.RLock()
	calls := mock.calls.CreateMission
	mock.lockCreateMission.RUnlock()
	return calls
}

func (mock *missionRepoMock) GetMission(ctx context.Context, id uuid.UUID) (*domain.Mission, error) {
	if mock.GetMissionFunc == nil {
		panic("missionRepoMock.GetMissionFunc: method is nil but missionRepo.GetMission was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetMission.Lock()
	mock.calls.GetMission = append(mock.calls.GetMission, callInfo)
	mock.lockGetMission.Unlock()
	return mock.GetMissionFunc(ctx, id)
}

func (mock *missionRepoMock) GetMissionCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetMission.RLock()
	calls := mock.calls.GetMission
	mock.lockGetMission.RUnlock()
	return calls
}

func (mock *missionRepoMock) CreateUserMission(ctx context.Context, um *domain.UserMission) error {
	if mock.CreateUserMissionFunc == nil {
		panic("missionRepoMock.CreateUserMissionFunc: method is nil but missionRepo.CreateUserMission was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Um  *domain.UserMission
	}{
		Ctx: ctx,
		Um:  um,
	}
	mock.lockCreateUserMission.Lock()
	mock.calls.CreateUserMission = append(mock.calls.CreateUserMission, callInfo)
	mock.lockCreateUserMission.Unlock()
	return mock.CreateUserMissionFunc(ctx, um)
}

func (mock *missionRepoMock) CreateUserMissionCalls() []struct {
	Ctx context.Context
	Um  *domain.UserMission
} {
	mock.lockCreateUserMission.RLock()
	calls := mock.calls.CreateUserMission
	mock.lockCreateUserMission.RUnlock()
	return calls
}

func (mock *missionRepoMock) GetUserMission(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserMission, error) {
	if mock.GetUserMissionFunc == nil {
		panic("missionRepoMock.GetUserMissionFunc: method is nil but missionRepo.GetUserMission was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		Id:     id,
	}
	mock.lockGetUserMission.Lock()
	mock.calls.GetUserMission = append(mock.calls.GetUserMission, callInfo)
	mock.lockGetUserMission.Unlock()
	return mock.GetUserMissionFunc(ctx, userID, id)
}

func (mock *missionRepoMock) GetUserMissionCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockGetUserMission.RLock()
	calls := mock.calls.GetUserMission
	mock.lockGetUserMission.RUnlock()
	return calls
}

func (mock *missionRepoMock) GetUserMissionForUpdate(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserMission, error) {
	if mock.GetUserMissionForUpdateFunc == nil {
		panic("missionRepoMock.GetUserMissionForUpdateFunc: method is nil but missionRepo.GetUserMissionForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		Id:     id,
	}
	mock.lockGetUserMissionForUpdate.Lock()
	mock.calls.GetUserMissionForUpdate = append(mock.calls.GetUserMissionForUpdate, callInfo)
	mock.lockGetUserMissionForUpdate.Unlock()
	return mock.GetUserMissionForUpdateFunc(ctx, userID, id)
}

func (mock *missionRepoMock) GetUserMissionForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockGetUserMissionForUpdate.RLock()
	calls := mock.calls.GetUserMissionForUpdate
	mock.lockGetUserMissionForUpdate.RUnlock()
	return calls
}

func (mock *missionRepoMock) UpdateState(ctx context.Context, id uuid.UUID, state domain.UserMissionState, at time.Time) error {
	if mock.UpdateStateFunc == nil {
		panic("missionRepoMock.UpdateStateFunc: method is nil but missionRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		State domain.UserMissionState
		At    time.Time
	}{
		Ctx:   ctx,
		Id:    id,
		State: state,
		At:    at,
	}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, id, state, at)
}

func (mock *missionRepoMock) UpdateStateCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	State domain.UserMissionState
	At    time.Time
} {
	mock.lockUpdateState.RLock()
	calls := mock.calls.UpdateState
	mock.lockUpdateState.RUnlock()
	return calls
}

func (mock *missionRepoMock) AppendLog(ctx context.Context, l domain.UserMissionStateLog) error {
	if mock.AppendLogFunc == nil {
		panic("missionRepoMock.AppendLogFunc: method is nil but missionRepo.AppendLog was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.UserMissionStateLog
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockAppendLog.Lock()
	mock.calls.AppendLog = append(mock.calls.AppendLog, callInfo)
	mock.lockAppendLog.Unlock()
	return mock.AppendLogFunc(ctx, l)
}

func (mock *missionRepoMock) AppendLogCalls() []struct {
	Ctx context.Context
	L   domain.UserMissionStateLog
} {
	mock.lockAppendLog.RLock()
	calls := mock.calls.AppendLog
	mock.lockAppendLog.RUnlock()
	return calls
}

func (mock *missionRepoMock) ListLogs(ctx context.Context, userMissionID uuid.UUID) ([]domain.UserMissionStateLog, error) {
	if mock.ListLogsFunc == nil {
		panic("missionRepoMock.ListLogsFunc: method is nil but missionRepo.ListLogs was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		UserMissionID uuid.UUID
	}{
		Ctx:           ctx,
		UserMissionID: userMissionID,
	}
	mock.lockListLogs.Lock()
	mock.calls.ListLogs = append(mock.calls.ListLogs, callInfo)
	mock.lockListLogs.Unlock()
	return mock.ListLogsFunc(ctx, userMissionID)
}

func (mock *missionRepoMock) ListLogsCalls() []struct {
	Ctx           context.Context
	UserMissionID uuid.UUID
} {
	mock.lockListLogs.RLock()
	calls := mock.calls.ListLogs
	mock.lockListLogs.RUnlock()
	return calls
}

var _ rewardIssuer = &rewardIssuerMock{}

type rewardIssuerMock struct {
	GrantFunc func(ctx context.Context, g domain.RewardGrant) error

	calls struct {
		Grant []struct {
			Ctx context.Context
			G   domain.RewardGrant
		}
	}
	lockGrant sync.RWMutex
}

func (mock *rewardIssuerMock) Grant(ctx context.Context, g domain.RewardGrant) error {
	if mock.GrantFunc == nil {
		panic("rewardIssuerMock.GrantFunc: method is nil but rewardIssuer.Grant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.RewardGrant
	}{
		Ctx: ctx,
		G:   g,
	}
	mock.lockGrant.Lock()
	mock.calls.Grant = append(mock.calls.Grant, callInfo)
	mock.lockGrant.Unlock()
	return mock.GrantFunc(ctx, g)
}

func (mock *rewardIssuerMock) GrantCalls() []struct {
	Ctx context.Context
	G   domain.RewardGrant
} {
	mock.lockGrant.RLock()
	calls := mock.calls.Grant
	mock.lockGrant.RUnlock()
	return calls
}

var _ recorder = &recorderMock{}

type recorderMock struct {
	MissionTransitionFunc func(from domain.UserMissionState, to domain.UserMissionState)

	calls struct {
		MissionTransition []struct {
			From domain.UserMissionState
			To   domain.UserMissionState
		}
	}
	lockMissionTransition sync.RWMutex
}

func (mock *recorderMock) MissionTransition(from domain.UserMissionState, to domain.UserMissionState) {
	if mock.MissionTransitionFunc == nil {
		panic("recorderMock.MissionTransitionFunc: method is nil but recorder.MissionTransition was just called")
	}
	callInfo := struct {
		From domain.UserMissionState
		To   domain.UserMissionState
	}{
		From: from,
		To:   to,
	}
	mock.lockMissionTransition.Lock()
	mock.calls.MissionTransition = append(mock.calls.MissionTransition, callInfo)
	mock.lockMissionTransition.Unlock()
	mock.MissionTransitionFunc(from, to)
}

func (mock *recorderMock) MissionTransitionCalls() []struct {
	From domain.UserMissionState
	To   domain.UserMissionState
} {
	mock.lockMissionTransition.RLock()
	calls := mock.calls.MissionTransition
	mock.lockMissionTransition.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

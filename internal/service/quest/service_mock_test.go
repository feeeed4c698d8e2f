package quest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

var _ questRepo = &questRepoMock{}

type questRepoMock struct {
	CreateFunc     func(ctx context.Context, q *domain.Quest) (*domain.Quest, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Quest, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, p domain.QuestModifyParams) (*domain.Quest, error)
	SoftDeleteFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Q   *domain.Quest
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			P   domain.QuestModifyParams
		}
		SoftDelete []struct {
			Ctx context.Context
			Id  uuid.UUID
			At  time.Time
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockUpdate     sync.RWMutex
	lockSoftDelete sync.RWMutex
}

func (mock *questRepoMock) Create(ctx context.Context, q *domain.Quest) (*domain.Quest, error) {
	if mock.CreateFunc == nil {
		panic("questRepoMock.CreateFunc: method is nil but questRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   *domain.Quest
	}{
		Ctx: ctx,
		Q:   q,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, q)
}

func (mock *questRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Q   *domain.Quest
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *questRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quest, error) {
	if mock.GetByIDFunc == nil {
		panic("questRepoMock.GetByIDFunc: method is nil but questRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *questRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *questRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.QuestModifyParams) (*domain.Quest, error) {
	if mock.UpdateFunc == nil {
		panic("questRepoMock.UpdateFunc: method is nil but questRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		P   domain.QuestModifyParams
	}{
		Ctx: ctx,
		Id:  id,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *questRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	P   domain.QuestModifyParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *questRepoMock) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.SoftDeleteFunc == nil {
		panic("questRepoMock.SoftDeleteFunc: method is nil but questRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		Id:  id,
		At:  at,
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id, at)
}

func (mock *questRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	At  time.Time
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

var _ userQuestRepo = &userQuestRepoMock{}

type userQuestRepoMock struct {
	AssignMissingFunc    func(ctx context.Context, userID uuid.UUID, at time.Time) ([]domain.UserQuest, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserQuest, error)
	MarkCompletedFunc    func(ctx context.Context, id uuid.UUID, at time.Time) error
	ResetAllFunc         func(ctx context.Context, at time.Time) (int64, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.UserQuestView, error)
	GetViewFunc          func(ctx context.Context, id uuid.UUID) (*domain.UserQuestView, error)

	calls struct {
		AssignMissing []struct {
			Ctx    context.Context
			UserID uuid.UUID
			At     time.Time
		}
		GetByIDForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		MarkCompleted []struct {
			Ctx context.Context
			Id  uuid.UUID
			At  time.Time
		}
		ResetAll []struct {
			Ctx context.Context
			At  time.Time
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetView []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockAssignMissing    sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockMarkCompleted    sync.RWMutex
	lockResetAll         sync.RWMutex
	lockListByUser       sync.RWMutex
	lockGetView          sync.RWMutex
}

func (mock *userQuestRepoMock) AssignMissing(ctx context.Context, userID uuid.UUID, at time.Time) ([]domain.UserQuest, error) {
	if mock.AssignMissingFunc == nil {
		panic("userQuestRepoMock.AssignMissingFunc: method is nil but userQuestRepo.AssignMissing was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		At     time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		At:     at,
	}
	mock.lockAssignMissing.Lock()
	mock.calls.AssignMissing = append(mock.calls.AssignMissing, callInfo)
	mock.lockAssignMissing.Unlock()
	return mock.AssignMissingFunc(ctx, userID, at)
}

func (mock *userQuestRepoMock) AssignMissingCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	At     time.Time
} {
	mock.lockAssignMissing.RLock()
	calls := mock.calls.AssignMissing
	mock.lockAssignMissing.RUnlock()
	return calls
}

func (mock *userQuestRepoMock) GetByIDForUpdate(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.UserQuest, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("userQuestRepoMock.GetByIDForUpdateFunc: method is nil but userQuestRepo.GetByIDForUpdate was just called")
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
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, userID, id)
}

func (mock *userQuestRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *userQuestRepoMock) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.MarkCompletedFunc == nil {
		panic("userQuestRepoMock.MarkCompletedFunc: method is nil but userQuestRepo.MarkCompleted was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		Id:  id,
		At:  at,
	}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, id, at)
}

func (mock *userQuestRepoMock) MarkCompletedCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	At  time.Time
} {
	mock.lockMarkCompleted.RLock()
	calls := mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}

func (mock *userQuestRepoMock) ResetAll(ctx context.Context, at time.Time) (int64, error) {
	if mock.ResetAllFunc == nil {
		panic("userQuestRepoMock.ResetAllFunc: method is nil but userQuestRepo.ResetAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
		At  time.Time
	}{
		Ctx: ctx,
		At:  at,
	}
	mock.lockResetAll.Lock()
	mock.calls.ResetAll = append(mock.calls.ResetAll, callInfo)
	mock.lockResetAll.Unlock()
	return mock.ResetAllFunc(ctx, at)
}

func (mock *userQuestRepoMock) ResetAllCalls() []struct {
	Ctx context.Context
	At  time.Time
} {
	mock.lockResetAll.RLock()
	calls := mock.calls.ResetAll
	mock.lockResetAll.RUnlock()
	return calls
}

func (mock *userQuestRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserQuestView, error) {
	if mock.ListByUserFunc == nil {
		panic("userQuestRepoMock.ListByUserFunc: method is nil but userQuestRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *userQuestRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *userQuestRepoMock) GetView(ctx context.Context, id uuid.UUID) (*domain.UserQuestView, error) {
	if mock.GetViewFunc == nil {
		panic("userQuestRepoMock.GetViewFunc: method is nil but userQuestRepo.GetView was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetView.Lock()
	mock.calls.GetView = append(mock.calls.GetView, callInfo)
	mock.lockGetView.Unlock()
	return mock.GetViewFunc(ctx, id)
}

func (mock *userQuestRepoMock) GetViewCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetView.RLock()
	calls := mock.calls.GetView
	mock.lockGetView.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)

	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockGetByUsername sync.RWMutex
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
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
	QuestCompletedFunc func(t domain.QuestType)
	QuestRejectedFunc  func(t domain.QuestType)
	QuestsResetFunc    func(n int64)

	calls struct {
		QuestCompleted []struct {
			T domain.QuestType
		}
		QuestRejected []struct {
			T domain.QuestType
		}
		QuestsReset []struct {
			N int64
		}
	}
	lockQuestCompleted sync.RWMutex
	lockQuestRejected  sync.RWMutex
	lockQuestsReset    sync.RWMutex
}

func (mock *recorderMock) QuestCompleted(t domain.QuestType) {
	if mock.QuestCompletedFunc == nil {
		panic("recorderMock.QuestCompletedFunc: method is nil but recorder.QuestCompleted was just called")
	}
	callInfo := struct {
		T domain.QuestType
	}{
		T: t,
	}
	mock.lockQuestCompleted.Lock()
	mock.calls.QuestCompleted = append(mock.calls.QuestCompleted, callInfo)
	mock.lockQuestCompleted.Unlock()
	mock.QuestCompletedFunc(t)
}

func (mock *recorderMock) QuestCompletedCalls() []struct {
	T domain.QuestType
} {
	mock.lockQuestCompleted.RLock()
	calls := mock.calls.QuestCompleted
	mock.lockQuestCompleted.RUnlock()
	return calls
}

func (mock *recorderMock) QuestRejected(t domain.QuestType) {
	if mock.QuestRejectedFunc == nil {
		panic("recorderMock.QuestRejectedFunc: method is nil but recorder.QuestRejected was just called")
	}
	callInfo := struct {
		T domain.QuestType
	}{
		T: t,
	}
	mock.lockQuestRejected.Lock()
	mock.calls.QuestRejected = append(mock.calls.QuestRejected, callInfo)
	mock.lockQuestRejected.Unlock()
	mock.QuestRejectedFunc(t)
}

func (mock *recorderMock) QuestRejectedCalls() []struct {
	T domain.QuestType
} {
	mock.lockQuestRejected.RLock()
	calls := mock.calls.QuestRejected
	mock.lockQuestRejected.RUnlock()
	return calls
}

func (mock *recorderMock) QuestsReset(n int64) {
	if mock.QuestsResetFunc == nil {
		panic("recorderMock.QuestsResetFunc: method is nil but recorder.QuestsReset was just called")
	}
	callInfo := struct {
		N int64
	}{
		N: n,
	}
	mock.lockQuestsReset.Lock()
	mock.calls.QuestsReset = append(mock.calls.QuestsReset, callInfo)
	mock.lockQuestsReset.Unlock()
	mock.QuestsResetFunc(n)
}

func (mock *recorderMock) QuestsResetCalls() []struct {
	N int64
} {
	mock.lockQuestsReset.RLock()
	calls := mock.calls.QuestsReset
	mock.lockQuestsReset.RUnlock()
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

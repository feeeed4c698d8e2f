package reward

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	InsertFunc func(ctx context.Context, g domain.RewardGrant) (bool, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			G   domain.RewardGrant
		}
	}
	lockInsert sync.RWMutex
}

func (mock *ledgerRepoMock) Insert(ctx context.Context, g domain.RewardGrant) (bool, error) {
	if mock.InsertFunc == nil {
		panic("ledgerRepoMock.InsertFunc: method is nil but ledgerRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.RewardGrant
	}{
		Ctx: ctx,
		G:   g,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, g)
}

func (mock *ledgerRepoMock) InsertCalls() []struct {
	Ctx context.Context
	G   domain.RewardGrant
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	AddRewardsFunc func(ctx context.Context, userID uuid.UUID, exp int64, points int64) error

	calls struct {
		AddRewards []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Exp    int64
			Points int64
		}
	}
	lockAddRewards sync.RWMutex
}

func (mock *userRepoMock) AddRewards(ctx context.Context, userID uuid.UUID, exp int64, points int64) error {
	if mock.AddRewardsFunc == nil {
		panic("userRepoMock.AddRewardsFunc: method is nil but userRepo.AddRewards was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Exp    int64
		Points int64
	}{
		Ctx:    ctx,
		UserID: userID,
		Exp:    exp,
		Points: points,
	}
	mock.lockAddRewards.Lock()
	mock.calls.AddRewards = append(mock.calls.AddRewards, callInfo)
	mock.lockAddRewards.Unlock()
	return mock.AddRewardsFunc(ctx, userID, exp, points)
}

func (mock *userRepoMock) AddRewardsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Exp    int64
	Points int64
} {
	mock.lockAddRewards.RLock()
	calls := mock.calls.AddRewards
	mock.lockAddRewards.RUnlock()
	return calls
}

var _ recorder = &recorderMock{}

type recorderMock struct {
	RewardGrantedFunc func(source domain.RewardSource, exp int64, points int64)

	calls struct {
		RewardGranted []struct {
			Source domain.RewardSource
			Exp    int64
			Points int64
		}
	}
	lockRewardGranted sync.RWMutex
}

func (mock *recorderMock) RewardGranted(source domain.RewardSource, exp int64, points int64) {
	if mock.RewardGrantedFunc == nil {
		panic("recorderMock.RewardGrantedFunc: method is nil but recorder.RewardGranted was just called")
	}
	callInfo := struct {
		Source domain.RewardSource
		Exp    int64
		Points int64
	}{
		Source: source,
		Exp:    exp,
		Points: points,
	}
	mock.lockRewardGranted.Lock()
	mock.calls.RewardGranted = append(mock.calls.RewardGranted, callInfo)
	mock.lockRewardGranted.Unlock()
	mock.RewardGrantedFunc(source, exp, points)
}

func (mock *recorderMock) RewardGrantedCalls() []struct {
	Source domain.RewardSource
	Exp    int64
	Points int64
} {
	mock.lockRewardGranted.RLock()
	calls := mock.calls.RewardGranted
	mock.lockRewardGranted.RUnlock()
	return calls
}

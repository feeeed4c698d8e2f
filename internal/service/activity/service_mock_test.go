package activity

import (
	"context"
	"sync"

	"github.com/Please-Hug/Please-Hug-BackEnd-sub001/internal/domain"
)

var _ attendanceRepo = &attendanceRepoMock{}

type attendanceRepoMock struct {
	CreateFunc func(ctx context.Context, a domain.Attendance) error

	calls struct {
		Create []struct {
			Ctx context.Context
			A   domain.Attendance
		}
	}
	lockCreate sync.RWMutex
}

func (mock *attendanceRepoMock) Create(ctx context.Context, a domain.Attendance) error {
	if mock.CreateFunc == nil {
		panic("attendanceRepoMock.CreateFunc: method is nil but attendanceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Attendance
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *attendanceRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.Attendance
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ praiseRepo = &praiseRepoMock{}

type praiseRepoMock struct {
	CreateCommentFunc func(ctx context.Context, c domain.PraiseComment) error

	calls struct {
		CreateComment []struct {
			Ctx context.Context
			C   domain.PraiseComment
		}
	}
	lockCreateComment sync.RWMutex
}

func (mock *praiseRepoMock) CreateComment(ctx context.Context, c domain.PraiseComment) error {
	if mock.CreateCommentFunc == nil {
		panic("praiseRepoMock.CreateCommentFunc: method is nil but praiseRepo.CreateComment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.PraiseComment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreateComment.Lock()
	mock.calls.CreateComment = append(mock.calls.CreateComment, callInfo)
	mock.lockCreateComment.Unlock()
	return mock.CreateCommentFunc(ctx, c)
}

func (mock *praiseRepoMock) CreateCommentCalls() []struct {
	Ctx context.Context
	C   domain.PraiseComment
} {
	mock.lockCreateComment.RLock()
	calls := mock.calls.CreateComment
	mock.lockCreateComment.RUnlock()
	return calls
}

var _ diaryRepo = &diaryRepoMock{}

type diaryRepoMock struct {
	CreateFunc func(ctx context.Context, d domain.StudyDiary) error

	calls struct {
		Create []struct {
			Ctx context.Context
			D   domain.StudyDiary
		}
	}
	lockCreate sync.RWMutex
}

func (mock *diaryRepoMock) Create(ctx context.Context, d domain.StudyDiary) error {
	if mock.CreateFunc == nil {
		panic("diaryRepoMock.CreateFunc: method is nil but diaryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.StudyDiary
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *diaryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.StudyDiary
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
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

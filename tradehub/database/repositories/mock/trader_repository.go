package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"

	models "github.com/pockettcg/tradehub/tradehub/database/models"
)

// MockTraderRepository is a mock of TraderRepository interface.
type MockTraderRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTraderRepositoryMockRecorder
	isgomock struct{}
}

// MockTraderRepositoryMockRecorder is the mock recorder for MockTraderRepository.
type MockTraderRepositoryMockRecorder struct {
	mock *MockTraderRepository
}

// NewMockTraderRepository creates a new mock instance.
func NewMockTraderRepository(ctrl *gomock.Controller) *MockTraderRepository {
	mock := &MockTraderRepository{ctrl: ctrl}
	mock.recorder = &MockTraderRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTraderRepository) EXPECT() *MockTraderRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockTraderRepository) Create(ctx context.Context, trader *models.Trader) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, trader)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTraderRepositoryMockRecorder) Create(ctx, trader any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTraderRepository)(nil).Create), ctx, trader)
}

// DB mocks base method.
func (m *MockTraderRepository) DB() *bun.DB {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DB")
	ret0, _ := ret[0].(*bun.DB)
	return ret0
}

// DB indicates an expected call of DB.
func (mr *MockTraderRepositoryMockRecorder) DB() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DB", reflect.TypeOf((*MockTraderRepository)(nil).DB))
}

// GetByID mocks base method.
func (m *MockTraderRepository) GetByID(ctx context.Context, id string) (*models.Trader, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Trader)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTraderRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTraderRepository)(nil).GetByID), ctx, id)
}

// GetTraderCount mocks base method.
func (m *MockTraderRepository) GetTraderCount(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTraderCount", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTraderCount indicates an expected call of GetTraderCount.
func (mr *MockTraderRepositoryMockRecorder) GetTraderCount(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTraderCount", reflect.TypeOf((*MockTraderRepository)(nil).GetTraderCount), ctx)
}

// SetOffline mocks base method.
func (m *MockTraderRepository) SetOffline(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetOffline", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetOffline indicates an expected call of SetOffline.
func (mr *MockTraderRepositoryMockRecorder) SetOffline(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetOffline", reflect.TypeOf((*MockTraderRepository)(nil).SetOffline), ctx, id)
}

// SetOnline mocks base method.
func (m *MockTraderRepository) SetOnline(ctx context.Context, id string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetOnline", ctx, id, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetOnline indicates an expected call of SetOnline.
func (mr *MockTraderRepositoryMockRecorder) SetOnline(ctx, id, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetOnline", reflect.TypeOf((*MockTraderRepository)(nil).SetOnline), ctx, id, at)
}

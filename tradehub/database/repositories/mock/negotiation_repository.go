package mock

import (
	context "context"
	reflect "reflect"

	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"

	models "github.com/pockettcg/tradehub/tradehub/database/models"
)

// MockNegotiationRepository is a mock of NegotiationRepository interface.
type MockNegotiationRepository struct {
	ctrl     *gomock.Controller
	recorder *MockNegotiationRepositoryMockRecorder
	isgomock struct{}
}

// MockNegotiationRepositoryMockRecorder is the mock recorder for MockNegotiationRepository.
type MockNegotiationRepositoryMockRecorder struct {
	mock *MockNegotiationRepository
}

// NewMockNegotiationRepository creates a new mock instance.
func NewMockNegotiationRepository(ctrl *gomock.Controller) *MockNegotiationRepository {
	mock := &MockNegotiationRepository{ctrl: ctrl}
	mock.recorder = &MockNegotiationRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNegotiationRepository) EXPECT() *MockNegotiationRepositoryMockRecorder {
	return m.recorder
}

// Cancel mocks base method.
func (m *MockNegotiationRepository) Cancel(ctx context.Context, id int64, traderID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, id, traderID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Cancel indicates an expected call of Cancel.
func (mr *MockNegotiationRepositoryMockRecorder) Cancel(ctx, id, traderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockNegotiationRepository)(nil).Cancel), ctx, id, traderID)
}

// Confirm mocks base method.
func (m *MockNegotiationRepository) Confirm(ctx context.Context, id int64, traderID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Confirm", ctx, id, traderID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Confirm indicates an expected call of Confirm.
func (mr *MockNegotiationRepositoryMockRecorder) Confirm(ctx, id, traderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Confirm", reflect.TypeOf((*MockNegotiationRepository)(nil).Confirm), ctx, id, traderID)
}

// DB mocks base method.
func (m *MockNegotiationRepository) DB() *bun.DB {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DB")
	ret0, _ := ret[0].(*bun.DB)
	return ret0
}

// DB indicates an expected call of DB.
func (mr *MockNegotiationRepositoryMockRecorder) DB() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DB", reflect.TypeOf((*MockNegotiationRepository)(nil).DB))
}

// GetByID mocks base method.
func (m *MockNegotiationRepository) GetByID(ctx context.Context, id int64) (*models.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockNegotiationRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockNegotiationRepository)(nil).GetByID), ctx, id)
}

// GetByTrader mocks base method.
func (m *MockNegotiationRepository) GetByTrader(ctx context.Context, traderID string) ([]*models.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByTrader", ctx, traderID)
	ret0, _ := ret[0].([]*models.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByTrader indicates an expected call of GetByTrader.
func (mr *MockNegotiationRepositoryMockRecorder) GetByTrader(ctx, traderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByTrader", reflect.TypeOf((*MockNegotiationRepository)(nil).GetByTrader), ctx, traderID)
}

// Unconfirm mocks base method.
func (m *MockNegotiationRepository) Unconfirm(ctx context.Context, id int64, traderID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unconfirm", ctx, id, traderID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Unconfirm indicates an expected call of Unconfirm.
func (mr *MockNegotiationRepositoryMockRecorder) Unconfirm(ctx, id, traderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unconfirm", reflect.TypeOf((*MockNegotiationRepository)(nil).Unconfirm), ctx, id, traderID)
}

package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"

	models "github.com/pockettcg/tradehub/tradehub/database/models"
)

// MockTradeRequestRepository is a mock of TradeRequestRepository interface.
type MockTradeRequestRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTradeRequestRepositoryMockRecorder
	isgomock struct{}
}

// MockTradeRequestRepositoryMockRecorder is the mock recorder for MockTradeRequestRepository.
type MockTradeRequestRepositoryMockRecorder struct {
	mock *MockTradeRequestRepository
}

// NewMockTradeRequestRepository creates a new mock instance.
func NewMockTradeRequestRepository(ctrl *gomock.Controller) *MockTradeRequestRepository {
	mock := &MockTradeRequestRepository{ctrl: ctrl}
	mock.recorder = &MockTradeRequestRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTradeRequestRepository) EXPECT() *MockTradeRequestRepositoryMockRecorder {
	return m.recorder
}

// Accept mocks base method.
func (m *MockTradeRequestRepository) Accept(ctx context.Context, id int64, preview models.TradePreview, opener string) (*models.Negotiation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Accept", ctx, id, preview, opener)
	ret0, _ := ret[0].(*models.Negotiation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Accept indicates an expected call of Accept.
func (mr *MockTradeRequestRepositoryMockRecorder) Accept(ctx, id, preview, opener any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Accept", reflect.TypeOf((*MockTradeRequestRepository)(nil).Accept), ctx, id, preview, opener)
}

// CountCreatedSince mocks base method.
func (m *MockTradeRequestRepository) CountCreatedSince(ctx context.Context, requesterID string, since time.Time) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountCreatedSince", ctx, requesterID, since)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountCreatedSince indicates an expected call of CountCreatedSince.
func (mr *MockTradeRequestRepositoryMockRecorder) CountCreatedSince(ctx, requesterID, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountCreatedSince", reflect.TypeOf((*MockTradeRequestRepository)(nil).CountCreatedSince), ctx, requesterID, since)
}

// Create mocks base method.
func (m *MockTradeRequestRepository) Create(ctx context.Context, request *models.TradeRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, request)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTradeRequestRepositoryMockRecorder) Create(ctx, request any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTradeRequestRepository)(nil).Create), ctx, request)
}

// DB mocks base method.
func (m *MockTradeRequestRepository) DB() *bun.DB {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DB")
	ret0, _ := ret[0].(*bun.DB)
	return ret0
}

// DB indicates an expected call of DB.
func (mr *MockTradeRequestRepositoryMockRecorder) DB() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DB", reflect.TypeOf((*MockTradeRequestRepository)(nil).DB))
}

// Decline mocks base method.
func (m *MockTradeRequestRepository) Decline(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Decline", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Decline indicates an expected call of Decline.
func (mr *MockTradeRequestRepositoryMockRecorder) Decline(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Decline", reflect.TypeOf((*MockTradeRequestRepository)(nil).Decline), ctx, id)
}

// GetByID mocks base method.
func (m *MockTradeRequestRepository) GetByID(ctx context.Context, id int64) (*models.TradeRequest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.TradeRequest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTradeRequestRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTradeRequestRepository)(nil).GetByID), ctx, id)
}

// GetByPost mocks base method.
func (m *MockTradeRequestRepository) GetByPost(ctx context.Context, postID int64) ([]*models.TradeRequest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPost", ctx, postID)
	ret0, _ := ret[0].([]*models.TradeRequest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByPost indicates an expected call of GetByPost.
func (mr *MockTradeRequestRepositoryMockRecorder) GetByPost(ctx, postID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPost", reflect.TypeOf((*MockTradeRequestRepository)(nil).GetByPost), ctx, postID)
}

// GetByRequester mocks base method.
func (m *MockTradeRequestRepository) GetByRequester(ctx context.Context, requesterID string) ([]*models.TradeRequest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByRequester", ctx, requesterID)
	ret0, _ := ret[0].([]*models.TradeRequest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByRequester indicates an expected call of GetByRequester.
func (mr *MockTradeRequestRepositoryMockRecorder) GetByRequester(ctx, requesterID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByRequester", reflect.TypeOf((*MockTradeRequestRepository)(nil).GetByRequester), ctx, requesterID)
}

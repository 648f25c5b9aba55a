package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	bun "github.com/uptrace/bun"
	gomock "go.uber.org/mock/gomock"

	models "github.com/pockettcg/tradehub/tradehub/database/models"
)

// MockTradePostRepository is a mock of TradePostRepository interface.
type MockTradePostRepository struct {
	ctrl     *gomock.Controller
	recorder *MockTradePostRepositoryMockRecorder
	isgomock struct{}
}

// MockTradePostRepositoryMockRecorder is the mock recorder for MockTradePostRepository.
type MockTradePostRepositoryMockRecorder struct {
	mock *MockTradePostRepository
}

// NewMockTradePostRepository creates a new mock instance.
func NewMockTradePostRepository(ctrl *gomock.Controller) *MockTradePostRepository {
	mock := &MockTradePostRepository{ctrl: ctrl}
	mock.recorder = &MockTradePostRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTradePostRepository) EXPECT() *MockTradePostRepositoryMockRecorder {
	return m.recorder
}

// BulkDelete mocks base method.
func (m *MockTradePostRepository) BulkDelete(ctx context.Context, ids []int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BulkDelete", ctx, ids)
	ret0, _ := ret[0].(error)
	return ret0
}

// BulkDelete indicates an expected call of BulkDelete.
func (mr *MockTradePostRepositoryMockRecorder) BulkDelete(ctx, ids any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BulkDelete", reflect.TypeOf((*MockTradePostRepository)(nil).BulkDelete), ctx, ids)
}

// Cancel mocks base method.
func (m *MockTradePostRepository) Cancel(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Cancel indicates an expected call of Cancel.
func (mr *MockTradePostRepositoryMockRecorder) Cancel(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockTradePostRepository)(nil).Cancel), ctx, id)
}

// CountActive mocks base method.
func (m *MockTradePostRepository) CountActive(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountActive", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountActive indicates an expected call of CountActive.
func (mr *MockTradePostRepositoryMockRecorder) CountActive(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountActive", reflect.TypeOf((*MockTradePostRepository)(nil).CountActive), ctx)
}

// CountCreatedSince mocks base method.
func (m *MockTradePostRepository) CountCreatedSince(ctx context.Context, ownerID string, since time.Time) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountCreatedSince", ctx, ownerID, since)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountCreatedSince indicates an expected call of CountCreatedSince.
func (mr *MockTradePostRepositoryMockRecorder) CountCreatedSince(ctx, ownerID, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountCreatedSince", reflect.TypeOf((*MockTradePostRepository)(nil).CountCreatedSince), ctx, ownerID, since)
}

// Create mocks base method.
func (m *MockTradePostRepository) Create(ctx context.Context, post *models.TradePost) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, post)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockTradePostRepositoryMockRecorder) Create(ctx, post any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockTradePostRepository)(nil).Create), ctx, post)
}

// DB mocks base method.
func (m *MockTradePostRepository) DB() *bun.DB {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DB")
	ret0, _ := ret[0].(*bun.DB)
	return ret0
}

// DB indicates an expected call of DB.
func (mr *MockTradePostRepositoryMockRecorder) DB() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DB", reflect.TypeOf((*MockTradePostRepository)(nil).DB))
}

// Delete mocks base method.
func (m *MockTradePostRepository) Delete(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockTradePostRepositoryMockRecorder) Delete(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockTradePostRepository)(nil).Delete), ctx, id)
}

// Expire mocks base method.
func (m *MockTradePostRepository) Expire(ctx context.Context, id int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Expire", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Expire indicates an expected call of Expire.
func (mr *MockTradePostRepositoryMockRecorder) Expire(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Expire", reflect.TypeOf((*MockTradePostRepository)(nil).Expire), ctx, id)
}

// GetByID mocks base method.
func (m *MockTradePostRepository) GetByID(ctx context.Context, id int64) (*models.TradePost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*models.TradePost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockTradePostRepositoryMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockTradePostRepository)(nil).GetByID), ctx, id)
}

// GetByOwner mocks base method.
func (m *MockTradePostRepository) GetByOwner(ctx context.Context, ownerID string) ([]*models.TradePost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByOwner", ctx, ownerID)
	ret0, _ := ret[0].([]*models.TradePost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByOwner indicates an expected call of GetByOwner.
func (mr *MockTradePostRepositoryMockRecorder) GetByOwner(ctx, ownerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByOwner", reflect.TypeOf((*MockTradePostRepository)(nil).GetByOwner), ctx, ownerID)
}

// GetByPostID mocks base method.
func (m *MockTradePostRepository) GetByPostID(ctx context.Context, postID string) (*models.TradePost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPostID", ctx, postID)
	ret0, _ := ret[0].(*models.TradePost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByPostID indicates an expected call of GetByPostID.
func (mr *MockTradePostRepositoryMockRecorder) GetByPostID(ctx, postID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByPostID", reflect.TypeOf((*MockTradePostRepository)(nil).GetByPostID), ctx, postID)
}

// GetDue mocks base method.
func (m *MockTradePostRepository) GetDue(ctx context.Context) ([]int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetDue", ctx)
	ret0, _ := ret[0].([]int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetDue indicates an expected call of GetDue.
func (mr *MockTradePostRepositoryMockRecorder) GetDue(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetDue", reflect.TypeOf((*MockTradePostRepository)(nil).GetDue), ctx)
}

// GetVisible mocks base method.
func (m *MockTradePostRepository) GetVisible(ctx context.Context, limit, offset int) ([]*models.TradePost, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetVisible", ctx, limit, offset)
	ret0, _ := ret[0].([]*models.TradePost)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetVisible indicates an expected call of GetVisible.
func (mr *MockTradePostRepositoryMockRecorder) GetVisible(ctx, limit, offset any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetVisible", reflect.TypeOf((*MockTradePostRepository)(nil).GetVisible), ctx, limit, offset)
}

// PostIDExists mocks base method.
func (m *MockTradePostRepository) PostIDExists(ctx context.Context, postID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PostIDExists", ctx, postID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PostIDExists indicates an expected call of PostIDExists.
func (mr *MockTradePostRepositoryMockRecorder) PostIDExists(ctx, postID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PostIDExists", reflect.TypeOf((*MockTradePostRepository)(nil).PostIDExists), ctx, postID)
}

// SetHidden mocks base method.
func (m *MockTradePostRepository) SetHidden(ctx context.Context, id int64, hidden bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetHidden", ctx, id, hidden)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetHidden indicates an expected call of SetHidden.
func (mr *MockTradePostRepositoryMockRecorder) SetHidden(ctx, id, hidden any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetHidden", reflect.TypeOf((*MockTradePostRepository)(nil).SetHidden), ctx, id, hidden)
}

// SetStatus mocks base method.
func (m *MockTradePostRepository) SetStatus(ctx context.Context, id int64, status models.TradePostStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetStatus", ctx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetStatus indicates an expected call of SetStatus.
func (mr *MockTradePostRepositoryMockRecorder) SetStatus(ctx, id, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStatus", reflect.TypeOf((*MockTradePostRepository)(nil).SetStatus), ctx, id, status)
}

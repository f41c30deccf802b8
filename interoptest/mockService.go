package interoptest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/alekseysidorov/http-interop/httpmodel"
	"github.com/alekseysidorov/http-interop/service"
)

// MockService is a stretchr mock for service.Service, primarily useful for
// testing middleware in isolation.
type MockService struct {
	mock.Mock
}

var _ service.Service = (*MockService)(nil)

func (ms *MockService) Ready() error {
	return ms.Called().Error(0)
}

func (ms *MockService) Execute(ctx context.Context, request *httpmodel.Request) service.Execution {
	arguments := ms.Called(ctx, request)
	execution, _ := arguments.Get(0).(service.Execution)
	return execution
}

// MockExecution is a stretchr mock for service.Execution.
type MockExecution struct {
	mock.Mock
}

var _ service.Execution = (*MockExecution)(nil)

func (me *MockExecution) Done() <-chan struct{} {
	done, _ := me.Called().Get(0).(<-chan struct{})
	return done
}

func (me *MockExecution) Wait(ctx context.Context) (*httpmodel.Response, error) {
	arguments := me.Called(ctx)
	response, _ := arguments.Get(0).(*httpmodel.Response)
	return response, arguments.Error(1)
}

func (me *MockExecution) Cancel() {
	me.Called()
}

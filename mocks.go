package pipes

import (
	"github.com/stretchr/testify/mock"
)

// MockPipe is a testify mock of the Pipe contract, for asserting how a
// combinator drives its sub-pipes.
type MockPipe[I, O any] struct {
	mock.Mock
}

// NewMockPipe returns an unconfigured MockPipe; program it with On.
func NewMockPipe[I, O any]() *MockPipe[I, O] {
	return &MockPipe[I, O]{}
}

// Next records the call and returns the configured output.
func (m *MockPipe[I, O]) Next(in I) O {
	args := m.Called(in)
	return args.Get(0).(O)
}

// Reset records the call.
func (m *MockPipe[I, O]) Reset() {
	m.Called()
}

package backend_test

import (
	"github.com/stretchr/testify/mock"
)

// MockRunner implements backend.Runner for testing
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(name string, args ...string) (string, string, error) {
	callArgs := append([]interface{}{name}, toInterfaces(args)...)
	ret := m.Called(callArgs...)
	return ret.String(0), ret.String(1), ret.Error(2)
}

func toInterfaces(args []string) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

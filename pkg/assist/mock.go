package assist

import "context"

// MockClient is a canned-response Client for tests.
type MockClient struct {
	Response string
	Err      error

	// LastSystem and LastUser capture the most recent prompt pair.
	LastSystem string
	LastUser   string
}

func (m *MockClient) Name() string { return "mock" }

func (m *MockClient) Complete(_ context.Context, system, user string) (string, error) {
	m.LastSystem = system
	m.LastUser = user
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

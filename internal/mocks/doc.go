// Package mocks provides shared test doubles for the store interfaces.
//
// Each mock exposes one function field per interface method. A test sets
// only the fields it cares about; calls to unset methods fall through to a
// small in-memory implementation, so handler tests can run full request
// sequences without a database:
//
//	import "github.com/zhu4ok/Software-architecture-lab5/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    userStore := mocks.NewMockUserStore()
//	    userStore.ListFn = func(ctx context.Context) ([]*domain.User, error) {
//	        return nil, errors.New("connection reset")
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks

package dashboard

import "trading-dashboard/internal/domain/user"

// Status is the load state of the dashboard data.
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusEmpty
	StatusReady
)

// Placeholder texts shown instead of a view while the data is not ready.
const (
	LoadingText = "Loading..."
	EmptyText   = "No user data available"
	ErrorPrefix = "Error: "

	// FetchFailedMessage replaces every fetch failure cause.
	FetchFailedMessage = "Failed to fetch user data"
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusEmpty:
		return "empty"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// FetchResult is the outcome of the account-data fetch as seen by the shell.
type FetchResult struct {
	Done bool
	Err  error
	Data *user.User
}

// Resolve picks the status for r. The checks run in a fixed order:
// unresolved, then failed, then empty.
func Resolve(r FetchResult) Status {
	switch {
	case !r.Done:
		return StatusLoading
	case r.Err != nil:
		return StatusError
	case r.Data == nil:
		return StatusEmpty
	default:
		return StatusReady
	}
}

// Placeholder returns the text rendered for a non-ready status.
func Placeholder(s Status, message string) string {
	switch s {
	case StatusLoading:
		return LoadingText
	case StatusError:
		return ErrorPrefix + message
	case StatusEmpty:
		return EmptyText
	default:
		return ""
	}
}

package model

// FetchStatus represents the state of a single download
type FetchStatus string

const (
	// FetchStatusPending means the request was accepted but nothing ran yet
	FetchStatusPending FetchStatus = "Pending"

	// FetchStatusFetching means the collaborator is running
	FetchStatusFetching FetchStatus = "Fetching"

	// FetchStatusCompleted means the collaborator finished successfully
	FetchStatusCompleted FetchStatus = "Completed"

	// FetchStatusError means the download failed
	FetchStatusError FetchStatus = "Error"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsFinished returns true if the download is completed or failed
func (fs FetchStatus) IsFinished() bool {
	return fs == FetchStatusCompleted || fs == FetchStatusError
}

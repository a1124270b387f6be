package model

// RunStatus represents the status of a conversion run
type RunStatus string

const (
	// RunStatusIdle means no run has been triggered yet
	RunStatusIdle RunStatus = "Idle"

	// RunStatusRunning means a run is processing items
	RunStatusRunning RunStatus = "Running"

	// RunStatusDone means the run finished and produced an output document
	RunStatusDone RunStatus = "Done"

	// RunStatusFailed means the run aborted; no output was kept
	RunStatusFailed RunStatus = "Failed"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true if a run is currently in flight
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusRunning
}

// IsFinished returns true if the run reached a terminal state
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusDone || rs == RunStatusFailed
}

// RunState is the observable progress of one conversion run. A fresh value
// is created per trigger and published to the UI after every completed item;
// it never outlives its run.
type RunState struct {
	ID        string
	Status    RunStatus
	Current   int // items fully processed so far
	Total     int // items in the run's queue snapshot
	LastError string
}

// Fraction returns the completed portion of the run in the range 0..1.
func (r *RunState) Fraction() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Current) / float64(r.Total)
}

// Percent returns the completed portion of the run as 0..100.
func (r *RunState) Percent() int {
	return int(r.Fraction() * 100)
}

package constants

// RunStatus is the canonical status for rows in the run table.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusQueued    RunStatus = "QUEUED"
	RunStatusRunning   RunStatus = "RUNNING"
	RunStatusSucceeded RunStatus = "SUCCEEDED"
	RunStatusPartial   RunStatus = "PARTIAL" // finished, some files skipped
	RunStatusFailed    RunStatus = "FAILED"
)

var AllRunStatuses = []RunStatus{
	RunStatusQueued,
	RunStatusRunning,
	RunStatusSucceeded,
	RunStatusPartial,
	RunStatusFailed,
}

func RunStatusStrings() []string {
	out := make([]string, len(AllRunStatuses))
	for i, s := range AllRunStatuses {
		out[i] = string(s)
	}
	return out
}

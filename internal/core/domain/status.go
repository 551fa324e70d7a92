package domain

// StepStatus represents the lifecycle state of a pipeline step during execution.
type StepStatus string

const (
	// StepStatusPending indicates the step is waiting for dependencies or scheduling.
	StepStatusPending StepStatus = "pending"
	// StepStatusRunning indicates the step is currently executing.
	StepStatusRunning StepStatus = "running"
	// StepStatusCompleted indicates the step executed successfully.
	StepStatusCompleted StepStatus = "completed"
	// StepStatusFailed indicates the step execution failed.
	StepStatusFailed StepStatus = "failed"
	// StepStatusTolerated indicates the step exited non-zero but is marked as
	// tolerating failure, so the pipeline proceeded.
	StepStatusTolerated StepStatus = "tolerated"
	// StepStatusSkipped indicates the step was outside the requested subgraph.
	StepStatusSkipped StepStatus = "skipped"
)

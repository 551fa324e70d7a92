package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingTargetName is returned when a configuration request has no target identifier.
	ErrMissingTargetName = zerr.New("missing target name")

	// ErrInvalidBuildType is returned when the configured build type is not a recognized value.
	ErrInvalidBuildType = zerr.New("invalid build type")

	// ErrInvalidTargetKind is returned when a target declares an unknown kind.
	ErrInvalidTargetKind = zerr.New("invalid target kind")

	// ErrNotExecutable is returned when a coverage pipeline is requested for a non-executable target.
	ErrNotExecutable = zerr.New("coverage requires an executable target")

	// ErrStepAlreadyExists is returned when attempting to add a step with an id that already exists.
	ErrStepAlreadyExists = zerr.New("pipeline step already exists")

	// ErrMissingDependency is returned when a step references a dependency that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing step dependency")

	// ErrCycleDetected is returned when a cycle is detected in the pipeline graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrStepNotFound is returned when a requested step is not found in the graph.
	ErrStepNotFound = zerr.New("pipeline step not found")

	// ErrCompilerNotFound is returned when no usable C/C++ compiler can be located.
	ErrCompilerNotFound = zerr.New("no usable compiler found")
)

package apperr

// ErrorCode is a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeInputInvalid indicates an empty batch or a batch of only
	// empty documents.
	ErrCodeInputInvalid ErrorCode = "INPUT_INVALID"
	// ErrCodeGraphInvalid indicates a cycle or an edge referencing an
	// unknown stage.
	ErrCodeGraphInvalid ErrorCode = "GRAPH_INVALID"
	// ErrCodeStageFailure indicates a stage body returned an error.
	ErrCodeStageFailure ErrorCode = "STAGE_FAILURE"
	// ErrCodeWorkerSystemFailure indicates a worker could not be
	// started or joined.
	ErrCodeWorkerSystemFailure ErrorCode = "WORKER_SYSTEM_FAILURE"
	// ErrCodeConfigDefaulted indicates a configuration value was invalid
	// and a documented default was substituted; not fatal.
	ErrCodeConfigDefaulted ErrorCode = "CONFIG_DEFAULTED"
)

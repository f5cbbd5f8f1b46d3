package core

// Log field names used by the evaluator.
const (
	FieldPipeline = "pipeline"
	FieldRunID    = "run_id"
	FieldStep     = "step"
	FieldSteps    = "steps"
	FieldChannel  = "channel"
	FieldKind     = "kind"
)

const DefaultPipelineName = "pipeline"

const (
	ChannelSuccess = "success"
	ChannelFailure = "failure"
	ChannelEmpty   = "empty"
)

package core

import "context"

type OptionKey string

const (
	PipelineOptionKey OptionKey = "pipeline_options"
	TraceOptionKey    OptionKey = "trace_options"
)

type PipelineOptions struct {
	Name string
}

type TraceOptions struct {
	Steps bool
}

// WithPipelineName labels the log lines of evaluations run with ctx.
func WithPipelineName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, PipelineOptionKey, PipelineOptions{Name: name})
}

// WithStepTrace enables one debug log line per evaluated step.
func WithStepTrace(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, TraceOptionKey, TraceOptions{Steps: enabled})
}

func GetPipelineName(ctx context.Context, defaultName string) string {
	options, ok := ctx.Value(PipelineOptionKey).(PipelineOptions)
	if ok && options.Name != "" {
		return options.Name
	}
	return defaultName
}

func IsStepTraceEnabled(ctx context.Context, defaultEnabled bool) bool {
	options, ok := ctx.Value(TraceOptionKey).(TraceOptions)
	if ok {
		return options.Steps
	}
	return defaultEnabled
}

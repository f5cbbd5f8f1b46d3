package core

import (
	"context"

	"github.com/google/uuid"
	"github.com/ib-77/rail/pkg/rop"
	"github.com/rs/zerolog"
)

// Locomotive drives an element through steps in order. It returns the
// result of the first step that stops, the first fault a step reports, or a
// MissingTerminalStep fault when every step continued (including when there
// are no steps at all).
func Locomotive(ctx context.Context, initial rop.Element[any, any], steps []rop.Step) (any, error) {
	trace := IsStepTraceEnabled(ctx, false)
	log := zerolog.Ctx(ctx).With().
		Str(FieldPipeline, GetPipelineName(ctx, DefaultPipelineName)).
		Str(FieldRunID, uuid.NewString()).
		Logger()

	log.Debug().Int(FieldSteps, len(steps)).Str(FieldChannel, Channel(initial)).Msg("evaluation started")

	current := initial
	for i, step := range steps {
		signal, err := step(ctx, current)
		if err != nil {
			ev := log.Error().Err(err).Int(FieldStep, i)
			if kind, ok := rop.FaultKindOf(err); ok {
				ev = ev.Str(FieldKind, string(kind))
			}
			ev.Msg("evaluation aborted")
			return nil, err
		}

		if signal.IsStop() {
			log.Debug().Int(FieldStep, i).Msg("evaluation stopped")
			return signal.Result(), nil
		}

		current = signal.Next()
		if trace {
			log.Debug().Int(FieldStep, i).Str(FieldChannel, Channel(current)).Msg("step continued")
		}
	}

	fault := rop.MissingTerminalStep(len(steps))
	log.Error().Err(fault).Str(FieldKind, string(fault.Kind)).Msg("evaluation aborted")
	return nil, fault
}

// Channel names the channel an element is on.
func Channel[T, E any](e rop.Element[T, E]) string {
	switch {
	case e.IsSuccess():
		return ChannelSuccess
	case e.IsFailure():
		return ChannelFailure
	default:
		return ChannelEmpty
	}
}

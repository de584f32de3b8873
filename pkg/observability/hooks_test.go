package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingHooks struct {
	started   []Stage
	completed []Stage
	rendered  []string
}

func (r *recordingHooks) OnStageStart(_ context.Context, s Stage) { r.started = append(r.started, s) }
func (r *recordingHooks) OnStageComplete(_ context.Context, s Stage, _ time.Duration, _ error) {
	r.completed = append(r.completed, s)
}
func (r *recordingHooks) OnRender(_ context.Context, format string, _ int, _ time.Duration, _ error) {
	r.rendered = append(r.rendered, format)
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()
	NoopPipelineHooks{}.OnStageStart(ctx, StageParse)
	NoopPipelineHooks{}.OnStageComplete(ctx, StageParse, time.Second, errors.New("x"))
	NoopRenderHooks{}.OnRender(ctx, "svg", 10, time.Second, nil)
}

func TestSetAndReset(t *testing.T) {
	t.Cleanup(Reset)
	rec := &recordingHooks{}
	SetPipelineHooks(rec)
	SetRenderHooks(rec)

	ctx := context.Background()
	Pipeline().OnStageStart(ctx, StageDimensions)
	Pipeline().OnStageComplete(ctx, StageDimensions, 0, nil)
	Render().OnRender(ctx, "png", 1, 0, nil)

	if len(rec.started) != 1 || rec.started[0] != StageDimensions || len(rec.completed) != 1 {
		t.Errorf("pipeline events = %v / %v", rec.started, rec.completed)
	}
	if len(rec.rendered) != 1 || rec.rendered[0] != "png" {
		t.Errorf("render events = %v", rec.rendered)
	}

	SetPipelineHooks(nil)
	if Pipeline() != PipelineHooks(rec) {
		t.Error("nil should not replace registered hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset should restore no-op pipeline hooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset should restore no-op render hooks")
	}
}

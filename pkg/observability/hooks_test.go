package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "data.json")
	p.OnLoadComplete(ctx, "data.json", 100, 250, time.Second, nil)
	p.OnStatsStart(ctx, 100)
	p.OnStatsComplete(ctx, time.Second, nil)
	p.OnRenderStart(ctx, 4500, 1500)
	p.OnRenderComplete(ctx, "out.png", time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset should restore NoopPipelineHooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	ctx := context.Background()
	Pipeline().OnLoadStart(ctx, "data.json")
	Pipeline().OnRenderComplete(ctx, "out.png", time.Millisecond, nil)

	if custom.loadStarts != 1 {
		t.Errorf("loadStarts = %d, want 1", custom.loadStarts)
	}
	if custom.renderCompletes != 1 {
		t.Errorf("renderCompletes = %d, want 1", custom.renderCompletes)
	}
}

type testPipelineHooks struct {
	NoopPipelineHooks
	loadStarts      int
	renderCompletes int
}

func (h *testPipelineHooks) OnLoadStart(context.Context, string) { h.loadStarts++ }
func (h *testPipelineHooks) OnRenderComplete(context.Context, string, time.Duration, error) {
	h.renderCompletes++
}

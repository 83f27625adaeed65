package planner

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"tripmate/internal/ai"
)

func newTestWorkflow(seed int64) *Workflow {
	return New(
		WithRand(rand.New(rand.NewSource(seed))),
		WithClock(func() time.Time { return testNow }),
	)
}

func TestCollectInfoGreetsOnEmptySession(t *testing.T) {
	w := newTestWorkflow(1)
	st := NewState("s1", testNow)

	patch := w.collectInfo(context.Background(), st)
	if len(patch.Messages) != 1 || patch.Messages[0].Content != greeting {
		t.Fatalf("got %+v, want greeting", patch.Messages)
	}
	if patch.InfoCollected {
		t.Fatal("greeting turn must not complete collection")
	}
}

func TestCollectInfoSkipsWhenComplete(t *testing.T) {
	w := newTestWorkflow(1)
	st := NewState("s1", testNow)
	st.InfoCollected = true

	if patch := w.collectInfo(context.Background(), st); !patch.IsEmpty() {
		t.Fatalf("expected no-op, got %+v", patch)
	}
}

func TestCollectInfoCapturesOneSlot(t *testing.T) {
	w := newTestWorkflow(1)
	st := NewState("s1", testNow)
	st.AppendUserMessage("오사카 가고 싶어요", testNow)

	patch := w.collectInfo(context.Background(), st)
	if patch.Destination != "Osaka" {
		t.Fatalf("destination = %q", patch.Destination)
	}
	reply := patch.Messages[0].Content
	if !strings.Contains(reply, "좋아요") {
		t.Fatalf("reply lacks confirmation: %q", reply)
	}
	if !strings.Contains(reply, fieldQuestions[fieldDuration]) {
		t.Fatalf("reply must ask the next question in order: %q", reply)
	}
}

func TestCollectInfoAsksInFixedOrder(t *testing.T) {
	w := newTestWorkflow(1)
	st := NewState("s1", testNow)
	st.Destination = "Tokyo"
	st.Duration = 3
	st.AppendUserMessage("잘 모르겠어요", testNow)

	patch := w.collectInfo(context.Background(), st)
	reply := patch.Messages[0].Content
	if reply != fieldQuestions[fieldBudget] {
		t.Fatalf("reply = %q, want budget question", reply)
	}
}

func TestCollectInfoDropsOutOfRangeSilently(t *testing.T) {
	w := newTestWorkflow(1)
	st := NewState("s1", testNow)
	st.Destination = "Osaka"
	st.AppendUserMessage("20박으로 길게요", testNow)

	patch := w.collectInfo(context.Background(), st)
	if patch.Duration != 0 {
		t.Fatalf("out-of-range duration stored: %d", patch.Duration)
	}
	// The rejected value is not acknowledged; the same question comes back.
	if reply := patch.Messages[0].Content; reply != fieldQuestions[fieldDuration] {
		t.Fatalf("reply = %q, want plain duration question", reply)
	}
}

func TestCollectInfoCompletionRecap(t *testing.T) {
	w := newTestWorkflow(1)
	st := NewState("s1", testNow)
	st.Destination = "Osaka"
	st.Duration = 3
	st.Budget = 1_000_000
	st.NumPeople = 2
	st.AppendUserMessage("맛집 위주로 다닐래요", testNow)

	patch := w.collectInfo(context.Background(), st)
	if !patch.InfoCollected {
		t.Fatal("collection must close once all slots are set")
	}
	if patch.CurrentStep != StepSearchingFlights {
		t.Fatalf("step = %s", patch.CurrentStep)
	}
	recap := patch.Messages[0].Content
	for _, want := range []string{"완벽해요", "Osaka", "3박 4일", "2명", "1,000,000", "food"} {
		if !strings.Contains(recap, want) {
			t.Fatalf("recap missing %q: %q", want, recap)
		}
	}
}

func TestCollectInfoSlotsAreMonotonic(t *testing.T) {
	w := newTestWorkflow(1)
	st := NewState("s1", testNow)
	st.Destination = "Osaka"
	st.AppendUserMessage("아 역시 도쿄로 갈래요", testNow)

	patch := w.collectInfo(context.Background(), st)
	if patch.Destination != "" {
		t.Fatalf("set slot re-extracted: %q", patch.Destination)
	}
}

// fakeExtractor stands in for the model-backed fallback.
type fakeExtractor struct {
	dest   string
	err    error
	called bool
}

func (f *fakeExtractor) ExtractSlots(_ context.Context, _ string, _ map[string]string) (*ai.ExtractionResult, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return &ai.ExtractionResult{Destination: f.dest}, nil
}

func TestCollectInfoFallbackExtractor(t *testing.T) {
	fb := &fakeExtractor{dest: "Osaka"}
	w := New(
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(func() time.Time { return testNow }),
		WithFallbackExtractor(fb),
	)
	st := NewState("s1", testNow)
	st.AppendUserMessage("어딘가 따뜻한 곳으로 가고 싶어요", testNow)

	patch := w.collectInfo(context.Background(), st)
	if !fb.called {
		t.Fatal("fallback extractor not consulted")
	}
	if patch.Destination != "Osaka" {
		t.Fatalf("destination = %q", patch.Destination)
	}
}

func TestCollectInfoFallbackSkippedWhenRulesMatch(t *testing.T) {
	fb := &fakeExtractor{dest: "Tokyo"}
	w := New(
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(func() time.Time { return testNow }),
		WithFallbackExtractor(fb),
	)
	st := NewState("s1", testNow)
	st.AppendUserMessage("오사카로 가요", testNow)

	patch := w.collectInfo(context.Background(), st)
	if fb.called {
		t.Fatal("fallback must only run when the rules capture nothing")
	}
	if patch.Destination != "Osaka" {
		t.Fatalf("destination = %q", patch.Destination)
	}
}

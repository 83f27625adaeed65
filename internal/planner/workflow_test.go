package planner

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessTurnFullPipelineInOneTurn(t *testing.T) {
	w := newTestWorkflow(42)
	st := NewState("s1", testNow)
	st.AppendUserMessage("오사카로 3박 4일, 100만원, 2명이서 맛집 여행 가고 싶어요", testNow)

	patch := w.ProcessTurn(context.Background(), st)
	st.Apply(patch, testNow)

	require.True(t, st.InfoCollected)
	assert.Equal(t, "Osaka", st.Destination)
	assert.Equal(t, 3, st.Duration)
	assert.Equal(t, 1_000_000, st.Budget)
	assert.Equal(t, 2, st.NumPeople)
	assert.Equal(t, []string{"food"}, st.TravelStyle)

	assert.Equal(t, StepDone, st.CurrentStep)
	assert.Len(t, st.FlightOptions, 3)
	assert.Len(t, st.HotelOptions, 3)
	assert.Len(t, st.Itinerary, 4)

	// recap, flights, hotels, itinerary, summary
	require.Len(t, patch.Messages, 5)
	assert.True(t, strings.HasPrefix(st.LastReply(), summaryPrefix))
}

func TestProcessTurnIsIdempotent(t *testing.T) {
	w := newTestWorkflow(42)
	st := NewState("s1", testNow)
	st.AppendUserMessage("오사카로 3박 4일, 100만원, 2명이서 맛집 여행 가고 싶어요", testNow)
	st.Apply(w.ProcessTurn(context.Background(), st), testNow)
	before := len(st.Messages)

	// Re-running a finished session must change nothing.
	again := w.ProcessTurn(context.Background(), st)
	require.True(t, again.IsEmpty(), "second turn produced %+v", again)
	st.Apply(again, testNow)
	assert.Len(t, st.Messages, before)
}

func TestProcessTurnHaltsUntilCollected(t *testing.T) {
	w := newTestWorkflow(42)
	st := NewState("s1", testNow)
	st.AppendUserMessage("도쿄 가고 싶어요", testNow)

	patch := w.ProcessTurn(context.Background(), st)
	st.Apply(patch, testNow)

	assert.False(t, st.InfoCollected)
	assert.Equal(t, StepCollecting, st.CurrentStep)
	assert.Empty(t, st.FlightOptions)
	assert.Len(t, patch.Messages, 1)
}

func TestProcessTurnMultiTurnConversation(t *testing.T) {
	w := newTestWorkflow(42)
	st := NewState("s1", testNow)

	turns := []string{
		"여행 가고 싶어요",
		"오사카요",
		"3박이요",
		"100만원 정도요",
		"2명이서요",
		"맛집이랑 쇼핑이요",
	}
	for _, msg := range turns {
		st.AppendUserMessage(msg, testNow)
		st.Apply(w.ProcessTurn(context.Background(), st), testNow)
	}

	require.True(t, st.InfoCollected)
	assert.Equal(t, StepDone, st.CurrentStep)
	assert.Equal(t, []string{"food", "shopping"}, st.TravelStyle)
	assert.True(t, st.HasFinalSummary())
}

func TestProcessTurnNonFatalGeneratorError(t *testing.T) {
	// Collection closed without a destination: every generator fails soft
	// and the session still reaches done.
	w := newTestWorkflow(42)
	st := NewState("s1", testNow)
	st.Duration = 3
	st.Budget = 1_000_000
	st.NumPeople = 2
	st.TravelStyle = []string{"food"}
	st.InfoCollected = true
	st.AppendUserMessage("계속해주세요", testNow)

	patch := w.ProcessTurn(context.Background(), st)
	st.Apply(patch, testNow)

	assert.Equal(t, StepDone, st.CurrentStep)
	assert.NotEmpty(t, st.Error)
	assert.Empty(t, st.FlightOptions)
	assert.Empty(t, st.HotelOptions)
	// The summary still renders with whatever exists.
	assert.True(t, st.HasFinalSummary())
}

func TestProcessTurnNeverMutatesInput(t *testing.T) {
	w := newTestWorkflow(42)
	st := NewState("s1", testNow)
	st.AppendUserMessage("오사카로 3박 4일, 100만원, 2명이서 맛집 여행 가고 싶어요", testNow)

	_ = w.ProcessTurn(context.Background(), st)

	assert.False(t, st.InfoCollected)
	assert.Empty(t, st.Destination)
	assert.Len(t, st.Messages, 1)
}

func TestProcessTurnFallbackErrorIsIgnored(t *testing.T) {
	fb := &fakeExtractor{err: errors.New("model unavailable")}
	w := New(
		WithRand(rand.New(rand.NewSource(42))),
		WithClock(func() time.Time { return testNow }),
		WithFallbackExtractor(fb),
	)
	st := NewState("s1", testNow)
	st.AppendUserMessage("어딘가 따뜻한 곳으로 가고 싶어요", testNow)

	patch := w.ProcessTurn(context.Background(), st)
	st.Apply(patch, testNow)

	require.True(t, fb.called)
	// The deterministic path still answers.
	assert.NotEmpty(t, st.LastReply())
	assert.Empty(t, st.Destination)
}

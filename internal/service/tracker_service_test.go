package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"alcyxob/fitness-tracker/internal/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func newTestService(t *testing.T, opts ...memory.Option) (service.TrackerService, *metrics.Manager) {
	t.Helper()
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	store := memory.NewStore(append([]memory.Option{memory.WithIDGenerator(ids)}, opts...)...)
	m := metrics.NewTestManager()
	return service.NewTrackerService(store.Workouts(), store.Friends(), store.Goals(), m, fixedClock), m
}

func mutations(m *metrics.Manager, op, outcome string) float64 {
	return testutil.ToFloat64(m.CounterMutations.WithLabelValues(op, outcome))
}

func TestTrackerService_AddWorkout_Valid(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name         string
		caloriesText string
		wantName     string
		wantCalories int
	}{
		{"Push-ups", "100", "Push-ups", 100},
		{"Rest", "0", "Rest", 0},
		{"  Rowing ", " 250 ", "Rowing", 250},
	}

	for i, tc := range cases {
		before, err := svc.GetWorkouts(ctx)
		require.NoError(t, err)

		workout, err := svc.AddWorkout(ctx, tc.name, tc.caloriesText)
		require.NoError(t, err)
		require.NotNil(t, workout)
		assert.Equal(t, tc.wantName, workout.Name)
		assert.Equal(t, tc.wantCalories, workout.Calories)
		assert.False(t, workout.Completed)
		assert.Equal(t, "2026-10-19", workout.Date)

		after, err := svc.GetWorkouts(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
		assert.Equal(t, *workout, after[len(after)-1])
		assert.Equal(t, float64(i+1), mutations(m, service.OpAddWorkout, metrics.OutcomeApplied))
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(m.GaugeWorkouts))
}

func TestTrackerService_AddWorkout_Invalid(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		label        string
		name         string
		caloriesText string
	}{
		{"empty name", "", "100"},
		{"blank name", "   ", "100"},
		{"empty calories", "Run", ""},
		{"non numeric", "Run", "abc"},
		{"trailing garbage", "Run", "12abc"},
		{"decimal", "Run", "12.5"},
		{"negative", "Run", "-5"},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			workout, err := svc.AddWorkout(ctx, tc.name, tc.caloriesText)
			assert.Nil(t, workout)
			assert.ErrorIs(t, err, service.ErrValidationFailed)

			workouts, err := svc.GetWorkouts(ctx)
			require.NoError(t, err)
			assert.Empty(t, workouts)
		})
	}

	assert.Equal(t, float64(len(cases)), mutations(m, service.OpAddWorkout, metrics.OutcomeRejected))
	assert.Equal(t, float64(0), mutations(m, service.OpAddWorkout, metrics.OutcomeApplied))
}

func TestTrackerService_ToggleWorkout_Involution(t *testing.T) {
	svc, _ := newTestService(t, memory.WithSampleWorkouts(domain.SampleWorkouts(), "2026-10-19"))
	ctx := context.Background()

	original, err := svc.GetWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, original, 5)

	for _, w := range original {
		toggled, err := svc.ToggleWorkoutCompleted(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, !w.Completed, toggled.Completed)
		assert.Equal(t, w.ID, toggled.ID)

		toggled, err = svc.ToggleWorkoutCompleted(ctx, w.ID)
		require.NoError(t, err)
		assert.Equal(t, w.Completed, toggled.Completed)
	}

	after, err := svc.GetWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, after)
}

func TestTrackerService_ToggleWorkout_NotFound(t *testing.T) {
	svc, m := newTestService(t, memory.WithSampleWorkouts(domain.SampleWorkouts(), "2026-10-19"))
	ctx := context.Background()

	before, err := svc.GetWorkouts(ctx)
	require.NoError(t, err)

	workout, err := svc.ToggleWorkoutCompleted(ctx, "missing")
	assert.Nil(t, workout)
	assert.ErrorIs(t, err, service.ErrWorkoutNotFound)

	after, err := svc.GetWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, float64(1), mutations(m, service.OpToggleWorkout, metrics.OutcomeRejected))
}

func TestTrackerService_DeleteWorkout(t *testing.T) {
	svc, m := newTestService(t, memory.WithSampleWorkouts(domain.SampleWorkouts(), "2026-10-19"))
	ctx := context.Background()

	before, err := svc.GetWorkouts(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorkout(ctx, "missing"))
	after, err := svc.GetWorkouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, float64(1), mutations(m, service.OpDeleteWorkout, metrics.OutcomeNoop))

	require.NoError(t, svc.DeleteWorkout(ctx, before[1].ID))
	// double delete is harmless
	require.NoError(t, svc.DeleteWorkout(ctx, before[1].ID))

	after, err = svc.GetWorkouts(ctx)
	require.NoError(t, err)
	require.Len(t, after, 4)
	for _, w := range after {
		assert.NotEqual(t, before[1].ID, w.ID)
	}
	assert.Equal(t, float64(1), mutations(m, service.OpDeleteWorkout, metrics.OutcomeApplied))
	assert.Equal(t, float64(2), mutations(m, service.OpDeleteWorkout, metrics.OutcomeNoop))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.GaugeWorkouts))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GaugeCompletedWorkouts))
}

func TestTrackerService_Friends(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	alice, err := svc.AddFriend(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, 0, alice.WorkoutsThisWeek)
	assert.Equal(t, 0, alice.ProgressPercent)

	_, err = svc.AddFriend(ctx, "Bob")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFriend(ctx, alice.ID))

	friends, err := svc.GetFriends(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, service.FriendCount(friends))
	assert.Equal(t, "Bob", friends[0].Name)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GaugeFriends))

	require.NoError(t, svc.DeleteFriend(ctx, alice.ID))
	assert.Equal(t, float64(1), mutations(m, service.OpDeleteFriend, metrics.OutcomeNoop))
}

func TestTrackerService_AddFriend_Invalid(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"", " \t "} {
		friend, err := svc.AddFriend(ctx, name)
		assert.Nil(t, friend)
		assert.ErrorIs(t, err, service.ErrValidationFailed)
	}

	friends, err := svc.GetFriends(ctx)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestTrackerService_SetGoalMode(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	mode, err := svc.GetGoalMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalModeLoss, mode)

	var plans []domain.DietPlan
	for i := 0; i < 2; i++ {
		require.NoError(t, svc.SetGoalMode(ctx, domain.GoalModeLoss))
		mode, err = svc.GetGoalMode(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.GoalModeLoss, mode)
		plans = append(plans, service.ActiveDietPlan(mode))
	}
	assert.Equal(t, plans[0], plans[1])

	require.NoError(t, svc.SetGoalMode(ctx, domain.GoalModeGain))
	mode, err = svc.GetGoalMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalModeGain, mode)

	err = svc.SetGoalMode(ctx, "bulk")
	assert.ErrorIs(t, err, service.ErrInvalidGoalMode)
	mode, err = svc.GetGoalMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalModeGain, mode)

	assert.Equal(t, float64(3), mutations(m, service.OpSetGoalMode, metrics.OutcomeApplied))
	assert.Equal(t, float64(1), mutations(m, service.OpSetGoalMode, metrics.OutcomeRejected))
}

func TestNewTrackerService_SeedsGauges(t *testing.T) {
	_, m := newTestService(t, memory.WithSampleWorkouts(domain.SampleWorkouts(), "2026-10-19"))

	assert.Equal(t, float64(5), testutil.ToFloat64(m.GaugeWorkouts))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.GaugeCompletedWorkouts))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.GaugeFriends))
}

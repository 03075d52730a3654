package service

import (
	"context"
	"testing"
	"time"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/testutil"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChallengeService(f *fixture) *ChallengeService {
	return NewChallengeService(f.chals, f.users, f.cache, f.publisher)
}

func TestCreateAndListActiveChallenges(t *testing.T) {
	f := newFixture(t)
	svc := newChallengeService(f)
	now := time.Now()

	created, err := svc.CreateChallenge(CreateChallengeInput{
		Name:      "Bike to Campus",
		Category:  model.ChallengeTransportation,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyEasy, created.Difficulty)
	assert.Equal(t, 10, created.PointsReward)

	zero := 0
	_, err = svc.CreateChallenge(CreateChallengeInput{
		Name:         "Next Month",
		Category:     model.ChallengeDigital,
		Difficulty:   model.DifficultyHard,
		PointsReward: &zero,
		StartDate:    now.AddDate(0, 1, 0),
		EndDate:      now.AddDate(0, 2, 0),
	})
	require.NoError(t, err)

	active, err := svc.GetActiveChallenges(now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Bike to Campus", active[0].Name)
	assert.Zero(t, active[0].ParticipantCount)

	user := testutil.CreateUser(t, f.db, "ada", "", "", 0)
	_, err = svc.JoinChallenge(context.Background(), created.ID, user.ID)
	require.NoError(t, err)

	active, err = svc.GetActiveChallenges(now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.EqualValues(t, 1, active[0].ParticipantCount)
}

func TestCreateChallengeValidation(t *testing.T) {
	svc := newChallengeService(newFixture(t))
	now := time.Now()
	negative := -1

	cases := []struct {
		name  string
		input CreateChallengeInput
	}{
		{"unknown category", CreateChallengeInput{Name: "x", Category: "space", StartDate: now, EndDate: now.Add(time.Hour)}},
		{"unknown difficulty", CreateChallengeInput{Name: "x", Category: model.ChallengeDiet, Difficulty: "extreme", StartDate: now, EndDate: now.Add(time.Hour)}},
		{"end before start", CreateChallengeInput{Name: "x", Category: model.ChallengeDiet, StartDate: now, EndDate: now.Add(-time.Hour)}},
		{"negative reward", CreateChallengeInput{Name: "x", Category: model.ChallengeDiet, PointsReward: &negative, StartDate: now, EndDate: now.Add(time.Hour)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateChallenge(tc.input)
			assert.ErrorIs(t, err, util.ErrInvalidChallenge)
		})
	}
}

func TestJoinChallenge(t *testing.T) {
	f := newFixture(t)
	svc := newChallengeService(f)
	user := testutil.CreateUser(t, f.db, "ada", "", "", 0)
	challenge := &model.Challenge{
		Name:         "Meatless Monday",
		Category:     model.ChallengeDiet,
		PointsReward: 10,
		StartDate:    time.Now().Add(-time.Hour),
		EndDate:      time.Now().Add(time.Hour),
	}
	require.NoError(t, f.chals.Create(challenge))

	joined, err := svc.JoinChallenge(context.Background(), challenge.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, joined.Participants, 1)
	assert.Equal(t, user.ID, joined.Participants[0].UserID)
	assert.Zero(t, joined.Participants[0].Progress)

	_, err = svc.JoinChallenge(context.Background(), challenge.ID, user.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyJoined)

	_, err = svc.JoinChallenge(context.Background(), 999, user.ID)
	assert.ErrorIs(t, err, util.ErrChallengeNotFound)

	_, err = svc.JoinChallenge(context.Background(), challenge.ID, 999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events.TypeChallengeJoined, f.publisher.events[0].Type)

	got, err := f.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Points, "joining does not award points")
}

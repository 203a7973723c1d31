package services

import (
	"testing"

	"mingle_server/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatsEmptyInput(t *testing.T) {
	snapshot := ComputeStats(nil, nil, nil)

	assert.Equal(t, models.StatsSnapshot{}, snapshot)
	assert.Zero(t, snapshot.EngagementRate)
}

func TestComputeStatsMatchCountIsHalfMutualCount(t *testing.T) {
	tests := []struct {
		name        string
		mutual      int
		nonMutual   int
		wantMatches int
	}{
		{"no likes", 0, 0, 0},
		{"one pair", 2, 0, 1},
		{"odd count tolerated", 5, 0, 2},
		{"non-mutual ignored", 4, 7, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var likes []models.Like
			for i := 0; i < tt.mutual; i++ {
				likes = append(likes, models.Like{FromProfileID: "a", ToProfileID: "b", IsMutual: true})
			}
			for i := 0; i < tt.nonMutual; i++ {
				likes = append(likes, models.Like{FromProfileID: "a", ToProfileID: "b"})
			}

			snapshot := ComputeStats(nil, likes, nil)
			assert.Equal(t, tt.wantMatches, snapshot.TotalMatches)
		})
	}
}

func TestComputeStatsGenderPartitionIsExhaustive(t *testing.T) {
	profiles := []models.Profile{
		{ProfileID: "1", GenderIdentity: "man", Age: 30},
		{ProfileID: "2", GenderIdentity: "woman", Age: 30},
		{ProfileID: "3", GenderIdentity: "nonbinary", Age: 30},
		{ProfileID: "4", GenderIdentity: "", Age: 30},
		{ProfileID: "5", GenderIdentity: "Man", Age: 30}, // vocabulary is exact-match
	}

	snapshot := ComputeStats(profiles, nil, nil)

	g := snapshot.GenderDistribution
	assert.Equal(t, 1, g.Male)
	assert.Equal(t, 1, g.Female)
	assert.Equal(t, 3, g.Other)
	assert.Equal(t, snapshot.TotalProfiles, g.Male+g.Female+g.Other)
}

func TestComputeStatsAgeBands(t *testing.T) {
	profiles := []models.Profile{
		{ProfileID: "1", Age: 17}, // counted in totals, in no band
		{ProfileID: "2", Age: 18},
		{ProfileID: "3", Age: 25},
		{ProfileID: "4", Age: 26},
		{ProfileID: "5", Age: 35},
		{ProfileID: "6", Age: 36},
		{ProfileID: "7", Age: 45},
		{ProfileID: "8", Age: 46},
	}

	snapshot := ComputeStats(profiles, nil, nil)

	a := snapshot.AgeDistribution
	assert.Equal(t, 8, snapshot.TotalProfiles)
	assert.Equal(t, 2, a.Age18To25)
	assert.Equal(t, 2, a.Age26To35)
	assert.Equal(t, 2, a.Age36To45)
	assert.Equal(t, 1, a.Age45Plus)
	assert.Less(t, a.Age18To25+a.Age26To35+a.Age36To45+a.Age45Plus, snapshot.TotalProfiles)
}

func TestComputeStatsActiveUsersAndEngagement(t *testing.T) {
	profiles := []models.Profile{
		{ProfileID: "1", Age: 20},
		{ProfileID: "2", Age: 21},
		{ProfileID: "3", Age: 22},
		{ProfileID: "4", Age: 23},
	}
	likes := []models.Like{
		{FromProfileID: "1", ToProfileID: "2"},
	}
	messages := []models.Message{
		{FromProfileID: "3", ToProfileID: "ghost"}, // receiver not in profiles
	}

	snapshot := ComputeStats(profiles, likes, messages)

	assert.Equal(t, 3, snapshot.ActiveUsers)
	assert.InDelta(t, 75.0, snapshot.EngagementRate, 1e-9)
}

func TestComputeStatsMalformedRecordsMatchNothing(t *testing.T) {
	profiles := []models.Profile{{ProfileID: "", Age: 20}}
	likes := []models.Like{{FromProfileID: "", ToProfileID: ""}}

	snapshot := ComputeStats(profiles, likes, nil)

	assert.Equal(t, 1, snapshot.TotalProfiles)
	assert.Zero(t, snapshot.ActiveUsers)
}

func TestComputeStatsScenario(t *testing.T) {
	profiles := []models.Profile{
		{ProfileID: "1", Age: 20, GenderIdentity: "woman"},
		{ProfileID: "2", Age: 50, GenderIdentity: "man"},
	}
	likes := []models.Like{
		{FromProfileID: "1", ToProfileID: "2", IsMutual: true},
		{FromProfileID: "2", ToProfileID: "1", IsMutual: true},
	}

	snapshot := ComputeStats(profiles, likes, nil)

	assert.Equal(t, 1, snapshot.TotalMatches)
	assert.Equal(t, 2, snapshot.ActiveUsers)
	assert.Equal(t, models.GenderDistribution{Male: 1, Female: 1}, snapshot.GenderDistribution)
	assert.Equal(t, models.AgeDistribution{Age18To25: 1, Age45Plus: 1}, snapshot.AgeDistribution)
	assert.InDelta(t, 100.0, snapshot.EngagementRate, 1e-9)
	assert.Zero(t, snapshot.TotalMessages)
}

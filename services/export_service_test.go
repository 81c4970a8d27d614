package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/Dosada05/hackathon-registration/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRepo(t *testing.T, inputs ...RegistrationInput) *memoryRepo {
	t.Helper()
	repo := &memoryRepo{}
	svc := NewRegistrationService(repo, discardLogger())
	for _, in := range inputs {
		_, err := svc.Register(context.Background(), in)
		require.NoError(t, err)
	}
	return repo
}

func inputWithEmail(email string) RegistrationInput {
	in := validInput()
	in.Email = email
	return in
}

func TestExportService_ListAllNewestFirst(t *testing.T) {
	repo := seedRepo(t, inputWithEmail("a@x.com"), inputWithEmail("b@x.com"), inputWithEmail("c@x.com"))
	svc := NewExportService(repo)

	regs, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 3)
	assert.Equal(t, "c@x.com", regs[0].Email)
	assert.Equal(t, "b@x.com", regs[1].Email)
	assert.Equal(t, "a@x.com", regs[2].Email)
}

func TestExportService_ExportCSV(t *testing.T) {
	advanced := inputWithEmail("adv@x.com")
	advanced.SkillLevel = "advanced"
	advanced.WantsFreeLicense = true
	advanced.Phone = "+1 555"

	team := inputWithEmail("team@x.com")
	team.ParticipationType = "team"
	team.TeamMembers = "Al, Cy"
	team.SkillLevel = "intermediate"
	team.ShareRecordings = true
	team.SocialHandle = "@team"

	repo := seedRepo(t, inputWithEmail("jo@x.com"), advanced, team)
	svc := NewExportService(repo)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{
		"ID", "Full Name", "Email", "Phone", "Participation Type", "Team Members",
		"Skill Level", "Project Idea", "Wants Free License",
		"Availability Confirmed", "Share Recordings", "Social Handle", "Registered At",
	}, records[0])

	assert.Equal(t, []string{
		"3", "Jo", "team@x.com", "", "Team", "Al, Cy", "Intermediate (built a few workflows)",
		"bot", "No", "Yes", "Yes", "@team", "2025-01-01 00:00:00",
	}, records[1])
	assert.Equal(t, []string{
		"2", "Jo", "adv@x.com", "+1 555", "Solo", "", "Advanced (use n8n regularly)",
		"bot", "Yes", "Yes", "No", "", "2025-01-01 00:00:00",
	}, records[2])
	assert.Contains(t, buf.String(), "\n1,Jo,jo@x.com,,Solo,,Beginner (new to n8n),bot,No,Yes,No,,")
}

func TestWriteRegistrationsCSV_UnknownLabelsPassThrough(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRegistrationsCSV(&buf, []models.Registration{{
		ID:                9,
		FullName:          "X",
		Email:             "x@y.z",
		ParticipationType: "duo",
		SkillLevel:        "guru",
		ProjectIdea:       "idea, with comma",
		CreatedAt:         "2025-02-03 04:05:06",
	}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `9,X,x@y.z,,duo,,guru,"idea, with comma",No,No,No,,2025-02-03 04:05:06`)
}

func TestExportService_ListError(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc := NewExportService(&memoryRepo{listErr: dbErr})

	var buf bytes.Buffer
	err := svc.ExportCSV(context.Background(), &buf)
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, buf.String())
}

func TestExportService_Stats(t *testing.T) {
	team := inputWithEmail("t@x.com")
	team.ParticipationType = "team"
	team.TeamMembers = "Al"
	team.SkillLevel = "advanced"
	team.WantsFreeLicense = true

	repo := seedRepo(t, inputWithEmail("a@x.com"), inputWithEmail("b@x.com"), team)
	stats, err := NewExportService(repo).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByParticipation[models.ParticipationSolo])
	assert.Equal(t, 1, stats.ByParticipation[models.ParticipationTeam])
	assert.Equal(t, 2, stats.BySkillLevel[models.SkillBeginner])
	assert.Equal(t, 1, stats.BySkillLevel[models.SkillAdvanced])
	assert.Equal(t, 1, stats.WantsFreeLicense)
	assert.Zero(t, stats.ShareRecordings)
}

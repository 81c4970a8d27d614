package services

import (
	"regexp"
	"strings"

	"github.com/Dosada05/hackathon-registration/models"
)

const (
	msgFullNameRequired      = "Full name is required"
	msgEmailRequired         = "Email is required"
	msgEmailInvalid          = "Invalid email format"
	msgParticipationRequired = "Participation type is required"
	msgTeamMembersRequired   = "Team member names/emails are required when participating as a team"
	msgSkillLevelRequired    = "Skill level is required"
	msgProjectIdeaRequired   = "Project idea is required"
	msgAvailabilityRequired  = "You must confirm your availability and commitment to submit"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegistrationInput — сырые поля формы. Отсутствующие поля приходят нулевыми значениями.
type RegistrationInput struct {
	FullName              string `json:"full_name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	ParticipationType     string `json:"participation_type"`
	TeamMembers           string `json:"team_members"`
	SkillLevel            string `json:"skill_level"`
	ProjectIdea           string `json:"project_idea"`
	WantsFreeLicense      bool   `json:"wants_free_license"`
	AvailabilityConfirmed bool   `json:"availability_confirmed"`
	ShareRecordings       bool   `json:"share_recordings"`
	SocialHandle          string `json:"social_handle"`
}

// ValidateRegistration нормализует ввод и собирает все ошибки сразу, а не только первую.
// При непустом списке ошибок запись равна nil.
func ValidateRegistration(input RegistrationInput) (*models.Registration, []string) {
	var errs []string

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		errs = append(errs, msgFullNameRequired)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		errs = append(errs, msgEmailRequired)
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, msgEmailInvalid)
	}

	phone := strings.TrimSpace(input.Phone)

	participation := input.ParticipationType
	if participation == "" {
		errs = append(errs, msgParticipationRequired)
	}

	teamMembers := strings.TrimSpace(input.TeamMembers)
	if models.ParticipationType(participation) == models.ParticipationTeam && teamMembers == "" {
		errs = append(errs, msgTeamMembersRequired)
	}

	if input.SkillLevel == "" {
		errs = append(errs, msgSkillLevelRequired)
	}

	projectIdea := strings.TrimSpace(input.ProjectIdea)
	if projectIdea == "" {
		errs = append(errs, msgProjectIdeaRequired)
	}

	if !input.AvailabilityConfirmed {
		errs = append(errs, msgAvailabilityRequired)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Registration{
		FullName:              fullName,
		Email:                 email,
		Phone:                 optional(phone),
		ParticipationType:     models.ParticipationType(participation),
		TeamMembers:           optional(teamMembers),
		SkillLevel:            models.SkillLevel(input.SkillLevel),
		ProjectIdea:           projectIdea,
		WantsFreeLicense:      input.WantsFreeLicense,
		AvailabilityConfirmed: true,
		ShareRecordings:       input.ShareRecordings,
		SocialHandle:          optional(strings.TrimSpace(input.SocialHandle)),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

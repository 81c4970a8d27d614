package models

// ParticipationType — участие в одиночку или командой.
type ParticipationType string

const (
	ParticipationSolo ParticipationType = "solo"
	ParticipationTeam ParticipationType = "team"
)

// SkillLevel — самооценка опыта участника.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

var participationLabels = map[ParticipationType]string{
	ParticipationSolo: "Solo",
	ParticipationTeam: "Team",
}

var skillLabels = map[SkillLevel]string{
	SkillBeginner:     "Beginner (new to n8n)",
	SkillIntermediate: "Intermediate (built a few workflows)",
	SkillAdvanced:     "Advanced (use n8n regularly)",
}

// Label возвращает человекочитаемое название; неизвестные значения отдаются как есть.
func (p ParticipationType) Label() string {
	if label, ok := participationLabels[p]; ok {
		return label
	}
	return string(p)
}

func (s SkillLevel) Label() string {
	if label, ok := skillLabels[s]; ok {
		return label
	}
	return string(s)
}

// Registration представляет заявку на участие в хакатоне.
type Registration struct {
	ID                    int               `json:"id" db:"id"`
	FullName              string            `json:"full_name" db:"full_name"`
	Email                 string            `json:"email" db:"email"`
	Phone                 *string           `json:"phone,omitempty" db:"phone"`
	ParticipationType     ParticipationType `json:"participation_type" db:"participation_type"`
	TeamMembers           *string           `json:"team_members,omitempty" db:"team_members"`
	SkillLevel            SkillLevel        `json:"skill_level" db:"skill_level"`
	ProjectIdea           string            `json:"project_idea" db:"project_idea"`
	WantsFreeLicense      bool              `json:"wants_free_license" db:"wants_free_license"`
	AvailabilityConfirmed bool              `json:"availability_confirmed" db:"availability_confirmed"`
	ShareRecordings       bool              `json:"share_recordings" db:"share_recordings"`
	SocialHandle          *string           `json:"social_handle,omitempty" db:"social_handle"`

	// Текстовое представление метки времени в том виде, в котором его отдаёт БД.
	CreatedAt string `json:"created_at" db:"created_at"`
}

// RegistrationStats — сводка для админ-панели.
type RegistrationStats struct {
	Total            int                       `json:"total"`
	ByParticipation  map[ParticipationType]int `json:"by_participation"`
	BySkillLevel     map[SkillLevel]int        `json:"by_skill_level"`
	WantsFreeLicense int                       `json:"wants_free_license"`
	ShareRecordings  int                       `json:"share_recordings"`
}

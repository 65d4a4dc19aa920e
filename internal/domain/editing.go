package domain

import "context"

// Section names one editable profile tab. Each section owns its own draft
// and edit flag; sections are independent of each other.
type Section string

const (
	SectionBasicInfo      Section = "basic-info"
	SectionEducation      Section = "education"
	SectionSkillsProjects Section = "skills-projects"
	SectionWorkExperience Section = "work-experience"
)

func ValidSections() []Section {
	return []Section{SectionBasicInfo, SectionEducation, SectionSkillsProjects, SectionWorkExperience}
}

func (s Section) IsValid() bool {
	for _, valid := range ValidSections() {
		if s == valid {
			return true
		}
	}
	return false
}

// Draft holds the uncommitted copy of exactly one section's data. Only the
// field matching the session's Section is populated.
type Draft struct {
	BasicInfo      *BasicInfo        `json:"basicInfo,omitempty"`
	Education      *EducationDetails `json:"education,omitempty"`
	SkillsProjects *SkillsProjects   `json:"skillsProjects,omitempty"`
	WorkExperience []WorkDomain      `json:"workExperience,omitempty"`
}

// EditSession is one active Viewing -> Editing transition. The draft is
// seeded from the committed user when the session begins and never aliases
// the committed collection.
type EditSession struct {
	ID      string  `json:"id"`
	UserID  int64   `json:"userId"`
	Section Section `json:"section"`
	Draft   Draft   `json:"draft"`
}

type EditorUsecase interface {
	// Begin seeds a new draft from the user's current committed section value.
	Begin(ctx context.Context, userID int64, section Section) (*EditSession, error)
	Get(ctx context.Context, sessionID string) (*EditSession, error)
	// UpdateDraft replaces the session's draft; the committed user is untouched.
	UpdateDraft(ctx context.Context, sessionID string, draft Draft) (*EditSession, error)
	// Structural work-experience edits, draft-local until Save.
	AddDomain(ctx context.Context, sessionID string) (*EditSession, error)
	RemoveDomain(ctx context.Context, sessionID string, domainIdx int) (*EditSession, error)
	AddSubDomain(ctx context.Context, sessionID string, domainIdx int) (*EditSession, error)
	RemoveSubDomain(ctx context.Context, sessionID string, domainIdx, subIdx int) (*EditSession, error)
	// Save commits the draft wholesale through the directory and ends the session.
	Save(ctx context.Context, sessionID string) (*User, error)
	// Cancel discards the draft with no store mutation.
	Cancel(ctx context.Context, sessionID string) error
}

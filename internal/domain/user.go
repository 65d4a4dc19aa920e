package domain

import (
	"context"
	"strconv"
)

// BasicInfo is the "Basic Details" profile section. Every field is an
// optional free-text value; an empty string means unset.
type BasicInfo struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	YearOfBirth      string `json:"yearOfBirth"`
	Gender           string `json:"gender"`
	Phone            string `json:"phone"`
	PhoneCountryCode string `json:"phoneCountryCode"`
	AltPhone         string `json:"altPhone"`
	Address          string `json:"address"`
	Pincode          string `json:"pincode"`
	DomicileState    string `json:"domicileState"`
	DomicileCountry  string `json:"domicileCountry"`
}

type EducationDetails struct {
	School           string `json:"school"`
	Degree           string `json:"degree"`
	Course           string `json:"course"`
	YearOfCompletion string `json:"yearOfCompletion"`
	Grade            string `json:"grade"`
}

type SkillsProjects struct {
	Skills   string `json:"skills"`
	Projects string `json:"projects"`
}

type SubDomain struct {
	ID         int64  `json:"id,string"`
	Name       string `json:"name"`
	Experience string `json:"experience" validate:"omitempty,valid_experience"` // one of ExperienceOptions() or ""
}

type WorkDomain struct {
	ID         int64       `json:"id,string"`
	Domain     string      `json:"domain"`
	SubDomains []SubDomain `json:"subDomains" validate:"dive"`
}

// User is the aggregate directory record. ID is assigned at creation and
// immutable afterwards. IDs serialize as decimal strings: generated values
// exceed the 2^53 integers a JavaScript client can represent exactly, so a
// numeric encoding would be silently rounded on the other end. Nested
// sections are value structs, never nil, so the persisted JSON always
// carries the full shape.
type User struct {
	ID             int64            `json:"id,string"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Contact        string           `json:"contact"`
	BasicInfo      BasicInfo        `json:"basicInfo"`
	Education      EducationDetails `json:"education"`
	SkillsProjects SkillsProjects   `json:"skillsProjects"`
	WorkExperience []WorkDomain     `json:"workExperience"`
	LinkedIn       string           `json:"linkedIn"`
	Resume         string           `json:"resume"`
}

// Clone returns a deep copy of the user. Drafts held by edit sessions must
// never alias the committed collection, so every nested slice is copied.
func (u User) Clone() User {
	c := u
	c.WorkExperience = CloneWorkExperience(u.WorkExperience)
	return c
}

// CloneWorkExperience deep-copies a work-experience sequence.
func CloneWorkExperience(src []WorkDomain) []WorkDomain {
	if src == nil {
		return nil
	}
	out := make([]WorkDomain, len(src))
	for i, d := range src {
		out[i] = d
		out[i].SubDomains = make([]SubDomain, len(d.SubDomains))
		copy(out[i].SubDomains, d.SubDomains)
	}
	return out
}

// ExperienceOptions returns the fixed set of experience labels a sub-domain
// may carry. The empty string (unselected) is also accepted.
func ExperienceOptions() []string {
	opts := make([]string, 0, 11)
	opts = append(opts, "1 year")
	for i := 2; i <= 10; i++ {
		opts = append(opts, strconv.Itoa(i)+" years")
	}
	return append(opts, "10+ years")
}

// SeedUsers returns the initial directory used when the store is empty.
// A fresh slice is returned on every call so callers can mutate freely.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Dave Richards", Email: "dev@mail.com", Contact: "+91 9966776655", WorkExperience: []WorkDomain{}},
		{ID: 2, Name: "Abhishek Hari", Email: "hari@mail.com", Contact: "+91 9988776655", WorkExperience: []WorkDomain{}},
		{ID: 3, Name: "Nishta Gupta", Email: "nishta@mail.com", Contact: "+91 8877665544", WorkExperience: []WorkDomain{}},
	}
}

// CreateUserInput carries the fields the add-user form collects. Name, email
// and contact are required; nested sections are optional and default to empty.
type CreateUserInput struct {
	Name           string            `json:"name" validate:"required,valid_name"`
	Email          string            `json:"email" validate:"required,email"`
	Contact        string            `json:"contact" validate:"required"`
	BasicInfo      *BasicInfo        `json:"basicInfo,omitempty"`
	Education      *EducationDetails `json:"education,omitempty"`
	SkillsProjects *SkillsProjects   `json:"skillsProjects,omitempty"`
	WorkExperience []WorkDomain      `json:"workExperience,omitempty" validate:"omitempty,dive"`
	LinkedIn       string            `json:"linkedIn,omitempty"`
	Resume         string            `json:"resume,omitempty"`
}

type UserRepository interface {
	// List returns the collection in insertion order.
	List(ctx context.Context) []User
	FindByID(ctx context.Context, id int64) (*User, bool)
	// Append adds the user at the end of the collection and persists the
	// resulting snapshot.
	Append(ctx context.Context, user User)
	// Remove deletes by id; reports whether the id existed.
	Remove(ctx context.Context, id int64) bool
	// Replace swaps the stored user with the same id; reports whether the
	// id existed.
	Replace(ctx context.Context, user User) bool
}

type DirectoryUsecase interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, input CreateUserInput) (*User, error)
	Delete(ctx context.Context, id int64) error
	UpdateBasicInfo(ctx context.Context, id int64, info BasicInfo) (*User, error)
	UpdateEducation(ctx context.Context, id int64, edu EducationDetails) (*User, error)
	UpdateSkillsProjects(ctx context.Context, id int64, sp SkillsProjects) (*User, error)
	UpdateWorkExperience(ctx context.Context, id int64, exp []WorkDomain) (*User, error)
}

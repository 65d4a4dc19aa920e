package usecase

import (
	"context"
	"sync"

	"go-user-directory/internal/domain"
	"go-user-directory/pkg/apperror"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// editorUsecase owns the in-memory edit sessions. A session is the Editing
// state of one section of one user: its draft is seeded from the committed
// value on Begin, mutated in isolation, and either committed wholesale on
// Save or discarded on Cancel. Sessions are transient and never persisted.
type editorUsecase struct {
	directory domain.DirectoryUsecase
	node      *snowflake.Node

	mu       sync.Mutex
	sessions map[string]*domain.EditSession
}

func NewEditorUsecase(directory domain.DirectoryUsecase, node *snowflake.Node) domain.EditorUsecase {
	return &editorUsecase{
		directory: directory,
		node:      node,
		sessions:  make(map[string]*domain.EditSession),
	}
}

func (u *editorUsecase) Begin(ctx context.Context, userID int64, section domain.Section) (*domain.EditSession, error) {
	if !section.IsValid() {
		return nil, apperror.BadRequest("Unknown profile section: " + string(section))
	}
	// Always re-seed from the current committed value so a new edit session
	// never starts from stale data.
	user, err := u.directory.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := &domain.EditSession{
		ID:      uuid.NewString(),
		UserID:  userID,
		Section: section,
	}
	switch section {
	case domain.SectionBasicInfo:
		info := user.BasicInfo
		session.Draft.BasicInfo = &info
	case domain.SectionEducation:
		edu := user.Education
		session.Draft.Education = &edu
	case domain.SectionSkillsProjects:
		sp := user.SkillsProjects
		session.Draft.SkillsProjects = &sp
	case domain.SectionWorkExperience:
		session.Draft.WorkExperience = domain.CloneWorkExperience(user.WorkExperience)
		if session.Draft.WorkExperience == nil {
			session.Draft.WorkExperience = []domain.WorkDomain{}
		}
	}

	u.mu.Lock()
	u.sessions[session.ID] = session
	u.mu.Unlock()
	return cloneSession(session), nil
}

func (u *editorUsecase) Get(_ context.Context, sessionID string) (*domain.EditSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	session, ok := u.sessions[sessionID]
	if !ok {
		return nil, apperror.NotFound("Edit session not found")
	}
	return cloneSession(session), nil
}

func (u *editorUsecase) UpdateDraft(_ context.Context, sessionID string, draft domain.Draft) (*domain.EditSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	session, ok := u.sessions[sessionID]
	if !ok {
		return nil, apperror.NotFound("Edit session not found")
	}

	switch session.Section {
	case domain.SectionBasicInfo:
		if draft.BasicInfo == nil {
			return nil, apperror.BadRequest("Draft does not carry basic info")
		}
		info := *draft.BasicInfo
		session.Draft.BasicInfo = &info
	case domain.SectionEducation:
		if draft.Education == nil {
			return nil, apperror.BadRequest("Draft does not carry education details")
		}
		edu := *draft.Education
		session.Draft.Education = &edu
	case domain.SectionSkillsProjects:
		if draft.SkillsProjects == nil {
			return nil, apperror.BadRequest("Draft does not carry skills and projects")
		}
		sp := *draft.SkillsProjects
		session.Draft.SkillsProjects = &sp
	case domain.SectionWorkExperience:
		if draft.WorkExperience == nil {
			return nil, apperror.BadRequest("Draft does not carry work experience")
		}
		session.Draft.WorkExperience = domain.CloneWorkExperience(draft.WorkExperience)
	}
	return cloneSession(session), nil
}

func (u *editorUsecase) AddDomain(_ context.Context, sessionID string) (*domain.EditSession, error) {
	return u.mutateExperience(sessionID, func(exp []domain.WorkDomain) ([]domain.WorkDomain, error) {
		// A new domain starts with a single blank sub-domain, matching the
		// form the editor presents.
		return append(exp, domain.WorkDomain{
			ID:     u.node.Generate().Int64(),
			Domain: "",
			SubDomains: []domain.SubDomain{
				{ID: u.node.Generate().Int64(), Name: "", Experience: ""},
			},
		}), nil
	})
}

func (u *editorUsecase) RemoveDomain(_ context.Context, sessionID string, domainIdx int) (*domain.EditSession, error) {
	return u.mutateExperience(sessionID, func(exp []domain.WorkDomain) ([]domain.WorkDomain, error) {
		if domainIdx < 0 || domainIdx >= len(exp) {
			return nil, apperror.BadRequest("Domain index out of range")
		}
		return append(exp[:domainIdx], exp[domainIdx+1:]...), nil
	})
}

func (u *editorUsecase) AddSubDomain(_ context.Context, sessionID string, domainIdx int) (*domain.EditSession, error) {
	return u.mutateExperience(sessionID, func(exp []domain.WorkDomain) ([]domain.WorkDomain, error) {
		if domainIdx < 0 || domainIdx >= len(exp) {
			return nil, apperror.BadRequest("Domain index out of range")
		}
		exp[domainIdx].SubDomains = append(exp[domainIdx].SubDomains, domain.SubDomain{
			ID: u.node.Generate().Int64(),
		})
		return exp, nil
	})
}

func (u *editorUsecase) RemoveSubDomain(_ context.Context, sessionID string, domainIdx, subIdx int) (*domain.EditSession, error) {
	return u.mutateExperience(sessionID, func(exp []domain.WorkDomain) ([]domain.WorkDomain, error) {
		if domainIdx < 0 || domainIdx >= len(exp) {
			return nil, apperror.BadRequest("Domain index out of range")
		}
		subs := exp[domainIdx].SubDomains
		if subIdx < 0 || subIdx >= len(subs) {
			return nil, apperror.BadRequest("Sub-domain index out of range")
		}
		// Removing the last sub-domain is allowed; the domain then carries
		// an empty sequence until the user adds one or removes the domain.
		exp[domainIdx].SubDomains = append(subs[:subIdx], subs[subIdx+1:]...)
		return exp, nil
	})
}

func (u *editorUsecase) Save(ctx context.Context, sessionID string) (*domain.User, error) {
	// Snapshot the draft while holding the lock: concurrent draft mutations
	// on the same session must not be observed mid-write by the update below.
	u.mu.Lock()
	session, ok := u.sessions[sessionID]
	if !ok {
		u.mu.Unlock()
		return nil, apperror.NotFound("Edit session not found")
	}
	snapshot := cloneSession(session)
	u.mu.Unlock()

	var (
		user *domain.User
		err  error
	)
	switch snapshot.Section {
	case domain.SectionBasicInfo:
		user, err = u.directory.UpdateBasicInfo(ctx, snapshot.UserID, *snapshot.Draft.BasicInfo)
	case domain.SectionEducation:
		user, err = u.directory.UpdateEducation(ctx, snapshot.UserID, *snapshot.Draft.Education)
	case domain.SectionSkillsProjects:
		user, err = u.directory.UpdateSkillsProjects(ctx, snapshot.UserID, *snapshot.Draft.SkillsProjects)
	case domain.SectionWorkExperience:
		user, err = u.directory.UpdateWorkExperience(ctx, snapshot.UserID, snapshot.Draft.WorkExperience)
	}
	if err != nil {
		// The session survives a failed save so the client can still cancel.
		return nil, err
	}

	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()
	return user, nil
}

func (u *editorUsecase) Cancel(_ context.Context, sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.sessions[sessionID]; !ok {
		return apperror.NotFound("Edit session not found")
	}
	delete(u.sessions, sessionID)
	return nil
}

// mutateExperience applies a structural edit to a work-experience draft.
func (u *editorUsecase) mutateExperience(sessionID string, apply func([]domain.WorkDomain) ([]domain.WorkDomain, error)) (*domain.EditSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	session, ok := u.sessions[sessionID]
	if !ok {
		return nil, apperror.NotFound("Edit session not found")
	}
	if session.Section != domain.SectionWorkExperience {
		return nil, apperror.BadRequest("Session does not edit work experience")
	}
	next, err := apply(domain.CloneWorkExperience(session.Draft.WorkExperience))
	if err != nil {
		return nil, err
	}
	session.Draft.WorkExperience = next
	return cloneSession(session), nil
}

func cloneSession(s *domain.EditSession) *domain.EditSession {
	c := *s
	if s.Draft.BasicInfo != nil {
		info := *s.Draft.BasicInfo
		c.Draft.BasicInfo = &info
	}
	if s.Draft.Education != nil {
		edu := *s.Draft.Education
		c.Draft.Education = &edu
	}
	if s.Draft.SkillsProjects != nil {
		sp := *s.Draft.SkillsProjects
		c.Draft.SkillsProjects = &sp
	}
	c.Draft.WorkExperience = domain.CloneWorkExperience(s.Draft.WorkExperience)
	return &c
}

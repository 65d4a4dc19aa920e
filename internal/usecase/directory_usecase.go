package usecase

import (
	"context"

	"go-user-directory/internal/domain"
	"go-user-directory/pkg/apperror"
	"go-user-directory/pkg/metrics"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
)

type directoryUsecase struct {
	repo     domain.UserRepository
	validate *validator.Validate
	node     *snowflake.Node
}

func NewDirectoryUsecase(repo domain.UserRepository, validate *validator.Validate, node *snowflake.Node) domain.DirectoryUsecase {
	return &directoryUsecase{
		repo:     repo,
		validate: validate,
		node:     node,
	}
}

func (u *directoryUsecase) List(ctx context.Context) ([]domain.User, error) {
	return u.repo.List(ctx), nil
}

func (u *directoryUsecase) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := u.repo.FindByID(ctx, id)
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *directoryUsecase) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	user := domain.User{
		ID:             u.node.Generate().Int64(),
		Name:           input.Name,
		Email:          input.Email,
		Contact:        input.Contact,
		WorkExperience: []domain.WorkDomain{},
		LinkedIn:       input.LinkedIn,
		Resume:         input.Resume,
	}
	if input.BasicInfo != nil {
		user.BasicInfo = *input.BasicInfo
	}
	if input.Education != nil {
		user.Education = *input.Education
	}
	if input.SkillsProjects != nil {
		user.SkillsProjects = *input.SkillsProjects
	}
	if len(input.WorkExperience) > 0 {
		exp := domain.CloneWorkExperience(input.WorkExperience)
		u.assignExperienceIDs(exp)
		user.WorkExperience = exp
	}

	u.repo.Append(ctx, user)
	metrics.DirectoryMutations.WithLabelValues("create").Inc()
	return &user, nil
}

func (u *directoryUsecase) Delete(ctx context.Context, id int64) error {
	// Deleting an id that does not exist leaves the collection unchanged.
	if u.repo.Remove(ctx, id) {
		metrics.DirectoryMutations.WithLabelValues("delete").Inc()
	}
	return nil
}

func (u *directoryUsecase) UpdateBasicInfo(ctx context.Context, id int64, info domain.BasicInfo) (*domain.User, error) {
	return u.replaceSection(ctx, id, func(user *domain.User) {
		user.BasicInfo = info
	})
}

func (u *directoryUsecase) UpdateEducation(ctx context.Context, id int64, edu domain.EducationDetails) (*domain.User, error) {
	return u.replaceSection(ctx, id, func(user *domain.User) {
		user.Education = edu
	})
}

func (u *directoryUsecase) UpdateSkillsProjects(ctx context.Context, id int64, sp domain.SkillsProjects) (*domain.User, error) {
	return u.replaceSection(ctx, id, func(user *domain.User) {
		user.SkillsProjects = sp
	})
}

func (u *directoryUsecase) UpdateWorkExperience(ctx context.Context, id int64, exp []domain.WorkDomain) (*domain.User, error) {
	if err := u.validate.Var(exp, "omitempty,dive"); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	exp = domain.CloneWorkExperience(exp)
	u.assignExperienceIDs(exp)
	return u.replaceSection(ctx, id, func(user *domain.User) {
		if exp == nil {
			exp = []domain.WorkDomain{}
		}
		user.WorkExperience = exp
	})
}

// replaceSection swaps exactly one nested section on the matching user and
// persists the new snapshot. All other fields and all other users stay
// untouched.
func (u *directoryUsecase) replaceSection(ctx context.Context, id int64, apply func(*domain.User)) (*domain.User, error) {
	user, ok := u.repo.FindByID(ctx, id)
	if !ok {
		return nil, apperror.NotFound("User not found")
	}
	apply(user)
	if !u.repo.Replace(ctx, *user) {
		// Deleted between the lookup and the write; same outcome as missing.
		return nil, apperror.NotFound("User not found")
	}
	metrics.DirectoryMutations.WithLabelValues("update").Inc()
	return user, nil
}

// assignExperienceIDs fills in ids for domains and sub-domains the caller
// created without one, keeping ids unique within their sequence.
func (u *directoryUsecase) assignExperienceIDs(exp []domain.WorkDomain) {
	for i := range exp {
		if exp[i].ID == 0 {
			exp[i].ID = u.node.Generate().Int64()
		}
		for j := range exp[i].SubDomains {
			if exp[i].SubDomains[j].ID == 0 {
				exp[i].SubDomains[j].ID = u.node.Generate().Int64()
			}
		}
	}
}

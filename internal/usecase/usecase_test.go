package usecase_test

import (
	"context"
	"os"
	"testing"

	"go-user-directory/internal/domain"
	"go-user-directory/internal/repository/cellstore"
	"go-user-directory/internal/storage"
	"go-user-directory/internal/usecase"
	"go-user-directory/pkg/logger"
	"go-user-directory/pkg/validation"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) List(ctx context.Context) []domain.User {
	return m.Called(ctx).Get(0).([]domain.User)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.User), args.Bool(1)
}

func (m *MockUserRepo) Append(ctx context.Context, user domain.User) {
	m.Called(ctx, user)
}

func (m *MockUserRepo) Remove(ctx context.Context, id int64) bool {
	return m.Called(ctx, id).Bool(0)
}

func (m *MockUserRepo) Replace(ctx context.Context, user domain.User) bool {
	return m.Called(ctx, user).Bool(0)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func newNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return node
}

// newDirectory builds the usecase over a real memory-backed repository for
// behavioural tests.
func newDirectory(t *testing.T) domain.DirectoryUsecase {
	t.Helper()
	repo := cellstore.NewUserRepository(context.Background(), storage.NewCell(storage.NewMemoryBackend()), "users")
	return usecase.NewDirectoryUsecase(repo, newValidator(), newNode(t))
}

func TestCreateValidation(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewDirectoryUsecase(mockRepo, newValidator(), newNode(t))
	ctx := context.Background()

	t.Run("Should fail when required fields are blank", func(t *testing.T) {
		for _, input := range []domain.CreateUserInput{
			{Email: "x@x.com", Contact: "123"},
			{Name: "X", Contact: "123"},
			{Name: "X", Email: "x@x.com"},
		} {
			_, err := uc.Create(ctx, input)
			assert.Error(t, err)
		}
		// Rejected before mutation: the repository is never touched.
		mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("Should fail on invalid experience label", func(t *testing.T) {
		_, err := uc.Create(ctx, domain.CreateUserInput{
			Name: "X", Email: "x@x.com", Contact: "123",
			WorkExperience: []domain.WorkDomain{
				{Domain: "Tech", SubDomains: []domain.SubDomain{{Name: "Backend", Experience: "eleven years"}}},
			},
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})
}

func TestCreateDefaults(t *testing.T) {
	uc := newDirectory(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, domain.CreateUserInput{Name: "X", Email: "x@x.com", Contact: "123"})
	require.NoError(t, err)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Name)
	assert.Equal(t, "x@x.com", got.Email)
	assert.Equal(t, "123", got.Contact)
	assert.Equal(t, domain.BasicInfo{}, got.BasicInfo)
	assert.Equal(t, domain.EducationDetails{}, got.Education)
	assert.Equal(t, domain.SkillsProjects{}, got.SkillsProjects)
	assert.Empty(t, got.WorkExperience)
	assert.Empty(t, got.LinkedIn)
	assert.Empty(t, got.Resume)

	// Appended at the end of the collection.
	users, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, users[len(users)-1].ID)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	uc := newDirectory(t)
	ctx := context.Background()

	seen := map[int64]bool{1: true, 2: true, 3: true}
	for i := 0; i < 50; i++ {
		created, err := uc.Create(ctx, domain.CreateUserInput{Name: "U", Email: "u@u.com", Contact: "1"})
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "duplicate id %d", created.ID)
		seen[created.ID] = true
	}
}

func TestDelete(t *testing.T) {
	uc := newDirectory(t)
	ctx := context.Background()

	t.Run("Deleted user is gone", func(t *testing.T) {
		require.NoError(t, uc.Delete(ctx, 2))
		_, err := uc.Get(ctx, 2)
		assert.Error(t, err)

		users, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("Deleting an unknown id leaves the collection unchanged", func(t *testing.T) {
		before, err := uc.List(ctx)
		require.NoError(t, err)
		require.NoError(t, uc.Delete(ctx, 999))
		after, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestUpdateBasicInfoTouchesOnlyThatSection(t *testing.T) {
	uc := newDirectory(t)
	ctx := context.Background()

	before, err := uc.List(ctx)
	require.NoError(t, err)

	info := domain.BasicInfo{FirstName: "Dave", LastName: "Richards", Gender: "Male"}
	updated, err := uc.UpdateBasicInfo(ctx, 1, info)
	require.NoError(t, err)
	assert.Equal(t, info, updated.BasicInfo)

	after, err := uc.List(ctx)
	require.NoError(t, err)
	for i, u := range after {
		if u.ID == 1 {
			assert.Equal(t, info, u.BasicInfo)
			// Everything but basicInfo is unchanged.
			expect := before[i]
			expect.BasicInfo = info
			assert.Equal(t, expect, u)
			continue
		}
		assert.Equal(t, before[i], u)
	}
}

func TestUpdateMissingUserIsNotFound(t *testing.T) {
	uc := newDirectory(t)
	ctx := context.Background()

	_, err := uc.UpdateEducation(ctx, 999, domain.EducationDetails{School: "MIT"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateWorkExperienceAssignsNestedIDs(t *testing.T) {
	uc := newDirectory(t)
	ctx := context.Background()

	updated, err := uc.UpdateWorkExperience(ctx, 3, []domain.WorkDomain{
		{Domain: "Technology", SubDomains: []domain.SubDomain{
			{Name: "Backend", Experience: "3 years"},
			{Name: "Frontend", Experience: "10+ years"},
		}},
	})
	require.NoError(t, err)
	require.Len(t, updated.WorkExperience, 1)
	d := updated.WorkExperience[0]
	assert.NotZero(t, d.ID)
	assert.NotZero(t, d.SubDomains[0].ID)
	assert.NotZero(t, d.SubDomains[1].ID)
	assert.NotEqual(t, d.SubDomains[0].ID, d.SubDomains[1].ID)
}

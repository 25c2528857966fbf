package repositories

import (
	"testing"
	"time"

	"xman-api/internal/database"
	"xman-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// UserRepositorySuite defines the test suite for UserRepository
type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestUserRepositorySuite runs the test suite
func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) TestCreate() {
	user := &models.User{
		Email:        "new@example.com",
		PasswordHash: "hashedpassword",
	}

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
}

func (s *UserRepositorySuite) TestGetByEmail() {
	created := database.CreateTestUser(s.T(), s.db, "find@example.com")

	found, err := s.repo.GetByEmail("find@example.com")
	s.NoError(err)
	s.Equal(created.ID, found.ID)
}

func (s *UserRepositorySuite) TestGetByEmail_NotFound() {
	found, err := s.repo.GetByEmail("missing@example.com")
	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(found)
}

func (s *UserRepositorySuite) TestUpdatePasswordHash() {
	created := database.CreateTestUser(s.T(), s.db, "reset@example.com")

	err := s.repo.UpdatePasswordHash(created.ID, "newhash")
	s.NoError(err)

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal("newhash", found.PasswordHash)
}

func (s *UserRepositorySuite) TestUpdatePasswordHash_NotFound() {
	err := s.repo.UpdatePasswordHash(uuid.New(), "newhash")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *UserRepositorySuite) TestUpdateFailedLoginAttempts() {
	created := database.CreateTestUser(s.T(), s.db, "lock@example.com")

	now := time.Now()
	created.FailedLoginAttempts = 3
	created.LockedAt = &now

	err := s.repo.UpdateFailedLoginAttempts(created)
	s.NoError(err)

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(3, found.FailedLoginAttempts)
	s.NotNil(found.LockedAt)
}

func (s *UserRepositorySuite) TestDelete() {
	created := database.CreateTestUser(s.T(), s.db, "gone@example.com")

	err := s.repo.Delete(created.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(created.ID)
	s.ErrorIs(err, ErrUserNotFound)
}

package repositories

import (
	"testing"

	"xman-api/internal/database"
	"xman-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositorySuite defines the test suite for CategoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     CategoryRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) createDefault(name string, expense bool) *models.Category {
	category := &models.Category{
		Name:    name,
		Expense: expense,
		UserID:  models.DefaultCategoryOwner,
	}
	s.NoError(s.db.Create(category).Error)
	return category
}

func (s *CategoryRepositorySuite) createOwned(name string, expense bool) *models.Category {
	category := &models.Category{
		Name:    name,
		Expense: expense,
		UserID:  s.testUser.ID.String(),
	}
	s.NoError(s.db.Create(category).Error)
	return category
}

func (s *CategoryRepositorySuite) TestCreate() {
	category := &models.Category{
		Name:    "groceries",
		Expense: true,
		UserID:  s.testUser.ID.String(),
	}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.NotZero(category.CreatedAt)
}

func (s *CategoryRepositorySuite) TestCreate_IncomeSideSurvivesRoundTrip() {
	category := &models.Category{
		Name:    "dividends",
		Expense: false,
		UserID:  s.testUser.ID.String(),
	}

	s.NoError(s.repo.Create(category))

	found, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.False(found.Expense)
}

func (s *CategoryRepositorySuite) TestGetByID() {
	created := s.createOwned("books", true)

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal("books", found.Name)
	s.Equal(s.testUser.ID.String(), found.UserID)
}

func (s *CategoryRepositorySuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrCategoryNotFound)
	s.Nil(found)
}

func (s *CategoryRepositorySuite) TestListAll_MergesDefaultsAndOwned() {
	s.createDefault("food", true)
	s.createDefault("salary", false)
	s.createOwned("books", true)

	// Another user's category must stay invisible
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	s.NoError(s.db.Create(&models.Category{
		Name:    "gadgets",
		Expense: true,
		UserID:  other.ID.String(),
	}).Error)

	categories, err := s.repo.ListAll(s.testUser.ID)
	s.NoError(err)
	s.Len(categories, 3)

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	s.ElementsMatch([]string{"food", "salary", "books"}, names)
}

func (s *CategoryRepositorySuite) TestListByType_PartitionsKinds() {
	s.createDefault("food", true)
	s.createDefault("salary", false)
	s.createOwned("books", true)
	s.createOwned("freelance", false)

	expense, err := s.repo.ListByType(s.testUser.ID, true)
	s.NoError(err)
	s.Len(expense, 2)
	for _, c := range expense {
		s.True(c.Expense)
	}

	income, err := s.repo.ListByType(s.testUser.ID, false)
	s.NoError(err)
	s.Len(income, 2)
	for _, c := range income {
		s.False(c.Expense)
	}
}

func (s *CategoryRepositorySuite) TestListOwnedByType_ExcludesDefaults() {
	s.createDefault("food", true)
	s.createOwned("books", true)

	owned, err := s.repo.ListOwnedByType(s.testUser.ID, true)
	s.NoError(err)
	s.Len(owned, 1)
	s.Equal("books", owned[0].Name)
}

func (s *CategoryRepositorySuite) TestDelete_Owned() {
	created := s.createOwned("books", true)

	deleted, err := s.repo.Delete(created.ID, s.testUser.ID)
	s.NoError(err)
	s.True(deleted)

	_, err = s.repo.GetByID(created.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestDelete_DefaultNotDeletable() {
	created := s.createDefault("food", true)

	deleted, err := s.repo.Delete(created.ID, s.testUser.ID)
	s.NoError(err)
	s.False(deleted)

	// The default row survives
	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal("food", found.Name)
}

func (s *CategoryRepositorySuite) TestDelete_WrongUser() {
	created := s.createOwned("books", true)
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	deleted, err := s.repo.Delete(created.ID, other.ID)
	s.NoError(err)
	s.False(deleted)
}

package repositories

import (
	"testing"
	"time"

	"xman-api/internal/database"
	"xman-api/internal/models"

	"github.com/stretchr/testify/suite"
)

// IncomeRepositorySuite defines the test suite for IncomeRepository
type IncomeRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     IncomeRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *IncomeRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewIncomeRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *IncomeRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestIncomeRepositorySuite runs the test suite
func TestIncomeRepositorySuite(t *testing.T) {
	suite.Run(t, new(IncomeRepositorySuite))
}

func (s *IncomeRepositorySuite) createIncome(title, amount string, seva bool, createdAt time.Time) *models.Income {
	income := &models.Income{
		Title:     title,
		Amount:    amount,
		Day:       "01",
		Month:     "03",
		Year:      "2024",
		Seva:      seva,
		UserID:    s.testUser.ID,
		CreatedAt: createdAt,
	}
	s.NoError(s.db.Create(income).Error)
	return income
}

func (s *IncomeRepositorySuite) TestCreate_PersistsSevaFlag() {
	income := &models.Income{
		Title:  "salary",
		Amount: "1000",
		Day:    "01",
		Month:  "03",
		Year:   "2024",
		Seva:   true,
		UserID: s.testUser.ID,
	}

	err := s.repo.Create(income)
	s.NoError(err)

	found, err := s.repo.GetByID(income.ID, s.testUser.ID)
	s.NoError(err)
	s.True(found.Seva)
}

func (s *IncomeRepositorySuite) TestGetAllForMonth_NewestFirst() {
	base := time.Now().Truncate(time.Second)
	s.createIncome("older", "500", false, base.Add(-time.Hour))
	s.createIncome("newer", "1000", true, base)

	entries, err := s.repo.GetAllForMonth(s.testUser.ID, "03", "2024")
	s.NoError(err)
	s.Require().Len(entries, 2)
	s.Equal("newer", entries[0].Title)
	s.Equal("older", entries[1].Title)
}

func (s *IncomeRepositorySuite) TestUpdate_TogglesSeva() {
	created := s.createIncome("salary", "1000", false, time.Now())

	updated, err := s.repo.Update(created.ID, s.testUser.ID, map[string]interface{}{
		"seva": true,
	})
	s.NoError(err)
	s.True(updated.Seva)
}

func (s *IncomeRepositorySuite) TestDelete_WrongUser() {
	created := s.createIncome("salary", "1000", false, time.Now())
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	deleted, err := s.repo.Delete(created.ID, other.ID)
	s.NoError(err)
	s.False(deleted)
}

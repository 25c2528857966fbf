package services_test

import (
	"log/slog"
	"testing"

	"xman-api/internal/dto"
	"xman-api/internal/models"
	"xman-api/internal/repositories/repository_mocks"
	"xman-api/internal/services"
	"xman-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	incomeRepo  *repository_mocks.MockIncomeRepositoryInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	service     services.LedgerServiceInterface
	userID      uuid.UUID
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.incomeRepo = repository_mocks.NewMockIncomeRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().RecordLedgerMutation(gomock.Any(), gomock.Any()).AnyTimes()
	s.service = services.NewLedgerService(s.expenseRepo, s.incomeRepo, s.metrics, slog.Default())
	s.userID = uuid.New()
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestCreateExpense_SanitizesAmountAndJoinsTags() {
	var created *models.Expense
	s.expenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Expense) error {
		created = e
		return nil
	}).Times(1)

	_, err := s.service.CreateExpense(s.userID, &dto.ExpenseRequest{
		Title:      " groceries ",
		Amount:     "₹1,234.56",
		Day:        "05",
		Month:      "03",
		Year:       "2024",
		Categories: []string{"food", "household"},
	})

	s.Require().NoError(err)
	s.Equal("groceries", created.Title)
	s.Equal("1234.56", created.Amount)
	s.Equal("food,household", created.Categories)
	s.Equal(s.userID, created.UserID)
}

func (s *LedgerServiceTestSuite) TestCreateExpense_EmptyCategories() {
	var created *models.Expense
	s.expenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.Expense) error {
		created = e
		return nil
	}).Times(1)

	_, err := s.service.CreateExpense(s.userID, &dto.ExpenseRequest{
		Title:  "misc",
		Amount: "10",
		Day:    "01",
		Month:  "03",
		Year:   "2024",
	})

	s.Require().NoError(err)
	s.Equal("", created.Categories)
	s.Equal([]string{}, created.CategoryTags())
}

func (s *LedgerServiceTestSuite) TestCreateIncome_KeepsSevaFlag() {
	var created *models.Income
	s.incomeRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(i *models.Income) error {
		created = i
		return nil
	}).Times(1)

	_, err := s.service.CreateIncome(s.userID, &dto.IncomeRequest{
		Title:  "salary",
		Amount: "1000",
		Day:    "01",
		Month:  "03",
		Year:   "2024",
		Seva:   true,
	})

	s.Require().NoError(err)
	s.True(created.Seva)
}

func (s *LedgerServiceTestSuite) TestUpdateIncome_SendsSanitizedFields() {
	incomeID := uuid.New()
	s.incomeRepo.EXPECT().Update(incomeID, s.userID, gomock.Any()).DoAndReturn(
		func(id, userID uuid.UUID, fields map[string]interface{}) (*models.Income, error) {
			s.Equal("950.50", fields["amount"])
			s.Equal(false, fields["seva"])
			return &models.Income{ID: id}, nil
		}).Times(1)

	_, err := s.service.UpdateIncome(s.userID, incomeID, &dto.IncomeRequest{
		Title:  "salary",
		Amount: "$950.50",
		Day:    "01",
		Month:  "03",
		Year:   "2024",
	})

	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestDeleteExpense_PassesThroughOwnership() {
	expenseID := uuid.New()
	s.expenseRepo.EXPECT().Delete(expenseID, s.userID).Return(false, nil).Times(1)

	deleted, err := s.service.DeleteExpense(s.userID, expenseID)

	s.NoError(err)
	s.False(deleted)
}

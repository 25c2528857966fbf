package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"xman-api/internal/dto"
	"xman-api/internal/models"
	"xman-api/internal/repositories"
	"xman-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerSuite))
}

type ExpenseHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ledgerService *service_mocks.MockLedgerServiceInterface
	handler       *ExpenseHandler
	e             *echo.Echo
	userID        uuid.UUID
}

func (s *ExpenseHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledgerService = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.handler = NewExpenseHandler(s.ledgerService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *ExpenseHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseHandlerSuite) postForm(path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *ExpenseHandlerSuite) TestCreate_FormPost() {
	s.ledgerService.EXPECT().
		CreateExpense(s.userID, gomock.Any()).
		DoAndReturn(func(userID uuid.UUID, req *dto.ExpenseRequest) (*models.Expense, error) {
			s.Equal("groceries", req.Title)
			s.Equal([]string{"food", "household"}, req.Categories)
			return &models.Expense{
				ID:         uuid.New(),
				Title:      req.Title,
				Amount:     "42.50",
				Day:        req.Day,
				Month:      req.Month,
				Year:       req.Year,
				Categories: "food,household",
				UserID:     userID,
			}, nil
		})

	form := url.Values{}
	form.Set("title", "groceries")
	form.Set("amount", "42.50")
	form.Set("day", "5")
	form.Set("month", "3")
	form.Set("year", "2024")
	form.Add("categories", "food")
	form.Add("categories", "household")

	c, rec := s.postForm("/app/expenses/new", form)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ExpenseHandlerSuite) TestCreate_MissingTitleFailsValidation() {
	form := url.Values{}
	form.Set("amount", "42.50")
	form.Set("day", "5")
	form.Set("month", "3")
	form.Set("year", "2024")

	c, _ := s.postForm("/app/expenses/new", form)

	err := s.handler.Create(c)
	s.Error(err)
}

func (s *ExpenseHandlerSuite) TestCreate_AmountWithoutDigitsFailsValidation() {
	form := url.Values{}
	form.Set("title", "mystery")
	form.Set("amount", "abc")
	form.Set("day", "5")
	form.Set("month", "3")
	form.Set("year", "2024")

	c, _ := s.postForm("/app/expenses/new", form)

	err := s.handler.Create(c)
	s.Error(err)
}

func (s *ExpenseHandlerSuite) TestUpdate_NotFound() {
	expenseID := uuid.New()
	s.ledgerService.EXPECT().
		UpdateExpense(s.userID, expenseID, gomock.Any()).
		Return(nil, repositories.ErrExpenseNotFound)

	form := url.Values{}
	form.Set("title", "groceries")
	form.Set("amount", "42.50")
	form.Set("day", "5")
	form.Set("month", "3")
	form.Set("year", "2024")

	c, rec := s.postForm("/app/expenses/"+expenseID.String()+"/edit", form)
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("LEDGER_001", errorResp.Error.Code)
}

func (s *ExpenseHandlerSuite) TestDelete_ForeignRowReportsFailure() {
	expenseID := uuid.New()
	s.ledgerService.EXPECT().DeleteExpense(s.userID, expenseID).Return(false, nil)

	form := url.Values{}
	form.Set("id", expenseID.String())
	form.Set("redirectTo", "/app/dashboard/2024/3")

	c, rec := s.postForm("/app/expenses/delete", form)

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ActionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.Success)
	s.Equal("/app/dashboard/2024/3", resp.RedirectTo)
}

func (s *ExpenseHandlerSuite) TestDelete_OwnedRow() {
	expenseID := uuid.New()
	s.ledgerService.EXPECT().DeleteExpense(s.userID, expenseID).Return(true, nil)

	form := url.Values{}
	form.Set("id", expenseID.String())

	c, rec := s.postForm("/app/expenses/delete", form)

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ActionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Success)
}

func (s *ExpenseHandlerSuite) TestDelete_BadIDFailsValidation() {
	form := url.Values{}
	form.Set("id", "not-a-uuid")

	c, _ := s.postForm("/app/expenses/delete", form)

	err := s.handler.Delete(c)
	s.Error(err)
}

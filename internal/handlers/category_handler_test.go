package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"xman-api/internal/dto"
	"xman-api/internal/models"
	"xman-api/internal/services"
	"xman-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

type CategoryHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	categoryService *service_mocks.MockCategoryServiceInterface
	handler         *CategoryHandler
	e               *echo.Echo
	userID          uuid.UUID
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.categoryService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerSuite) TestList_DefaultsToAll() {
	s.categoryService.EXPECT().
		ListCategories(s.userID, services.CategoryKindAll).
		Return([]models.Category{
			{ID: uuid.New(), Name: "food", Expense: true, UserID: models.DefaultCategoryOwner},
			{ID: uuid.New(), Name: "books", Expense: true, UserID: s.userID.String()},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/app/categories", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CategoryListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Categories, 2)
	s.True(resp.Categories[0].Default)
	s.False(resp.Categories[1].Default)
}

func (s *CategoryHandlerSuite) TestList_BadKind() {
	s.categoryService.EXPECT().
		ListCategories(s.userID, "bogus").
		Return(nil, services.ErrInvalidCategoryKind)

	req := httptest.NewRequest(http.MethodGet, "/app/categories?categories=bogus", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("CATEGORY_003", errorResp.Error.Code)
}

func (s *CategoryHandlerSuite) postJSON(path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *CategoryHandlerSuite) TestCreate() {
	s.categoryService.EXPECT().
		CreateCategory(s.userID, "books", true).
		Return(&models.Category{ID: uuid.New(), Name: "books", Expense: true, UserID: s.userID.String()}, nil)

	c, rec := s.postJSON("/app/categories/new", map[string]interface{}{
		"name":    "books",
		"expense": true,
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *CategoryHandlerSuite) TestCreate_NameTaken() {
	s.categoryService.EXPECT().
		CreateCategory(s.userID, "food", true).
		Return(nil, services.ErrCategoryNameTaken)

	c, rec := s.postJSON("/app/categories/new", map[string]interface{}{
		"name":    "food",
		"expense": true,
	})

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("CATEGORY_004", errorResp.Error.Code)
}

func (s *CategoryHandlerSuite) TestCreate_MissingExpenseFlagFailsValidation() {
	c, _ := s.postJSON("/app/categories/new", map[string]interface{}{
		"name": "books",
	})

	err := s.handler.Create(c)
	s.Error(err)
}

func (s *CategoryHandlerSuite) TestDelete_DefaultRefused() {
	categoryID := uuid.New()
	s.categoryService.EXPECT().
		DeleteCategory(s.userID, categoryID).
		Return(false, services.ErrCategoryNotDeletable)

	c, rec := s.postJSON("/app/categories/delete", map[string]string{
		"id": categoryID.String(),
	})

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusForbidden, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("CATEGORY_002", errorResp.Error.Code)
}

func (s *CategoryHandlerSuite) TestDelete_MissingRowReportsFailure() {
	categoryID := uuid.New()
	s.categoryService.EXPECT().
		DeleteCategory(s.userID, categoryID).
		Return(false, nil)

	c, rec := s.postJSON("/app/categories/delete", map[string]string{
		"id": categoryID.String(),
	})

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ActionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.Success)
}

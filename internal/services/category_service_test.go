package services

import (
	"log/slog"
	"testing"

	"xman-api/internal/models"
	"xman-api/internal/repositories"
	"xman-api/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service      CategoryServiceInterface
	userID       uuid.UUID
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.service = NewCategoryService(s.categoryRepo, slog.Default())
	s.userID = uuid.New()
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestListCategories_Kinds() {
	s.categoryRepo.EXPECT().ListAll(s.userID).Return([]models.Category{}, nil).Times(1)
	_, err := s.service.ListCategories(s.userID, "all")
	s.NoError(err)

	s.categoryRepo.EXPECT().ListByType(s.userID, true).Return([]models.Category{}, nil).Times(1)
	_, err = s.service.ListCategories(s.userID, "expense")
	s.NoError(err)

	s.categoryRepo.EXPECT().ListByType(s.userID, false).Return([]models.Category{}, nil).Times(1)
	_, err = s.service.ListCategories(s.userID, "income")
	s.NoError(err)

	_, err = s.service.ListCategories(s.userID, "bogus")
	s.ErrorIs(err, ErrInvalidCategoryKind)
}

func (s *CategoryServiceTestSuite) TestCreateCategory() {
	s.categoryRepo.EXPECT().ListByType(s.userID, true).Return(nil, nil).Times(1)
	s.categoryRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	category, err := s.service.CreateCategory(s.userID, "  books ", true)

	s.NoError(err)
	s.Equal("books", category.Name)
	s.Equal(s.userID.String(), category.UserID)
	s.True(category.Expense)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	existing := []models.Category{
		{Name: "Books", Expense: true, UserID: models.DefaultCategoryOwner},
	}
	s.categoryRepo.EXPECT().ListByType(s.userID, true).Return(existing, nil).Times(1)

	_, err := s.service.CreateCategory(s.userID, "books", true)

	s.ErrorIs(err, ErrCategoryNameTaken)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_SevaNameReserved() {
	s.categoryRepo.EXPECT().ListByType(s.userID, false).Return(nil, nil).Times(1)

	_, err := s.service.CreateCategory(s.userID, "seva", false)

	s.ErrorIs(err, ErrCategoryNameTaken)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_Owned() {
	categoryID := uuid.New()
	s.categoryRepo.EXPECT().GetByID(categoryID).Return(&models.Category{
		ID:     categoryID,
		Name:   "books",
		UserID: s.userID.String(),
	}, nil).Times(1)
	s.categoryRepo.EXPECT().Delete(categoryID, s.userID).Return(true, nil).Times(1)

	deleted, err := s.service.DeleteCategory(s.userID, categoryID)

	s.NoError(err)
	s.True(deleted)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_DefaultRefused() {
	categoryID := uuid.New()
	s.categoryRepo.EXPECT().GetByID(categoryID).Return(&models.Category{
		ID:     categoryID,
		Name:   "food",
		UserID: models.DefaultCategoryOwner,
	}, nil).Times(1)

	deleted, err := s.service.DeleteCategory(s.userID, categoryID)

	s.ErrorIs(err, ErrCategoryNotDeletable)
	s.False(deleted)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_Missing() {
	categoryID := uuid.New()
	s.categoryRepo.EXPECT().GetByID(categoryID).Return(nil, repositories.ErrCategoryNotFound).Times(1)

	deleted, err := s.service.DeleteCategory(s.userID, categoryID)

	s.NoError(err)
	s.False(deleted)
}

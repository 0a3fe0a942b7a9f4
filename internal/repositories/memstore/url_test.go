package memstore

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/brmartin/shortly/internal/db"
	"github.com/brmartin/shortly/internal/models"
	"github.com/brmartin/shortly/internal/repositories"
	"github.com/stretchr/testify/suite"
)

type URLRepoSuite struct {
	suite.Suite
	repo *URLRepo
}

func (s *URLRepoSuite) SetupTest() {
	s.repo = NewURLRepo(db.NewMemStorage())
}

func (s *URLRepoSuite) createURL(shortCode string, userID *string) *models.ShortURL {
	created, err := s.repo.Create(s.T().Context(), &models.ShortURL{
		OriginalURL: gofakeit.URL(),
		ShortCode:   shortCode,
		UserID:      userID,
	})
	s.Require().NoError(err)
	return created
}

func (s *URLRepoSuite) TestCreate() {
	created := s.createURL("abc123", nil)

	s.NotEmpty(created.ID)
	s.False(created.CreatedAt.IsZero())

	found, err := s.repo.GetByShortCode(s.T().Context(), "abc123")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
}

func (s *URLRepoSuite) TestCreate_DuplicateShortCode() {
	s.createURL("abc123", nil)

	_, err := s.repo.Create(s.T().Context(), &models.ShortURL{
		OriginalURL: gofakeit.URL(),
		ShortCode:   "abc123",
	})
	s.ErrorIs(err, repositories.ErrDuplicateKey)
}

func (s *URLRepoSuite) TestGetByShortCode_NotFound() {
	_, err := s.repo.GetByShortCode(s.T().Context(), "zzz999")
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *URLRepoSuite) TestGetAllByUserID() {
	userID := gofakeit.UUID()
	otherID := gofakeit.UUID()

	first := s.createURL("aaa111", &userID)
	second := s.createURL("bbb222", &userID)
	s.createURL("ccc333", &otherID)
	s.createURL("ddd444", nil)

	urls, err := s.repo.GetAllByUserID(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Require().Len(urls, 2)
	// отсортировано по времени создания
	s.Equal(first.ID, urls[0].ID)
	s.Equal(second.ID, urls[1].ID)
}

func (s *URLRepoSuite) TestUpdateOriginalURL() {
	created := s.createURL("abc123", nil)

	updated, err := s.repo.UpdateOriginalURL(s.T().Context(), created.ID, "https://ya.ru/new")
	s.Require().NoError(err)
	s.Equal("https://ya.ru/new", updated.OriginalURL)
	s.Equal(created.ShortCode, updated.ShortCode)

	_, err = s.repo.UpdateOriginalURL(s.T().Context(), gofakeit.UUID(), "https://ya.ru/new")
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *URLRepoSuite) TestSoftDelete() {
	userID := gofakeit.UUID()
	created := s.createURL("abc123", &userID)

	deleted, err := s.repo.SoftDelete(s.T().Context(), created.ID)
	s.Require().NoError(err)
	s.Require().NotNil(deleted.DeletedAt)

	// запись остается доступной по коду, но пропадает из выборки пользователя
	found, getErr := s.repo.GetByShortCode(s.T().Context(), "abc123")
	s.Require().NoError(getErr)
	s.True(found.Deleted())

	urls, listErr := s.repo.GetAllByUserID(s.T().Context(), userID)
	s.Require().NoError(listErr)
	s.Empty(urls)
}

func (s *URLRepoSuite) TestIncrementClicks() {
	created := s.createURL("abc123", nil)

	s.Require().NoError(s.repo.IncrementClicks(s.T().Context(), "abc123"))
	s.Require().NoError(s.repo.IncrementClicks(s.T().Context(), "abc123"))

	found, err := s.repo.GetByShortCode(s.T().Context(), "abc123")
	s.Require().NoError(err)
	s.Equal(int64(2), found.Clicks)

	_, delErr := s.repo.SoftDelete(s.T().Context(), created.ID)
	s.Require().NoError(delErr)

	s.ErrorIs(s.repo.IncrementClicks(s.T().Context(), "abc123"), repositories.ErrNotFound)
}

func TestURLRepoSuite(t *testing.T) {
	suite.Run(t, new(URLRepoSuite))
}

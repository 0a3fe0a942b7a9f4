package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/brmartin/shortly/internal/config"
	"github.com/brmartin/shortly/internal/models"
	"github.com/brmartin/shortly/internal/services"
	"github.com/brmartin/shortly/internal/services/smocks"
	"github.com/brmartin/shortly/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testJWTSecret = []byte("test-jwt-secret")

type ShortURLControllerSuite struct {
	suite.Suite
	authMock *smocks.AuthMock
	urlMock  *smocks.URLMock
	router   *gin.Engine
}

func (s *ShortURLControllerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.authMock = new(smocks.AuthMock)
	s.urlMock = new(smocks.URLMock)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	appConf := config.Config{
		ServerAddress: ":80",
		BaseURL:       &url.URL{Scheme: "http", Host: "test.com:8080"},
		JWTSecret:     string(testJWTSecret),
		Logger:        logger,
	}
	s.router = SetupRouter(RouterParams{
		AuthService: s.authMock,
		URLService:  s.urlMock,
		AppConf:     appConf,
		Logger:      logger,
	})
}

func (s *ShortURLControllerSuite) makeRequest(method, uri, body, token string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, uri, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w.Result()
}

func (s *ShortURLControllerSuite) bearerToken(userID string) string {
	token, err := tokens.GenerateAccessJWT(userID, "a@b.com", time.Hour, testJWTSecret)
	s.Require().NoError(err)
	return token
}

func (s *ShortURLControllerSuite) TestCreateShortURL_Anonymous() {
	s.urlMock.On("Shorten", mock.Anything, "https://ya.ru/search", (*string)(nil)).
		Return(&models.ShortURL{ID: "url-id-1", OriginalURL: "https://ya.ru/search", ShortCode: "abc123"}, nil)

	res := s.makeRequest(http.MethodPost, "/short-url", `{"originalUrl":"https://ya.ru/search"}`, "")
	defer res.Body.Close()

	s.Equal(http.StatusCreated, res.StatusCode)

	body, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	s.JSONEq(`{"shortUrl":"http://test.com:8080/abc123"}`, string(body))
}

func (s *ShortURLControllerSuite) TestCreateShortURL_Authenticated() {
	userID := "user-id-1"
	s.urlMock.On("Shorten", mock.Anything, "https://ya.ru/search", mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == userID
	})).Return(&models.ShortURL{ID: "url-id-1", OriginalURL: "https://ya.ru/search", ShortCode: "abc123", UserID: &userID}, nil)

	res := s.makeRequest(http.MethodPost, "/short-url", `{"originalUrl":"https://ya.ru/search"}`, s.bearerToken(userID))
	defer res.Body.Close()

	s.Equal(http.StatusCreated, res.StatusCode)
	s.urlMock.AssertExpectations(s.T())
}

func (s *ShortURLControllerSuite) TestCreateShortURL_InvalidURL() {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ``},
		{name: "not a url", body: `{"originalUrl":"not-a-url"}`},
		{name: "ftp scheme", body: `{"originalUrl":"ftp://ya.ru/file"}`},
		{name: "no host", body: `{"originalUrl":"https://"}`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeRequest(http.MethodPost, "/short-url", tt.body, "")
			defer res.Body.Close()

			s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
		})
	}
	s.urlMock.AssertNotCalled(s.T(), "Shorten", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ShortURLControllerSuite) TestRedirect() {
	s.urlMock.On("RedirectToOriginal", mock.Anything, "abc123").
		Return("https://ya.ru/search", nil)

	res := s.makeRequest(http.MethodGet, "/abc123", "", "")
	defer res.Body.Close()

	s.Equal(http.StatusFound, res.StatusCode)
	s.Equal("https://ya.ru/search", res.Header.Get("Location"))
}

func (s *ShortURLControllerSuite) TestRedirect_NotFound() {
	s.urlMock.On("RedirectToOriginal", mock.Anything, "zzz999").
		Return("", errors.Wrap(services.ErrRecordNotFound, "URL not found or deleted"))

	res := s.makeRequest(http.MethodGet, "/zzz999", "", "")
	defer res.Body.Close()

	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *ShortURLControllerSuite) TestRedirect_MalformedCode() {
	// коды вне допустимой длины отбрасываются без похода в сервис
	res := s.makeRequest(http.MethodGet, "/ab", "", "")
	defer res.Body.Close()

	s.Equal(http.StatusNotFound, res.StatusCode)
	s.urlMock.AssertNotCalled(s.T(), "RedirectToOriginal", mock.Anything, mock.Anything)
}

func (s *ShortURLControllerSuite) TestListByOwner() {
	userID := "user-id-1"
	s.urlMock.On("FindByOwner", mock.Anything, userID).
		Return([]models.ShortURL{
			{ID: "url-id-1", OriginalURL: "https://ya.ru/a", ShortCode: "aaa111", UserID: &userID},
			{ID: "url-id-2", OriginalURL: "https://ya.ru/b", ShortCode: "bbb222", UserID: &userID},
		}, nil)

	res := s.makeRequest(http.MethodGet, "/urls", "", s.bearerToken(userID))
	defer res.Body.Close()

	s.Equal(http.StatusOK, res.StatusCode)

	body, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	s.Contains(string(body), `"aaa111"`)
	s.Contains(string(body), `"bbb222"`)
}

func (s *ShortURLControllerSuite) TestListByOwner_NoToken() {
	res := s.makeRequest(http.MethodGet, "/urls", "", "")
	defer res.Body.Close()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
	s.urlMock.AssertNotCalled(s.T(), "FindByOwner", mock.Anything, mock.Anything)
}

func (s *ShortURLControllerSuite) TestListByOwner_BadToken() {
	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage token", token: "not-a-jwt"},
		{name: "wrong key", token: func() string {
			token, _ := tokens.GenerateAccessJWT("user-id-1", "a@b.com", time.Hour, []byte("other-key"))
			return token
		}()},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeRequest(http.MethodGet, "/urls", "", tt.token)
			defer res.Body.Close()

			s.Equal(http.StatusUnauthorized, res.StatusCode)
		})
	}
}

func (s *ShortURLControllerSuite) TestUpdate() {
	userID := "user-id-1"
	s.urlMock.On("Update", mock.Anything, "url-id-1", "https://ya.ru/new", userID).
		Return(&models.ShortURL{ID: "url-id-1", OriginalURL: "https://ya.ru/new", ShortCode: "abc123", UserID: &userID}, nil)

	res := s.makeRequest(http.MethodPatch, "/url/url-id-1", `{"originalUrl":"https://ya.ru/new"}`, s.bearerToken(userID))
	defer res.Body.Close()

	s.Equal(http.StatusOK, res.StatusCode)

	body, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	s.Contains(string(body), `"https://ya.ru/new"`)
}

func (s *ShortURLControllerSuite) TestUpdate_NotOwner() {
	s.urlMock.On("Update", mock.Anything, "url-id-1", "https://ya.ru/new", "user-id-2").
		Return(nil, errors.Wrap(services.ErrUnauthorized, "you do not own this URL"))

	res := s.makeRequest(http.MethodPatch, "/url/url-id-1", `{"originalUrl":"https://ya.ru/new"}`, s.bearerToken("user-id-2"))
	defer res.Body.Close()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *ShortURLControllerSuite) TestUpdate_NotFound() {
	s.urlMock.On("Update", mock.Anything, "missing-id", "https://ya.ru/new", "user-id-1").
		Return(nil, errors.Wrap(services.ErrRecordNotFound, "URL not found"))

	res := s.makeRequest(http.MethodPatch, "/url/missing-id", `{"originalUrl":"https://ya.ru/new"}`, s.bearerToken("user-id-1"))
	defer res.Body.Close()

	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *ShortURLControllerSuite) TestDelete() {
	userID := "user-id-1"
	s.urlMock.On("Delete", mock.Anything, "url-id-1", userID).
		Return(&models.ShortURL{ID: "url-id-1", ShortCode: "abc123", UserID: &userID}, nil)

	res := s.makeRequest(http.MethodDelete, "/url/url-id-1", "", s.bearerToken(userID))
	defer res.Body.Close()

	s.Equal(http.StatusNoContent, res.StatusCode)
}

func (s *ShortURLControllerSuite) TestDelete_NoToken() {
	res := s.makeRequest(http.MethodDelete, "/url/url-id-1", "", "")
	defer res.Body.Close()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
	s.urlMock.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestShortURLControllerSuite(t *testing.T) {
	suite.Run(t, new(ShortURLControllerSuite))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/service/redis"
	mockRedis "github.com/nextswap/auction-api/service/redis/mocks"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	redis *mockRedis.Service
	store map[string][]byte
}

func (s *cacheMiddlewareSuite) SetupSuite() {
	s.store = map[string][]byte{}
	s.redis = &mockRedis.Service{}
	s.redis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
			s.store[key] = val
			return nil
		},
	)
	s.redis.On("Get", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, key string) []byte {
			return s.store[key]
		},
		func(c ctx.Ctx, key string) error {
			if _, ok := s.store[key]; !ok {
				return redis.ErrNotFound
			}
			return nil
		},
	)
	s.redis.On("TTL", mock.Anything, mock.Anything).Return(30, nil)

	SetupCache(s.redis)
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	res := "Hello, World"
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, res)
	}

	c := e.NewContext(req, rec)
	cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
	c.Set("ctx", cont)

	if s.NoError(CacheHttp(30 * time.Second)(h)(c)) {
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(res, rec.Body.String())
	}

	// second request with a different handler must be served from cache
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	rec2 := httptest.NewRecorder()
	res2 := "Hello, again"
	h2 := func(c echo.Context) error {
		return c.String(http.StatusOK, res2)
	}
	c2 := e.NewContext(req2, rec2)
	c2.Set("ctx", cont)

	if s.NoError(CacheHttp(30 * time.Second)(h2)(c2)) {
		s.Equal(http.StatusOK, rec2.Code)
		s.Equal(res, rec2.Body.String())
	}

	key := generateKey(req.URL.String())
	s.Contains(s.store, "httpCacheMiddleware:"+key)
}

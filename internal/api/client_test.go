package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"bankclient/internal/config"
	"bankclient/internal/errcodes"
	"bankclient/internal/metrics"
	"bankclient/internal/session"
	"bankclient/internal/storage"
)

// ClientTestSuite defines the test suite for the gateway dispatcher
type ClientTestSuite struct {
	suite.Suite
	store     *storage.MemoryStore
	session   *session.Session
	redirects atomic.Int32
	gateway   *echo.Echo
	server    *httptest.Server
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.store = storage.NewMemoryStore()
	s.session = session.New(s.store)
	s.redirects.Store(0)
	s.gateway = echo.New()
	s.server = httptest.NewServer(s.gateway)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) newClient() *Client {
	cfg := &config.GatewayConfig{
		BaseURL:        s.server.URL,
		RequestTimeout: 5 * time.Second,
	}
	navigator := NavigatorFunc(func() { s.redirects.Add(1) })
	return NewClient(cfg, s.session, navigator, metrics.New(prometheus.NewRegistry()))
}

func (s *ClientTestSuite) envelope(code int, message string, data any) map[string]any {
	return map[string]any{"code": code, "message": message, "data": data}
}

func (s *ClientTestSuite) TestDo_SuccessDecodesData() {
	s.gateway.GET("/account/list", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.envelope(200, "ok", []map[string]any{
			{"accountNo": "A1"},
		}))
	})

	var out []struct {
		AccountNo string `json:"accountNo"`
	}
	err := s.newClient().Do(context.Background(), http.MethodGet, "/account/list", nil, &out)

	s.Require().NoError(err)
	s.Require().Len(out, 1)
	s.Equal("A1", out[0].AccountNo)
}

func (s *ClientTestSuite) TestDo_InjectsCredential() {
	var gotAuth string
	s.gateway.GET("/user/profile/me", func(c echo.Context) error {
		gotAuth = c.Request().Header.Get("Authorization")
		return c.JSON(http.StatusOK, s.envelope(200, "ok", nil))
	})

	s.Require().NoError(s.session.Login("tok-abc", session.UserSummary{UserID: "U1"}))

	err := s.newClient().Do(context.Background(), http.MethodGet, "/user/profile/me", nil, nil)

	s.Require().NoError(err)
	s.Equal("tok-abc", gotAuth)
}

func (s *ClientTestSuite) TestDo_UnauthenticatedSendsNoHeader() {
	var hasAuth bool
	s.gateway.GET("/currency/reference/list", func(c echo.Context) error {
		hasAuth = c.Request().Header.Get("Authorization") != ""
		return c.JSON(http.StatusOK, s.envelope(200, "ok", nil))
	})

	err := s.newClient().Do(context.Background(), http.MethodGet, "/currency/reference/list", nil, nil)

	s.Require().NoError(err)
	s.False(hasAuth)
}

func (s *ClientTestSuite) TestDo_BusinessErrorSurfacedVerbatim() {
	s.gateway.POST("/transfer/submit", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.envelope(303001, "insufficient funds", nil))
	})

	s.Require().NoError(s.session.Login("tok-abc", session.UserSummary{}))

	err := s.newClient().Do(context.Background(), http.MethodPost, "/transfer/submit", map[string]any{}, nil)

	apiErr, ok := AsError(err)
	s.Require().True(ok)
	s.Equal(KindBusiness, apiErr.Kind)
	s.Equal(303001, apiErr.Code)
	s.Equal("insufficient funds", apiErr.Message)

	// Business failures never touch the session.
	s.True(s.session.IsAuthenticated())
	s.Equal(int32(0), s.redirects.Load())
}

func (s *ClientTestSuite) TestDo_AuthFamilyCodeDoesNotClearSession() {
	// 102001 is an auth-class error (wrong credentials) but not the reserved
	// token-invalid code; an unrelated valid session must survive it.
	s.gateway.POST("/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.envelope(errcodes.Unauthorized, "bad credentials", nil))
	})

	s.Require().NoError(s.session.Login("tok-abc", session.UserSummary{}))

	err := s.newClient().Do(context.Background(), http.MethodPost, "/auth/login", map[string]any{}, nil)

	apiErr, ok := AsError(err)
	s.Require().True(ok)
	s.Equal(KindBusiness, apiErr.Kind)
	s.True(s.session.IsAuthenticated())
	s.Equal(int32(0), s.redirects.Load())
}

func (s *ClientTestSuite) TestDo_HTTPUnauthorizedInvalidatesOnce() {
	s.gateway.GET("/account/list", func(c echo.Context) error {
		return c.NoContent(http.StatusUnauthorized)
	})

	s.Require().NoError(s.session.Login("tok-abc", session.UserSummary{}))

	err := s.newClient().Do(context.Background(), http.MethodGet, "/account/list", nil, nil)

	s.True(IsUnauthorized(err))
	s.False(s.session.IsAuthenticated())
	s.Equal(int32(1), s.redirects.Load())

	// All three persisted keys are gone together.
	for _, key := range []string{"token", "userInfo", "kycLevel"} {
		_, getErr := s.store.Get(key)
		s.ErrorIs(getErr, storage.ErrKeyNotFound, key)
	}
}

func (s *ClientTestSuite) TestDo_TokenInvalidCodeInvalidates() {
	s.gateway.GET("/account/list", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.envelope(errcodes.TokenInvalid, "token invalid", nil))
	})

	s.Require().NoError(s.session.Login("tok-abc", session.UserSummary{}))

	err := s.newClient().Do(context.Background(), http.MethodGet, "/account/list", nil, nil)

	apiErr, ok := AsError(err)
	s.Require().True(ok)
	s.Equal(KindUnauthorized, apiErr.Kind)
	s.Equal(errcodes.TokenInvalid, apiErr.Code)
	s.False(s.session.IsAuthenticated())
	s.Equal(int32(1), s.redirects.Load())
}

func (s *ClientTestSuite) TestDo_ConcurrentInvalidationFiresSideEffectOnce() {
	s.gateway.GET("/account/list", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.envelope(errcodes.TokenInvalid, "token invalid", nil))
	})

	s.Require().NoError(s.session.Login("tok-abc", session.UserSummary{}))
	client := s.newClient()

	const callers = 10
	results := make([]error, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = client.Do(context.Background(), http.MethodGet, "/account/list", nil, nil)
		}(i)
	}
	wg.Wait()

	// Every caller still receives its own classified error.
	for i, err := range results {
		s.True(IsUnauthorized(err), "caller %d", i)
	}

	// The side effect fired exactly once.
	s.Equal(int32(1), s.redirects.Load())
	s.False(s.session.IsAuthenticated())
}

func (s *ClientTestSuite) TestDo_RearmRestoresInterception() {
	s.gateway.GET("/account/list", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.envelope(errcodes.TokenInvalid, "token invalid", nil))
	})

	s.Require().NoError(s.session.Login("tok-1", session.UserSummary{}))
	client := s.newClient()

	s.Error(client.Do(context.Background(), http.MethodGet, "/account/list", nil, nil))
	s.Equal(int32(1), s.redirects.Load())

	// A fresh login re-arms the latch; the next expiry redirects again.
	s.Require().NoError(s.session.Login("tok-2", session.UserSummary{}))
	client.Rearm()

	s.Error(client.Do(context.Background(), http.MethodGet, "/account/list", nil, nil))
	s.Equal(int32(2), s.redirects.Load())
}

func (s *ClientTestSuite) TestDo_NetworkErrorLeavesSessionIntact() {
	s.Require().NoError(s.session.Login("tok-abc", session.UserSummary{}))
	client := s.newClient()
	s.server.Close()

	err := client.Do(context.Background(), http.MethodGet, "/account/list", nil, nil)

	s.True(IsNetwork(err))
	s.True(s.session.IsAuthenticated())
	s.Equal(int32(0), s.redirects.Load())
}

func (s *ClientTestSuite) TestDo_MalformedEnvelopeIsNetworkKind() {
	s.gateway.GET("/account/list", func(c echo.Context) error {
		return c.String(http.StatusInternalServerError, "<html>gateway exploded</html>")
	})

	err := s.newClient().Do(context.Background(), http.MethodGet, "/account/list", nil, nil)

	s.True(IsNetwork(err))
}

func (s *ClientTestSuite) TestDo_FallbackMessageForEmptyEnvelopeMessage() {
	s.gateway.GET("/x", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.envelope(errcodes.PasswordError, "", nil))
	})

	err := s.newClient().Do(context.Background(), http.MethodGet, "/x", nil, nil)

	apiErr, ok := AsError(err)
	s.Require().True(ok)
	s.Equal("Incorrect password", apiErr.Message)
}

func (s *ClientTestSuite) TestUpload_MultipartWithCredential() {
	var gotAuth, gotContentType string
	var gotContent []byte
	s.gateway.POST("/user/file/upload", func(c echo.Context) error {
		gotAuth = c.Request().Header.Get("Authorization")
		gotContentType = c.Request().Header.Get("Content-Type")
		file, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusOK, s.envelope(991002, "missing file", nil))
		}
		src, err := file.Open()
		if err != nil {
			return err
		}
		defer src.Close()
		buf, err := io.ReadAll(src)
		if err != nil {
			return err
		}
		gotContent = buf
		return c.JSON(http.StatusOK, s.envelope(200, "ok", "https://cdn/doc-1.png"))
	})

	s.Require().NoError(s.session.Login("tok-abc", session.UserSummary{}))

	var url string
	err := s.newClient().Upload(context.Background(), "/user/file/upload",
		"file", "doc-1.png", strings.NewReader("fake-image-bytes"), &url)

	s.Require().NoError(err)
	s.Equal("tok-abc", gotAuth)
	s.Contains(gotContentType, "multipart/form-data")
	s.Equal("fake-image-bytes", string(gotContent))
	s.Equal("https://cdn/doc-1.png", url)
}

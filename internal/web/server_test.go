package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/tweet-board/internal/client"
	"github.com/sbilibin2017/tweet-board/internal/models"
	"github.com/sbilibin2017/tweet-board/internal/querycache"
)

const testToken = "tok"

var ann = models.SessionUser{ID: uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"), Name: "Ann"}

func newTestServer(t *testing.T) (*Server, *MockAPI) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := NewMockAPI(ctrl)

	cache := querycache.New()
	t.Cleanup(cache.Close)

	s, err := New(func(string) API { return api }, cache, Config{ResolveTimeout: 50 * time.Millisecond})
	require.NoError(t, err)
	return s, api
}

func signedIn(api *MockAPI) {
	api.EXPECT().Session(gomock.Any()).Return(&models.Session{User: ann}, nil).AnyTimes()
}

func serve(s *Server, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	s.Routes().ServeHTTP(rr, req)
	return rr
}

func tokenCookieFor(token string) *http.Cookie {
	return &http.Cookie{Name: tokenCookie, Value: token}
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func flashOf(t *testing.T, rr *httptest.ResponseRecorder) Flash {
	t.Helper()

	c := responseCookie(rr, flashCookie)
	require.NotNil(t, c, "flash cookie not set")
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	require.NoError(t, err)

	var f Flash
	require.NoError(t, json.Unmarshal(raw, &f))
	return f
}

func sampleTweets() []models.TweetListItem {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []models.TweetListItem{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Title: "Learning Go", CreatedAt: base},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Title: "Cooking", CreatedAt: base.Add(time.Hour)},
	}
}

func TestServer_Home(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		s, _ := newTestServer(t)

		rr := serve(s, http.MethodGet, "/", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Please")
		assert.NotContains(t, rr.Body.String(), `href="/tweets"`)
	})

	t.Run("signed in", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)

		rr := serve(s, http.MethodGet, "/", nil, tokenCookieFor(testToken))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Welcome, Ann!")
		assert.Contains(t, rr.Body.String(), `href="/tweets"`)
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		s, api := newTestServer(t)
		api.EXPECT().Session(gomock.Any()).Return(nil, nil)

		rr := serve(s, http.MethodGet, "/", nil, tokenCookieFor(testToken))

		assert.Contains(t, rr.Body.String(), "Please")
		c := responseCookie(rr, tokenCookie)
		require.NotNil(t, c)
		assert.True(t, c.MaxAge < 0)
	})
}

func TestServer_PublicOnlyGuard(t *testing.T) {
	t.Run("anonymous sees the form", func(t *testing.T) {
		s, _ := newTestServer(t)

		rr := serve(s, http.MethodGet, "/login", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `action="/login"`)
	})

	t.Run("signed in is redirected home", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)

		rr := serve(s, http.MethodGet, "/register", nil, tokenCookieFor(testToken))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("slow session lookup renders loading", func(t *testing.T) {
		s, api := newTestServer(t)
		api.EXPECT().Session(gomock.Any()).DoAndReturn(func(ctx context.Context) (*models.Session, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

		rr := serve(s, http.MethodGet, "/login", nil, tokenCookieFor(testToken))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `http-equiv="refresh"`)
		assert.NotContains(t, rr.Body.String(), `action="/login"`)
	})
}

func TestServer_SessionLookupFailures(t *testing.T) {
	unavailable := []struct {
		name string
		err  error
	}{
		{name: "throttled", err: &client.RPCError{Code: client.CodeTooManyRequests, Message: "Too many requests", Status: http.StatusTooManyRequests}},
		{name: "server error", err: &client.RPCError{Code: client.CodeInternalServerError, Message: "Internal server error", Status: http.StatusServiceUnavailable}},
		{name: "unreachable", err: &client.RPCError{Code: client.CodeUnknownError, Err: errors.New("connection refused")}},
	}
	for _, tt := range unavailable {
		t.Run(tt.name+" keeps the user signed in", func(t *testing.T) {
			s, api := newTestServer(t)
			api.EXPECT().Session(gomock.Any()).Return(nil, tt.err).Times(15)

			for i := 0; i < 15; i++ {
				rr := serve(s, http.MethodGet, "/tweets", nil, tokenCookieFor(testToken))

				require.Equal(t, http.StatusOK, rr.Code)
				assert.Empty(t, rr.Header().Get("Location"))
				assert.Contains(t, rr.Body.String(), `http-equiv="refresh"`)
				assert.Nil(t, responseCookie(rr, tokenCookie))
			}
		})
	}

	t.Run("rejected token signs out", func(t *testing.T) {
		s, api := newTestServer(t)
		api.EXPECT().Session(gomock.Any()).Return(nil, &client.RPCError{
			Code: client.CodeUnauthorized, Message: "Unauthorized", Status: http.StatusUnauthorized,
		})

		rr := serve(s, http.MethodGet, "/tweets", nil, tokenCookieFor(testToken))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
		c := responseCookie(rr, tokenCookie)
		require.NotNil(t, c)
		assert.True(t, c.MaxAge < 0)
	})
}

func TestServer_LoginSubmit(t *testing.T) {
	t.Run("success sets the token cookie", func(t *testing.T) {
		s, api := newTestServer(t)
		api.EXPECT().Login(gomock.Any(), "ann@example.com", "secret123").Return("jwt", &ann, nil)

		rr := serve(s, http.MethodPost, "/login", url.Values{"email": {"ann@example.com"}, "password": {"secret123"}})

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
		c := responseCookie(rr, tokenCookie)
		require.NotNil(t, c)
		assert.Equal(t, "jwt", c.Value)
		assert.True(t, c.HttpOnly)
	})

	t.Run("invalid input never reaches the api", func(t *testing.T) {
		s, _ := newTestServer(t)

		rr := serve(s, http.MethodPost, "/login", url.Values{"email": {"nope"}, "password": {""}})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Please enter a valid email address")
		assert.Contains(t, rr.Body.String(), "This field is required")
		assert.Contains(t, rr.Body.String(), `value="nope"`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		s, api := newTestServer(t)
		api.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", nil, &client.RPCError{Code: client.CodeUnauthorized, Message: "Invalid email or password", Status: http.StatusUnauthorized})

		rr := serve(s, http.MethodPost, "/login", url.Values{"email": {"ann@example.com"}, "password": {"wrong"}})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid email or password")
	})
}

func TestServer_RegisterSubmit(t *testing.T) {
	s, api := newTestServer(t)
	gomock.InOrder(
		api.EXPECT().Register(gomock.Any(), "Ann", "ann@example.com", "secret123").Return(&ann, nil),
		api.EXPECT().Login(gomock.Any(), "ann@example.com", "secret123").Return("jwt", &ann, nil),
	)

	rr := serve(s, http.MethodPost, "/register", url.Values{
		"name": {"Ann"}, "email": {"ann@example.com"}, "password": {"secret123"},
	})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Equal(t, "jwt", responseCookie(rr, tokenCookie).Value)
}

func TestServer_Logout(t *testing.T) {
	s, api := newTestServer(t)
	api.EXPECT().Logout(gomock.Any()).Return(nil)

	rr := serve(s, http.MethodPost, "/logout", nil, tokenCookieFor(testToken))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	c := responseCookie(rr, tokenCookie)
	require.NotNil(t, c)
	assert.True(t, c.MaxAge < 0)
}

func TestServer_TweetsList(t *testing.T) {
	t.Run("anonymous is sent to login", func(t *testing.T) {
		s, _ := newTestServer(t)

		rr := serve(s, http.MethodGet, "/tweets", nil)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("default values are stripped from the url", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)

		rr := serve(s, http.MethodGet, "/tweets?searchString=&sortDirection=desc", nil, tokenCookieFor(testToken))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/tweets", rr.Header().Get("Location"))
	})

	t.Run("filters and caches", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		api.EXPECT().TweetsAll(gomock.Any()).Return(sampleTweets(), nil).Times(1)

		rr := serve(s, http.MethodGet, "/tweets?searchString=go", nil, tokenCookieFor(testToken))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Learning Go")
		assert.NotContains(t, rr.Body.String(), "Cooking")
		assert.Contains(t, rr.Body.String(), "/tweets?searchString=go&amp;sortDirection=asc")

		rr = serve(s, http.MethodGet, "/tweets", nil, tokenCookieFor(testToken))
		assert.Contains(t, rr.Body.String(), "Cooking")
	})

	t.Run("empty", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		api.EXPECT().TweetsAll(gomock.Any()).Return([]models.TweetListItem{}, nil)

		rr := serve(s, http.MethodGet, "/tweets", nil, tokenCookieFor(testToken))

		assert.Contains(t, rr.Body.String(), "There are no tweets available.")
		assert.Contains(t, rr.Body.String(), `placeholder="Search by title..."`)
	})

	t.Run("rejected token", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		api.EXPECT().TweetsAll(gomock.Any()).
			Return(nil, &client.RPCError{Code: client.CodeUnauthorized, Message: "Unauthorized", Status: http.StatusUnauthorized})

		rr := serve(s, http.MethodGet, "/tweets", nil, tokenCookieFor(testToken))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/login", rr.Header().Get("Location"))
	})
}

func TestServer_TweetsCreate(t *testing.T) {
	form := func(title, content string) url.Values {
		return url.Values{"title": {title}, "content": {content}, "sortDirection": {"asc"}}
	}

	t.Run("invalid input keeps the dialog open", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		api.EXPECT().TweetsAll(gomock.Any()).Return(sampleTweets(), nil)

		rr := serve(s, http.MethodPost, "/tweets", form("", "some content"), tokenCookieFor(testToken))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Please enter at least 3 characters")
		assert.Contains(t, body, "some content")
		assert.Contains(t, body, "showModal();")
	})

	t.Run("success refetches and flashes", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		created := append(sampleTweets(), models.TweetListItem{ID: uuid.New(), Title: "Fresh", CreatedAt: time.Now()})
		gomock.InOrder(
			api.EXPECT().TweetsCreate(gomock.Any(), "Fresh", "hello world").Return(nil),
			api.EXPECT().TweetsAll(gomock.Any()).Return(created, nil),
		)

		rr := serve(s, http.MethodPost, "/tweets", form("Fresh", "hello world"), tokenCookieFor(testToken))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/tweets?sortDirection=asc", rr.Header().Get("Location"))
		assert.Equal(t, Flash{Kind: FlashSuccess, Message: MsgTweetCreated}, flashOf(t, rr))

		next := serve(s, http.MethodGet, "/tweets?sortDirection=asc", nil,
			tokenCookieFor(testToken), responseCookie(rr, flashCookie))
		assert.Contains(t, next.Body.String(), "Fresh")
		assert.Contains(t, next.Body.String(), MsgTweetCreated)
	})

	t.Run("server error keeps values", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		api.EXPECT().TweetsCreate(gomock.Any(), "Title", "some body").Return(errors.New("connection reset"))
		api.EXPECT().TweetsAll(gomock.Any()).Return(sampleTweets(), nil)

		rr := serve(s, http.MethodPost, "/tweets", form("Title", "some body"), tokenCookieFor(testToken))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, client.UnknownErrorMessage)
		assert.Contains(t, body, `value="Title"`)
		assert.Contains(t, body, "showModal();")
	})
}

func TestServer_TweetsDelete(t *testing.T) {
	id := "11111111-1111-1111-1111-111111111111"

	t.Run("success", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		gomock.InOrder(
			api.EXPECT().TweetsDelete(gomock.Any(), id).Return(nil),
			api.EXPECT().TweetsAll(gomock.Any()).Return(sampleTweets()[1:], nil),
		)

		rr := serve(s, http.MethodPost, "/tweets/"+id+"/delete", url.Values{}, tokenCookieFor(testToken))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/tweets", rr.Header().Get("Location"))
		assert.Equal(t, Flash{Kind: FlashInfo, Message: MsgTweetDeleted}, flashOf(t, rr))
		assert.False(t, s.inflight.Has(id))
	})

	t.Run("deleted tweet detail is fetched again", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		detail := &models.TweetDetail{
			ID:      uuid.MustParse(id),
			Title:   "Learning Go",
			Content: "Channels are neat.",
			Author:  models.Author{ID: ann.ID, Name: "Ann"},
		}
		gomock.InOrder(
			api.EXPECT().TweetsOne(gomock.Any(), id).Return(detail, nil),
			api.EXPECT().TweetsDelete(gomock.Any(), id).Return(nil),
			api.EXPECT().TweetsAll(gomock.Any()).Return(sampleTweets()[1:], nil),
			api.EXPECT().TweetsOne(gomock.Any(), id).Return(nil, &client.RPCError{
				Code: client.CodeBadRequest, Message: "No such tweet with ID " + id, Status: http.StatusBadRequest,
			}),
		)

		rr := serve(s, http.MethodGet, "/tweets/"+id, nil, tokenCookieFor(testToken))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Learning Go")

		rr = serve(s, http.MethodPost, "/tweets/"+id+"/delete", url.Values{}, tokenCookieFor(testToken))
		require.Equal(t, http.StatusSeeOther, rr.Code)
		_, cached := s.cache.Get(oneTweetKey(id))
		assert.False(t, cached)

		rr = serve(s, http.MethodGet, "/tweets/"+id, nil, tokenCookieFor(testToken))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.NotContains(t, rr.Body.String(), "Learning Go")
		assert.Contains(t, rr.Body.String(), "No such tweet with ID "+id)
	})

	t.Run("failure leaves the cache alone", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		api.EXPECT().TweetsDelete(gomock.Any(), id).Return(&client.RPCError{
			Code: client.CodeBadRequest, Message: "No such tweet with id " + id, Status: http.StatusBadRequest,
		})

		rr := serve(s, http.MethodPost, "/tweets/"+id+"/delete", url.Values{}, tokenCookieFor(testToken))

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, Flash{Kind: FlashError, Message: "No such tweet with id " + id}, flashOf(t, rr))
	})

	t.Run("in flight delete is rejected and the row is disabled", func(t *testing.T) {
		s, api := newTestServer(t)
		signedIn(api)
		api.EXPECT().TweetsAll(gomock.Any()).Return(sampleTweets(), nil)
		require.True(t, s.inflight.TryAcquire(id))

		rr := serve(s, http.MethodPost, "/tweets/"+id+"/delete", url.Values{}, tokenCookieFor(testToken))
		assert.Equal(t, Flash{Kind: FlashError, Message: MsgDeleteInProgress}, flashOf(t, rr))

		list := serve(s, http.MethodGet, "/tweets", nil, tokenCookieFor(testToken))
		assert.Contains(t, list.Body.String(), "Deleting...")
		assert.Contains(t, list.Body.String(), `class="disabled"`)
	})
}

func TestServer_TweetDetail(t *testing.T) {
	id := "11111111-1111-1111-1111-111111111111"
	s, api := newTestServer(t)
	signedIn(api)

	detail := &models.TweetDetail{
		ID:        uuid.MustParse(id),
		Title:     "Learning Go",
		Content:   "Channels are neat.",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Author:    models.Author{ID: ann.ID, Name: "Ann"},
	}
	gomock.InOrder(
		api.EXPECT().TweetsOne(gomock.Any(), id).Return(nil, &client.RPCError{
			Code: client.CodeBadRequest, Message: "No such tweet with ID " + id, Status: http.StatusBadRequest,
		}),
		api.EXPECT().TweetsOne(gomock.Any(), id).Return(detail, nil),
	)

	rr := serve(s, http.MethodGet, "/tweets/"+id, nil, tokenCookieFor(testToken))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "No such tweet with ID "+id)
	assert.Contains(t, rr.Body.String(), "Go Back")
	assert.Contains(t, rr.Body.String(), "Retry")

	rr = serve(s, http.MethodGet, "/tweets/"+id, nil, tokenCookieFor(testToken))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Channels are neat.")
	assert.Contains(t, rr.Body.String(), "Created by Ann, May 1, 2024 12:00")
}

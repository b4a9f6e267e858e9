package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/tweet-board/internal/client"
	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/middlewares"
	"github.com/sbilibin2017/tweet-board/internal/models"
	"github.com/sbilibin2017/tweet-board/internal/querycache"
	"github.com/sbilibin2017/tweet-board/internal/validation"
)

// Flash messages shown after tweet mutations.
const (
	MsgTweetCreated     = "Your tweet has been created!"
	MsgTweetDeleted     = "Tweet deleted successfully."
	MsgDeleteInProgress = "This tweet is already being deleted."
)

type tweetRow struct {
	models.TweetListItem
	Deleting bool
}

type createDialog struct {
	Open    bool
	Title   string
	Content string
	Errors  map[string]string
	Error   string
}

type tweetsData struct {
	Search  validation.TweetsSearch
	SortURL string
	Tweets  []tweetRow
	Dialog  createDialog
	Error   string
}

type tweetData struct {
	Tweet    *models.TweetDetail
	Error    string
	RetryURL string
}

func (s *Server) tweetsList(w http.ResponseWriter, r *http.Request) {
	state, token := s.resolveSession(w, r)
	if !s.guard(w, r, GuardProtected(state), state) {
		return
	}

	search := validation.ParseTweetsSearch(r.URL.Query())
	if canonical := tweetsURL(search); canonical != r.URL.RequestURI() {
		http.Redirect(w, r, canonical, http.StatusFound)
		return
	}

	s.renderTweets(w, r, state, token, search, createDialog{}, http.StatusOK)
}

func (s *Server) renderTweets(w http.ResponseWriter, r *http.Request, state SessionState, token string,
	search validation.TweetsSearch, dialog createDialog, status int) {
	data := tweetsData{
		Search:  search,
		SortURL: tweetsURL(search.Toggled()),
		Dialog:  dialog,
	}

	tweets, err := querycache.Ensure(r.Context(), s.cache, allTweetsKey, s.api(token).TweetsAll)
	if err != nil {
		if client.IsUnauthorized(err) {
			s.reauth(w, r)
			return
		}
		data.Error = client.MessageOf(err)
		status = statusFor(err)
	}

	for _, t := range FilterAndSort(tweets, search) {
		data.Tweets = append(data.Tweets, tweetRow{TweetListItem: t, Deleting: s.inflight.Has(t.ID.String())})
	}

	s.render(w, r, status, "tweets.html", page{Title: "Tweets", Session: state, Data: data})
}

func (s *Server) tweetsCreate(w http.ResponseWriter, r *http.Request) {
	state, token := s.resolveSession(w, r)
	if !s.guard(w, r, GuardProtected(state), state) {
		return
	}

	title, content := r.PostFormValue("title"), r.PostFormValue("content")
	search := validation.ParseTweetsSearch(r.PostForm)
	dialog := createDialog{Open: true, Title: title, Content: content}

	if err := validation.ValidateCreateTweet(title, content); err != nil {
		dialog.Errors = fieldErrors(err)
		s.renderTweets(w, r, state, token, search, dialog, http.StatusBadRequest)
		return
	}

	api := s.api(token)
	if err := api.TweetsCreate(r.Context(), title, content); err != nil {
		if client.IsUnauthorized(err) {
			s.reauth(w, r)
			return
		}
		dialog.Error = client.MessageOf(err)
		if rpcErr, ok := client.AsRPCError(err); ok && len(rpcErr.Issues) > 0 {
			dialog.Errors = fieldErrors(&validation.ValidationError{Violations: rpcErr.Issues})
		}
		s.renderTweets(w, r, state, token, search, dialog, statusFor(err))
		return
	}

	s.refetchAll(r, api)
	s.setFlash(w, FlashSuccess, MsgTweetCreated)
	http.Redirect(w, r, tweetsURL(search), http.StatusSeeOther)
}

func (s *Server) tweetsDelete(w http.ResponseWriter, r *http.Request) {
	state, token := s.resolveSession(w, r)
	if !s.guard(w, r, GuardProtected(state), state) {
		return
	}

	id := chi.URLParam(r, "id")
	_ = r.ParseForm()
	back := tweetsURL(validation.ParseTweetsSearch(r.PostForm))

	if !s.inflight.TryAcquire(id) {
		s.setFlash(w, FlashError, MsgDeleteInProgress)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	defer s.inflight.Release(id)

	api := s.api(token)
	if err := api.TweetsDelete(r.Context(), id); err != nil {
		if client.IsUnauthorized(err) {
			s.reauth(w, r)
			return
		}
		s.setFlash(w, FlashError, client.MessageOf(err))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	s.cache.Remove(oneTweetKey(id))
	s.refetchAll(r, api)
	s.setFlash(w, FlashInfo, MsgTweetDeleted)
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// refetchAll replaces the cached list after a successful mutation. A failed
// refetch keeps the previous list.
func (s *Server) refetchAll(r *http.Request, api API) {
	if _, err := querycache.Refetch(r.Context(), s.cache, allTweetsKey, api.TweetsAll); err != nil {
		logger.Log.Warnw("refetch failed",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"key", allTweetsKey.String(),
			"error", err,
		)
	}
}

func (s *Server) tweetDetail(w http.ResponseWriter, r *http.Request) {
	state, token := s.resolveSession(w, r)
	if !s.guard(w, r, GuardProtected(state), state) {
		return
	}

	id := chi.URLParam(r, "id")
	data := tweetData{RetryURL: r.URL.Path}
	status := http.StatusOK

	api := s.api(token)
	tweet, err := querycache.Ensure(r.Context(), s.cache, oneTweetKey(id), func(ctx context.Context) (*models.TweetDetail, error) {
		return api.TweetsOne(ctx, id)
	})
	if err != nil {
		data.Error = client.MessageOf(err)
		status = statusFor(err)
	} else {
		data.Tweet = tweet
	}

	title := "Tweet"
	if tweet != nil {
		title = tweet.Title
	}
	s.render(w, r, status, "tweet.html", page{Title: title, Session: state, Data: data})
}

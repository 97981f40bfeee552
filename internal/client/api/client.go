// Package api is the HTTP client for the fairhub backend. It keeps the
// token pair from login and transparently refreshes the access token when a
// request comes back unauthorized.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/fairhub/internal/client/config"
	"github.com/dmitrijs2005/fairhub/internal/common"
	"github.com/dmitrijs2005/fairhub/internal/filex"
)

// User mirrors the server's account representation.
type User struct {
	ID          string `json:"id"`
	UserName    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Submission mirrors the server's submission representation.
type Submission struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	About     string    `json:"about"`
	UserID    string    `json:"user_id"`
	FairID    string    `json:"fair_id"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteCounts is the tally attached to a submission view.
type VoteCounts struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// SubmissionView is the augmented read model returned by listings.
type SubmissionView struct {
	Submission   *Submission `json:"submission"`
	ImageURLs    []string    `json:"image_urls"`
	Creator      *User       `json:"creator,omitempty"`
	Votes        VoteCounts  `json:"votes"`
	CommentCount int         `json:"comment_count"`
}

// Comment mirrors the server's comment representation.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Client talks to the backend. Safe for use from one goroutine at a time
// per method; the token pair itself is guarded.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.ServerURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// LoggedIn reports whether the client holds an access token.
func (c *Client) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken != ""
}

// Logout discards the stored token pair.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
	c.refreshToken = ""
}

func (c *Client) setTokens(pair *tokenPair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = pair.AccessToken
	c.refreshToken = pair.RefreshToken
}

func (c *Client) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func decodeInto(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if v == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func statusError(resp *http.Response) error {
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusBadRequest:
		return common.ErrorValidation
	case http.StatusNotFound:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("server returned %s", resp.Status)
	}
}

// bodyFunc builds a request body on demand so retries get a fresh reader.
// It returns the body, its content type, and an error.
type bodyFunc func() (io.Reader, string, error)

// doJSON performs an authenticated request with an optional JSON body and
// decodes the JSON response into out (may be nil). On 401 it refreshes the
// token pair once and retries.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var makeBody bodyFunc
	if body != nil {
		makeBody = func() (io.Reader, string, error) {
			b, err := json.Marshal(body)
			if err != nil {
				return nil, "", err
			}
			return bytes.NewReader(b), "application/json", nil
		}
	}
	return c.doWithRetry(ctx, method, path, makeBody, out)
}

func (c *Client) doWithRetry(ctx context.Context, method, path string, makeBody bodyFunc, out any) error {
	resp, err := c.send(ctx, method, path, makeBody)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if err := c.refresh(ctx); err != nil {
			return common.ErrorUnauthorized
		}
		resp, err = c.send(ctx, method, path, makeBody)
		if err != nil {
			return err
		}
	}

	if resp.StatusCode >= 400 {
		return statusError(resp)
	}
	if resp.StatusCode == http.StatusNoContent {
		resp.Body.Close()
		return nil
	}
	return decodeInto(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, makeBody bodyFunc) (*http.Response, error) {
	var body io.Reader
	var contentType string
	if makeBody != nil {
		var err error
		body, contentType, err = makeBody()
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if access, _ := c.tokens(); access != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+access)
	}
	return c.httpClient.Do(req)
}

func (c *Client) refresh(ctx context.Context) error {
	_, refreshToken := c.tokens()
	if refreshToken == "" {
		return common.ErrorUnauthorized
	}

	b, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	var pair tokenPair
	if err := decodeInto(resp, &pair); err != nil {
		return err
	}
	c.setTokens(&pair)
	return nil
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, userName, displayName, password string) (*User, error) {
	var user User
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", map[string]string{
		"username":     userName,
		"display_name": displayName,
		"password":     password,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login obtains and stores a token pair.
func (c *Client) Login(ctx context.Context, userName, password string) error {
	b, err := json.Marshal(map[string]string{"username": userName, "password": password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	var pair tokenPair
	if err := decodeInto(resp, &pair); err != nil {
		return err
	}
	c.setTokens(&pair)
	return nil
}

// Submit creates one submission with its media. File order is preserved.
func (c *Client) Submit(ctx context.Context, fairID, title, email, about string, files []*filex.UploadFile) (*Submission, error) {
	makeBody := func() (io.Reader, string, error) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if err := mw.WriteField("title", title); err != nil {
			return nil, "", err
		}
		if err := mw.WriteField("email", email); err != nil {
			return nil, "", err
		}
		if err := mw.WriteField("about", about); err != nil {
			return nil, "", err
		}
		for _, f := range files {
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, f.Name))
			h.Set("Content-Type", f.ContentType)
			part, err := mw.CreatePart(h)
			if err != nil {
				return nil, "", err
			}
			if _, err := part.Write(f.Data); err != nil {
				return nil, "", err
			}
		}
		if err := mw.Close(); err != nil {
			return nil, "", err
		}
		return &buf, mw.FormDataContentType(), nil
	}

	var created Submission
	path := "/fairs/" + fairID + "/submissions"
	if err := c.doWithRetry(ctx, http.MethodPost, path, makeBody, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns the resolved submissions of a fair, newest first.
func (c *Client) List(ctx context.Context, fairID string) ([]*SubmissionView, error) {
	var views []*SubmissionView
	if err := c.doJSON(ctx, http.MethodGet, "/fairs/"+fairID+"/submissions", nil, &views); err != nil {
		return nil, err
	}
	return views, nil
}

// Get returns one resolved submission.
func (c *Client) Get(ctx context.Context, submissionID string) (*SubmissionView, error) {
	var view SubmissionView
	if err := c.doJSON(ctx, http.MethodGet, "/submissions/"+submissionID, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Delete removes one of the caller's submissions.
func (c *Client) Delete(ctx context.Context, submissionID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/submissions/"+submissionID, nil, nil)
}

// Vote casts or replaces the caller's vote on a submission.
func (c *Client) Vote(ctx context.Context, submissionID, voteType string) error {
	return c.doJSON(ctx, http.MethodPost, "/submissions/"+submissionID+"/votes",
		map[string]string{"vote_type": voteType}, nil)
}

// Comment posts a comment on a submission.
func (c *Client) Comment(ctx context.Context, submissionID, body string) (*Comment, error) {
	var comment Comment
	err := c.doJSON(ctx, http.MethodPost, "/submissions/"+submissionID+"/comments",
		map[string]string{"body": body}, &comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Comments lists a submission's comments, oldest first.
func (c *Client) Comments(ctx context.Context, submissionID string) ([]*Comment, error) {
	var comments []*Comment
	if err := c.doJSON(ctx, http.MethodGet, "/submissions/"+submissionID+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

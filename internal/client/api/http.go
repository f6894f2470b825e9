package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/common"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/logging"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/netx"
)

const requestIDHeader = "X-Request-ID"

type headerKind int

const (
	kindJSON headerKind = iota
	// kindFormData deliberately leaves Content-Type unset so the
	// multipart writer's boundary header wins.
	kindFormData
)

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	tokens  TokenSource
	hc      *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient normalizes baseURL and returns a ready client. A base
// address without a scheme is corrected rather than rejected, with a
// diagnostic in the log.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	normalized, inferred, err := netx.NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if inferred {
		log.Warn(context.Background(), "base url has no scheme, corrected", "given", baseURL, "using", normalized)
	}

	return &HTTPClient{
		baseURL: normalized,
		tokens:  tokens,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// BaseURL returns the normalized backend address.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) newRequest(ctx context.Context, method, endpoint string, body io.Reader, kind headerKind) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, netx.JoinEndpoint(c.baseURL, endpoint), body)
	if err != nil {
		return nil, err
	}

	if kind == kindJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	return req, nil
}

func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "request failed", "method", req.Method, "url", req.URL.String(), "err", err)
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	return resp, nil
}

// readBody drains and closes the response body.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// doJSON issues the request and decodes a 2xx JSON body into out
// (which may only be nil when the body is irrelevant).
func (c *HTTPClient) doJSON(req *http.Request, out any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	body, err := readBody(resp)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", common.ErrBadResponse, err)
	}
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, endpoint string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(data), kindJSON)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, kindJSON)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	payload := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, "/api/auth/login", payload, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: login response carried no token", common.ErrBadResponse)
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, username, password string) (string, error) {
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	payload := map[string]string{"email": email, "username": username, "password": password}
	if err := c.postJSON(ctx, "/api/auth/register", payload, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: register response carried no token", common.ErrBadResponse)
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, "/api/auth/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListNotes(ctx context.Context, scope NoteScope) ([]models.Note, error) {
	endpoint := "/api/notes"
	switch scope {
	case ScopeGlobal:
		endpoint = "/api/notes/global"
	case ScopeRecent:
		endpoint = "/api/notes/recent"
	}

	var notes []models.Note
	if err := c.getJSON(ctx, endpoint, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *HTTPClient) NoteDetail(ctx context.Context, id int) (*models.NoteDetail, error) {
	var n models.NoteDetail
	if err := c.getJSON(ctx, fmt.Sprintf("/api/notes/global/%d", id), &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *HTTPClient) UploadNote(ctx context.Context, form UploadForm, ev UploadEvents) (*models.Note, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", form.FileName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(form.FileData); err != nil {
		return nil, err
	}
	for field, value := range map[string]string{
		"title":       form.Title,
		"class_name":  form.ClassName,
		"description": form.Description,
	} {
		if err := w.WriteField(field, value); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/notes/upload", &buf, kindFormData)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if ev.OnResponse != nil {
		ev.OnResponse()
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, body)
	}

	var note models.Note
	if err := json.Unmarshal(body, &note); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadResponse, err)
	}
	if ev.OnParsed != nil {
		ev.OnParsed()
	}
	return &note, nil
}

func (c *HTTPClient) fetchBinary(ctx context.Context, endpoint string) (*Binary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil, kindJSON)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, body)
	}
	return &Binary{
		Data:               body,
		ContentDisposition: resp.Header.Get("Content-Disposition"),
	}, nil
}

func (c *HTTPClient) PreviewNote(ctx context.Context, id int) ([]byte, error) {
	bin, err := c.fetchBinary(ctx, fmt.Sprintf("/api/notes/%d/preview", id))
	if err != nil {
		return nil, err
	}
	return bin.Data, nil
}

func (c *HTTPClient) DownloadNote(ctx context.Context, id int) (*Binary, error) {
	return c.fetchBinary(ctx, fmt.Sprintf("/api/notes/%d/download", id))
}

func (c *HTTPClient) ToggleLike(ctx context.Context, id int) (bool, error) {
	var resp struct {
		Liked bool `json:"liked"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("/api/notes/%d/like", id), struct{}{}, &resp); err != nil {
		return false, err
	}
	return resp.Liked, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, id int, content string) error {
	payload := map[string]string{"content": content}
	return c.postJSON(ctx, fmt.Sprintf("/api/notes/%d/comments", id), payload, nil)
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/notes/%d", id), nil, kindJSON)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

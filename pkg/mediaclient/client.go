// Package mediaclient is the Go SDK for the littlesteps media authority.
// It uploads family media through presigned URLs and serves signed read
// URLs through a TTL cache, without ever holding storage credentials.
package mediaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource returns the caller's identity token for one request.
// An empty token or an error maps to ErrAuth.
type TokenSource func(ctx context.Context) (string, error)

// StaticToken wraps a fixed token into a TokenSource. Mostly useful in
// tests and short-lived tools.
func StaticToken(token string) TokenSource {
	return func(ctx context.Context) (string, error) {
		return token, nil
	}
}

// PresignRequest describes the file the caller wants to upload.
type PresignRequest struct {
	FamilyID         string `json:"familyId"`
	BabyID           string `json:"babyId"`
	ContentType      string `json:"contentType"`
	FileSizeBytes    int64  `json:"fileSizeBytes"`
	MediaType        string `json:"mediaType"` // "photo" or "video"
	OriginalFilename string `json:"originalFilename,omitempty"`
	UploadID         string `json:"uploadId,omitempty"`
}

// PresignResponse is the upload target issued by the authority. It is
// consumed immediately by the upload step.
type PresignResponse struct {
	ObjectKey       string            `json:"objectKey"`
	SignedPutURL    string            `json:"signedPutUrl"`
	RequiredHeaders map[string]string `json:"requiredHeaders"`
	ExpiresAt       time.Time         `json:"expiresAt"`
}

// SignedRead is a time-limited read URL for a stored object.
type SignedRead struct {
	URL       string    `json:"signedGetUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UploadResult is the success contract of UploadMedia.
type UploadResult struct {
	ObjectKey     string
	ContentType   string
	FileSizeBytes int64
}

// ProgressFunc receives upload progress as a whole percentage, strictly
// increasing from 0 to 100.
type ProgressFunc func(percent int)

type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// compile-time check: *Client must satisfy ReadURLFetcher
var _ ReadURLFetcher = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient replaces the transport used for every request, both to
// the authority and to object storage.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestUploadTarget asks the authority for a presigned upload URL.
func (c *Client) RequestUploadTarget(ctx context.Context, req PresignRequest) (PresignResponse, error) {
	var out PresignResponse
	if err := c.postJSON(ctx, "/media/presignUpload", req, &out, mapPresignErr); err != nil {
		return PresignResponse{}, err
	}
	return out, nil
}

// UploadToTarget PUTs the file bytes directly to object storage, using
// exactly the headers the authority mandated. Cancelling ctx aborts the
// transfer with ErrAborted.
func (c *Client) UploadToTarget(ctx context.Context, putURL string, file io.Reader, size int64, requiredHeaders map[string]string, onProgress ProgressFunc) error {
	body := file
	if onProgress != nil && size > 0 {
		body = newProgressReader(file, size, onProgress)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, putURL, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.ContentLength = size
	for k, v := range requiredHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ErrAborted, ctx.Err())
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", ErrUpload, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return nil
}

// UploadMedia composes RequestUploadTarget and UploadToTarget. The PUT is
// never issued when the presign step failed, and no retry happens here;
// retry policy belongs to the caller.
func (c *Client) UploadMedia(ctx context.Context, file io.Reader, req PresignRequest, onProgress ProgressFunc) (UploadResult, error) {
	presigned, err := c.RequestUploadTarget(ctx, req)
	if err != nil {
		return UploadResult{}, err
	}

	if err := c.UploadToTarget(ctx, presigned.SignedPutURL, file, req.FileSizeBytes, presigned.RequiredHeaders, onProgress); err != nil {
		return UploadResult{}, err
	}

	contentType := presigned.RequiredHeaders["Content-Type"]
	if contentType == "" {
		contentType = req.ContentType
	}
	return UploadResult{
		ObjectKey:     presigned.ObjectKey,
		ContentType:   contentType,
		FileSizeBytes: req.FileSizeBytes,
	}, nil
}

// FinaliseUpload tells the authority the PUT completed, so the record can
// be verified and thumbnails scheduled.
func (c *Client) FinaliseUpload(ctx context.Context, familyID, objectKey string) error {
	body := struct {
		FamilyID  string `json:"familyId"`
		ObjectKey string `json:"objectKey"`
	}{FamilyID: familyID, ObjectKey: objectKey}

	return c.postJSON(ctx, "/media/finaliseUpload", body, nil, mapReadErr)
}

// RequestReadURL asks the authority for a time-limited read URL for an
// object the caller's family owns.
func (c *Client) RequestReadURL(ctx context.Context, familyID, objectKey string) (SignedRead, error) {
	body := struct {
		FamilyID  string `json:"familyId"`
		ObjectKey string `json:"objectKey"`
	}{FamilyID: familyID, ObjectKey: objectKey}

	var out SignedRead
	if err := c.postJSON(ctx, "/media/signedRead", body, &out, mapReadErr); err != nil {
		return SignedRead{}, err
	}
	return out, nil
}

// Health probes the authority's liveness endpoint. Anything but a 200,
// including a transport failure, means unhealthy.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any, mapErr func(status int, msg string) error) error {
	token, err := c.tokens(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if token == "" {
		return ErrAuth
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ErrAborted, ctx.Err())
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapErr(resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapPresignErr(status int, msg string) error {
	if status == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrAuth, msg)
	}
	return fmt.Errorf("%w: %s", ErrPresign, msg)
}

func mapReadErr(status int, msg string) error {
	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrAuth, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPermission, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	default:
		return fmt.Errorf("%w: %s", ErrPresign, msg)
	}
}

func readErrorMessage(r io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(r, 4096))
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(data))
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}

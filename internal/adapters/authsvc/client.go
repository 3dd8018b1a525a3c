// Package authsvc is the client for the external authentication service. The
// reconciler consumes only the identity and the subscription; the HTTP surface
// passes the remaining operations through. Failures come back as
// *domain.AuthError with the category's fixed user-facing message.
package authsvc

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
	log  zerolog.Logger

	mu      sync.Mutex
	subs    map[int]func(*domain.Identity)
	nextSub int
	current *domain.Identity
}

func New(base, key string, rps int, log zerolog.Logger) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
		log:  log,
		subs: map[int]func(*domain.Identity){},
	}
}

// ---- contract ----

func (c *Client) SignIn(ctx context.Context, email, password string) (domain.Identity, error) {
	var id domain.Identity
	err := c.do(ctx, http.MethodPost, "/v1/sessions", map[string]string{
		"email": email, "password": password,
	}, &id)
	if err != nil {
		return domain.Identity{}, err
	}
	c.notify(&id)
	return id, nil
}

func (c *Client) SignUp(ctx context.Context, name, email, password string) (domain.Identity, error) {
	var id domain.Identity
	err := c.do(ctx, http.MethodPost, "/v1/users", map[string]string{
		"displayName": name, "email": email, "password": password,
	}, &id)
	if err != nil {
		return domain.Identity{}, err
	}
	c.notify(&id)
	return id, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	// Session teardown is best-effort on the wire; the local session always ends.
	if err := c.do(ctx, http.MethodDelete, "/v1/sessions", nil, nil); err != nil {
		c.log.Warn().Err(err).Msg("remote sign-out failed")
	}
	c.notify(nil)
	return nil
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/v1/password-resets", map[string]string{"email": email}, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, u domain.ProfileUpdate) error {
	if err := c.do(ctx, http.MethodPatch, "/v1/profile", u, nil); err != nil {
		return err
	}
	c.mu.Lock()
	if c.current != nil && u.DisplayName != "" {
		cp := *c.current
		cp.DisplayName = u.DisplayName
		c.current = &cp
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) UpdatePassword(ctx context.Context, newPassword string) error {
	if len(newPassword) < 6 {
		return domain.NewAuthError(domain.AuthWeakPassword)
	}
	return c.do(ctx, http.MethodPut, "/v1/password", map[string]string{"password": newPassword}, nil)
}

// Subscribe registers a session-change callback. The callback fires with the
// current identity immediately when one exists, then on every change.
func (c *Client) Subscribe(onChange func(*domain.Identity)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = onChange
	current := c.current
	c.mu.Unlock()

	if current != nil {
		onChange(current)
	}
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Client) notify(id *domain.Identity) {
	c.mu.Lock()
	c.current = id
	subs := make([]func(*domain.Identity), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()
	for _, fn := range subs {
		fn(id)
	}
}

// ---- transport ----

// do performs a request with client-side rate limiting and retries on
// transient 5xx, honoring Retry-After. Auth rejections (4xx) map straight to
// their category and are never retried.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.NewAuthError(domain.AuthNetworkFailure)
	}

	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(body))
		if err != nil {
			return err
		}
		if c.key != "" {
			req.Header.Set("X-API-Key", c.key)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = domain.NewAuthError(domain.AuthNetworkFailure)
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			if out == nil {
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				return nil
			}
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return domain.NewAuthError(domain.AuthNetworkFailure)
			}
			return nil

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusBadRequest:
			resp.Body.Close()
			return domain.NewAuthError(domain.AuthInvalidEmail)

		case http.StatusUnauthorized, http.StatusForbidden:
			resp.Body.Close()
			return domain.NewAuthError(domain.AuthWrongCredentials)

		case http.StatusNotFound:
			resp.Body.Close()
			return domain.NewAuthError(domain.AuthUserNotFound)

		case http.StatusConflict:
			resp.Body.Close()
			return domain.NewAuthError(domain.AuthEmailInUse)

		case http.StatusUnprocessableEntity:
			resp.Body.Close()
			return domain.NewAuthError(domain.AuthWeakPassword)

		case http.StatusTooManyRequests:
			resp.Body.Close()
			return domain.NewAuthError(domain.AuthRateLimited)

		case http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = domain.NewAuthError(domain.AuthNetworkFailure)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			c.log.Warn().Int("status", resp.StatusCode).Str("body", strings.TrimSpace(string(b))).Msg("unexpected auth response")
			return domain.NewAuthError(domain.AuthNetworkFailure)
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles per attempt (200ms, 400ms, 800ms...) with up to +50%
// crypto/rand jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}

package peers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
)

// UserClient talks to the User service REST API.
type UserClient struct {
	baseURL  string
	identity string
	http     *http.Client
	observer CallObserver
}

// NewUserClient builds a client for baseURL. identity is the admin user id used for
// reads the User service gates on privilege.
func NewUserClient(baseURL, identity string, client *http.Client, observer CallObserver) *UserClient {
	if client == nil {
		client = NewHTTPClient(5*time.Second, "")
	}
	return &UserClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		identity: identity,
		http:     client,
		observer: observerOrNoop(observer),
	}
}

// IsAdmin asks the privilege endpoint. Any non-success answer means the requester
// could not be verified.
func (c *UserClient) IsAdmin(ctx context.Context, requesterID string) (isAdmin bool, err error) {
	started := time.Now()
	defer func() { c.observer.Observe(domain.PeerUser, "is_admin", started, err) }()

	var status domain.AdminStatus
	code, err := c.get(ctx, "/users/"+url.PathEscape(requesterID)+"/is_admin", &status)
	if err != nil {
		return false, err
	}
	if code != http.StatusOK {
		return false, domain.NotFound("User ID not found")
	}
	return status.IsAdmin, nil
}

// UserByID fetches a user record with the service identity.
func (c *UserClient) UserByID(ctx context.Context, userID string) (user *domain.User, err error) {
	started := time.Now()
	defer func() { c.observer.Observe(domain.PeerUser, "get_user", started, err) }()

	var out domain.User
	path := "/" + url.PathEscape(c.identity) + "/users/" + url.PathEscape(userID)
	code, err := c.get(ctx, path, &out)
	if err != nil {
		return nil, err
	}
	switch code {
	case http.StatusOK:
		return &out, nil
	case http.StatusNotFound:
		return nil, domain.NotFound("User not found: %s", userID)
	default:
		return nil, domain.PeerUnavailable(domain.PeerUser, fmt.Errorf("unexpected status %d", code))
	}
}

// get decodes a 200 body into out and returns the status code.
func (c *UserClient) get(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, domain.PeerUnavailable(domain.PeerUser, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, domain.PeerUnavailable(domain.PeerUser, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return 0, domain.PeerUnavailable(domain.PeerUser, fmt.Errorf("decode response: %w", err))
	}
	return resp.StatusCode, nil
}

var (
	_ port.PrivilegeSource = (*UserClient)(nil)
	_ port.UserDirectory   = (*UserClient)(nil)
)

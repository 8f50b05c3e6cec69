package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

type stubUserService struct {
	users       map[string]domain.User
	admins      map[string]bool
	bookedNames []string
	err         error

	lastRequester string
	lastDate      string
	lastMovie     string
	added         *domain.User
}

func (s *stubUserService) gate(requesterID string) error {
	s.lastRequester = requesterID
	if s.err != nil {
		return s.err
	}
	if _, ok := s.users[requesterID]; !ok {
		return domain.NewError(domain.ErrVerificationFailed, "Unable to verify user")
	}
	if !s.admins[requesterID] {
		return domain.Unauthorized()
	}
	return nil
}

func (s *stubUserService) AdminStatus(ctx context.Context, userID string) (*domain.AdminStatus, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.NotFound("User ID not found")
	}
	return &domain.AdminStatus{ID: user.ID, IsAdmin: user.IsAdmin}, nil
}

func (s *stubUserService) ListUsers(ctx context.Context, requesterID string) ([]domain.User, error) {
	if err := s.gate(requesterID); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(s.users))
	for _, id := range []string{"chris_rivers", "peter_curley"} {
		out = append(out, s.users[id])
	}
	return out, nil
}

func (s *stubUserService) GetUser(ctx context.Context, requesterID, userID string) (*domain.User, error) {
	if err := s.gate(requesterID); err != nil {
		return nil, err
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.NotFound("User ID not found")
	}
	return &user, nil
}

func (s *stubUserService) GetUserByName(ctx context.Context, requesterID, name string) (*domain.User, error) {
	if err := s.gate(requesterID); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domain.InvalidArgument("Name parameter required")
	}
	for _, user := range s.users {
		if user.Name == name {
			return &user, nil
		}
	}
	return nil, domain.NotFound("User name not found")
}

func (s *stubUserService) UsersWhoBooked(ctx context.Context, requesterID, date, movieID string) ([]string, error) {
	if err := s.gate(requesterID); err != nil {
		return nil, err
	}
	s.lastDate, s.lastMovie = date, movieID
	if len(s.bookedNames) == 0 {
		return nil, domain.NotFound("No bookings found for the given date and movie")
	}
	return s.bookedNames, nil
}

func (s *stubUserService) AddUser(ctx context.Context, requesterID, userID string, user domain.User) (*domain.User, error) {
	if err := s.gate(requesterID); err != nil {
		return nil, err
	}
	if _, ok := s.users[userID]; ok {
		return nil, domain.AlreadyExists("User ID already exists")
	}
	user.ID = userID
	s.added = &user
	return &user, nil
}

func (s *stubUserService) RenameUser(ctx context.Context, requesterID, userID, name string) (*domain.User, error) {
	if err := s.gate(requesterID); err != nil {
		return nil, err
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.NotFound("user ID not found")
	}
	user.Name = name
	return &user, nil
}

func (s *stubUserService) DeleteUser(ctx context.Context, requesterID, userID string) (*domain.User, error) {
	if err := s.gate(requesterID); err != nil {
		return nil, err
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.NotFound("user ID not found")
	}
	return &user, nil
}

func newUserRouter(service UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(service)
	router := gin.New()
	handler.RegisterPrivilegeRoute(router)
	handler.RegisterRoutes(router.Group("/:requester"))
	return router
}

func newStubUsers() *stubUserService {
	return &stubUserService{
		users: map[string]domain.User{
			"chris_rivers": {ID: "chris_rivers", Name: "Chris Rivers", IsAdmin: true, LastActive: 1360031010},
			"peter_curley": {ID: "peter_curley", Name: "Peter Curley", LastActive: 1360031222},
		},
		admins: map[string]bool{"chris_rivers": true},
	}
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error
}

func TestIsAdminEndpoint(t *testing.T) {
	router := newUserRouter(newStubUsers())

	rr := serve(router, http.MethodGet, "/users/chris_rivers/is_admin", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var status domain.AdminStatus
	if err := json.Unmarshal(rr.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.ID != "chris_rivers" || !status.IsAdmin {
		t.Fatalf("unexpected status: %+v", status)
	}

	rr = serve(router, http.MethodGet, "/users/ghost/is_admin", "")
	if rr.Code != http.StatusNotFound || decodeError(t, rr) != "User ID not found" {
		t.Fatalf("expected 404 User ID not found, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestListUsersStatusCodes(t *testing.T) {
	router := newUserRouter(newStubUsers())

	if rr := serve(router, http.MethodGet, "/chris_rivers/users/json", ""); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rr.Code)
	}
	if rr := serve(router, http.MethodGet, "/peter_curley/users/json", ""); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non admin, got %d", rr.Code)
	}
	if rr := serve(router, http.MethodGet, "/ghost/users/json", ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown requester, got %d", rr.Code)
	}
}

func TestPeerFailuresAre503(t *testing.T) {
	service := newStubUsers()
	service.err = domain.PeerUnavailable(domain.PeerBooking, errors.New("connection refused"))
	router := newUserRouter(service)

	rr := serve(router, http.MethodGet, "/chris_rivers/users/json", "")
	if rr.Code != http.StatusServiceUnavailable || decodeError(t, rr) != "Booking service unreachable" {
		t.Fatalf("expected 503 with peer message, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestUnclassifiedErrorsAre500WithoutDetails(t *testing.T) {
	service := newStubUsers()
	service.err = errors.New("mongo: connection pool cleared")
	router := newUserRouter(service)

	rr := serve(router, http.MethodGet, "/chris_rivers/users/json", "")
	if rr.Code != http.StatusInternalServerError || decodeError(t, rr) != "internal server error" {
		t.Fatalf("expected opaque 500, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestGetUserAndByName(t *testing.T) {
	router := newUserRouter(newStubUsers())

	rr := serve(router, http.MethodGet, "/chris_rivers/users/peter_curley", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var user domain.User
	if err := json.Unmarshal(rr.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.Name != "Peter Curley" || user.LastActive != 1360031222 {
		t.Fatalf("unexpected user: %+v", user)
	}

	rr = serve(router, http.MethodGet, "/chris_rivers/users/by_name?name=Chris%20Rivers", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 by name, got %d", rr.Code)
	}

	rr = serve(router, http.MethodGet, "/chris_rivers/users/by_name", "")
	if rr.Code != http.StatusBadRequest || decodeError(t, rr) != "Name parameter required" {
		t.Fatalf("expected 400 without name, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestUsersWhoBookedReadsBodyOrQuery(t *testing.T) {
	service := newStubUsers()
	service.bookedNames = []string{"Garret Heaton"}
	router := newUserRouter(service)

	rr := serve(router, http.MethodPost, "/chris_rivers/users/bookings", `{"date":"20151201","movie":"267eedb8"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rr.Code, rr.Body.String())
	}
	var resp BookedUsersResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0] != "Garret Heaton" {
		t.Fatalf("unexpected users: %v", resp.Users)
	}
	if service.lastDate != "20151201" || service.lastMovie != "267eedb8" {
		t.Fatalf("body not forwarded: %q %q", service.lastDate, service.lastMovie)
	}

	rr = serve(router, http.MethodGet, "/chris_rivers/users/bookings?date=20151202&movie=a8034f44", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for query form, got %d", rr.Code)
	}
	if service.lastDate != "20151202" || service.lastMovie != "a8034f44" {
		t.Fatalf("query not forwarded: %q %q", service.lastDate, service.lastMovie)
	}

	rr = serve(router, http.MethodPost, "/chris_rivers/users/bookings", `{"date":`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rr.Code)
	}
}

func TestUsersWhoBookedNobody(t *testing.T) {
	router := newUserRouter(newStubUsers())

	rr := serve(router, http.MethodPost, "/chris_rivers/users/bookings", `{"date":"20151201","movie":"x"}`)
	if rr.Code != http.StatusNotFound || decodeError(t, rr) != "No bookings found for the given date and movie" {
		t.Fatalf("expected 404, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestAddUser(t *testing.T) {
	service := newStubUsers()
	router := newUserRouter(service)

	rr := serve(router, http.MethodPost, "/chris_rivers/users/dwight_schrute", `{"name":"Dwight Schrute","is_admin":false,"last_active":1360031325}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rr.Code, rr.Body.String())
	}
	var msg MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &msg); err != nil || msg.Message != "User added" {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
	if service.added == nil || service.added.ID != "dwight_schrute" || service.added.LastActive != 1360031325 {
		t.Fatalf("unexpected added user: %+v", service.added)
	}

	rr = serve(router, http.MethodPost, "/chris_rivers/users/peter_curley", `{"name":"Peter"}`)
	if rr.Code != http.StatusBadRequest || decodeError(t, rr) != "User ID already exists" {
		t.Fatalf("expected 400 duplicate, got %d %s", rr.Code, rr.Body.String())
	}

	rr = serve(router, http.MethodPost, "/chris_rivers/users/someone", `not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad json, got %d", rr.Code)
	}
}

func TestRenameAndDeleteUser(t *testing.T) {
	router := newUserRouter(newStubUsers())

	rr := serve(router, http.MethodPut, "/chris_rivers/users/peter_curley/Pete", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on rename, got %d", rr.Code)
	}
	var user domain.User
	if err := json.Unmarshal(rr.Body.Bytes(), &user); err != nil || user.Name != "Pete" {
		t.Fatalf("unexpected rename body %s", rr.Body.String())
	}

	if rr := serve(router, http.MethodPut, "/chris_rivers/users/ghost/Nobody", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 renaming unknown user, got %d", rr.Code)
	}

	if rr := serve(router, http.MethodDelete, "/chris_rivers/users/peter_curley", ""); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", rr.Code)
	}
	if rr := serve(router, http.MethodDelete, "/peter_curley/users/chris_rivers", ""); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non admin delete, got %d", rr.Code)
	}
}

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arklim/cinema-platform/internal/core/domain"
)

// UserService is the usecase surface behind the User REST API.
type UserService interface {
	AdminStatus(ctx context.Context, userID string) (*domain.AdminStatus, error)
	ListUsers(ctx context.Context, requesterID string) ([]domain.User, error)
	GetUser(ctx context.Context, requesterID, userID string) (*domain.User, error)
	GetUserByName(ctx context.Context, requesterID, name string) (*domain.User, error)
	UsersWhoBooked(ctx context.Context, requesterID, date, movieID string) ([]string, error)
	AddUser(ctx context.Context, requesterID, userID string, user domain.User) (*domain.User, error)
	RenameUser(ctx context.Context, requesterID, userID, name string) (*domain.User, error)
	DeleteUser(ctx context.Context, requesterID, userID string) (*domain.User, error)
}

// UserHandler serves the User REST API.
type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterPrivilegeRoute mounts the unauthenticated privilege lookup peers call.
func (h *UserHandler) RegisterPrivilegeRoute(r gin.IRoutes) {
	r.GET("/users/:id/is_admin", h.IsAdmin)
}

// RegisterRoutes mounts the requester-scoped routes. The group path must bind :requester.
func (h *UserHandler) RegisterRoutes(group gin.IRoutes) {
	group.GET("/users/json", h.ListUsers)
	group.GET("/users/by_name", h.GetUserByName)
	group.GET("/users/bookings", h.UsersWhoBooked)
	group.POST("/users/bookings", h.UsersWhoBooked)
	group.GET("/users/:id", h.GetUser)
	group.POST("/users/:id", h.AddUser)
	group.PUT("/users/:id/:name", h.RenameUser)
	group.DELETE("/users/:id", h.DeleteUser)
}

func (h *UserHandler) IsAdmin(c *gin.Context) {
	status, err := h.users.AdminStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context(), c.Param("requester"))
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("requester"), c.Param("id"))
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUserByName(c *gin.Context) {
	user, err := h.users.GetUserByName(c.Request.Context(), c.Param("requester"), c.Query("name"))
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UsersWhoBooked reads {date, movie} from the JSON body, falling back to the query string.
func (h *UserHandler) UsersWhoBooked(c *gin.Context) {
	var query BookingQuery
	if err := c.ShouldBindJSON(&query); err != nil && !errors.Is(err, io.EOF) {
		RespondWithDomainError(c, domain.InvalidArgument("invalid request body"))
		return
	}
	if query.Date == "" {
		query.Date = c.Query("date")
	}
	if query.Movie == "" {
		query.Movie = c.Query("movie")
	}

	names, err := h.users.UsersWhoBooked(c.Request.Context(), c.Param("requester"), query.Date, query.Movie)
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, BookedUsersResponse{Users: names})
}

func (h *UserHandler) AddUser(c *gin.Context) {
	var payload UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondWithDomainError(c, domain.InvalidArgument("invalid request body"))
		return
	}

	user := domain.User{ID: payload.ID, Name: payload.Name, IsAdmin: payload.IsAdmin, LastActive: payload.LastActive}
	if _, err := h.users.AddUser(c.Request.Context(), c.Param("requester"), c.Param("id"), user); err != nil {
		RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "User added"})
}

func (h *UserHandler) RenameUser(c *gin.Context) {
	user, err := h.users.RenameUser(c.Request.Context(), c.Param("requester"), c.Param("id"), c.Param("name"))
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, err := h.users.DeleteUser(c.Request.Context(), c.Param("requester"), c.Param("id"))
	if err != nil {
		RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

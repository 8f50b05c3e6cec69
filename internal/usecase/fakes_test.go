package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
	"github.com/arklim/cinema-platform/internal/repository"
)

type fakePrivilegeSource struct {
	mu     sync.Mutex
	admins map[string]bool
	err    error
	calls  int
	delay  time.Duration
}

func newFakePrivilegeSource(admins map[string]bool) *fakePrivilegeSource {
	return &fakePrivilegeSource{admins: admins}
}

func (f *fakePrivilegeSource) IsAdmin(_ context.Context, requesterID string) (bool, error) {
	f.mu.Lock()
	f.calls++
	delay := f.delay
	err := f.err
	isAdmin, ok := f.admins[requesterID]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.NotFound("User ID not found")
	}
	return isAdmin, nil
}

func (f *fakePrivilegeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCacheMetrics struct {
	mu        sync.Mutex
	hits      int
	misses    int
	refreshes int
	failures  map[string]int
	evictions int
}

func (m *fakeCacheMetrics) IncHit()     { m.mu.Lock(); m.hits++; m.mu.Unlock() }
func (m *fakeCacheMetrics) IncMiss()    { m.mu.Lock(); m.misses++; m.mu.Unlock() }
func (m *fakeCacheMetrics) IncRefresh() { m.mu.Lock(); m.refreshes++; m.mu.Unlock() }
func (m *fakeCacheMetrics) IncEviction() {
	m.mu.Lock()
	m.evictions++
	m.mu.Unlock()
}
func (m *fakeCacheMetrics) IncRefreshFailure(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures == nil {
		m.failures = make(map[string]int)
	}
	m.failures[kind]++
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies []domain.Movie
	writes int
}

func (r *fakeMovieRepo) List(context.Context) ([]domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Movie{}, r.movies...), nil
}

func (r *fakeMovieRepo) GetByID(_ context.Context, id string) (*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movies {
		if m.ID == id {
			movie := m
			return &movie, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMovieRepo) GetByTitle(_ context.Context, title string) (*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movies {
		if m.Title == title {
			movie := m
			return &movie, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMovieRepo) Create(_ context.Context, movie domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.movies {
		if m.ID == movie.ID {
			return repository.ErrAlreadyExists
		}
	}
	r.writes++
	r.movies = append(r.movies, movie)
	return nil
}

func (r *fakeMovieRepo) UpdateRating(_ context.Context, id string, rating float64) (*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.movies {
		if r.movies[i].ID == id {
			r.writes++
			r.movies[i].Rating = rating
			movie := r.movies[i]
			return &movie, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMovieRepo) Delete(_ context.Context, id string) (*domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.movies {
		if m.ID == id {
			r.writes++
			r.movies = append(r.movies[:i], r.movies[i+1:]...)
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeUserRepo struct {
	users  []domain.User
	writes int
}

func (r *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	return append([]domain.User{}, r.users...), nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.User) error {
	for _, u := range r.users {
		if u.ID == user.ID {
			return repository.ErrAlreadyExists
		}
	}
	r.writes++
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) Rename(_ context.Context, id, name string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			r.writes++
			r.users[i].Name = name
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	for i, u := range r.users {
		if u.ID == id {
			r.writes++
			r.users = append(r.users[:i], r.users[i+1:]...)
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeScheduleRepo struct {
	mu      sync.Mutex
	entries []domain.ScheduleEntry
	writes  int
}

func (r *fakeScheduleRepo) find(date string) int {
	for i, e := range r.entries {
		if e.Date == date {
			return i
		}
	}
	return -1
}

func (r *fakeScheduleRepo) List(context.Context) ([]domain.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ScheduleEntry{}, r.entries...), nil
}

func (r *fakeScheduleRepo) GetByDate(_ context.Context, date string) (*domain.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.find(date); i >= 0 {
		entry := domain.ScheduleEntry{Date: date, Movies: append([]string{}, r.entries[i].Movies...)}
		return &entry, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeScheduleRepo) DatesForMovie(_ context.Context, movieID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var dates []string
	for _, e := range r.entries {
		if e.Contains(movieID) {
			dates = append(dates, e.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func (r *fakeScheduleRepo) Create(_ context.Context, entry domain.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(entry.Date) >= 0 {
		return repository.ErrAlreadyExists
	}
	r.writes++
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeScheduleRepo) AddMovies(_ context.Context, date string, movieIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(date)
	if i < 0 {
		r.writes++
		r.entries = append(r.entries, domain.ScheduleEntry{Date: date, Movies: append([]string{}, movieIDs...)})
		return nil
	}
	for _, id := range movieIDs {
		if r.entries[i].Contains(id) {
			return repository.ErrAlreadyExists
		}
	}
	r.writes++
	r.entries[i].Movies = append(r.entries[i].Movies, movieIDs...)
	return nil
}

func (r *fakeScheduleRepo) DeleteDate(_ context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(date)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.writes++
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return nil
}

func (r *fakeScheduleRepo) RemoveMovies(_ context.Context, date string, movieIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(date)
	if i < 0 {
		return repository.ErrNotFound
	}
	drop := make(map[string]struct{}, len(movieIDs))
	for _, id := range movieIDs {
		drop[id] = struct{}{}
	}
	kept := make([]string, 0, len(r.entries[i].Movies))
	for _, id := range r.entries[i].Movies {
		if _, ok := drop[id]; !ok {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(r.entries[i].Movies) {
		return repository.ErrItemNotFound
	}
	r.writes++
	r.entries[i].Movies = kept
	return nil
}

type fakeBookingRepo struct {
	bookings []domain.Booking
	writes   int
}

func (r *fakeBookingRepo) find(userID string) int {
	for i, b := range r.bookings {
		if b.UserID == userID {
			return i
		}
	}
	return -1
}

func (r *fakeBookingRepo) List(context.Context) ([]domain.Booking, error) {
	return append([]domain.Booking{}, r.bookings...), nil
}

func (r *fakeBookingRepo) GetByUser(_ context.Context, userID string) (*domain.Booking, error) {
	if i := r.find(userID); i >= 0 {
		b := r.bookings[i]
		return &b, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBookingRepo) AddMovie(_ context.Context, userID, date, movieID string) (*domain.Booking, error) {
	i := r.find(userID)
	if i < 0 {
		r.writes++
		r.bookings = append(r.bookings, domain.Booking{UserID: userID, Dates: []domain.BookingDate{{Date: date, Movies: []string{movieID}}}})
		b := r.bookings[len(r.bookings)-1]
		return &b, nil
	}
	if r.bookings[i].Has(date, movieID) {
		return nil, repository.ErrAlreadyExists
	}
	r.writes++
	for j := range r.bookings[i].Dates {
		if r.bookings[i].Dates[j].Date == date {
			r.bookings[i].Dates[j].Movies = append(r.bookings[i].Dates[j].Movies, movieID)
			b := r.bookings[i]
			return &b, nil
		}
	}
	r.bookings[i].Dates = append(r.bookings[i].Dates, domain.BookingDate{Date: date, Movies: []string{movieID}})
	b := r.bookings[i]
	return &b, nil
}

func (r *fakeBookingRepo) RemoveMovie(_ context.Context, userID, date, movieID string) (*domain.Booking, error) {
	i := r.find(userID)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	if !r.bookings[i].HasDate(date) {
		return nil, repository.ErrDateNotFound
	}
	if !r.bookings[i].Has(date, movieID) {
		return nil, repository.ErrItemNotFound
	}
	r.writes++
	for j := range r.bookings[i].Dates {
		d := &r.bookings[i].Dates[j]
		if d.Date != date {
			continue
		}
		kept := d.Movies[:0:0]
		for _, m := range d.Movies {
			if m != movieID {
				kept = append(kept, m)
			}
		}
		d.Movies = kept
	}
	b := r.bookings[i]
	return &b, nil
}

func (r *fakeBookingRepo) DeleteByUser(_ context.Context, userID string) error {
	i := r.find(userID)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.writes++
	r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
	return nil
}

type fakeMovieCatalog struct {
	mu     sync.Mutex
	movies map[string]domain.Movie
	err    error
	calls  int
}

func (c *fakeMovieCatalog) MovieByID(_ context.Context, _ string, movieID string) (*domain.Movie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	m, ok := c.movies[movieID]
	if !ok {
		return nil, domain.NotFound("Movie not found with id: %s", movieID)
	}
	return &m, nil
}

type fakeScheduleCalendar struct {
	schedule map[string][]string
	err      error
}

func (c *fakeScheduleCalendar) MovieIDsByDate(_ context.Context, _ string, date string) ([]string, error) {
	if c.err != nil {
		return nil, c.err
	}
	ids, ok := c.schedule[date]
	if !ok {
		return nil, domain.NewError(domain.ErrMovieNotScheduled, domain.DateNotScheduledMessage)
	}
	return ids, nil
}

type fakeUserDirectory struct {
	users map[string]domain.User
	err   error
}

func (d *fakeUserDirectory) UserByID(_ context.Context, userID string) (*domain.User, error) {
	if d.err != nil {
		return nil, d.err
	}
	u, ok := d.users[userID]
	if !ok {
		return nil, domain.NotFound("User ID not found")
	}
	return &u, nil
}

type fakeBookingLedger struct {
	bookings []port.UserBookings
	err      error
}

func (l *fakeBookingLedger) BookingsWithUsers(context.Context, string) ([]port.UserBookings, error) {
	return l.bookings, l.err
}

type fakeEventPublisher struct {
	mu        sync.Mutex
	movies    []domain.MovieChangedEvent
	users     []domain.UserChangedEvent
	schedules []domain.ScheduleChangedEvent
	bookings  []domain.BookingChangedEvent
}

func (p *fakeEventPublisher) PublishMovieChanged(_ context.Context, e domain.MovieChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.movies = append(p.movies, e)
	return nil
}

func (p *fakeEventPublisher) PublishUserChanged(_ context.Context, e domain.UserChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users = append(p.users, e)
	return nil
}

func (p *fakeEventPublisher) PublishScheduleChanged(_ context.Context, e domain.ScheduleChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.schedules = append(p.schedules, e)
	return nil
}

func (p *fakeEventPublisher) PublishBookingChanged(_ context.Context, e domain.BookingChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bookings = append(p.bookings, e)
	return nil
}

// testAdmins is the privilege table shared by service tests.
var testAdmins = map[string]bool{
	"chris_rivers": true,
	"peter_curley": false,
}

func newTestChecker() *AdminChecker {
	checker, err := NewAdminChecker(newFakePrivilegeSource(testAdmins), AdminCheckOptions{TTL: time.Minute})
	if err != nil {
		panic(err)
	}
	return checker
}

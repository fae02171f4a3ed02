package celebrate

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStore keeps the marker in a browser cookie. The value is the first
// visit time in epoch milliseconds.
type CookieStore struct {
	Request *http.Request
	Writer  http.ResponseWriter
	Secure  bool
}

// Marked implements MarkerStore.
func (s CookieStore) Marked() (bool, error) {
	if s.Request == nil {
		return false, errors.New("cookie store has no request")
	}
	c, err := s.Request.Cookie(MarkerName)
	if errors.Is(err, http.ErrNoCookie) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return c.Value != "", nil
}

// Mark implements MarkerStore.
func (s CookieStore) Mark(at time.Time) error {
	if s.Writer == nil {
		return errors.New("cookie store has no response writer")
	}
	http.SetCookie(s.Writer, &http.Cookie{
		Name:     MarkerName,
		Value:    strconv.FormatInt(at.UnixMilli(), 10),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

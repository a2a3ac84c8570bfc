package sessions

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "storefront-admin-session"

	adminUserSessionKey = "adminUser"
)

// SessionStore tracks the logged in admin user across requests. Nothing in
// the route layer consults it to gate access; the admin SPA only uses it to
// decide whether to show the login screen.
type SessionStore interface {
	GetAdminUser(r *http.Request) string
	SetAdminUser(w http.ResponseWriter, r *http.Request, username string) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(7 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) GetAdminUser(r *http.Request) string {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		return ""
	}
	if username, ok := session.Values[adminUserSessionKey].(string); ok {
		return username
	}
	return ""
}

func (c *CookieSessionStore) SetAdminUser(w http.ResponseWriter, r *http.Request, username string) error {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		session, _ = c.store.New(r, sessionCookieName)
	}
	session.Values[adminUserSessionKey] = username
	return session.Save(r, w)
}

func (c *CookieSessionStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		return err
	}
	delete(session.Values, adminUserSessionKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

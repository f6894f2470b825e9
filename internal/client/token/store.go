// Package token persists the backend access token between runs. It is
// the client-side counterpart of the web app's token cookie: one value,
// a 7-day lifetime, a single writer, and reads that treat an expired
// entry as absent.
package token

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/common"
)

// record is the on-disk shape of the stored credential.
type record struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Store is a file-backed token store. All mutation goes through Save
// and Clear; both replace the stored state atomically with respect to
// concurrent Token reads.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewStore returns a Store over dir/token.json.
func NewStore(dir string) *Store {
	return &Store{
		path: filepath.Join(dir, common.TokenFileName),
		now:  time.Now,
	}
}

// Token returns the stored access token, or false when none is stored
// or the stored one has expired. An expired entry is removed on read.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil || r.AccessToken == "" {
		return "", false
	}
	if !r.ExpiresAt.IsZero() && s.now().After(r.ExpiresAt) {
		_ = os.Remove(s.path)
		return "", false
	}
	return r.AccessToken, true
}

// Save stores the token with the cookie-equivalent 7-day expiry. When
// the token is a JWT whose exp claim comes sooner, the claim wins so
// the client does not present a token the server already rejects.
func (s *Store) Save(accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expires := s.now().Add(common.TokenTTLDays * 24 * time.Hour)
	if claimExp, ok := jwtExpiry(accessToken); ok && claimExp.Before(expires) {
		expires = claimExp
	}

	data, err := json.Marshal(record{AccessToken: accessToken, ExpiresAt: expires})
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the stored token. Clearing an empty store is not an
// error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// jwtExpiry extracts the exp claim without verifying the signature;
// the token stays opaque otherwise and verification is the server's
// job.
func jwtExpiry(tok string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

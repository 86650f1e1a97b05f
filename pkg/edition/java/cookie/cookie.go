// Package cookie stores the cookies a server asks the client to keep.
//
// Servers store cookies on a client with the cookie store packet (1.20.5+)
// and request them back later, typically after transferring the client to
// another server. Cookies live in memory only and expire after a TTL.
package cookie

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"

	cpacket "github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/packet/cookie"
)

// DefaultTTL is the lifetime of a cookie if the Jar was created without one.
const DefaultTTL = 24 * time.Hour

var (
	ErrEmptyKey        = errors.New("empty cookie key")
	ErrPayloadTooLarge = fmt.Errorf("cookie payload exceeds %d bytes", cpacket.MaxPayloadSize)
)

// Jar is an in-memory cookie store keyed by the cookie identifier.
// The zero value is not usable, use NewJar.
type Jar struct {
	cache *ttlcache.Cache[string, []byte]
}

// NewJar returns an empty Jar. A ttl <= 0 uses DefaultTTL.
func NewJar(ttl time.Duration) *Jar {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Jar{cache: ttlcache.New[string, []byte](
		ttlcache.WithTTL[string, []byte](ttl),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)}
}

// GetCookie returns the payload stored for key.
func (j *Jar) GetCookie(key string) ([]byte, bool) {
	item := j.cache.Get(normalize(key))
	if item == nil || item.IsExpired() {
		return nil, false
	}
	return item.Value(), true
}

// SetCookie stores payload under key, replacing an existing cookie.
func (j *Jar) SetCookie(key string, payload []byte) {
	_ = j.Store(key, payload)
}

// Store is SetCookie returning why a cookie was rejected.
func (j *Jar) Store(key string, payload []byte) error {
	key = normalize(key)
	if key == "" {
		return ErrEmptyKey
	}
	if len(payload) > cpacket.MaxPayloadSize {
		return ErrPayloadTooLarge
	}
	j.cache.Set(key, append([]byte(nil), payload...), ttlcache.DefaultTTL)
	return nil
}

// DeleteCookie removes the cookie stored under key.
func (j *Jar) DeleteCookie(key string) {
	j.cache.Delete(normalize(key))
}

// Len returns the number of cookies, including expired ones not yet evicted.
func (j *Jar) Len() int {
	return j.cache.Len()
}

// DeleteExpired evicts all expired cookies.
func (j *Jar) DeleteExpired() {
	j.cache.DeleteExpired()
}

// normalize adds the default namespace to unqualified keys.
func normalize(key string) string {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, ":") {
		return key
	}
	return "minecraft:" + key
}

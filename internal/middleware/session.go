package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const sessionCookieName = "rawnaq_session"

// CartLine is one cart entry persisted inside the signed session cookie.
type CartLine struct {
	ProductID int64 `json:"p"`
	Qty       int   `json:"q"`
}

// SessionData is the per-visitor state the storefront keeps: display locale,
// cart lines, wishlist membership, and the CSRF token. It travels in a signed
// cookie, so it must stay small.
type SessionData struct {
	ID        string     `json:"id"`
	Locale    string     `json:"locale,omitempty"`
	Cart      []CartLine `json:"cart,omitempty"`
	Wishlist  []int64    `json:"wish,omitempty"`
	CSRFToken string     `json:"csrf,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	// dirty flags the session for rewriting at end of request
	dirty bool
}

var (
	sessionSignKey []byte
	sessionSecure  bool
)

// ConfigureSessions sets the cookie signing key and the Secure attribute.
// An empty key falls back to a process-ephemeral one, suitable only for
// development.
func ConfigureSessions(key string, secure bool) {
	if key != "" {
		sessionSignKey = []byte(key)
	} else {
		sessionSignKey = make([]byte, 32)
		_, _ = rand.Read(sessionSignKey)
	}
	sessionSecure = secure
}

func init() {
	ConfigureSessions("", false)
}

// Session loads or initializes a session and stores it in request context.
// The cookie is written just before the first response byte when the session
// changed during the request.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd, fromCookie := readSessionCookie(r)
		if sd.ID == "" {
			sd.ID = randID()
			sd.CreatedAt = time.Now().UTC()
			sd.UpdatedAt = sd.CreatedAt
			sd.CSRFToken = newCSRFToken()
			sd.dirty = true
		}
		ctx := context.WithValue(r.Context(), ctxKeySession, sd)
		rw := NewResponseRecorder(w)
		rw.SetBeforeWrite(func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				writeSessionCookie(w, sd)
			}
		})
		next.ServeHTTP(rw, r.WithContext(ctx))
		// nothing written yet (HEAD, 204): persist the cookie now
		if !rw.wrote && (sd.dirty || !fromCookie) {
			writeSessionCookie(w, sd)
		}
	})
}

// GetSession returns session data from context.
func GetSession(r *http.Request) *SessionData {
	if v := r.Context().Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing at end of request.
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// CartCount sums the quantities across cart lines.
func (s *SessionData) CartCount() int {
	total := 0
	for _, line := range s.Cart {
		total += line.Qty
	}
	return total
}

// WishlistCount returns the number of wishlisted products.
func (s *SessionData) WishlistCount() int { return len(s.Wishlist) }

// AddToCart adds qty of a product, merging into an existing line.
func (s *SessionData) AddToCart(productID int64, qty int) {
	if qty <= 0 {
		qty = 1
	}
	for i := range s.Cart {
		if s.Cart[i].ProductID == productID {
			s.Cart[i].Qty += qty
			s.MarkDirty()
			return
		}
	}
	s.Cart = append(s.Cart, CartLine{ProductID: productID, Qty: qty})
	s.MarkDirty()
}

// RemoveFromCart drops a product's line entirely. It reports whether a line
// was removed.
func (s *SessionData) RemoveFromCart(productID int64) bool {
	for i := range s.Cart {
		if s.Cart[i].ProductID == productID {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			s.MarkDirty()
			return true
		}
	}
	return false
}

// ToggleWishlist flips a product's wishlist membership and reports the new
// state: true when the product is now wishlisted.
func (s *SessionData) ToggleWishlist(productID int64) bool {
	for i, id := range s.Wishlist {
		if id == productID {
			s.Wishlist = append(s.Wishlist[:i], s.Wishlist[i+1:]...)
			s.MarkDirty()
			return false
		}
	}
	s.Wishlist = append(s.Wishlist, productID)
	s.MarkDirty()
	return true
}

// InWishlist reports wishlist membership.
func (s *SessionData) InWishlist(productID int64) bool {
	for _, id := range s.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// readSessionCookie parses and verifies the session cookie.
func readSessionCookie(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return &SessionData{}, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return &SessionData{}, false
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return &SessionData{}, false
	}
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(payload)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := json.Unmarshal(payload, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

func writeSessionCookie(w http.ResponseWriter, sd *SessionData) {
	b, _ := json.Marshal(sd)
	payload := base64.RawURLEncoding.EncodeToString(b)
	mac := hmac.New(sha256.New, sessionSignKey)
	mac.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    payload + "." + sig,
		Path:     "/",
		HttpOnly: true,
		Secure:   sessionSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

func randID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

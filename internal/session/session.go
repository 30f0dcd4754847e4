// Package session supplies the authenticated identity that gates every
// store operation. The identity itself is issued by the external auth
// provider; this layer only validates tokens and tracks the current user.
package session

import (
	"errors"
	"sync"

	"github.com/atozgarments/garmenttrack/pkg/auth"
)

// ErrAuthRequired is returned when a write is attempted without a signed-in
// identity. No remote call is made in that case.
var ErrAuthRequired = errors.New("authentication required")

// Identity is the signed-in user context.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// Provider tracks the current identity. Ready reports whether the initial
// identity check has completed; until then no store calls should be issued.
type Provider struct {
	mu      sync.RWMutex
	tokens  *auth.TokenManager
	current *Identity
	ready   bool
}

func NewProvider(tokens *auth.TokenManager) *Provider {
	return &Provider{tokens: tokens}
}

// Authenticate validates an access token and installs the identity it
// carries. The provider becomes ready whether or not validation succeeds:
// a rejected token is a completed identity check with no user.
func (p *Provider) Authenticate(token string) (*Identity, error) {
	claims, err := p.tokens.ValidateAccessToken(token)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.ready = true

	if err != nil {
		p.current = nil
		return nil, err
	}

	p.current = &Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
	}
	return p.current, nil
}

// Clear signs the current identity out. The provider stays ready.
func (p *Provider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = nil
	p.ready = true
}

// Ready reports whether the initial identity check has completed.
func (p *Provider) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ready
}

// Current returns the signed-in identity, or nil.
func (p *Provider) Current() *Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Require returns the signed-in identity or ErrAuthRequired.
func (p *Provider) Require() (*Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return nil, ErrAuthRequired
	}
	return p.current, nil
}

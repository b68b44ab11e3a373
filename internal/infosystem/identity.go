package infosystem

import (
	"context"
	"errors"
	"sync"

	"github.com/desertthunder/infosys/internal/metrics"
	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/shared"
)

// Account fields consulted for the signed-in user's identity.
const (
	AccountFieldUserID   = "hatchet_preference_user_id"
	AccountFieldUserName = "hatchet_preference_user_name"
)

// IdentityStore holds the signed-in user's Hatchet ID. Empty means unknown.
type IdentityStore interface {
	Get() string
	Set(id string)
}

// IdentityCache is an in-memory [IdentityStore] safe for concurrent use.
type IdentityCache struct {
	mu sync.RWMutex
	id string
}

func NewIdentityCache() *IdentityCache { return &IdentityCache{} }

func (c *IdentityCache) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

func (c *IdentityCache) Set(id string) {
	c.mu.Lock()
	c.id = id
	c.mu.Unlock()
}

// resolveIdentity returns the signed-in user's ID, trying the cache, then the account store,
// then a users lookup by the stored user name. An empty result with a nil error means no
// source knew the identity.
//
// Concurrent callers may both perform the lookup; the last write wins.
func (e *Engine) resolveIdentity(ctx context.Context) (string, error) {
	if id := e.identity.Get(); id != "" {
		metrics.IdentityLookups.WithLabelValues("cache").Inc()
		return id, nil
	}
	if e.accounts == nil {
		return "", nil
	}

	id, err := e.accounts.GetAccountField(AccountFieldUserID)
	switch {
	case err == nil && id != "":
		metrics.IdentityLookups.WithLabelValues("account").Inc()
		e.identity.Set(id)
		return id, nil
	case err != nil && !errors.Is(err, shared.ErrNotFound):
		return "", err
	}

	name, err := e.accounts.GetAccountField(AccountFieldUserName)
	if errors.Is(err, shared.ErrNotFound) || (err == nil && name == "") {
		return "", nil
	} else if err != nil {
		return "", err
	}

	c := &call{ctx: ctx, baseURL: e.baseURL, transport: e.transport, logger: e.logger}
	users, err := get[services.Users](c, services.KindUsers, services.NewParams(services.ParamName, name))
	if err != nil {
		return "", err
	}
	metrics.IdentityLookups.WithLabelValues("lookup").Inc()
	if len(users.Users) == 0 || users.Users[0].ID == "" {
		e.logger.Warn("no user found for account name", "name", name)
		return "", nil
	}

	id = users.Users[0].ID
	e.identity.Set(id)
	if err := e.accounts.SetAccountField(AccountFieldUserID, id); err != nil {
		e.logger.Warn("failed to store user id", "id", id, "error", err)
	}
	e.logger.Debug("resolved user identity", "name", name, "id", id)
	return id, nil
}

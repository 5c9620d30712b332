// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access decides whether a request may run a controller action.
//
// A Gate works in one of two modes. In bearer mode every action outside the
// optional list requires an "Authorization: Bearer" credential. In session
// mode an ordered rule list is evaluated against the session principal:
// authenticated users may run everything and guests only the optional
// actions. Fine-grained per-resource checks are delegated to an
// AccessChecker through Check.
package access

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
	"github.com/MKhiriev/go-rest-kit/models"
)

// Role is matched against the request principal.
type Role string

const (
	// RoleAuthenticated matches any logged-in principal.
	RoleAuthenticated Role = "@"
	// RoleGuest matches anonymous callers.
	RoleGuest Role = "?"
)

// BearerChallenge is the WWW-Authenticate value sent with bearer denials.
const BearerChallenge = `Bearer realm="api"`

// Rule is a single access rule. An empty Actions list matches every action
// and an empty Roles list matches every principal.
type Rule struct {
	Actions []string
	Allow   bool
	Roles   []Role
}

func (r Rule) matches(action string, id models.Identity) bool {
	if len(r.Actions) > 0 && !slices.Contains(r.Actions, action) {
		return false
	}
	if len(r.Roles) == 0 {
		return true
	}
	for _, role := range r.Roles {
		switch role {
		case RoleAuthenticated:
			if !id.IsGuest() {
				return true
			}
		case RoleGuest:
			if id.IsGuest() {
				return true
			}
		}
	}
	return false
}

// Options configures a Gate.
type Options struct {
	// EnableBearerAuth selects bearer mode instead of session mode.
	EnableBearerAuth bool

	// Optional lists actions that guests may run.
	Optional []string
}

// Gate authorizes controller actions.
type Gate struct {
	opts    Options
	bearer  BearerAuthenticator
	session SessionAuthenticator
	rules   []Rule
}

// NewGate builds a gate. bearer is required in bearer mode, session in
// session mode; a nil session authenticator treats every caller as a guest.
func NewGate(opts Options, bearer BearerAuthenticator, session SessionAuthenticator) *Gate {
	g := &Gate{opts: opts, bearer: bearer, session: session}
	if !opts.EnableBearerAuth {
		g.rules = []Rule{{Allow: true, Roles: []Role{RoleAuthenticated}}}
		if len(opts.Optional) > 0 {
			g.rules = append(g.rules, Rule{
				Actions: slices.Clone(opts.Optional),
				Allow:   true,
				Roles:   []Role{RoleGuest},
			})
		}
	}
	return g
}

// BearerMode reports whether the gate authenticates bearer credentials.
func (g *Gate) BearerMode() bool {
	return g.opts.EnableBearerAuth
}

// IsOptional reports whether guests may run action.
func (g *Gate) IsOptional(action string) bool {
	return slices.Contains(g.opts.Optional, action)
}

// Authorize runs the authentication and rule checks for action. On success
// it returns r with the resolved principal stored in its context.
func (g *Gate) Authorize(r *http.Request, action string) (*http.Request, error) {
	var (
		id  models.Identity
		err error
	)
	if g.opts.EnableBearerAuth {
		id, err = g.authorizeBearer(r, action)
	} else {
		id, err = g.authorizeSession(r, action)
	}
	if err != nil {
		return r, err
	}

	return r.WithContext(utils.WithIdentity(r.Context(), id)), nil
}

func (g *Gate) authorizeBearer(r *http.Request, action string) (models.Identity, error) {
	if g.IsOptional(action) {
		return models.Identity{}, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return models.Identity{}, fault.Unauthorized("")
	}
	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return models.Identity{}, fault.Unauthorized("").WithErr(err)
	}
	if g.bearer == nil {
		return models.Identity{}, fault.Internal(errors.New("bearer authenticator is not configured"))
	}

	id, err := g.bearer.AuthenticateBearer(r.Context(), token)
	if err != nil {
		return models.Identity{}, fault.Unauthorized("").WithErr(err)
	}
	if id.IsGuest() {
		return models.Identity{}, fault.Unauthorized("")
	}
	return id, nil
}

func (g *Gate) authorizeSession(r *http.Request, action string) (models.Identity, error) {
	var id models.Identity
	if g.session != nil {
		if resolved, err := g.session.AuthenticateSession(r); err == nil {
			id = resolved
		}
	}

	for _, rule := range g.rules {
		if !rule.matches(action, id) {
			continue
		}
		if rule.Allow {
			return id, nil
		}
		break
	}

	if id.IsGuest() {
		return id, fault.Unauthorized("Login Required")
	}
	return id, fault.Forbidden("")
}

// Check runs checker for action. Errors that are not faults are reported
// as Forbidden.
func Check(ctx context.Context, checker AccessChecker, action, id string, resource any, params map[string]string) error {
	if checker == nil {
		checker = AllowAll
	}

	err := checker.CheckAccess(ctx, action, id, resource, params)
	if err == nil {
		return nil
	}

	var f *fault.Fault
	if errors.As(err, &f) {
		return err
	}
	return fault.Forbidden("").WithErr(fmt.Errorf("access check for %q: %w", action, err))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-rest-kit/internal/access"
	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/internal/format"
	"github.com/MKhiriev/go-rest-kit/internal/logger"
	"github.com/MKhiriev/go-rest-kit/internal/ratelimit"
	"github.com/MKhiriev/go-rest-kit/internal/renderer"
	"github.com/MKhiriev/go-rest-kit/internal/response"
	"github.com/MKhiriev/go-rest-kit/internal/serializer"
	"github.com/MKhiriev/go-rest-kit/internal/utils"
	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/go-chi/chi/v5"
)

// ActionFunc runs a controller action. The returned value becomes the
// payload of a successful envelope unless it already is a models.Envelope.
type ActionFunc func(ac *ActionContext) (any, error)

// Action binds a name and the verbs it accepts to an ActionFunc.
type Action struct {
	Name  string
	Verbs []string
	Run   ActionFunc
}

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	Access  access.Options
	Bearer  access.BearerAuthenticator
	Session access.SessionAuthenticator

	// Checker backs ActionContext.CheckAccess. Nil allows everything.
	Checker access.AccessChecker

	Formats    []format.Format
	Serializer serializer.Options

	// Limiter is optional.
	Limiter ratelimit.Limiter

	Errors *renderer.ErrorHandler
}

// Controller serves a group of actions through a fixed stage pipeline.
type Controller struct {
	gate       *access.Gate
	checker    access.AccessChecker
	negotiator *format.Negotiator
	serializer serializer.Options
	limiter    ratelimit.Limiter
	errors     *renderer.ErrorHandler
}

// NewController builds a controller.
func NewController(opts ControllerOptions) *Controller {
	errs := opts.Errors
	if errs == nil {
		errs = renderer.NewErrorHandler(false, nil)
	}
	return &Controller{
		gate:       access.NewGate(opts.Access, opts.Bearer, opts.Session),
		checker:    opts.Checker,
		negotiator: format.NewNegotiator(opts.Formats...),
		serializer: opts.Serializer,
		limiter:    opts.Limiter,
		errors:     errs,
	}
}

// Handler returns the handler serving actions on a single route. The
// action is picked by the request verb.
func (c *Controller) Handler(actions ...Action) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ex := &exchange{w: response.NewWriter(w), r: r}
		defer c.recoverPanic(ex)

		if err := c.serve(ex, actions); err != nil {
			c.errors.Render(ex.w, ex.r, toFault(err))
		}
	})
}

// Mount registers actions on pattern, one route per verb.
func (c *Controller) Mount(router chi.Router, pattern string, actions ...Action) {
	handler := c.Handler(actions...)
	for _, verb := range allowedVerbs(actions) {
		router.Method(verb, pattern, handler)
	}
}

// exchange is the request as it moves through the stages. r picks up the
// negotiated format and the identity on the way.
type exchange struct {
	w *response.Writer
	r *http.Request
}

func (c *Controller) serve(ex *exchange, actions []Action) error {
	var err error
	if ex.r, err = c.negotiate(ex.w, ex.r); err != nil {
		return err
	}

	action, err := c.filterVerb(ex.w, ex.r, actions)
	if err != nil {
		return err
	}

	if err = c.rateLimit(ex.w, ex.r); err != nil {
		return err
	}

	if ex.r, err = c.authorize(ex.w, ex.r, action.Name); err != nil {
		return err
	}

	ac := &ActionContext{Request: ex.r, Action: action.Name, controller: c, w: ex.w}
	data, err := action.Run(ac)
	ex.r = ac.Request
	if err != nil {
		return err
	}

	return c.send(ex.w, ex.r, data)
}

// recoverPanic renders a panic raised by any stage in the negotiated format.
func (c *Controller) recoverPanic(ex *exchange) {
	if rec := recover(); rec != nil {
		c.errors.Render(ex.w, ex.r, renderer.PanicFault(rec))
	}
}

func (c *Controller) negotiate(rw *response.Writer, r *http.Request) (*http.Request, error) {
	rw.Header().Add("Vary", "Accept")

	f, err := c.negotiator.Negotiate(r)
	if err != nil {
		return r, fault.NotAcceptable("").WithErr(err)
	}
	return r.WithContext(format.WithFormat(r.Context(), f)), nil
}

func (c *Controller) filterVerb(rw *response.Writer, r *http.Request, actions []Action) (Action, error) {
	for _, action := range actions {
		if acceptsVerb(action.Verbs, r.Method) {
			return action, nil
		}
	}

	allowed := allowedVerbs(actions)
	rw.Header().Set("Allow", strings.Join(allowed, ", "))
	return Action{}, fault.MethodNotAllowed(r.Method, allowed)
}

func (c *Controller) rateLimit(rw *response.Writer, r *http.Request) error {
	if c.limiter == nil {
		return nil
	}

	result, err := c.limiter.Allow(r.Context(), clientKey(r))
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("rate limiter is unavailable, request is let through")
		return nil
	}

	result.WriteHeaders(rw.Header())
	if !result.Allowed {
		return fault.TooManyRequests()
	}
	return nil
}

func (c *Controller) authorize(rw *response.Writer, r *http.Request, action string) (*http.Request, error) {
	authorized, err := c.gate.Authorize(r, action)
	if err != nil {
		if c.gate.BearerMode() && fault.From(err).Kind == fault.KindUnauthorized {
			rw.Header().Set("WWW-Authenticate", access.BearerChallenge)
		}
		return r, err
	}
	return authorized, nil
}

func (c *Controller) send(rw *response.Writer, r *http.Request, data any) error {
	if rw.Status() == http.StatusNoContent {
		return c.flush(rw, r)
	}

	envelope, ok := data.(models.Envelope)
	if !ok {
		envelope = response.Success(data)
	}
	envelope = serializer.New(c.serializer, r, rw).Serialize(envelope)

	enc := format.MustEncoder(format.FromContext(r.Context()))
	rw.Header().Set("Content-Type", enc.ContentType())
	if err := enc.Encode(rw, envelope); err != nil {
		return fault.Internal(err)
	}
	return c.flush(rw, r)
}

func (c *Controller) flush(rw *response.Writer, r *http.Request) error {
	if err := rw.Send(); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to send response")
	}
	return nil
}

// ActionContext is handed to every action.
type ActionContext struct {
	Request *http.Request
	Action  string

	controller *Controller
	w          *response.Writer
}

// Context returns the request context.
func (ac *ActionContext) Context() context.Context {
	return ac.Request.Context()
}

// Identity returns the request principal; the zero identity for guests.
func (ac *ActionContext) Identity() models.Identity {
	id, _ := utils.IdentityFromContext(ac.Context())
	return id
}

// Param returns a URL path parameter.
func (ac *ActionContext) Param(name string) string {
	return chi.URLParam(ac.Request, name)
}

// Header exposes the response headers.
func (ac *ActionContext) Header() http.Header {
	return ac.w.Header()
}

// SetStatus sets the response status. 204 sends no body.
func (ac *ActionContext) SetStatus(code int) {
	ac.w.SetStatus(code)
}

// SetCookie adds a Set-Cookie header to the response.
func (ac *ActionContext) SetCookie(cookie *http.Cookie) {
	http.SetCookie(ac.w, cookie)
}

// CheckAccess runs the controller's access checker for the current action.
// resource is the loaded model, or nil when the action has not loaded one.
func (ac *ActionContext) CheckAccess(resource any) error {
	params := make(map[string]string)
	for name, values := range ac.Request.URL.Query() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}
	return access.Check(ac.Context(), ac.controller.checker, ac.Action, ac.Param("id"), resource, params)
}

// Bind decodes the request body into v.
func (ac *ActionContext) Bind(v any) error {
	return decodeBody(ac.Request, v)
}

// validationFailed renders the field errors of model with status 422.
func validationFailed(model any) models.Envelope {
	return response.Fail(http.StatusUnprocessableEntity, fault.ValidationMessage, model)
}

// acceptsVerb reports whether verbs contain method. HEAD is accepted
// wherever GET is.
func acceptsVerb(verbs []string, method string) bool {
	if slices.Contains(verbs, method) {
		return true
	}
	return method == http.MethodHead && slices.Contains(verbs, http.MethodGet)
}

func allowedVerbs(actions []Action) []string {
	var verbs []string
	for _, action := range actions {
		for _, verb := range action.Verbs {
			if !slices.Contains(verbs, verb) {
				verbs = append(verbs, verb)
			}
		}
	}
	if slices.Contains(verbs, http.MethodGet) && !slices.Contains(verbs, http.MethodHead) {
		verbs = append(verbs, http.MethodHead)
	}
	return verbs
}

// clientKey identifies the caller for rate limiting. RemoteAddr already
// holds the real client address when middleware.RealIP is installed.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

//go:build unit || e2e

// Package paymenttest fakes the hosted checkout API and signs webhook
// deliveries the way the payment provider does.
package paymenttest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v80/webhook"
)

const sessionsPath = "/v1/checkout/sessions"

// Server answers session create and retrieve calls. Sessions created
// through it are retrievable until replaced with PutSession.
type Server struct {
	srv *httptest.Server
	seq atomic.Int64

	mu       sync.Mutex
	sessions map[string]json.RawMessage
	created  []url.Values
	failNext bool
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{sessions: make(map[string]json.RawMessage)}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *Server) URL() string {
	return s.srv.URL
}

// PutSession sets the body returned when the session is retrieved.
func (s *Server) PutSession(id string, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = json.RawMessage(body)
}

// FailNextCreate makes the next session create answer with an API error.
func (s *Server) FailNextCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = true
}

// CreatedForms returns the form bodies of every session create call.
func (s *Server) CreatedForms() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.created...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == sessionsPath:
		s.create(w, r)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, sessionsPath+"/"):
		s.retrieve(w, strings.TrimPrefix(r.URL.Path, sessionsPath+"/"))
	default:
		writeError(w, http.StatusNotFound, "Unrecognized request URL")
	}
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	if s.failNext {
		s.failNext = false
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "Invalid currency")
		return
	}
	id := fmt.Sprintf("cs_test_%d", s.seq.Add(1))
	body := fmt.Sprintf(`{"id":%q,"object":"checkout.session","status":"open","payment_status":"unpaid","url":"https://checkout.example.test/pay/%s"}`, id, id)
	s.sessions[id] = json.RawMessage(body)
	s.created = append(s.created, r.PostForm)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (s *Server) retrieve(w http.ResponseWriter, id string) {
	s.mu.Lock()
	body, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "No such checkout.session: "+id)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"type": "invalid_request_error", "message": message},
	})
}

// EventJSON wraps object as the data of a webhook event.
func EventJSON(id, eventType, object string) []byte {
	return []byte(fmt.Sprintf(`{"id":%q,"object":"event","api_version":"2020-08-27","type":%q,"data":{"object":%s}}`, id, eventType, object))
}

// Sign returns the signature header for payload.
func Sign(payload []byte, secret string) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

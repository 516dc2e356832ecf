package awsutil

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"reflect"
	"regexp"
	"strings"
)

// Handler plays back a sequence of canned request / response cycles,
// failing any request that does not match the next expected Request.
type Handler struct {
	Cycles       []Cycle
	CurrentCycle int
}

type Cycle struct {
	Request  Request
	Response Response
}

type Request struct {
	Method     string
	RequestURI string
	Operation  string
	Body       string
}

type Response struct {
	StatusCode int
	Body       string
}

func NewHandler(cycles []Cycle) *Handler {
	return &Handler{Cycles: cycles}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.CurrentCycle >= len(h.Cycles) {
		http.Error(w, fmt.Sprintf("no cycle for request: %s %s", r.Method, r.RequestURI), 404)
		return
	}

	cycle := h.Cycles[h.CurrentCycle]
	h.CurrentCycle++

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	if cycle.Request.Method != "" && cycle.Request.Method != r.Method {
		http.Error(w, fmt.Sprintf("expected method %q, got %q", cycle.Request.Method, r.Method), 500)
		return
	}

	if cycle.Request.RequestURI != r.RequestURI {
		http.Error(w, fmt.Sprintf("expected uri %q, got %q", cycle.Request.RequestURI, r.RequestURI), 500)
		return
	}

	if operation := r.Header.Get("X-Amz-Target"); cycle.Request.Operation != "" && cycle.Request.Operation != operation {
		http.Error(w, fmt.Sprintf("expected operation %q, got %q", cycle.Request.Operation, operation), 500)
		return
	}

	if !matchBody(cycle.Request.Body, string(body)) {
		http.Error(w, fmt.Sprintf("expected body %q, got %q", cycle.Request.Body, string(body)), 500)
		return
	}

	w.WriteHeader(cycle.Response.StatusCode)
	w.Write([]byte(cycle.Response.Body))
}

// matchBody compares a request body against an expectation. Expectations
// wrapped in slashes are treated as regular expressions and bodies that
// parse as JSON on both sides are compared structurally.
func matchBody(expected, actual string) bool {
	if len(expected) >= 2 && strings.HasPrefix(expected, "/") && strings.HasSuffix(expected, "/") {
		return regexp.MustCompile(expected[1 : len(expected)-1]).MatchString(actual)
	}

	var ev, av interface{}

	if json.Unmarshal([]byte(expected), &ev) == nil && json.Unmarshal([]byte(actual), &av) == nil {
		return reflect.DeepEqual(ev, av)
	}

	return strings.TrimSpace(expected) == strings.TrimSpace(actual)
}

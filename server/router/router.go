package router

import "strings"

// route rule; pattern ending w '*' matches by prefix, otherwise exact
type rule struct {
	method string
	path   string
	prefix bool
	h      Handler
}

func newRule(method, pattern string, h Handler) rule {
	p, isprefix := strings.CutSuffix(pattern, "*")
	return rule{method: method, path: p, prefix: isprefix, h: h}
}

func (ru *rule) match(target string) (string, bool) {
	if ru.prefix {
		return strings.CutPrefix(target, ru.path)
	}
	return "", target == ru.path
}

// HTTPRouter checks rules in registration order, first match wins.
// guarded patterns answer 405 for methods w/o a rule, other misses are 404
type HTTPRouter struct {
	rules  []rule
	guards []rule
}

// init a new router
func NewHTTPRouter() *HTTPRouter {
	return &HTTPRouter{}
}

func (r *HTTPRouter) Handle(method, pattern string, h Handler) {
	r.rules = append(r.rules, newRule(method, pattern, h))
}

func (r *HTTPRouter) Get(pattern string, h Handler) {
	r.Handle("GET", pattern, h)
}

func (r *HTTPRouter) Post(pattern string, h Handler) {
	r.Handle("POST", pattern, h)
}

// mark pattern as method-restricted
func (r *HTTPRouter) Guard(pattern string) {
	r.guards = append(r.guards, newRule("", pattern, nil))
}

// find handler for request in c and set c's tail (target after matched prefix)
func (r *HTTPRouter) Serve(c *Context) (Handler, error) {
	target := c.Path()
	for i := range r.rules {
		ru := &r.rules[i]
		if ru.method != c.Method() {
			continue
		}
		if tail, ok := ru.match(target); ok {
			c.tail = tail
			return ru.h, nil
		}
	}

	for i := range r.guards {
		if _, ok := r.guards[i].match(target); ok {
			return nil, ErrMethodNotAllowed
		}
	}
	return nil, ErrRouteNotFound
}

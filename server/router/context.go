// context is Request + response being built !
package router

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/s00inx/tinyhttp/server/protocol"
	"github.com/s00inx/tinyhttp/server/store"
)

// handler func signature, it works only with context;
// returned error is turned into status by StatusFor
type Handler func(c *Context) error

type Context struct {
	Req   *protocol.Request
	Files *store.Store // nil when no files root
	Log   zerolog.Logger

	tail string
	resp *protocol.Response
}

func NewContext(req *protocol.Request, files *store.Store, log zerolog.Logger) *Context {
	return &Context{
		Req:   req,
		Files: files,
		Log:   log,
		resp:  protocol.NewResponse(200),
	}
}

// !! Context as abstraction upon Request (getters)
func (c *Context) Method() string {
	return c.Req.Method
}

func (c *Context) Path() string {
	return c.Req.Target
}

// target after matched prefix of a '*' route
func (c *Context) Tail() string {
	return c.tail
}

func (c *Context) Header(key string) string {
	return c.Req.Headers.Get(key)
}

func (c *Context) Body() []byte {
	return c.Req.Body
}

// ! Context as response writer (setters)
func (c *Context) Status(code int) {
	c.resp.Code = code
}

func (c *Context) SetHeader(key, val string) {
	c.resp.Set(key, val)
}

// send body w Content-Type and Content-Length headers, in this order
func (c *Context) Send(code int, contentType string, body []byte) {
	c.resp.Code = code
	c.resp.Set("Content-Type", contentType)
	c.resp.Set("Content-Length", strconv.Itoa(len(body)))
	c.resp.Body = body
}

func (c *Context) Response() *protocol.Response {
	return c.resp
}

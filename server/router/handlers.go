package router

import "strings"

const (
	mimeText   = "text/plain"
	mimeBinary = "application/octet-stream"
)

// router w the fixed route table, order is precedence
func NewDefault() *HTTPRouter {
	r := NewHTTPRouter()

	r.Get("/", Root)
	r.Get("/echo/*", Echo)
	r.Get("/user-agent*", UserAgent)
	r.Get("/files/*", FilesGet)
	r.Post("/files/*", FilesPost)
	r.Guard("/files/*")

	return r
}

func Root(c *Context) error {
	c.Status(200)
	return nil
}

// body is the segment right after /echo/, verbatim
func Echo(c *Context) error {
	seg, _, _ := strings.Cut(c.Tail(), "/")
	c.Send(200, mimeText, []byte(seg))
	return nil
}

func UserAgent(c *Context) error {
	c.Send(200, mimeText, []byte(c.Header("User-Agent")))
	return nil
}

// file name is the whole tail after /files/, not just its last segment,
// so /files/sub/report.txt is refused (404) instead of serving report.txt
func FilesGet(c *Context) error {
	name := c.Tail()
	if _, err := c.Files.Stat(name); err != nil {
		return err
	}

	data, err := c.Files.Read(name)
	if err != nil {
		return err
	}

	c.Send(200, mimeBinary, data)
	return nil
}

// body is written as is, existing file overwritten.
// same naming rule as FilesGet, a nested tail is refused
func FilesPost(c *Context) error {
	name := c.Tail()
	if err := c.Files.Write(name, c.Body()); err != nil {
		return err
	}

	c.Log.Debug().Str("file", name).Int("bytes", len(c.Body())).Msg("file written")
	c.Status(201)
	return nil
}

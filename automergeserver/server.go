package main

import (
	"io/ioutil"
	"mime"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/labstack/echo"
	"github.com/lyraproj/automerge/api"
	"github.com/lyraproj/automerge/automerge"
	"github.com/lyraproj/automerge/config"
	"github.com/lyraproj/automerge/tree"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/pcore/px"
)

const (
	requestIDHeader = `X-Request-Id`
	loggerKey       = `logger`
	requestSource   = `request body`
)

type server struct {
	cfg    *config.Config
	logger hclog.Logger
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// newServer creates the echo instance that serves the merge and health endpoints
func newServer(cfg *config.Config, logger hclog.Logger) *echo.Echo {
	s := &server{cfg: cfg, logger: logger}
	e := echo.New()
	e.HideBanner = true
	e.Use(s.requestScope)
	e.POST(`/merge`, s.merge)
	e.GET(`/health`, s.health)
	return e
}

// requestScope assigns a request id, unless the client sent one, and a logger that carries it
func (s *server) requestScope(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(requestIDHeader)
		if id == `` {
			id = uuid.New().String()
		}
		c.Response().Header().Set(requestIDHeader, id)
		c.Set(loggerKey, s.logger.With(`request_id`, id))
		return next(c)
	}
}

func requestLogger(c echo.Context) hclog.Logger {
	if l, ok := c.Get(loggerKey).(hclog.Logger); ok {
		return l
	}
	return hclog.Default()
}

func (s *server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{`status`: `ok`})
}

func (s *server) merge(c echo.Context) error {
	log := requestLogger(c)
	opts := s.options(c.QueryParams())
	if err := opts.Validate(); err != nil {
		return badRequest(c, log, err)
	}
	records, err := readBody(c.Request())
	if err != nil {
		return badRequest(c, log, err)
	}
	log.Debug(`records received`, `count`, len(records))

	result, err := automerge.AutoMergeWithLogger(records, opts, log)
	if err != nil {
		return badRequest(c, log, err)
	}
	bs, err := tree.MarshalJSON(result)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, bs)
}

// options returns the configured options overridden by the query parameters of the request. A parameter
// that is present but empty is kept so that validation reports it.
func (s *server) options(params url.Values) api.Options {
	o := s.cfg.Options()
	if v, ok := params[`id`]; ok && len(v) > 0 {
		o.Identifier = v[0]
	}
	if v, ok := params[`delimiter`]; ok && len(v) > 0 {
		o.Delimiter = v[0]
	}
	if v, ok := params[`empty_segments`]; ok && len(v) > 0 {
		o.EmptySegments = api.SegmentPolicy(v[0])
	}
	return o
}

func readBody(r *http.Request) ([]tree.Record, error) {
	data, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return automerge.ReadRecords(requestSource, data, formatOf(r.Header.Get(echo.HeaderContentType)))
}

// formatOf maps a content type to an input format. YAML is used for anything unknown since it also
// accepts JSON.
func formatOf(contentType string) automerge.InputFormat {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return automerge.YAMLFormat
	}
	switch mt {
	case echo.MIMEApplicationJSON:
		return automerge.JSONFormat
	case `text/csv`:
		return automerge.CSVFormat
	}
	return automerge.YAMLFormat
}

func badRequest(c echo.Context, log hclog.Logger, err error) error {
	rp, ok := err.(issue.Reported)
	if !ok {
		rp = px.Error(api.MalformedInput, issue.H{`source`: requestSource, `detail`: err.Error()}).(issue.Reported)
	}
	log.Info(`merge rejected`, `code`, rp.Code(), `error`, rp.Error())
	return c.JSON(http.StatusBadRequest, errorResponse{Code: string(rp.Code()), Message: rp.Error()})
}

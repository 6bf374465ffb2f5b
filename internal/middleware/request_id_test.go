package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// serve runs one request through RequestID and returns the trace ID the
// handler saw together with the recorded response
func (s *RequestIDTestSuite) serve(incoming string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusNoContent)
	})
	s.Require().NoError(handler(s.echo.NewContext(req, rec)))
	return seen, rec
}

func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	seen, rec := s.serve("")

	_, err := uuid.Parse(seen)
	s.NoError(err, "generated trace id %q is not a UUID", seen)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *RequestIDTestSuite) TestRequestID_HeaderMatchesContext() {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated", incoming: ""},
		{name: "propagated", incoming: "ops-probe-42"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			seen, rec := s.serve(tt.incoming)
			s.Equal(seen, rec.Header().Get(TraceIDHeader))
			if tt.incoming != "" {
				s.Equal(tt.incoming, seen)
			}
		})
	}
}

func (s *RequestIDTestSuite) TestRequestID_DistinctPerRequest() {
	first, _ := s.serve("")
	second, _ := s.serve("")
	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_UnknownWhenNotSet() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Equal("unknown", GetTraceID(c))
}

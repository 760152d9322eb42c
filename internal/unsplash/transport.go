package unsplash

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type loggingTransport struct {
	base http.RoundTripper
	log  logrus.FieldLogger
}

func (t loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	entry := t.log.WithFields(logrus.Fields{
		"method":  req.Method,
		"url":     redactURL(req.URL),
		"elapsed": elapsed.String(),
	})
	if err != nil {
		entry.WithError(err).Debug("unsplash http failed")
		return nil, err
	}

	entry.WithField("status", resp.StatusCode).Debug("unsplash http")
	return resp, nil
}

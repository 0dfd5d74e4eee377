package handlers

import (
	"github.com/co2-watch/site/dashboard"
)

var (
	service  *dashboard.Service
	watching bool
)

// Init sets the dashboard service the handlers serve. watch reports
// whether hot reload is enabled, for the admin page.
func Init(s *dashboard.Service, watch bool) {
	service = s
	watching = watch
}

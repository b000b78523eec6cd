package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults, trims strings, and reports problems.
// Errors block startup and config saves; warnings are advisory.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Upstream.BaseURL = strings.TrimSpace(out.Upstream.BaseURL)
	out.Upstream.ClientID = strings.TrimSpace(out.Upstream.ClientID)
	out.App.Env = strings.ToLower(strings.TrimSpace(out.App.Env))

	if out.App.Env == "" {
		out.App.Env = "development"
	}
	if out.Upstream.ClientID == "" {
		out.Upstream.ClientID = "jobboard-engine/1.0 (+local)"
	}
	if out.Fetch.DebounceMS == 0 {
		out.Fetch.DebounceMS = 400
	}
	if out.Fetch.RefreshSeconds == 0 {
		out.Fetch.RefreshSeconds = 600
	}
	if out.Fetch.CacheMaxAgeSeconds == 0 {
		out.Fetch.CacheMaxAgeSeconds = 600
	}
	if out.Fetch.CacheStaleSeconds == 0 {
		out.Fetch.CacheStaleSeconds = 1200
	}

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.App.Env != "development" && out.App.Env != "production" {
		res.addErr("app.env must be development or production")
	}

	if out.Upstream.BaseURL == "" {
		res.addErr("upstream.base_url is required")
	} else if u, err := url.Parse(out.Upstream.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("upstream.base_url must be an absolute URL")
	}
	if out.Upstream.TimeoutSeconds < 0 {
		res.addErr("upstream.timeout_seconds must be >= 0")
	}
	if out.Upstream.TimeoutSeconds == 0 {
		res.addWarn("upstream.timeout_seconds is 0; the default client timeout applies")
	}
	if out.Upstream.RatePerSec < 0 {
		res.addErr("upstream.rate_per_sec must be >= 0")
	}

	if out.Fetch.DebounceMS < 0 {
		res.addErr("fetch.debounce_ms must be >= 0")
	}
	if out.Fetch.RefreshSeconds < 0 {
		res.addErr("fetch.refresh_seconds must be >= 0")
	} else if out.Fetch.RefreshSeconds < 30 {
		res.addWarn("fetch.refresh_seconds is very low (%d) and may trip provider rate limits.", out.Fetch.RefreshSeconds)
	}
	if out.Fetch.CacheStaleSeconds < out.Fetch.CacheMaxAgeSeconds {
		res.addWarn("fetch.cache_stale_seconds is below cache_max_age_seconds; stale serving will never kick in.")
	}

	if out.Polls.Enabled && strings.TrimSpace(out.Polls.DSN) == "" {
		res.addWarn("polls.dsn is empty; an in-memory database will be used and polls vanish on restart.")
	}

	return out, res
}

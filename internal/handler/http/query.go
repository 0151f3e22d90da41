package http

import (
	"net/http"
	"strconv"
	"time"
)

// queryString returns the parameter as a *string, or nil when absent.
func queryString(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func queryInt(r *http.Request, key string) *int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func queryBool(r *http.Request, key string) *bool {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

func queryDate(r *http.Request, key string) *time.Time {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

// pagination parses page and limit with sane defaults.
func pagination(r *http.Request) (page, limit int) {
	page = 1
	limit = 20
	if p := queryInt(r, "page"); p != nil && *p > 0 {
		page = *p
	}
	if l := queryInt(r, "limit"); l != nil && *l > 0 && *l <= 100 {
		limit = *l
	}
	return page, limit
}

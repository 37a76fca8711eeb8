package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func params(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	return FromContext(c)
}

func TestFromContext_Defaults(t *testing.T) {
	p := params(t, "")
	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Errorf("expected defaults, got %+v", p)
	}
}

func TestFromContext_LimitOffset(t *testing.T) {
	p := params(t, "limit=5&offset=15")
	if p.Limit != 5 || p.Offset != 15 {
		t.Errorf("expected 5/15, got %+v", p)
	}
}

func TestFromContext_PageBased(t *testing.T) {
	p := params(t, "page=3&limit=10")
	if p.Limit != 10 || p.Offset != 20 {
		t.Errorf("page 3 with limit 10 should offset 20, got %+v", p)
	}

	p = params(t, "page=1&limit=10")
	if p.Offset != 0 {
		t.Errorf("page 1 should offset 0, got %+v", p)
	}
}

func TestFromContext_LimitClamped(t *testing.T) {
	p := params(t, "limit=9999")
	if p.Limit != MaxLimit {
		t.Errorf("limit should clamp to %d, got %d", MaxLimit, p.Limit)
	}

	p = params(t, "limit=-3")
	if p.Limit != DefaultLimit {
		t.Errorf("negative limit falls back to default, got %d", p.Limit)
	}
}

func TestParamsSQL(t *testing.T) {
	p := Params{Limit: 10, Offset: 30}
	if got := p.SQL(); got != "LIMIT 10 OFFSET 30" {
		t.Errorf("unexpected SQL clause %q", got)
	}
}

func TestHasNext(t *testing.T) {
	p := Params{Limit: 10, Offset: 0}
	if !p.HasNext(25) {
		t.Errorf("expected next page")
	}
	if p.HasNext(10) {
		t.Errorf("no next page when total fits")
	}
	if p.NextOffset() != 10 {
		t.Errorf("expected next offset 10, got %d", p.NextOffset())
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]int{1, 2}, 25, 10, 0)
	if !resp.HasMore {
		t.Errorf("expected has_more")
	}
	resp = NewResponse([]int{1, 2}, 2, 10, 0)
	if resp.HasMore {
		t.Errorf("expected no more pages")
	}
}

package helpers

import (
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/api/admin/registrations", 1, 20},
		{"explicit values", "/api/admin/registrations?page=3&limit=50", 3, 50},
		{"limit clamped to max", "/api/admin/registrations?limit=500", 1, 100},
		{"zero page falls back", "/api/admin/registrations?page=0", 1, 20},
		{"negative limit falls back", "/api/admin/registrations?limit=-5", 1, 20},
		{"garbage falls back", "/api/admin/registrations?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := ParsePagination(r)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
				t.Fatalf("got page=%d limit=%d, want page=%d limit=%d", p.Page, p.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int
		wantTotalPages int
	}{
		{"exact multiple", 1, 20, 40, 2},
		{"partial last page", 1, 20, 45, 3},
		{"empty result", 1, 20, 0, 0},
		{"single page", 1, 100, 7, 1},
		{"zero limit", 1, 0, 45, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPaginationMeta(tt.page, tt.limit, tt.total)
			if meta.TotalPages != tt.wantTotalPages {
				t.Fatalf("totalPages = %d, want %d", meta.TotalPages, tt.wantTotalPages)
			}
			if meta.Total != tt.total || meta.Page != tt.page || meta.Limit != tt.limit {
				t.Fatalf("meta fields mangled: %+v", meta)
			}
		})
	}
}

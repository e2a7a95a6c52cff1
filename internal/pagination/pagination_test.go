package pagination

import "testing"

func TestPageRequest_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		in        PageRequest
		wantPage  int
		wantLimit int
	}{
		{"zero values", PageRequest{}, 1, 50},
		{"explicit", PageRequest{Page: 3, Limit: 10}, 3, 10},
		{"limit clamped", PageRequest{Page: 1, Limit: 500}, 1, 100},
		{"negative page", PageRequest{Page: -2, Limit: 5}, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Defaults()
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
				t.Errorf("got page=%d limit=%d, want page=%d limit=%d", p.Page, p.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	p := PageRequest{Page: 3, Limit: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("expected offset 40, got %d", got)
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[string](nil, 2, 50, 101)
	if resp.Items == nil {
		t.Error("expected non-nil items")
	}
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.Total != 101 || resp.Page != 2 || resp.Limit != 50 {
		t.Errorf("unexpected metadata: %+v", resp)
	}
}

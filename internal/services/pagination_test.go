package services

import "testing"

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"valid", 3, 10, 3, 10},
		{"zero page", 0, 10, 1, 10},
		{"negative page", -4, 10, 1, 10},
		{"zero size", 2, 0, 2, DefaultPageSize},
		{"size too big", 2, 101, 2, DefaultPageSize},
		{"size at max", 2, MaxPageSize, 2, MaxPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, size := NormalizePage(tc.page, tc.size)
			if page != tc.wantPage || size != tc.wantPageSize {
				t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					tc.page, tc.size, page, size, tc.wantPage, tc.wantPageSize)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{5, 2, 3},
		{100, 100, 1},
		{7, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(3, 2, 5)
	if p.CurrentPage != 3 || p.PageSize != 2 || p.TotalCount != 5 || p.TotalPages != 3 {
		t.Errorf("unexpected pagination %+v", p)
	}
}

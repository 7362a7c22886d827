package utils

import (
	"strings"
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("s3cret", hash) {
		t.Error("correct password must verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password must not verify")
	}
}

func TestStringToInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := StringToInt(tc.in); got != tc.want {
			t.Errorf("StringToInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestStringToUint(t *testing.T) {
	cases := []struct {
		in   string
		want uint
	}{
		{"42", 42},
		{"0", 0},
		{"-3", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := StringToUint(tc.in); got != tc.want {
			t.Errorf("StringToUint(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("# Title\n\nsome *text*")
	if html == "" {
		t.Fatal("expected rendered html")
	}
	if want := "Title</h1>"; !strings.Contains(html, want) {
		t.Errorf("rendered html %q missing %q", html, want)
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html := RenderMarkdown(`hello <script>alert(1)</script>`)
	if strings.Contains(html, "<script>") {
		t.Errorf("script tag must be stripped, got %q", html)
	}
}

func TestCacheSetGetDelete(t *testing.T) {
	c := GetCache()
	c.Set("k", "v", time.Minute)
	if v := c.Get("k"); v != "v" {
		t.Fatalf("Get = %v, want v", v)
	}

	c.Delete("k")
	if v := c.Get("k"); v != nil {
		t.Errorf("deleted key must not be found, got %v", v)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := GetCache()
	c.Set("short", 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	if v := c.Get("short"); v != nil {
		t.Errorf("expired entry must not be returned, got %v", v)
	}
}

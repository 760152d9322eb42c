package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/snapsphere/internal/photo"
)

func TestFormatPhotoTable(t *testing.T) {
	noColor(t)

	out := formatPhotoTable("cats", samplePhotos(), nil, 80)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if lines[0] != `Photos for "cats" (2)` {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.Contains(lines[2], "AUTHOR") || !strings.Contains(lines[2], "LIKES") {
		t.Errorf("header = %q", lines[2])
	}
	if want := "    1  alice      ♥ 5  https://images.example/1.jpg"; lines[3] != want {
		t.Errorf("row = %q, want %q", lines[3], want)
	}
}

func TestFormatPhotoTable_FitsWidth(t *testing.T) {
	noColor(t)
	photos := []photo.Photo{
		{ID: "1", ImageURL: "https://images.example/" + strings.Repeat("x", 100), UserName: strings.Repeat("n", 40), Likes: 1234},
	}

	out := formatPhotoTable("", photos, nil, 60)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if w := ansi.StringWidth(line); w > 60 {
			t.Errorf("line is %d cells wide: %q", w, line)
		}
	}
	if !strings.Contains(out, strings.Repeat("n", maxAuthorW-1)+"…") {
		t.Errorf("long author not truncated:\n%s", out)
	}
}

func TestFormatPhotoTable_Empty(t *testing.T) {
	noColor(t)
	tests := []struct {
		term string
		want string
	}{
		{"", "No photos found.\n"},
		{"zzz", "No photos found for \"zzz\".\n"},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := formatPhotoTable(tt.term, nil, nil, 80); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPhotoTable_Previews(t *testing.T) {
	noColor(t)
	previews := []string{"AB\nCD", ""}

	out := formatPhotoTable("", samplePhotos(), previews, 80)

	ab := strings.Index(out, "AB")
	alice := strings.Index(out, "alice")
	if ab < 0 || alice < ab {
		t.Fatalf("preview not printed above its row:\n%s", out)
	}
}

func TestDownloadPreviews(t *testing.T) {
	photos := make([]photo.Photo, 20)
	for i := range photos {
		photos[i] = photo.Photo{ID: string(rune('a' + i)), ImageURL: "https://images.example/" + string(rune('a'+i))}
	}
	f := &fakeFetcher{failURLs: map[string]bool{"https://images.example/c": true}}

	previews := downloadPreviews(context.Background(), f, photos, 4, 2)

	if len(previews) != len(photos) {
		t.Fatalf("got %d previews, want %d", len(previews), len(photos))
	}
	for i, p := range previews {
		if i == 2 {
			if p != "" {
				t.Errorf("failed image has preview %q", p)
			}
			continue
		}
		if !strings.Contains(p, "▀") {
			t.Errorf("preview %d = %q", i, p)
		}
	}
	if f.maxInFlight > thumbConcurrency {
		t.Errorf("max in flight = %d, want <= %d", f.maxInFlight, thumbConcurrency)
	}
}

// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"image"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/snapsphere/internal/photo"
)

// Fetcher loads photo listings and thumbnail images.
type Fetcher interface {
	Photos(ctx context.Context, term string) ([]photo.Photo, error)
	Image(ctx context.Context, url string) (image.Image, error)
}

// PhotosLoadedMsg is sent when a fetch succeeds.
type PhotosLoadedMsg struct {
	Seq    uint64
	Term   string
	Photos []photo.Photo
}

// FetchFailedMsg is sent when a fetch fails.
type FetchFailedMsg struct {
	Seq  uint64
	Term string
	Err  error
}

// ThumbnailLoadedMsg is sent when a thumbnail image has been downloaded.
type ThumbnailLoadedMsg struct {
	Seq   uint64
	ID    string
	Image image.Image
}

// ThumbnailFailedMsg is sent when a thumbnail cannot be loaded.
type ThumbnailFailedMsg struct {
	Seq uint64
	ID  string
	Err error
}

// SearchDebounceMsg fires once the search box has been idle for the debounce
// delay. Edit identifies the edit that scheduled it.
type SearchDebounceMsg struct {
	Edit uint64
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// FetchPhotos loads the photos for term. The result carries seq so the caller
// can drop responses that a newer request has superseded.
func FetchPhotos(ctx context.Context, f Fetcher, seq uint64, term string) tea.Cmd {
	return func() tea.Msg {
		photos, err := f.Photos(ctx, term)
		if err != nil {
			return FetchFailedMsg{Seq: seq, Term: term, Err: err}
		}
		return PhotosLoadedMsg{Seq: seq, Term: term, Photos: photos}
	}
}

// FetchThumbnail downloads the image of p.
func FetchThumbnail(ctx context.Context, f Fetcher, seq uint64, p photo.Photo) tea.Cmd {
	return func() tea.Msg {
		if p.ImageURL == "" {
			return ThumbnailFailedMsg{Seq: seq, ID: p.ID}
		}
		img, err := f.Image(ctx, p.ImageURL)
		if err != nil {
			return ThumbnailFailedMsg{Seq: seq, ID: p.ID, Err: err}
		}
		return ThumbnailLoadedMsg{Seq: seq, ID: p.ID, Image: img}
	}
}

// FetchThumbnails downloads the images of photos concurrently.
func FetchThumbnails(ctx context.Context, f Fetcher, seq uint64, photos []photo.Photo) tea.Cmd {
	if len(photos) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(photos))
	for _, p := range photos {
		cmds = append(cmds, FetchThumbnail(ctx, f, seq, p))
	}
	return tea.Batch(cmds...)
}

// DebounceSearch schedules a SearchDebounceMsg for edit after delay.
func DebounceSearch(edit uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SearchDebounceMsg{Edit: edit}
	})
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text, confirmation string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsgCmd{Msg: confirmation}
	}
}

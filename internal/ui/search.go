package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/javiermolinar/snapsphere/internal/photo"
	"github.com/javiermolinar/snapsphere/internal/preview"
	"github.com/javiermolinar/snapsphere/internal/tui/commands"
)

const (
	thumbConcurrency = 6
	thumbPreviewW    = 24
	thumbPreviewH    = 6

	maxAuthorW = 24
	minURLW    = 12
	likesW     = 6
)

func (a *App) searchCmd() *cobra.Command {
	var (
		asJSON bool
		thumbs bool
	)

	cmd := &cobra.Command{
		Use:   "search [term...]",
		Short: "Print the photos for a search term",
		Long: `Fetch one page of photos and print it.

Without a term, prints the latest photos. Words are joined with spaces
into a single search term.`,
		Example: `  snapsphere search
  snapsphere search mountain lake
  snapsphere search cats --thumbs
  snapsphere search cats --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fetcher, err := a.newFetcher()
			if err != nil {
				return err
			}

			term := strings.Join(args, " ")
			ctx := cmd.Context()
			photos, err := fetcher.Photos(ctx, term)
			if err != nil {
				return fmt.Errorf("fetching photos: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, photos)
			}

			// Previews are true color cells; there is nothing to show without color.
			var previews []string
			if thumbs && colorEnabled() {
				previews = downloadPreviews(ctx, fetcher, photos, thumbPreviewW, thumbPreviewH)
			}
			_, err = io.WriteString(out, formatPhotoTable(term, photos, previews, termWidth()))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the photos as JSON")
	cmd.Flags().BoolVar(&thumbs, "thumbs", false, "Print a preview above each photo (needs color)")

	return cmd
}

func writeJSON(w io.Writer, photos []photo.Photo) error {
	if photos == nil {
		photos = []photo.Photo{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(photos); err != nil {
		return fmt.Errorf("encoding photos: %w", err)
	}
	return nil
}

// downloadPreviews fetches thumbnails with bounded parallelism. A photo whose
// image fails to load gets an empty preview.
func downloadPreviews(ctx context.Context, f commands.Fetcher, photos []photo.Photo, w, h int) []string {
	previews := make([]string, len(photos))

	var g errgroup.Group
	g.SetLimit(thumbConcurrency)
	for i, p := range photos {
		g.Go(func() error {
			img, err := f.Image(ctx, p.ImageURL)
			if err != nil {
				return nil
			}
			previews[i] = preview.Render(img, w, h, "")
			return nil
		})
	}
	_ = g.Wait()
	return previews
}

// formatPhotoTable lays out photos as rows fit to width. previews, when
// non-nil, holds one rendered thumbnail per photo.
func formatPhotoTable(term string, photos []photo.Photo, previews []string, width int) string {
	var b strings.Builder

	title := "Latest photos"
	if term != "" {
		title = fmt.Sprintf("Photos for %q", term)
	}
	if len(photos) == 0 {
		if term != "" {
			return fmt.Sprintf("No photos found for %q.\n", term)
		}
		return "No photos found.\n"
	}
	fmt.Fprintf(&b, "%s %s\n\n", formatHeader(title), formatMuted(fmt.Sprintf("(%d)", len(photos))))

	authorW := len("AUTHOR")
	for _, p := range photos {
		authorW = max(authorW, ansi.StringWidth(p.UserName))
	}
	authorW = min(authorW, maxAuthorW)
	// "  ###  <author>  ♥ nnnn  <url>"
	overhead := 2 + 3 + 2 + authorW + 2 + likesW + 2
	urlW := max(width-overhead, minURLW)

	fmt.Fprintf(&b, "  %s  %s  %s  %s\n",
		formatHeader(fmt.Sprintf("%3s", "#")),
		formatHeader(padRight("AUTHOR", authorW)),
		formatHeader(fmt.Sprintf("%*s", likesW, "LIKES")),
		formatHeader("IMAGE URL"),
	)

	for i, p := range photos {
		if i < len(previews) && previews[i] != "" {
			for _, line := range strings.Split(previews[i], "\n") {
				b.WriteString("       " + line + "\n")
			}
		}
		author := padRight(ansi.Truncate(p.UserName, authorW, "…"), authorW)
		likes := fmt.Sprintf("%*s", likesW, "♥ "+strconv.Itoa(p.Likes))
		fmt.Fprintf(&b, "  %3d  %s  %s  %s\n",
			i+1,
			formatAuthor(author),
			formatLikes(likes),
			formatMuted(ansi.Truncate(p.ImageURL, urlW, "…")),
		)
	}
	return b.String()
}

func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

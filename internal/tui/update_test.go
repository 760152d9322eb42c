package tui

import (
	"context"
	"errors"
	"image"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/snapsphere/internal/tui/commands"
	"github.com/javiermolinar/snapsphere/internal/unsplash"
)

func TestPhotosLoaded_ClearsLoadingAndError(t *testing.T) {
	m := newTestModel(t, &fakeFetcher{})
	m.errMsg = unsplash.UserMessage
	m.cursor = 3

	m = update(t, m, commands.PhotosLoadedMsg{Seq: m.fetchSeq, Photos: samplePhotos()})

	if m.loading {
		t.Fatal("expected loading to be false after the fetch resolved")
	}
	if m.errMsg != "" {
		t.Fatalf("errMsg = %q, want empty after success", m.errMsg)
	}
	if !reflect.DeepEqual(m.photos, samplePhotos()) {
		t.Fatalf("photos = %+v", m.photos)
	}
	if m.cursor != 0 || m.scrollRow != 0 {
		t.Fatalf("cursor/scroll = %d/%d, want 0/0", m.cursor, m.scrollRow)
	}
}

func TestFetchFailed_KeepsPhotosAndSetsMessage(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	cmd := m.startFetch("test")
	if cmd == nil || !m.loading {
		t.Fatal("expected loading to be true right after a fetch starts")
	}

	m = update(t, m, commands.FetchFailedMsg{Seq: m.fetchSeq, Err: errors.New("status 500")})

	if m.loading {
		t.Fatal("expected loading to be false after failure")
	}
	if m.errMsg != "Error fetching data. Please try again later." {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
	if !reflect.DeepEqual(m.photos, samplePhotos()) {
		t.Fatalf("photos changed on failure: %+v", m.photos)
	}
}

func TestFetchFailure_EndToEnd(t *testing.T) {
	f := &fakeFetcher{err: &unsplash.FetchError{URL: "u", StatusCode: 401}}
	m := newTestModel(t, f)

	m = update(t, m, fetchResult(t, m.Init()))

	if m.loading || m.errMsg != unsplash.UserMessage || len(m.photos) != 0 {
		t.Fatalf("loading/err/photos = %v/%q/%d", m.loading, m.errMsg, len(m.photos))
	}
	if !strings.Contains(ansi.Strip(m.View()), unsplash.UserMessage) {
		t.Fatal("expected error message in view")
	}
}

func TestStaleResponsesAreIgnored(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	m.searchTerm = "cats"
	m.startFetch("first")
	staleSeq := m.fetchSeq
	m.searchTerm = "dogs"
	m.startFetch("second")

	stale := samplePhotos()[:1]
	m = update(t, m, commands.PhotosLoadedMsg{Seq: staleSeq, Term: "cats", Photos: stale})
	if !m.loading {
		t.Fatal("stale response must not end loading")
	}
	if len(m.photos) != len(samplePhotos()) {
		t.Fatalf("stale response replaced photos: %d", len(m.photos))
	}

	m = update(t, m, commands.FetchFailedMsg{Seq: staleSeq, Term: "cats", Err: errors.New("canceled")})
	if m.errMsg != "" {
		t.Fatalf("stale failure set errMsg = %q", m.errMsg)
	}

	fresh := samplePhotos()[2:]
	m = update(t, m, commands.PhotosLoadedMsg{Seq: m.fetchSeq, Term: "dogs", Photos: fresh})
	if m.loading || !reflect.DeepEqual(m.photos, fresh) {
		t.Fatalf("latest response not applied: loading=%v photos=%+v", m.loading, m.photos)
	}
}

func TestStartFetch_CancelsPreviousRequest(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	prev := m.fetchCtx
	m.startFetch("again")

	if !errors.Is(prev.Err(), context.Canceled) {
		t.Fatalf("previous fetch context err = %v, want canceled", prev.Err())
	}
	if m.fetchCtx.Err() != nil {
		t.Fatal("new fetch context must be live")
	}
}

func TestSearchTyping_IsDebounced(t *testing.T) {
	f := &fakeFetcher{photos: samplePhotos()}
	m := newTestModel(t, f)
	m = update(t, m, commands.PhotosLoadedMsg{Seq: m.fetchSeq})

	m = update(t, m, keyRunes("/"))
	if m.mode != ModeSearch {
		t.Fatalf("mode = %v, want SEARCH", m.mode)
	}
	for _, r := range "cat" {
		m = update(t, m, keyRunes(string(r)))
	}
	if m.searchTerm != "cat" {
		t.Fatalf("searchTerm = %q, want %q", m.searchTerm, "cat")
	}
	if m.fetchSeq != 1 || m.loading {
		t.Fatalf("typing fetched immediately: seq=%d loading=%v", m.fetchSeq, m.loading)
	}

	// An older edit's timer fires: nothing happens.
	m = update(t, m, commands.SearchDebounceMsg{Edit: m.editSeq - 1})
	if m.fetchSeq != 1 {
		t.Fatalf("outdated debounce fetched: seq=%d", m.fetchSeq)
	}

	updated, cmd := m.Update(commands.SearchDebounceMsg{Edit: m.editSeq})
	m = updated.(Model)
	if m.fetchSeq != 2 || !m.loading {
		t.Fatalf("debounce did not fetch: seq=%d loading=%v", m.fetchSeq, m.loading)
	}

	loaded, ok := fetchResult(t, cmd).(commands.PhotosLoadedMsg)
	if !ok || loaded.Term != "cat" || loaded.Seq != 2 {
		t.Fatalf("fetch result = %+v", loaded)
	}
}

func TestSubmitSearch_FetchesImmediately(t *testing.T) {
	f := &fakeFetcher{photos: samplePhotos()}
	m := loadedModel(t, nil)
	m.fetcher = f

	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes("dogs"))
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.mode != ModeBrowse {
		t.Fatalf("mode = %v, want BROWSE after submit", m.mode)
	}
	if !m.loading {
		t.Fatal("expected loading after submit")
	}
	loaded, ok := fetchResult(t, cmd).(commands.PhotosLoadedMsg)
	if !ok || loaded.Term != "dogs" {
		t.Fatalf("fetch result = %+v", loaded)
	}

	// The pending debounce of the typed text is now outdated.
	before := m.fetchSeq
	m = update(t, m, commands.SearchDebounceMsg{Edit: m.editSeq - 1})
	if m.fetchSeq != before {
		t.Fatal("debounce after submit fetched again")
	}
}

func TestSearchEscReturnsToGrid(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	m = update(t, m, keyRunes("/"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeBrowse {
		t.Fatalf("mode = %v, want BROWSE", m.mode)
	}
}

func TestClearedSearchFetchesListing(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes("x"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.searchTerm != "" {
		t.Fatalf("searchTerm = %q, want empty", m.searchTerm)
	}

	updated, cmd := m.Update(commands.SearchDebounceMsg{Edit: m.editSeq})
	m = updated.(Model)
	loaded, ok := fetchResult(t, cmd).(commands.PhotosLoadedMsg)
	if !ok || loaded.Term != "" {
		t.Fatalf("fetch result = %+v", loaded)
	}
}

func TestOpenDetail_ShowsSelectedPhoto(t *testing.T) {
	m := loadedModel(t, samplePhotos())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.showModal || m.selected == nil {
		t.Fatal("expected the detail modal to be open with a selection")
	}
	want := samplePhotos()[1]
	if *m.selected != want {
		t.Fatalf("selected = %+v, want %+v", *m.selected, want)
	}

	out := ansi.Strip(m.View())
	for _, s := range []string{"bob", "Likes: 12", "Close"} {
		if !strings.Contains(out, s) {
			t.Fatalf("detail view missing %q", s)
		}
	}
}

func TestDismissModal_KeepsGridAndSelection(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyEnter}, keyRunes("q")} {
		t.Run(key.String(), func(t *testing.T) {
			m := loadedModel(t, samplePhotos())
			m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			updated, cmd := m.Update(key)
			m = updated.(Model)

			if cmd != nil {
				t.Fatal("dismiss must not issue commands")
			}
			if m.showModal {
				t.Fatal("expected modal to be closed")
			}
			if m.selected == nil || m.selected.ID != "1" {
				t.Fatalf("selected = %+v, want photo 1 kept", m.selected)
			}
			if !reflect.DeepEqual(m.photos, samplePhotos()) {
				t.Fatal("dismiss changed the grid")
			}
			if m.mode != ModeBrowse {
				t.Fatalf("mode = %v, want BROWSE", m.mode)
			}
		})
	}
}

func TestModalCopyKeyIssuesCommand(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, cmd := m.Update(keyRunes("y")); cmd == nil {
		t.Fatal("expected a clipboard command")
	}
}

func TestThemeToggle_OnlyFlipsTheme(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	m.searchTerm = "cats"
	m.errMsg = unsplash.UserMessage
	wasDark := m.themes.IsDark()
	label := m.themes.ToggleLabel()

	m = update(t, m, keyRunes("t"))

	if m.themes.IsDark() == wasDark {
		t.Fatal("expected theme mode to flip")
	}
	if m.themes.ToggleLabel() == label {
		t.Fatalf("toggle label still %q", label)
	}
	want := "Light Mode"
	if !m.themes.IsDark() {
		want = "Dark Mode"
	}
	if got := m.themes.ToggleLabel(); got != want {
		t.Fatalf("ToggleLabel() = %q, want %q", got, want)
	}
	if !strings.Contains(ansi.Strip(m.View()), want) {
		t.Fatalf("view does not show %q", want)
	}
	if m.searchTerm != "cats" || m.errMsg != unsplash.UserMessage || !reflect.DeepEqual(m.photos, samplePhotos()) {
		t.Fatal("theme toggle touched gallery state")
	}
}

func TestCursorMovement(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	cols := m.layout.Cols
	if cols != 3 {
		t.Fatalf("cols = %d, want 3 at width 100", cols)
	}

	tests := []struct {
		key  tea.KeyMsg
		want int
	}{
		{keyRunes("l"), 1},
		{keyRunes("j"), 3},
		{keyRunes("j"), 3},
		{keyRunes("k"), 0},
		{keyRunes("h"), 0},
		{keyRunes("G"), 3},
		{keyRunes("g"), 0},
	}
	for i, tt := range tests {
		m = update(t, m, tt.key)
		if m.cursor != tt.want {
			t.Fatalf("step %d (%s): cursor = %d, want %d", i, tt.key.String(), m.cursor, tt.want)
		}
	}
}

func TestCursorScrollsGrid(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 14})
	if m.layout.Cols != 1 || m.layout.VisibleRows != 1 {
		t.Fatalf("layout = %+v, want one card on screen", m.layout)
	}

	m = update(t, m, keyRunes("j"))
	m = update(t, m, keyRunes("j"))
	if m.cursor != 2 || m.scrollRow != 2 {
		t.Fatalf("cursor/scroll = %d/%d, want 2/2", m.cursor, m.scrollRow)
	}
	if !strings.Contains(ansi.Strip(m.View()), "carol") {
		t.Fatal("expected the cursor card on screen")
	}
	m = update(t, m, keyRunes("g"))
	if m.scrollRow != 0 {
		t.Fatalf("scroll = %d, want 0", m.scrollRow)
	}
}

func TestThumbnailMessages(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	m = update(t, m, commands.ThumbnailLoadedMsg{Seq: m.fetchSeq - 1, ID: "1", Image: img})
	if m.thumbs.has("1") {
		t.Fatal("stale thumbnail stored")
	}
	m = update(t, m, commands.ThumbnailLoadedMsg{Seq: m.fetchSeq, ID: "1", Image: img})
	if !m.thumbs.has("1") {
		t.Fatal("thumbnail not stored")
	}
	m = update(t, m, commands.ThumbnailFailedMsg{Seq: m.fetchSeq, ID: "2", Err: context.Canceled})
	if m.thumbs.has("2") {
		t.Fatal("canceled download marked as failed")
	}
	m = update(t, m, commands.ThumbnailFailedMsg{Seq: m.fetchSeq, ID: "2", Err: errors.New("404")})
	if !m.thumbs.has("2") {
		t.Fatal("failed download not recorded")
	}
}

func TestViewShowsLoadingAndCards(t *testing.T) {
	m := newTestModel(t, &fakeFetcher{})
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Loading...") {
		t.Fatal("expected loading indicator")
	}
	for _, s := range []string{"SnapSphere", "Search Photos...", "Dark Mode"} {
		if !strings.Contains(out, s) {
			t.Fatalf("header missing %q", s)
		}
	}

	m = update(t, m, commands.PhotosLoadedMsg{Seq: m.fetchSeq, Photos: samplePhotos()})
	out = ansi.Strip(m.View())
	if strings.Contains(out, "Loading...") {
		t.Fatal("loading indicator still shown")
	}
	for _, s := range []string{"By: alice", "♥ 5", "By: bob", "♥ 12"} {
		if !strings.Contains(out, s) {
			t.Fatalf("grid missing %q", s)
		}
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 40 {
		t.Fatalf("view lines = %d, want 40", len(lines))
	}
}

func TestStatusMessages(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	updated, cmd := m.Update(commands.StatusMsgCmd{Msg: "Image URL copied"})
	m = updated.(Model)
	if m.statusMsg != "Image URL copied" || cmd == nil {
		t.Fatalf("statusMsg = %q", m.statusMsg)
	}

	m = update(t, m, commands.ErrMsg{Err: errors.New("no clipboard")})
	if !strings.Contains(m.statusMsg, "no clipboard") {
		t.Fatalf("statusMsg = %q", m.statusMsg)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		m := loadedModel(t, samplePhotos())
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", key.String())
		}
		if m.fetchCtx.Err() == nil {
			t.Fatalf("%s: expected in-flight fetch to be canceled", key.String())
		}
	}
}

func TestInfoLine_NamesFetchedTerm(t *testing.T) {
	m := loadedModel(t, samplePhotos())
	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes("cats"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, commands.PhotosLoadedMsg{Seq: m.fetchSeq, Term: "cats", Photos: samplePhotos()[:2]})

	// Editing again must not rename the photos on screen.
	m = update(t, m, keyRunes("/"))
	m = update(t, m, keyRunes(" and dogs"))

	if m.searchTerm != "cats and dogs" {
		t.Fatalf("searchTerm = %q, want %q", m.searchTerm, "cats and dogs")
	}
	if got, want := m.infoText(), `2 photos for "cats" · 1/2`; got != want {
		t.Errorf("infoText() = %q, want %q", got, want)
	}
	if out := ansi.Strip(m.View()); !strings.Contains(out, `2 photos for "cats"`) {
		t.Errorf("view missing fetched term:\n%s", out)
	}
}

func TestEmptyText_NamesFetchedTerm(t *testing.T) {
	m := loadedModel(t, nil)
	m = update(t, m, commands.PhotosLoadedMsg{Seq: m.fetchSeq, Term: "zzz"})
	m.searchTerm = "zzzq"

	if got, want := m.emptyText(), `No photos found for "zzz"`; got != want {
		t.Errorf("emptyText() = %q, want %q", got, want)
	}
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/javiermolinar/snapsphere/internal/tui/commands"
	"github.com/javiermolinar/snapsphere/internal/unsplash"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.thumbs.resetRendered()
		m.relayout()
		return m, nil

	case spinner.TickMsg:
		// Dropping the tick while idle stops the spinner; startFetch restarts it.
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.PhotosLoadedMsg:
		if msg.Seq != m.fetchSeq {
			LogFetch("FETCH_STALE", msg.Seq, msg.Term, logrus.Fields{"current": m.fetchSeq})
			return m, nil
		}
		m.photos = msg.Photos
		m.shownTerm = msg.Term
		m.loading = false
		m.errMsg = ""
		m.cursor = 0
		m.scrollRow = 0
		m.thumbs.retain(m.photos)
		LogFetch("FETCH_DONE", msg.Seq, msg.Term, logrus.Fields{"count": len(msg.Photos)})
		return m, m.loadMissingThumbnails()

	case commands.FetchFailedMsg:
		if msg.Seq != m.fetchSeq {
			LogFetch("FETCH_STALE", msg.Seq, msg.Term, logrus.Fields{"current": m.fetchSeq})
			return m, nil
		}
		m.loading = false
		m.errMsg = unsplash.UserMessage
		LogError("fetch", msg.Err)
		// The canceled request may have taken unfinished thumbnails with it.
		return m, m.loadMissingThumbnails()

	case commands.ThumbnailLoadedMsg:
		if msg.Seq == m.fetchSeq {
			m.thumbs.store(msg.ID, msg.Image)
		}
		return m, nil

	case commands.ThumbnailFailedMsg:
		if msg.Seq == m.fetchSeq && !errors.Is(msg.Err, context.Canceled) {
			m.thumbs.fail(msg.ID)
			LogError("thumbnail "+msg.ID, msg.Err)
		}
		return m, nil

	case commands.SearchDebounceMsg:
		if msg.Edit != m.editSeq {
			return m, nil
		}
		return m, m.startFetch("debounce")

	case commands.ErrMsg:
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		LogError("command", msg.Err)
		return m, tea.Tick(5*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Cursor blink and other component messages
	if m.mode == ModeSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	return m, nil
}

// startFetch supersedes any in-flight fetch and requests the photos for the
// current search term.
func (m *Model) startFetch(reason string) tea.Cmd {
	if m.cancelFetch != nil {
		m.cancelFetch()
	}
	m.fetchSeq++
	m.fetchCtx, m.cancelFetch = context.WithCancel(m.ctx)

	wasLoading := m.loading
	m.loading = true
	LogFetch("FETCH_START", m.fetchSeq, m.searchTerm, logrus.Fields{"reason": reason})

	cmd := commands.FetchPhotos(m.fetchCtx, m.fetcher, m.fetchSeq, m.searchTerm)
	if wasLoading {
		return cmd
	}
	return tea.Batch(cmd, m.spinner.Tick)
}

// loadMissingThumbnails downloads thumbnails not yet in the cache.
func (m *Model) loadMissingThumbnails() tea.Cmd {
	return commands.FetchThumbnails(m.fetchCtx, m.fetcher, m.fetchSeq, m.thumbs.missing(m.photos))
}

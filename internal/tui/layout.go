package tui

import "github.com/javiermolinar/snapsphere/internal/tui/view"

const (
	appPadX    = 1
	gridGap    = 1
	statusBarH = 1
	footerH    = 1
	minThumbH  = 3
	maxThumbH  = 12
)

// GridColumns returns the number of card columns for an inner width.
func GridColumns(innerW int) int {
	switch {
	case innerW >= 120:
		return 4
	case innerW >= 90:
		return 3
	case innerW >= 56:
		return 2
	default:
		return 1
	}
}

// Layout holds the geometry of the gallery screen for one terminal size.
type Layout struct {
	InnerW int
	InnerH int

	Header view.HeaderGeometry

	GridTop     int // screen row of the first grid line
	GridH       int
	Cols        int
	CardW       int
	CardH       int
	ThumbW      int
	ThumbH      int
	VisibleRows int
}

func computeLayout(width, height, titleW, searchBtnW, themeBtnW int) Layout {
	l := Layout{
		InnerW: width - 2*appPadX,
		InnerH: height,
	}
	if l.InnerW <= 0 || l.InnerH <= 0 {
		return Layout{}
	}

	l.Header = view.LayoutHeader(l.InnerW, titleW, searchBtnW, themeBtnW)
	l.GridTop = view.HeaderHeight + statusBarH
	l.GridH = l.InnerH - l.GridTop - footerH
	if l.GridH <= 0 {
		l.GridH = 0
		return l
	}

	l.Cols = GridColumns(l.InnerW)
	l.CardW = (l.InnerW - gridGap*(l.Cols-1)) / l.Cols
	l.ThumbW = max(l.CardW-2, 1)

	// Half blocks make a cell two pixels tall, so a 3:2 photo needs
	// roughly width/3 rows.
	l.ThumbH = min(max(l.ThumbW/3, minThumbH), maxThumbH)
	if l.ThumbH+view.CardChromeH > l.GridH {
		l.ThumbH = max(l.GridH-view.CardChromeH, 1)
	}
	l.CardH = l.ThumbH + view.CardChromeH
	l.VisibleRows = max(l.GridH/l.CardH, 1)
	return l
}

// searchBoxRect returns the screen region of the search box.
func (l Layout) searchBoxRect() Rect {
	return Rect{X: appPadX + l.Header.SearchX, Y: 0, W: l.Header.SearchW, H: view.HeaderHeight}
}

func (l Layout) searchButtonRect() Rect {
	return Rect{X: appPadX + l.Header.SearchBtnX, Y: 0, W: l.Header.SearchBtnW, H: view.HeaderHeight}
}

func (l Layout) themeButtonRect() Rect {
	return Rect{X: appPadX + l.Header.ThemeBtnX, Y: 0, W: l.Header.ThemeBtnW, H: view.HeaderHeight}
}

// cardRect returns the screen region of card index when it is on screen.
func (l Layout) cardRect(index, scrollRow int) (Rect, bool) {
	if l.Cols <= 0 || index < 0 {
		return Rect{}, false
	}
	row := index / l.Cols
	col := index % l.Cols
	if row < scrollRow || row >= scrollRow+l.VisibleRows {
		return Rect{}, false
	}
	return Rect{
		X: appPadX + col*(l.CardW+gridGap),
		Y: l.GridTop + (row-scrollRow)*l.CardH,
		W: l.CardW,
		H: l.CardH,
	}, true
}

// cardAt returns the index of the card under the cell (x, y).
func (l Layout) cardAt(x, y, scrollRow, count int) (int, bool) {
	if l.Cols <= 0 || l.CardW <= 0 || l.CardH <= 0 {
		return 0, false
	}
	gx := x - appPadX
	gy := y - l.GridTop
	if gx < 0 || gy < 0 || gy >= l.VisibleRows*l.CardH {
		return 0, false
	}
	col := gx / (l.CardW + gridGap)
	if col >= l.Cols || gx%(l.CardW+gridGap) >= l.CardW {
		return 0, false
	}
	index := (scrollRow+gy/l.CardH)*l.Cols + col
	if index >= count {
		return 0, false
	}
	return index, true
}

// scrollFor returns the scroll row that keeps cursor visible, starting from
// the current scroll row.
func (l Layout) scrollFor(cursor, scrollRow, count int) int {
	if l.Cols <= 0 || count == 0 {
		return 0
	}
	row := cursor / l.Cols
	if row < scrollRow {
		scrollRow = row
	}
	if row >= scrollRow+l.VisibleRows {
		scrollRow = row - l.VisibleRows + 1
	}
	totalRows := (count + l.Cols - 1) / l.Cols
	maxScroll := max(totalRows-l.VisibleRows, 0)
	return min(max(scrollRow, 0), maxScroll)
}

package state

// Rows taken by the title bar (text and rule) plus the list header.
const listChromeRows = 3

// Rows taken above the detail body by the title bar and the blank separator.
const detailChromeRows = 3

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// ListPageRows is the number of entry rows the list pane can show.
func ListPageRows(height int) int {
	return atLeastOne(height - listChromeRows)
}

// DetailPageRows is the number of body rows below a detail header of
// headerRows lines.
func DetailPageRows(height, headerRows int) int {
	return atLeastOne(height - headerRows - detailChromeRows)
}

// ListWindow returns the half-open range of rows to draw for page size
// pageRows and cursor. It anchors at the top and scrolls just enough to keep
// the cursor on screen.
func ListWindow(total, cursor, pageRows int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	pageRows = atLeastOne(pageRows)
	cursor = ClampCursor(cursor, total)
	start := cursor - pageRows + 1
	if start < 0 {
		start = 0
	}
	end := pageRows
	if cursor+1 > end {
		end = cursor + 1
	}
	if end > total {
		end = total
	}
	return start, end
}

// ScrollWindow returns the range of wrapped lines visible from offset.
func ScrollWindow(total, offset, rows int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	offset = ClampCursor(offset, total)
	end := offset + atLeastOne(rows)
	if end > total {
		end = total
	}
	return offset, end
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

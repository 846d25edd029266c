package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/g0at1/fex/internal/cmdline"
	fsutil "github.com/g0at1/fex/internal/fs"
	statepkg "github.com/g0at1/fex/internal/state"
	"github.com/g0at1/fex/internal/textutil"
	pagerui "github.com/g0at1/fex/internal/ui/pager"
)

// Renderer handles all UI rendering.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	now    func() time.Time
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		now:    time.Now,
	}
}

// Render draws the entire UI based on state.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	listWidth := w
	if state.PreviewEnabled {
		listWidth = w * 55 / 100
	}

	r.drawHeader(state, listWidth)
	r.drawListing(state, listWidth, h)

	if state.PreviewEnabled && listWidth < w {
		for y := 0; y < h; y++ {
			r.screen.SetContent(listWidth, y, '|', nil, tcell.StyleDefault.Foreground(r.theme.DimFg))
		}
		r.drawPreview(state, listWidth+1, w-listWidth-1, h)
	}

	r.drawBottom(state, listWidth, w, h)

	if state.Pager != nil {
		r.drawPager(state, w, h)
	}
	if state.ModalError != "" {
		r.drawErrorModal(state.ModalError, w, h)
	}

	r.screen.Show()
}

func (r *Renderer) drawHeader(state *statepkg.AppState, width int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Reverse(true)

	header := " " + state.CurrentPath
	if state.Branch != "" {
		header += fmt.Sprintf("  (%s)", state.Branch)
	}
	header = textutil.SanitizeTerminalText(header)

	endX := r.drawTextLine(0, 0, width, textutil.TruncateToWidth(header, width), style)
	r.fillLine(endX, 0, width, style)
	r.drawRule(0, 1, width, tcell.StyleDefault)
}

func (r *Renderer) drawListing(state *statepkg.AppState, width, height int) {
	visible := state.VisibleRows()
	offset := statepkg.ComputeOffset(len(state.Entries), state.SelectedIndex, visible)
	now := r.now()

	for row := 0; row < visible; row++ {
		idx := offset + row
		if idx >= len(state.Entries) {
			break
		}
		r.drawEntryRow(state, idx, 2+row, width, now)
	}
}

func (r *Renderer) drawEntryRow(state *statepkg.AppState, idx, y, width int, now time.Time) {
	entry := state.Entries[idx]
	selected := idx == state.SelectedIndex

	prefixStyle := tcell.StyleDefault
	nameStyle := tcell.StyleDefault.Foreground(r.theme.FileFg)
	switch {
	case entry.IsSymlink:
		nameStyle = tcell.StyleDefault.Foreground(r.theme.SymlinkFg)
	case entry.IsDir:
		nameStyle = tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
	}
	if selected {
		prefixStyle = prefixStyle.Reverse(true)
		nameStyle = nameStyle.Reverse(true)
	}

	prefix := fsutil.FormatColumns(entry.Meta, now)
	displayName := " " + entry.Name
	if entry.IsDir {
		displayName += "/"
	}
	displayName = textutil.SanitizeTerminalText(displayName)

	endX := r.drawTextLine(0, y, width, prefix, prefixStyle)
	if endX < width {
		r.drawTextLine(endX, y, width-endX, displayName, nameStyle)
	}
}

func (r *Renderer) drawPreview(state *statepkg.AppState, startX, width, height int) {
	if width <= 1 {
		return
	}

	title := " Preview"
	if entry := state.CurrentEntry(); entry != nil {
		title = " Preview: " + entry.Name
	}
	title = textutil.SanitizeTerminalText(title)

	titleStyle := tcell.StyleDefault.Reverse(true)
	endX := r.drawTextLine(startX, 0, width, textutil.TruncateToWidth(title, width), titleStyle)
	r.fillLine(endX, 0, startX+width, titleStyle)
	r.drawRule(startX, 1, width, tcell.StyleDefault.Foreground(r.theme.DimFg))

	if state.Preview == nil {
		return
	}

	style := tcell.StyleDefault.Foreground(r.theme.PreviewFg)
	for i, line := range state.Preview.Lines {
		y := 2 + i
		if y >= height-1 {
			break
		}
		line = textutil.SanitizeTerminalText(line)
		r.drawTextLine(startX, y, width, textutil.TruncateToWidth(line, width), style)
	}
}

func (r *Renderer) drawBottom(state *statepkg.AppState, listWidth, width, height int) {
	if height < 2 {
		return
	}

	switch {
	case state.CommandActive:
		r.drawCommandLine(state, listWidth, height)
	case state.Prompt != nil:
		r.drawPrompt(state.Prompt, width, height)
	default:
		r.drawStatusLine(state, width, height)
	}
}

func (r *Renderer) drawCommandLine(state *statepkg.AppState, width, height int) {
	pwdLine := textutil.TruncateToWidth("PWD: "+state.CurrentPath, width)
	r.drawTextLine(0, height-2, width, textutil.SanitizeTerminalText(pwdLine), tcell.StyleDefault)

	style := tcell.StyleDefault.Foreground(r.theme.CommandFg)
	base := "Cmd: " + state.CommandBuffer
	endX := r.drawTextLine(0, height-1, width, textutil.SanitizeTerminalText(base), style)

	// Inline completion hint for cd-style buffers.
	if cmdline.Classify(state.CommandBuffer) == cmdline.KindPath && state.CommandBuffer != "cd" {
		completion := cmdline.Complete(state.CommandBuffer[3:], state.CurrentPath)
		if completion.Suffix != "" && endX < width {
			hintStyle := tcell.StyleDefault.Foreground(r.theme.SuggestFg).Bold(true)
			r.drawTextLine(endX, height-1, width-endX, completion.Suffix, hintStyle)
		}
	}

	r.screen.ShowCursor(min(textutil.DisplayWidth(base), width-1), height-1)
}

func (r *Renderer) drawPrompt(prompt *statepkg.PromptState, width, height int) {
	style := tcell.StyleDefault.Bold(true)
	text := prompt.Label + prompt.Buffer
	endX := r.drawTextLine(0, height-1, width, textutil.SanitizeTerminalText(text), style)
	r.fillLine(endX, height-1, width, tcell.StyleDefault)
	r.screen.ShowCursor(min(textutil.DisplayWidth(text), width-1), height-1)
}

func (r *Renderer) drawStatusLine(state *statepkg.AppState, width, height int) {
	r.screen.HideCursor()
	style := tcell.StyleDefault.Foreground(r.theme.StatusFg)

	var text string
	switch {
	case state.StatusActive(r.now()):
		text = state.StatusMessage
	case state.ClipboardHint != "":
		text = state.ClipboardHint
	}

	position := fmt.Sprintf("%d/%d", state.SelectedIndex+1, len(state.Entries))
	if state.Search != nil {
		position = fmt.Sprintf("match %d/%d  %s", state.Search.Cursor+1, len(state.Search.Matches), position)
	}

	endX := r.drawTextLine(0, height-1, width, textutil.SanitizeTerminalText(text), style)
	r.fillLine(endX, height-1, width, tcell.StyleDefault)

	posX := width - textutil.DisplayWidth(position) - 1
	if posX > endX {
		r.drawTextLine(posX, height-1, width-posX, position, style.Dim(true))
	}
}

// ===== PAGER OVERLAY =====

func (r *Renderer) drawPager(state *statepkg.AppState, w, h int) {
	boxW := w * 8 / 10
	boxH := h * 8 / 10
	if boxW < 4 || boxH < 5 {
		return
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	base := tcell.StyleDefault
	r.clearRegion(boxX, boxY, boxW, boxH, base)
	r.drawBox(boxX, boxY, boxW, boxH, base)

	title := textutil.TruncateToWidth(" "+state.Pager.Title+" ", boxW-4)
	r.drawTextLine(boxX+2, boxY, boxW-4, textutil.SanitizeTerminalText(title), base.Bold(true))

	contentRows := state.PagerRows()
	classified := pagerui.ClassifyLines(state.Pager.Lines)
	innerW := boxW - 4

	for row := 0; row < contentRows; row++ {
		idx := state.Pager.Offset + row
		if idx >= len(classified) {
			break
		}
		r.drawPagerLine(classified[idx], boxX+2, boxY+1+row, innerW)
	}

	footer := fmt.Sprintf("%d-%d/%d  j/k scroll  g/G home/end  q close",
		min(state.Pager.Offset+1, len(state.Pager.Lines)),
		min(state.Pager.Offset+contentRows, len(state.Pager.Lines)),
		len(state.Pager.Lines))
	r.drawTextLine(boxX+2, boxY+boxH-2, innerW, textutil.TruncateToWidth(footer, innerW), base.Dim(true))
}

func (r *Renderer) drawPagerLine(line pagerui.Line, x, y, maxWidth int) {
	base := tcell.StyleDefault

	var style tcell.Style
	switch line.Kind {
	case pagerui.KindSection, pagerui.KindHint:
		style = base.Dim(true)
	case pagerui.KindFileHeader:
		style = base.Bold(true)
	case pagerui.KindAddition:
		style = base.Foreground(r.theme.AdditionFg)
	case pagerui.KindDeletion:
		style = base.Foreground(r.theme.DeletionFg)
	case pagerui.KindHunk:
		pre := textutil.SanitizeTerminalText(line.Pre)
		marker := textutil.SanitizeTerminalText(line.Marker)
		post := textutil.SanitizeTerminalText(line.Post)
		endX := r.drawTextLine(x, y, maxWidth, pre, base)
		if endX < x+maxWidth {
			endX = r.drawTextLine(endX, y, x+maxWidth-endX, marker, base.Foreground(r.theme.HunkFg))
		}
		if endX < x+maxWidth {
			r.drawTextLine(endX, y, x+maxWidth-endX, post, base)
		}
		return
	default:
		style = base.Bold(true)
	}

	text := textutil.SanitizeTerminalText(line.Text)
	r.drawTextLine(x, y, maxWidth, textutil.TruncateToWidth(text, maxWidth), style)
}

// ===== ERROR MODAL =====

func (r *Renderer) drawErrorModal(message string, w, h int) {
	lines := strings.Split(message, "\n")
	boxW := 0
	for _, line := range lines {
		if lw := textutil.DisplayWidth(line); lw > boxW {
			boxW = lw
		}
	}
	boxW += 4
	if boxW > w {
		boxW = w
	}
	boxH := len(lines) + 4
	if boxH > h {
		boxH = h
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	style := tcell.StyleDefault.Background(r.theme.ErrorBg).Foreground(r.theme.ErrorFg).Bold(true)
	r.clearRegion(boxX, boxY, boxW, boxH, style)
	r.drawBox(boxX, boxY, boxW, boxH, style)

	for i, line := range lines {
		if 1+i >= boxH-2 {
			break
		}
		line = textutil.SanitizeTerminalText(line)
		r.drawTextLine(boxX+2, boxY+1+i, boxW-4, textutil.TruncateToWidth(line, boxW-4), style)
	}

	prompt := "<Press any key>"
	promptX := boxX + boxW - textutil.DisplayWidth(prompt) - 2
	if promptX < boxX+1 {
		promptX = boxX + 1
	}
	r.drawTextLine(promptX, boxY+boxH-2, boxW-2, prompt, style)
}

// ===== BOX HELPERS =====

func (r *Renderer) clearRegion(x, y, w, h int, style tcell.Style) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			r.screen.SetContent(xx, yy, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	for xx := x; xx < x+w; xx++ {
		r.screen.SetContent(xx, y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(xx, y+h-1, tcell.RuneHLine, nil, style)
	}
	for yy := y; yy < y+h; yy++ {
		r.screen.SetContent(x, yy, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x+w-1, yy, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package state

import (
	"fmt"
	"os"
	"sort"
	"strings"

	fsutil "github.com/g0at1/fex/internal/fs"
	"github.com/g0at1/fex/internal/textutil"
)

const (
	previewByteLimit int64 = 64 * 1024
	previewMaxLines        = 400
)

// BuildPreview refreshes the preview pane for the current selection. Errors
// never escape: unreadable or undecodable content renders as a typed
// placeholder line inside the pane.
func BuildPreview(s *AppState) {
	if !s.PreviewEnabled {
		s.Preview = nil
		return
	}

	entry := s.CurrentEntry()
	if entry == nil {
		s.Preview = nil
		return
	}

	if entry.IsDir {
		s.Preview = &PreviewData{IsDir: true, Lines: previewDirectory(entry.FullPath)}
		return
	}
	s.Preview = &PreviewData{Lines: previewFile(entry.FullPath)}
}

func previewDirectory(path string) []string {
	children, err := os.ReadDir(path)
	if err != nil {
		return []string{fmt.Sprintf("<Error reading directory: %v>", err)}
	}
	if len(children) == 0 {
		return []string{"<Empty directory>"}
	}

	names := make([]string, 0, len(children))
	for _, c := range children {
		name := c.Name()
		if c.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > previewMaxLines {
		names = names[:previewMaxLines]
	}
	return names
}

func previewFile(path string) []string {
	content, err := fsutil.ReadFileHead(path, previewByteLimit)
	if err != nil {
		return []string{fmt.Sprintf("<Error while reading: %v>", err)}
	}
	if len(content) == 0 {
		return []string{"<Empty file>"}
	}
	if !fsutil.IsTextFile(path, content) {
		return []string{
			"<Binary file or of unknown format>",
			"Cannot show in form of text.",
		}
	}

	text := fsutil.NormalizeTextContent(content)
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > previewMaxLines {
		lines = lines[:previewMaxLines]
	}
	for i, line := range lines {
		lines[i] = textutil.ExpandTabs(line, textutil.DefaultTabWidth)
	}
	return lines
}

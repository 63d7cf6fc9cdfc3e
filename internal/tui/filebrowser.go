package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type fileEntry struct {
	name string
	dir  bool
}

// FileBrowser lets the user pick a file to publish, starting from the
// working directory. Dotfiles are hidden.
type FileBrowser struct {
	dir     string
	entries *SelectableList[fileEntry]
}

// NewFileBrowser opens a browser rooted at dir.
func NewFileBrowser(dir string) (*FileBrowser, error) {
	fb := &FileBrowser{dir: dir, entries: NewSelectableList[fileEntry](nil)}
	if err := fb.list(); err != nil {
		return nil, err
	}
	return fb, nil
}

func (fb *FileBrowser) list() error {
	dirents, err := os.ReadDir(fb.dir)
	if err != nil {
		return err
	}
	entries := make([]fileEntry, 0, len(dirents))
	for _, d := range dirents {
		if strings.HasPrefix(d.Name(), ".") {
			continue
		}
		entries = append(entries, fileEntry{name: d.Name(), dir: d.IsDir()})
	}
	fb.entries.ReplaceReset(entries)
	return nil
}

// Next moves the cursor down, wrapping.
func (fb *FileBrowser) Next() { fb.entries.Next() }

// Previous moves the cursor up, wrapping.
func (fb *FileBrowser) Previous() { fb.entries.Previous() }

// Enter descends into the highlighted directory, or returns the full path
// of the highlighted file. path is empty until a file is chosen.
func (fb *FileBrowser) Enter() (path string, err error) {
	entry, ok := fb.entries.Item()
	if !ok {
		return "", nil
	}
	if entry.dir {
		fb.dir = filepath.Join(fb.dir, entry.name)
		return "", fb.list()
	}
	return filepath.Join(fb.dir, entry.name), nil
}

// Parent moves up one directory. At the filesystem root it stays put.
func (fb *FileBrowser) Parent() error {
	parent := filepath.Dir(fb.dir)
	if parent == fb.dir {
		return nil
	}
	fb.dir = parent
	return fb.list()
}

// View renders the directory listing as a popup.
func (fb *FileBrowser) View(width, height int) string {
	cursor, _ := fb.entries.Selected()
	var lines []string
	lines = append(lines, popupTitleStyle.Render(fb.dir))
	for i, e := range fb.entries.Items() {
		name := e.name
		if e.dir {
			name += "/"
		}
		if i == cursor {
			lines = append(lines, selectedRowStyle.Render(">> "+name))
		} else {
			lines = append(lines, rowStyle.Render("   "+name))
		}
	}
	if len(fb.entries.Items()) == 0 {
		lines = append(lines, rowStyle.Render("   (empty)"))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return renderPopup(content, width, height)
}

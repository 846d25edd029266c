package state

import (
	fsutil "github.com/g0at1/fex/internal/fs"
)

// LoadDirectory (re)reads the entry list for the state's current directory,
// or for the given path. Any confirmed search session is invalidated: its
// indices belong to the old listing.
func LoadDirectory(s *AppState, path ...string) error {
	dirPath := s.CurrentPath
	if len(path) > 0 {
		dirPath = path[0]
	}

	entries, err := fsutil.List(dirPath, s.ShowHidden)
	if err != nil {
		return err
	}

	s.CurrentPath = dirPath
	s.Entries = entries
	s.Search = nil
	s.ClampSelection()
	return nil
}

// reloadKeepingSelection re-reads the current directory and tries to keep
// the selection on the same entry name.
func reloadKeepingSelection(s *AppState) error {
	var keep string
	if e := s.CurrentEntry(); e != nil {
		keep = e.Name
	}

	if err := LoadDirectory(s); err != nil {
		return err
	}

	if keep != "" {
		for i, e := range s.Entries {
			if e.Name == keep {
				s.SelectedIndex = i
				break
			}
		}
	}
	s.ClampSelection()
	return nil
}

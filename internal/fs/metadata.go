package fs

import "os"

// Stat builds the metadata record for path using lstat so symlinks describe
// themselves. It never fails past this boundary: unreadable paths yield the
// sentinel record.
func Stat(path string) Metadata {
	info, err := os.Lstat(path)
	if err != nil {
		return UnknownMetadata()
	}

	meta := Metadata{
		ModeString: formatMode(info.Mode()),
		NLink:      1,
		SizeBytes:  info.Size(),
		ModTime:    info.ModTime(),
	}
	fillOwnership(info, &meta)
	return meta
}

// formatMode renders the classic ls-style type+permission column.
func formatMode(mode os.FileMode) string {
	buf := [10]byte{}
	switch {
	case mode.IsDir():
		buf[0] = 'd'
	case mode&os.ModeSymlink != 0:
		buf[0] = 'l'
	default:
		buf[0] = '-'
	}

	const rwx = "rwxrwxrwx"
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i]
		} else {
			buf[i+1] = '-'
		}
	}
	return string(buf[:])
}

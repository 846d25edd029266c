//go:build !windows

package fs

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
)

var (
	lookupUser  = user.LookupId
	lookupGroup = user.LookupGroupId
)

// fillOwnership resolves link count and owner/group names from the raw stat
// record, falling back to numeric IDs when the lookup has no name for them.
func fillOwnership(info os.FileInfo, meta *Metadata) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}

	meta.NLink = int(st.Nlink)

	uid := strconv.FormatUint(uint64(st.Uid), 10)
	if u, err := lookupUser(uid); err == nil && u.Username != "" {
		meta.Owner = u.Username
	} else {
		meta.Owner = uid
	}

	gid := strconv.FormatUint(uint64(st.Gid), 10)
	if g, err := lookupGroup(gid); err == nil && g.Name != "" {
		meta.Group = g.Name
	} else {
		meta.Group = gid
	}
}

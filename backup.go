package finbook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Backup snapshots the store files once per calendar month. It is a
// plain file copy at the storage-path level: it knows nothing about
// the stores' formats.
type Backup struct {
	Dir     string   // snapshot directory
	Marker  string   // file recording the last backed-up month ("YYYY-MM")
	Sources []string // store file paths to copy
}

// Due reports whether no snapshot has been taken this month. A
// missing or unreadable marker means a backup is due.
func (b Backup) Due(today Date) bool {
	data, err := os.ReadFile(b.Marker)
	if err != nil {
		return true
	}
	return strings.TrimSpace(string(data)) != today.MonthKey()
}

// Run copies every existing source file into the snapshot directory,
// suffixed with the month, then records the month in the marker file.
// Missing sources are skipped. Returns the number of files copied.
func (b Backup) Run(today Date) (int, error) {
	if !b.Due(today) {
		return 0, nil
	}
	if err := os.MkdirAll(b.Dir, 0755); err != nil {
		return 0, storageErr("mkdir", b.Dir, err)
	}

	month := today.MonthKey()
	copied := 0
	for _, src := range b.Sources {
		ext := filepath.Ext(src)
		base := strings.TrimSuffix(filepath.Base(src), ext)
		dst := filepath.Join(b.Dir, fmt.Sprintf("%s_%s%s", base, month, ext))

		err := copyFile(src, dst)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return copied, err
		}
		copied++
	}

	if copied > 0 {
		if err := writeFileAtomic(b.Marker, []byte(month)); err != nil {
			return copied, err
		}
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return storageErr("create", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return storageErr("copy to", dst, err)
	}
	return out.Close()
}

package loader

import (
	"github.com/pkg/errors"
	"io/fs"
	"path/filepath"
	"pricecomparator/internal/model"
	"regexp"
	"strings"
	"time"
)

type fileKind int

const (
	fileKindUnknown fileKind = iota
	fileKindProducts
	fileKindDiscounts
)

var (
	productFileNamePattern  = regexp.MustCompile(`^([a-zA-Z]+)_(\d{4}-\d{2}-\d{2})\.csv$`)
	discountFileNamePattern = regexp.MustCompile(`^([a-zA-Z]+)_discounts_(\d{4}-\d{2}-\d{2})\.csv$`)
)

var ErrInvalidFileName = errors.New("invalid snapshot file name")

type snapshotFile struct {
	path  string
	kind  fileKind
	store string
	date  time.Time
}

// parseFileName extracts the store and snapshot date from names like
// lidl_2025-05-01.csv and lidl_discounts_2025-05-01.csv.
func parseFileName(name string) (fileKind, string, time.Time, error) {
	kind := fileKindProducts
	m := productFileNamePattern.FindStringSubmatch(name)
	if m == nil {
		kind = fileKindDiscounts
		m = discountFileNamePattern.FindStringSubmatch(name)
	}
	if m == nil {
		return fileKindUnknown, "", time.Time{}, errors.Wrapf(ErrInvalidFileName, "file: %s", name)
	}
	date, err := time.Parse(model.DateLayout, m[2])
	if err != nil {
		return fileKindUnknown, "", time.Time{}, errors.Wrapf(ErrInvalidFileName, "file: %s, date: %v", name, err)
	}
	return kind, m[1], date, nil
}

// findSnapshotFiles walks dir recursively in lexical order. CSV files with
// an unrecognised name and entries that cannot be read are logged and
// skipped. An unreadable dir yields no files.
func (l Loader) findSnapshotFiles(dir string) []snapshotFile {
	var files []snapshotFile
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				l.Logger.Errorf("findSnapshotFiles: Error reading data directory: %s, err: %v", dir, err)
				return nil
			}
			l.Logger.Warnf("findSnapshotFiles: Skipping unreadable entry: %s, err: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".csv") {
			return nil
		}
		kind, store, date, err := parseFileName(d.Name())
		if err != nil {
			l.Logger.Warnf("findSnapshotFiles: Skipping file: %s, err: %v", path, err)
			return nil
		}
		files = append(files, snapshotFile{path: path, kind: kind, store: store, date: date})
		return nil
	})
	return files
}

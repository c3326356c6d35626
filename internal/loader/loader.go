package loader

import (
	"context"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"os"
	"pricecomparator/internal/model"
)

type Loader struct {
	Logger  logger
	Workers int
}

type logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

type parsedFile struct {
	products  []model.Product
	discounts []model.Discount
}

// Load reads every snapshot file under dir. Files that cannot be read or
// parsed are logged and skipped, so a missing or unreadable dir loads an
// empty catalog. Only cancellation of ctx is an error.
func (l Loader) Load(ctx context.Context, dir string) ([]model.Product, []model.Discount, error) {
	files := l.findSnapshotFiles(dir)
	l.Logger.Infof("Load: Found %d snapshot file(s) in %s", len(files), dir)

	results := make([]parsedFile, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if l.Workers > 0 {
		g.SetLimit(l.Workers)
	}
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := l.parseFile(f)
			if err != nil {
				l.Logger.Errorf("Load: Skipping file: %s, err: %v", f.path, err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, errors.Wrap(err, "loading snapshot files interrupted")
	}

	var (
		products      []model.Product
		discounts     []model.Discount
		productFiles  int
		discountFiles int
	)
	for i, res := range results {
		products = append(products, res.products...)
		discounts = append(discounts, res.discounts...)
		if files[i].kind == fileKindProducts {
			productFiles++
		} else {
			discountFiles++
		}
	}
	l.Logger.Infof("Load: Loaded %d product(s) from %d file(s)", len(products), productFiles)
	l.Logger.Infof("Load: Loaded %d discount(s) from %d file(s)", len(discounts), discountFiles)
	return products, discounts, nil
}

func (l Loader) parseFile(f snapshotFile) (parsedFile, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return parsedFile{}, errors.Wrapf(err, "error opening file: %s", f.path)
	}
	defer func() {
		if err := fh.Close(); err != nil {
			l.Logger.Errorf("parseFile: Error closing file: %s, err: %v", f.path, err)
		}
	}()

	var res parsedFile
	switch f.kind {
	case fileKindProducts:
		res.products, err = parseProducts(fh, f.store, f.date)
	case fileKindDiscounts:
		res.discounts, err = parseDiscounts(fh, f.store, f.date)
	}
	if err != nil {
		return parsedFile{}, errors.Wrapf(err, "error parsing file: %s", f.path)
	}
	l.Logger.Debugf("parseFile: Parsed %d product(s), %d discount(s) from %s",
		len(res.products), len(res.discounts), f.path)
	return res, nil
}

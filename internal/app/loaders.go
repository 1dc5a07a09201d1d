package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/specialistvlad/treegrid/internal/config"
	"github.com/specialistvlad/treegrid/internal/fsutil"
	"github.com/specialistvlad/treegrid/internal/hcl_adapter"
	"github.com/specialistvlad/treegrid/internal/yamlrecords"
)

// loaderFor returns the record loader for a configured format.
func loaderFor(format string) config.Loader {
	switch format {
	case "hcl":
		return hcl_adapter.NewLoader()
	case "yaml", "json":
		return yamlrecords.NewLoader()
	default:
		return &autoLoader{hcl: hcl_adapter.NewLoader(), yaml: yamlrecords.NewLoader()}
	}
}

// autoLoader picks the loader by file extension. Directories are handed to
// both loaders, each of which only reads its own extensions. HCL records come
// first, then YAML and JSON records.
type autoLoader struct {
	hcl  config.Loader
	yaml config.Loader
}

func (l *autoLoader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	var hclPaths, yamlPaths []string
	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("records path %s does not exist", p)
		case err == nil && info.IsDir():
			hclPaths = append(hclPaths, p)
			yamlPaths = append(yamlPaths, p)
		case fsutil.HasExtension(p, hcl_adapter.Extensions...):
			hclPaths = append(hclPaths, p)
		case fsutil.HasExtension(p, yamlrecords.Extensions...):
			yamlPaths = append(yamlPaths, p)
		default:
			return nil, fmt.Errorf("cannot detect record format of %s; use --format", p)
		}
	}

	model := &config.Model{}
	for _, part := range []struct {
		loader config.Loader
		paths  []string
	}{{l.hcl, hclPaths}, {l.yaml, yamlPaths}} {
		if len(part.paths) == 0 {
			continue
		}
		m, err := part.loader.Load(ctx, part.paths...)
		if err != nil {
			return nil, err
		}
		model.Records = append(model.Records, m.Records...)
	}
	return model, nil
}

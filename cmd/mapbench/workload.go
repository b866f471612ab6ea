package main

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/g-m-twostay/tablemaps/Maps"
	"github.com/g-m-twostay/tablemaps/Maps/ChainMap"
	"github.com/g-m-twostay/tablemaps/Maps/ProbeMap"
	"github.com/g-m-twostay/tablemaps/Maps/SortedMap"
	"github.com/g-m-twostay/tablemaps/Maps/UnsortedMap"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type factory func(opts ...Maps.Option) Maps.Map[string, int]

var variantNames = []string{"unsorted", "sorted", "chain", "probe"}

var variants = map[string]factory{
	"unsorted": func(...Maps.Option) Maps.Map[string, int] { return UnsortedMap.New[string, int](0) },
	"sorted":   func(...Maps.Option) Maps.Map[string, int] { return SortedMap.New[string, int]() },
	"chain":    func(opts ...Maps.Option) Maps.Map[string, int] { return ChainMap.New[string, int](opts...) },
	"probe":    func(opts ...Maps.Option) Maps.Map[string, int] { return ProbeMap.New[string, int](opts...) },
}

// Result of one variant's run.
type Result struct {
	Variant              string
	Fill, Verify, Random time.Duration
	Len                  int
}

// run fills a new map of variant with "0".."keys-1", checks and overwrites every key with 1, then applies cfg.Ops
// random operations while mirroring them in a native map. Any disagreement is an error.
func run(variant string, cfg *Config, log *zap.Logger) (Result, error) {
	opts := []Maps.Option{Maps.WithSeed(cfg.Seed), Maps.WithLogger(log.Named(variant))}
	if cfg.Capacity > 0 {
		opts = append(opts, Maps.WithCapacity(cfg.Capacity))
	}
	m := variants[variant](opts...)
	res := Result{Variant: variant}

	start := time.Now()
	for i := range cfg.Keys {
		m.Set(strconv.Itoa(i), i)
	}
	res.Fill = time.Since(start)

	start = time.Now()
	for i := range cfg.Keys {
		k := strconv.Itoa(i)
		if !m.Contains(k) {
			return res, errors.Errorf("%s: key %s missing after fill", variant, k)
		}
		m.Set(k, 1)
	}
	for i := range cfg.Keys {
		if v, err := m.Get(strconv.Itoa(i)); err != nil {
			return res, errors.Wrapf(err, "%s: verify", variant)
		} else if v != 1 {
			return res, errors.Errorf("%s: key %d holds %d after overwrite", variant, i, v)
		}
	}
	if m.Len() != cfg.Keys {
		return res, errors.Errorf("%s: len %d after overwrite, want %d", variant, m.Len(), cfg.Keys)
	}
	res.Verify = time.Since(start)

	mirror := make(map[string]int, cfg.Keys)
	for i := range cfg.Keys {
		mirror[strconv.Itoa(i)] = 1
	}
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1))
	start = time.Now()
	for op := range cfg.Ops {
		k := strconv.Itoa(r.IntN(2 * cfg.Keys))
		if r.Float64() < cfg.DeleteRatio {
			_, err := m.Delete(k)
			if _, ok := mirror[k]; ok != (err == nil) {
				return res, errors.Errorf("%s: op %d: delete %s returned %v", variant, op, k, err)
			}
			delete(mirror, k)
		} else {
			_, ok := mirror[k]
			if m.Set(k, op) == ok {
				return res, errors.Errorf("%s: op %d: set %s disagreed on presence", variant, op, k)
			}
			mirror[k] = op
		}
	}
	res.Random = time.Since(start)
	res.Len = m.Len()
	if res.Len != len(mirror) {
		return res, errors.Errorf("%s: len %d, want %d", variant, res.Len, len(mirror))
	}
	return res, nil
}

// Command mapbench runs the same workload through every map variant and logs how long each phase took.
//
//	mapbench -config workload.toml
//	mapbench -variant probe
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "TOML workload file; the built-in defaults are used when empty")
	variant := flag.String("variant", "", "run only this variant, overriding the config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err == nil && *variant != "" {
		cfg.Variants = []string{*variant}
		err = cfg.validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "mapbench:", err)
		os.Exit(2)
	}
	log, err := cfg.Log.build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mapbench:", err)
		os.Exit(2)
	}
	defer log.Sync()

	failed := false
	for _, v := range cfg.Variants {
		res, err := run(v, &cfg, log)
		if err != nil {
			log.Error("workload failed", zap.String("variant", v), zap.Error(err))
			failed = true
			continue
		}
		log.Info("workload done",
			zap.String("variant", res.Variant),
			zap.Int("keys", cfg.Keys),
			zap.Int("ops", cfg.Ops),
			zap.Duration("fill", res.Fill),
			zap.Duration("verify", res.Verify),
			zap.Duration("random", res.Random),
			zap.Int("len", res.Len))
	}
	if failed {
		log.Sync()
		os.Exit(1)
	}
}

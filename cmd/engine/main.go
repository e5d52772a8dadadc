package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/diag"
	"jobalert-engine/internal/dumps"
	"jobalert-engine/internal/extract"
	"jobalert-engine/internal/report"
	"jobalert-engine/internal/store"
)

func main() {
	var (
		dataDir = flag.String("data", envOr("JOBALERT_DATA_DIR", "data"), "data directory (db, config, reports)")
		dumpDir = flag.String("dumps", "", "dump directory (default <data>/email_dumps)")
		cfgPath = flag.String("config", "", "config file (default <data>/config.yml)")
		workers = flag.Int("workers", 0, "override worker pool size")
		combine = flag.String("combine", "", "combine <prefix>*.txt dumps into one file and exit")
		debug   = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if *debug {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create data dir")
	}

	path := *cfgPath
	if path == "" {
		p, err := config.EnsureUserConfig(*dataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("config bootstrap failed")
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("config load failed")
	}
	if err := config.OverlayProviders(&cfg, filepath.Join(*dataDir, "providers.yml")); err != nil {
		log.Fatal().Err(err).Msg("providers overlay failed")
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config invalid")
	}

	if *dumpDir == "" {
		*dumpDir = cfg.App.DumpDir
		if *dumpDir == "" {
			*dumpDir = filepath.Join(*dataDir, "email_dumps")
		}
	}
	if *workers > 0 {
		cfg.App.Workers = *workers
	}

	if *combine != "" {
		out, err := dumps.Combine(*dumpDir, *combine)
		if err != nil {
			log.Fatal().Err(err).Msg("combine failed")
		}
		log.Info().Str("out", out).Msg("dumps combined")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := diag.NewMemorySink()
	sink := diag.Tee(diag.LoggerSink{Log: log}, mem)

	docs, readFailures, err := dumps.Discover(*dumpDir, sink)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *dumpDir).Msg("dump discovery failed")
	}
	log.Info().Int("documents", len(docs)).Str("dir", *dumpDir).Msg("dumps discovered")

	engine, err := extract.New(cfg, sink)
	if err != nil {
		log.Fatal().Err(err).Msg("engine init failed")
	}

	entries, parseFailures := engine.ParseAll(ctx, docs)
	failures := append(readFailures, parseFailures...)

	db, err := store.Open(filepath.Join(*dataDir, "jobalerts.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open db")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migrate db")
	}
	if err := db.SaveEntries(ctx, entries); err != nil {
		log.Fatal().Err(err).Msg("save entries")
	}

	if err := report.WriteJSON(ctx, filepath.Join(*dataDir, "jobalerts.json"), entries); err != nil {
		log.Fatal().Err(err).Msg("write json report")
	}
	if err := report.WriteText(filepath.Join(*dataDir, "jobalerts.txt"), entries); err != nil {
		log.Fatal().Err(err).Msg("write text report")
	}
	if err := report.WriteHTML(filepath.Join(*dataDir, "jobalerts.html"), entries); err != nil {
		log.Fatal().Err(err).Msg("write html report")
	}

	for _, f := range failures {
		log.Warn().Str("file", f.Filename).Str("kind", string(f.Kind)).Msg(f.Reason)
	}
	log.Info().
		Int("entries", len(entries)).
		Int("failures", len(failures)).
		Int("non_english_skips", mem.CountKind(diag.KindNonEnglishSkip)).
		Int("metadata_fallbacks", mem.CountKind(diag.KindMetadataFallback)).
		Msg("done")

	if ctx.Err() != nil {
		log.Warn().Msg("interrupted; partial batch written")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/pkxcodec/internal/config"
	"github.com/udisondev/pkxcodec/pkx"
)

const zstdSuffix = ".zst"

type app struct {
	cfg      config.Tool
	gen      pkx.Generation
	personal pkx.PersonalTable
	dec      *zstd.Decoder
	log      *slog.Logger
}

// each runs fn over paths with at most cfg.Workers in flight. A failing file
// is logged and counted; the remaining files are still processed.
func (a *app) each(ctx context.Context, paths []string, fn func(path string, data []byte) error) error {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer dec.Close()
	a.dec = dec

	var failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := a.read(path)
			if err == nil {
				err = fn(path, data)
			}
			if err != nil {
				failed.Add(1)
				a.log.Error("record failed", "path", path, "err", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(paths))
	}
	return nil
}

// read loads a record, inflating it when the name ends in .zst.
func (a *app) read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !strings.HasSuffix(path, zstdSuffix) {
		return data, nil
	}
	out, err := a.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return out, nil
}

func (a *app) open(data []byte) (*pkx.Entity, error) {
	opts := []pkx.Option{pkx.WithLogger(a.log)}
	if a.personal != nil {
		opts = append(opts, pkx.WithPersonal(a.personal))
	}
	e, err := pkx.New(a.gen, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	return e, nil
}

func (a *app) inspect(path string, data []byte) error {
	encrypted, err := pkx.IsEncrypted(a.gen, data)
	if err != nil {
		return err
	}
	e, err := a.open(data)
	if err != nil {
		return err
	}

	a.log.Info("record",
		"path", path,
		"gen", e.Generation(),
		"party", e.Party(),
		"encrypted", encrypted,
		"checksum_valid", e.ChecksumValid(),
		"species", e.Species(),
		"form_species", e.FormSpecies(),
		"nickname", e.Nickname(),
		"level", e.Level(),
		"nature", e.Nature(),
		"ivs", e.IVs(),
		"hp_type", e.HPType(),
		"shiny", e.Shiny(),
		"ribbons", len(e.Ribbons()))
	return nil
}

// fix rewrites the checksum and, when configured, re-encrypts the record.
func (a *app) fix(path string, data []byte) error {
	e, err := a.open(data)
	if err != nil {
		return err
	}
	valid := e.ChecksumValid()
	out := e.Finalize(a.cfg.Encrypt)
	a.log.Info("record fixed", "path", path, "checksum_was_valid", valid)
	return a.write(path, ".fixed", out)
}

// decrypt writes the record decrypted, leaving the stored checksum untouched.
func (a *app) decrypt(path string, data []byte) error {
	if err := pkx.Decrypt(a.gen, data); err != nil {
		return err
	}
	return a.write(path, ".dec", data)
}

func (a *app) write(src, suffix string, data []byte) error {
	name := strings.TrimSuffix(filepath.Base(src), zstdSuffix) + suffix
	dst := filepath.Join(a.cfg.OutputDir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	a.log.Debug("record written", "path", dst, "bytes", len(data))
	return nil
}

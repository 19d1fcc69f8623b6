package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/symfc/basis"
	"github.com/katalvlaran/symfc/coo"
	"github.com/katalvlaran/symfc/kron"
)

// kernelFunc is one of the allocating kron operations bound to its basis
// argument.
type kernelFunc[I coo.Index] func(r coo.Matrix[I], opts ...kron.Option) (coo.Matrix[I], error)

// runWidth converts r to the configured index width, runs fn and widens the
// result back for encoding. r is checked against size3n before narrowing so
// that wide indices cannot wrap into range.
func runWidth(r coo.Matrix[int64], size3n int, c Config,
	wide kernelFunc[int64], narrow kernelFunc[int32]) (coo.Matrix[int64], error) {
	if !c.Int32 {
		return wide(r, c.options()...)
	}
	if err := coo.ValidateLengths(r); err != nil {
		return coo.Matrix[int64]{}, fmt.Errorf("int32 input: %w", err)
	}
	if err := coo.ValidateBasis(r, size3n); err != nil {
		return coo.Matrix[int64]{}, fmt.Errorf("int32 input: %w", err)
	}
	out, err := narrow(coo.Convert[int32](r), c.options()...)
	if err != nil {
		return coo.Matrix[int64]{}, err
	}
	return coo.Convert[int64](out), nil
}

func runKron(cmd *cobra.Command, args []string) error {
	doc, err := readInput(inputPath)
	if err != nil {
		return err
	}
	_, size3n, err := doc.dims()
	if err != nil {
		return err
	}
	logger.Debug("kron input",
		zap.String("path", inputPath),
		zap.Int("entries", len(doc.Row)),
		zap.Int("size3n", size3n),
		zap.Bool("int32", cfg.Int32),
		zap.Int("workers", cfg.Workers))

	start := time.Now()
	out, err := runWidth(doc.matrix(), size3n, cfg,
		func(r coo.Matrix[int64], opts ...kron.Option) (coo.Matrix[int64], error) {
			return kron.KronNN33(r, size3n, opts...)
		},
		func(r coo.Matrix[int32], opts ...kron.Option) (coo.Matrix[int32], error) {
			return kron.KronNN33(r, size3n, opts...)
		})
	if err != nil {
		logger.Error("kron failed", zap.Error(err))
		return err
	}
	logger.Info("kron done",
		zap.Int("entries", out.Len()),
		zap.Duration("elapsed", time.Since(start)))

	rows, cols := kron.KronShape(size3n)
	return writeDoc(outputPath, cfg.Format, newOutputDoc(out, rows, cols))
}

func runCompact(cmd *cobra.Command, args []string) error {
	doc, err := readInput(inputPath)
	if err != nil {
		return err
	}
	natom, size3n, err := doc.dims()
	if err != nil {
		return err
	}
	if err := basis.ValidateTableAtoms(natom); err != nil {
		return err
	}
	logger.Debug("compact input",
		zap.String("path", inputPath),
		zap.Int("entries", len(doc.Row)),
		zap.Int("natom", natom),
		zap.String("pairing", cfg.Pairing),
		zap.Int("workers", cfg.Workers))

	start := time.Now()
	out, err := runWidth(doc.matrix(), size3n, cfg,
		func(r coo.Matrix[int64], o ...kron.Option) (coo.Matrix[int64], error) {
			return kron.CompactSpgProj(r, natom, o...)
		},
		func(r coo.Matrix[int32], o ...kron.Option) (coo.Matrix[int32], error) {
			return kron.CompactSpgProj(r, natom, o...)
		})
	if err != nil {
		logger.Error("compact failed", zap.Error(err))
		return err
	}
	logger.Info("compact done",
		zap.Int("entries", out.Len()),
		zap.Duration("elapsed", time.Since(start)))

	rows, cols := kron.CompactShape(natom)
	return writeDoc(outputPath, cfg.Format, newOutputDoc(out, rows, cols))
}

func runCompression(cmd *cobra.Command, args []string) error {
	if err := basis.ValidateTableAtoms(natomFlag); err != nil {
		return err
	}
	c := basis.Compression(natomFlag)
	rows, cols := basis.CompressionShape(natomFlag)
	logger.Info("compression built",
		zap.Int("natom", natomFlag),
		zap.Int("entries", c.Len()))
	return writeDoc(outputPath, cfg.Format, newOutputDoc(c, rows, cols))
}

func runLabels(cmd *cobra.Command, args []string) error {
	if err := basis.ValidateTableAtoms(natomFlag); err != nil {
		return err
	}
	t := basis.NewPermTable(natomFlag)
	logger.Info("labels built",
		zap.Int("natom", natomFlag),
		zap.Int("ids", t.Len()))
	return writeDoc(outputPath, cfg.Format, labelsDoc{NAtom: t.NAtom(), Len: t.Len(), IDs: t.IDs()})
}

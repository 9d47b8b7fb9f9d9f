// sha256sum prints the SHA-256 digest of standard input or of each named
// file, or verifies digests previously written in that format.
//
// Usage:
//
//	sha256sum [flags] [file...]
//	sha256sum --check [flags] [list...]
//
// With no file, or when file is -, standard input is read.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/zeebo/sha256sum"
)

const stdinLabel = "-"

type config struct {
	check   bool
	quiet   bool
	verbose bool
	help    bool
}

func main() {
	log := newLogger(os.Stderr)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Fatal("sha256sum failed")
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func parseFlags(args []string, stderr io.Writer) (*config, []string, error) {
	var cfg config

	flagSet := pflag.NewFlagSet("sha256sum", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&cfg.check, "check", "c", false, "read digests from the given lists and verify them")
	flagSet.BoolVar(&cfg.quiet, "quiet", false, "with --check, do not print OK for each verified file")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug information to stderr")
	flagSet.BoolVarP(&cfg.help, "help", "h", false, "show help")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sha256sum [flags] [file...]\n\n")
		fmt.Fprintf(stderr, "Print SHA-256 digests. With no file, or when file is -, read standard input.\n\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			cfg.help = true
			return &cfg, nil, nil
		}
		return nil, nil, errors.Wrap(err, "invalid arguments")
	}
	if cfg.help {
		flagSet.Usage()
	}

	return &cfg, flagSet.Args(), nil
}

func run(args []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	cfg, paths, err := parseFlags(args, log.Out)
	if err != nil {
		return err
	}
	if cfg.help {
		return nil
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if len(paths) == 0 {
		paths = []string{stdinLabel}
	}

	s := &summer{stdin: stdin, log: log}

	if cfg.check {
		return s.checkAll(paths, stdout, cfg.quiet)
	}

	for _, label := range paths {
		digest, err := s.digest(label)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s  %s\n", digest, label)
	}
	return nil
}

// summer reads inputs fully and digests them.
type summer struct {
	stdin io.Reader
	log   *logrus.Logger
}

// open returns the reader for label. The returned close function is always
// non-nil.
func (s *summer) open(label string) (io.Reader, func() error, error) {
	if label == stdinLabel {
		return s.stdin, func() error { return nil }, nil
	}
	fh, err := os.Open(label)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open %s", label)
	}
	return fh, fh.Close, nil
}

func (s *summer) digest(label string) (string, error) {
	r, closer, err := s.open(label)
	if err != nil {
		return "", err
	}
	defer func() { _ = closer() }()

	h := sha256sum.New()
	n, err := h.ReadFrom(r)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", label)
	}

	digest := h.Digest()
	s.log.WithFields(logrus.Fields{
		"input":  label,
		"bytes":  n,
		"blocks": sha256sum.PaddedLen(uint64(n)) / sha256sum.BlockSize,
		"digest": digest,
	}).Debug("hashed input")

	return digest, nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/zeebo/sha256sum"
)

// checkLine is one "<digest>  <path>" entry of a digest list.
type checkLine struct {
	digest string
	path   string
}

// parseCheckLine splits a digest list line. The path may be prefixed by '*'
// to mark binary mode, which makes no difference here.
func parseCheckLine(line string) (checkLine, bool) {
	line = strings.TrimRight(line, "\r")
	if len(line) < 2*sha256sum.Size+2 {
		return checkLine{}, false
	}

	digest, rest := line[:2*sha256sum.Size], line[2*sha256sum.Size:]
	for _, c := range digest {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return checkLine{}, false
		}
	}

	if rest[0] != ' ' || (rest[1] != ' ' && rest[1] != '*') || len(rest) == 2 {
		return checkLine{}, false
	}

	return checkLine{digest: strings.ToLower(digest), path: rest[2:]}, true
}

func (s *summer) checkAll(lists []string, stdout io.Writer, quiet bool) error {
	var failed, malformed, total int

	for _, list := range lists {
		r, closer, err := s.open(list)
		if err != nil {
			return err
		}

		f, m, n, err := s.check(list, r, stdout, quiet)
		_ = closer()
		if err != nil {
			return err
		}
		failed, malformed, total = failed+f, malformed+m, total+n
	}

	if malformed > 0 {
		s.log.WithField("lines", malformed).Warn("improperly formatted checksum lines")
	}
	if total == 0 {
		return errors.New("no properly formatted checksum lines found")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d computed checksums did NOT match", failed, total)
	}
	return nil
}

func (s *summer) check(list string, r io.Reader, stdout io.Writer, quiet bool) (failed, malformed, total int, err error) {
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		entry, ok := parseCheckLine(scanner.Text())
		if !ok {
			s.log.WithFields(logrus.Fields{
				"list": list,
				"line": lineno,
			}).Debug("skipping malformed line")
			malformed++
			continue
		}

		// stdin is already being consumed as the list
		if entry.path == stdinLabel && list == stdinLabel {
			return failed, malformed, total, errors.Errorf(
				"%s:%d: cannot check standard input while reading the list from it", list, lineno)
		}

		digest, err := s.digest(entry.path)
		if err != nil {
			return failed, malformed, total, err
		}

		total++
		if digest != entry.digest {
			failed++
			fmt.Fprintf(stdout, "%s: FAILED\n", entry.path)
		} else if !quiet {
			fmt.Fprintf(stdout, "%s: OK\n", entry.path)
		}
	}

	if err := scanner.Err(); err != nil {
		return failed, malformed, total, errors.Wrapf(err, "failed to read %s", list)
	}
	return failed, malformed, total, nil
}

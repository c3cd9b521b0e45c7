// Package storage loads and saves the league document. This is the only
// place in the repo that touches the filesystem; the league package itself
// never does I/O.
package storage

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jose-valero/club-ladder-bot/internal/league"
)

// Load reads a league from path. A missing file is not an error: the bot is
// simply starting its first season, so an empty league comes back.
func Load(path string) (*league.League, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return league.New(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	l, err := league.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", path)
	}
	return l, nil
}

// Save writes the league to path. The write goes through a temp file in the
// same directory plus a rename, so a crash mid-save never truncates the last
// good document.
func Save(path string, l *league.League) error {
	data, err := l.Encode()
	if err != nil {
		return errors.Wrap(err, "unable to encode league")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ladder-*.json")
	if err != nil {
		return errors.Wrap(err, "unable to create temp file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "unable to write temp file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "unable to close temp file")
	}

	return errors.Wrapf(os.Rename(tmp.Name(), path), "unable to replace %s", path)
}

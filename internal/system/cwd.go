// Package system reads the process environment the prompt is drawn for:
// working directory, permissions, session variables and shell jobs.
package system

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/ribbon/internal/logger"
	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

// FS is the slice of the operating system ResolveCwd depends on.
type FS interface {
	Getwd() (string, error)
	Getenv(key string) string
	Stat(name string) (os.FileInfo, error)
	Chdir(dir string) error
}

// OSFS implements FS with the os package.
type OSFS struct{}

func (OSFS) Getwd() (string, error)                { return os.Getwd() }
func (OSFS) Getenv(key string) string              { return os.Getenv(key) }
func (OSFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (OSFS) Chdir(dir string) error                { return os.Chdir(dir) }

// WorkingDir is the outcome of ResolveCwd.
type WorkingDir struct {
	// Reported is the directory shown in the prompt.
	Reported string
	// Actual is the process working directory after recovery.
	Actual string
}

// ResolveCwd returns the directory to draw the prompt for.
//
// When the working directory has been removed underneath the shell, the
// process moves to the nearest existing ancestor of $PWD so that the probes
// can still run, but $PWD itself is reported since that is where the shell
// believes it is.
func ResolveCwd(fs FS, log *logger.Logger) (WorkingDir, error) {
	if fs == nil {
		fs = OSFS{}
	}

	cwd, err := fs.Getwd()
	if err == nil {
		return WorkingDir{Reported: cwd, Actual: cwd}, nil
	}

	pwd := fs.Getenv("PWD")
	if pwd == "" {
		return WorkingDir{}, ribbonerrors.NewDirectoryError("", err)
	}

	up := filepath.Clean(pwd)
	for {
		if _, statErr := fs.Stat(up); statErr == nil {
			break
		}
		parent := filepath.Dir(up)
		if parent == up {
			return WorkingDir{}, ribbonerrors.NewDirectoryError(pwd, err)
		}
		up = parent
	}

	if chdirErr := fs.Chdir(up); chdirErr != nil {
		return WorkingDir{}, ribbonerrors.NewDirectoryError(pwd, chdirErr)
	}

	log.WithFields(map[string]any{"directory": pwd, "lowest_valid": up}).
		Warn("your current directory is invalid")
	return WorkingDir{Reported: pwd, Actual: up}, nil
}

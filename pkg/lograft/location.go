package lograft

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// knownExtension is the only suffix removed by ShowShort.
const knownExtension = ".go"

// FormatLocation builds the "[path:line]" prefix for a call site in filename.
// Paths are made relative to wd.
func FormatLocation(filename string, line int, cfg Config, wd string) (string, error) {
	name, err := displayPath(filename, cfg.ShowPath, wd)
	if err != nil {
		return "", err
	}

	name, err = displayExtension(name, cfg.ShowFileExtension)
	if err != nil {
		return "", err
	}

	if cfg.ShowLine {
		name += ":" + strconv.Itoa(line)
	}

	return "[" + name + "]", nil
}

func displayPath(filename string, mode ShowMode, wd string) (string, error) {
	switch mode {
	case ShowFull:
		return relativePath(filename, wd), nil
	case ShowShort:
		segments := strings.Split(relativePath(filename, wd), "/")
		if len(segments) > 2 {
			segments = segments[len(segments)-2:]
		}

		return strings.Join(segments, "/"), nil
	case ShowOff:
		return filepath.Base(filename), nil
	default:
		return "", ErrInvalidShowPath
	}
}

func displayExtension(name string, mode ShowMode) (string, error) {
	switch mode {
	case ShowFull:
		return name, nil
	case ShowShort:
		return strings.Replace(name, knownExtension, "", 1), nil
	case ShowOff:
		// Cut at the first dot of the file name: main.server.go -> main.
		dir, file := path.Split(name)
		if i := strings.IndexByte(file, '.'); i >= 0 {
			file = file[:i]
		}

		return dir + file, nil
	default:
		return "", ErrInvalidShowFileExtension
	}
}

// relativePath returns filename relative to wd using forward slashes.
func relativePath(filename, wd string) string {
	rel := filepath.Clean(filename)

	if wd != "" {
		abs := filename
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(wd, abs)
		}

		if r, err := filepath.Rel(wd, abs); err == nil {
			rel = r
		}
	}

	return strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
}

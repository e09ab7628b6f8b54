package cart

import (
	"os"
	"path/filepath"
)

// Paths locates the cart file and its companions.
type Paths struct {
	dir  string
	file string
}

// PathsFromDataRoot resolves the shared cart location for an application whose
// data root is dataRoot: <dataRoot>/../../dat/o_o.ini.
func PathsFromDataRoot(dataRoot string) Paths {
	base := filepath.Dir(filepath.Dir(filepath.Clean(dataRoot)))
	dir := filepath.Join(base, CartDirName)
	return Paths{dir: dir, file: filepath.Join(dir, CartFileName)}
}

// PathsFromFile uses an explicit cart file path.
func PathsFromFile(path string) Paths {
	path = filepath.Clean(path)
	return Paths{dir: filepath.Dir(path), file: path}
}

// DefaultDataRoot returns the running executable's path. Two levels up from
// it is the folder that holds the game, so the cart ends up beside it.
func DefaultDataRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

// Dir returns the directory holding the cart.
func (p Paths) Dir() string {
	return p.dir
}

// File returns the cart file path.
func (p Paths) File() string {
	return p.file
}

// LockFile returns the cross-process lock path.
func (p Paths) LockFile() string {
	return p.file + LockSuffix
}

// Exists checks if the cart file exists.
func (p Paths) Exists() bool {
	_, err := os.Stat(p.file)
	return err == nil
}

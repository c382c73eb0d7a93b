package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/witvcs/wit/internal/vcserr"
)

const (
	ControlDir = ".wit"

	snapshotsDir     = "snapshots"
	stagingDir       = "staging"
	referencesFile   = "references"
	activeBranchFile = "active_branch"
	configFile       = "config.json"
	logFile          = "wit.log"
	graphFile        = "graph.dot"
)

const (
	DefaultBranch = "master"
	HeadRef       = "HEAD"
)

const (
	HashXXH3    = "xxh3"
	HashSHA256  = "sha256"
	DefaultHash = HashXXH3
)

// Config holds the resolved repository root. Every on-disk location is
// derived from it, so operations never depend on the process working
// directory once a Config is constructed.
type Config struct {
	Root string
}

func New(root string) *Config {
	return &Config{Root: filepath.Clean(root)}
}

func (c *Config) ControlPath() string      { return filepath.Join(c.Root, ControlDir) }
func (c *Config) SnapshotsDir() string     { return filepath.Join(c.ControlPath(), snapshotsDir) }
func (c *Config) StagingDir() string       { return filepath.Join(c.ControlPath(), stagingDir) }
func (c *Config) ReferencesFile() string   { return filepath.Join(c.ControlPath(), referencesFile) }
func (c *Config) ActiveBranchFile() string { return filepath.Join(c.ControlPath(), activeBranchFile) }
func (c *Config) ConfigFile() string       { return filepath.Join(c.ControlPath(), configFile) }
func (c *Config) LogFile() string          { return filepath.Join(c.ControlPath(), logFile) }
func (c *Config) GraphFile() string        { return filepath.Join(c.ControlPath(), graphFile) }

// SnapshotDir returns the immutable tree slot for a commit id.
func (c *Config) SnapshotDir(id string) string {
	return filepath.Join(c.SnapshotsDir(), id)
}

// MetaFile returns the metadata file that sits next to a snapshot slot.
func (c *Config) MetaFile(id string) string {
	return filepath.Join(c.SnapshotsDir(), id+".meta")
}

// SelectedHash returns the configured hash algorithm.
// Falls back to xxh3 if not specified or config is missing.
func (c *Config) SelectedHash() string {
	data, err := os.ReadFile(c.ConfigFile())
	if err != nil {
		return DefaultHash
	}

	var cfg struct {
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultHash
	}
	if cfg.Hash == "" {
		return DefaultHash
	}
	return cfg.Hash
}

// FindRoot walks from start up through its ancestors until it finds a
// directory containing the control directory. The search never descends
// below start.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		fi, err := os.Stat(filepath.Join(dir, ControlDir))
		if err == nil && fi.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", vcserr.ErrNoRepository
		}
		dir = parent
	}
}

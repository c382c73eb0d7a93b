// Package engine orchestrates the stores into the user-facing versioning
// operations. Every operation works off an explicitly resolved repository
// root and either completes or fails synchronously.
package engine

import (
	"fmt"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/history"
	"github.com/witvcs/wit/internal/refs"
	"github.com/witvcs/wit/internal/snapshot"
	"github.com/witvcs/wit/internal/staging"
	"github.com/witvcs/wit/internal/util"
)

// Engine ties the reference store, snapshot store, staging area and history
// resolver together over one repository.
type Engine struct {
	cfg   *config.Config
	fsys  fs.FS
	refs  *refs.Store
	snaps *snapshot.Store
	stage *staging.Area
	hist  *history.Resolver
}

// Open builds an Engine over an already-initialized repository root.
func Open(root string, fsys fs.FS) *Engine {
	cfg := config.New(root)
	snaps := snapshot.NewStore(cfg, fsys)
	return &Engine{
		cfg:   cfg,
		fsys:  fsys,
		refs:  refs.NewStore(cfg, fsys),
		snaps: snaps,
		stage: staging.NewArea(cfg, fsys),
		hist:  history.NewResolver(snaps),
	}
}

// Init creates the control structure at root: snapshot store, empty staging
// snapshot and the active branch pointer. No commit and no HEAD exist until
// the first commit. Idempotent; returns whether a new repository was
// created.
func Init(root string, fsys fs.FS, hashAlgo string) (*Engine, bool, error) {
	cfg := config.New(root)
	created := !fsys.IsDir(cfg.ControlPath())

	for _, dir := range []string{cfg.ControlPath(), cfg.SnapshotsDir()} {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("create %q: %w", dir, err)
		}
	}

	if hashAlgo != "" && hashAlgo != cfg.SelectedHash() {
		cfgRecord := struct {
			Hash string `json:"hash"`
		}{Hash: hashAlgo}
		if err := util.WriteJSON(fsys, cfg.ConfigFile(), cfgRecord); err != nil {
			return nil, false, fmt.Errorf("write config: %w", err)
		}
	}

	e := Open(root, fsys)
	if err := e.stage.Init(); err != nil {
		return nil, false, err
	}

	// reinitializing must not clobber the branch the user is on
	if !fsys.Exists(cfg.ActiveBranchFile()) {
		if err := e.refs.SetActiveBranch(config.DefaultBranch); err != nil {
			return nil, false, err
		}
	}

	return e, created, nil
}

// Root returns the repository root the engine operates on.
func (e *Engine) Root() string {
	return e.cfg.Root
}

// ignoreSet is the path set excluded from every working-tree comparison:
// just the control directory.
func (e *Engine) ignoreSet() map[string]struct{} {
	return map[string]struct{}{config.ControlDir: {}}
}

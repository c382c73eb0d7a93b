package vcserr

import "errors"

// Errors the user can run into during normal operation. Commands surface
// these as plain messages; anything else is treated as an internal failure.
var (
	ErrNoRepository       = errors.New("no .wit directory found here or in any parent directory (run \"wit init\" first)")
	ErrNoCommits          = errors.New("no commits have been made yet")
	ErrNoChanges          = errors.New("nothing staged to commit")
	ErrPathNotFound       = errors.New("path does not exist")
	ErrUnknownCommit      = errors.New("no such branch or commit")
	ErrBranchExists       = errors.New("a branch with this name already exists")
	ErrDirtyWorkingTree   = errors.New("cannot switch commits with staged or unstaged changes present")
	ErrNothingToMerge     = errors.New("both branches already point at the same commit")
	ErrDirtyForMerge      = errors.New("staging area differs from the current commit, commit or reset before merging")
	ErrNoCommonAncestor   = errors.New("branches share no common ancestor")
	ErrDetachedHead       = errors.New("not on a branch (detached state)")
	ErrDuplicateID        = errors.New("snapshot id is already occupied")
	ErrMissingCounterpart = errors.New("file is absent on one side of the comparison")
	ErrCorruptStore       = errors.New("repository metadata is corrupt")
)

var expected = []error{
	ErrNoRepository,
	ErrNoCommits,
	ErrNoChanges,
	ErrPathNotFound,
	ErrUnknownCommit,
	ErrBranchExists,
	ErrDirtyWorkingTree,
	ErrNothingToMerge,
	ErrDirtyForMerge,
	ErrNoCommonAncestor,
	ErrDetachedHead,
}

// IsExpected reports whether err is a user-facing condition rather than an
// internal failure.
func IsExpected(err error) bool {
	for _, e := range expected {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

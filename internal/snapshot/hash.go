package snapshot

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/mmap"

	"github.com/witvcs/wit/internal/config"
	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/util"
)

// Files at least this large are hashed through a memory map instead of one
// big ReadFile allocation.
const mmapThreshold = 8 << 20

func newDigest(algo string) hash.Hash {
	if algo == config.HashSHA256 {
		return sha256.New()
	}
	return xxh3.New()
}

// TreeHash computes a content hash of every file under dir. Relative paths
// are slash-normalized and sorted before hashing, so two trees with the
// same paths and contents always produce the same hash regardless of
// creation order. Per-file hashing runs in parallel.
func (s *Store) TreeHash(dir string) (string, error) {
	var rels []string
	if err := fs.WalkFiles(s.fsys, dir, nil, func(rel string) error {
		rels = append(rels, rel)
		return nil
	}); err != nil {
		return "", fmt.Errorf("walk %q: %w", dir, err)
	}
	sort.Strings(rels)

	var mu sync.Mutex
	fileHashes := make(map[string]string, len(rels))
	err := util.Parallel(rels, util.WorkerCount(), func(rel string) error {
		h, err := s.hashFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		mu.Lock()
		fileHashes[rel] = h
		mu.Unlock()
		return nil
	})
	if err != nil {
		return "", err
	}

	d := newDigest(s.algo)
	for _, rel := range rels {
		fmt.Fprintf(d, "%s\x00%s\n", rel, fileHashes[rel])
	}
	return fmt.Sprintf("%x", d.Sum(nil)), nil
}

// CommitID derives a commit identifier from everything that defines the
// commit: tree hash, parent ids, timestamp and message. A later commit that
// reverts to an earlier tree still gets a fresh id because its parents and
// date differ.
func (s *Store) CommitID(treeHash string, parents []string, date time.Time, message string) string {
	d := newDigest(s.algo)
	fmt.Fprintf(d, "tree %s\n", treeHash)
	for _, p := range parents {
		fmt.Fprintf(d, "parent %s\n", p)
	}
	fmt.Fprintf(d, "date %d\n", date.UnixNano())
	fmt.Fprintf(d, "message %s\n", message)
	return fmt.Sprintf("%x", d.Sum(nil))
}

func (s *Store) hashFile(path string) (string, error) {
	// mmap needs a real file, so only the OS filesystem takes this path
	if _, osBacked := s.fsys.(*fs.OSFS); osBacked {
		if fi, err := s.fsys.Stat(path); err == nil && fi.Size() >= mmapThreshold {
			return s.hashFileMmap(path)
		}
	}

	data, err := s.fsys.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("hash %q: %w", path, err)
	}
	d := newDigest(s.algo)
	d.Write(data)
	return fmt.Sprintf("%x", d.Sum(nil)), nil
}

func (s *Store) hashFileMmap(path string) (string, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return "", fmt.Errorf("mmap %q: %w", path, err)
	}
	defer r.Close()

	d := newDigest(s.algo)
	buf := make([]byte, 1<<20)
	size := int64(r.Len())
	for off := int64(0); off < size; {
		n, err := r.ReadAt(buf, off)
		if n > 0 {
			d.Write(buf[:n])
			off += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read %q at offset %d: %w", path, off, err)
		}
	}
	return fmt.Sprintf("%x", d.Sum(nil)), nil
}

package snapshot

import (
	"fmt"
	"strings"
	"time"

	"github.com/witvcs/wit/internal/util"
	"github.com/witvcs/wit/internal/vcserr"
)

const metaSuffix = ".meta"

const dateLayout = "Mon Jan 02 15:04:05 2006 -0700"

// Meta is the metadata record written next to each snapshot slot.
type Meta struct {
	Parents []string // zero for the root commit, two for a merge
	Date    time.Time
	Message string
	Tree    string // content hash of the snapshot tree
}

// Encode renders the record in its on-disk key=value form. The message is
// always the last key so it may span multiple lines.
func (m *Meta) Encode() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "parent=%s\n", strings.Join(m.Parents, ","))
	fmt.Fprintf(&b, "date=%s\n", m.Date.Format(dateLayout))
	fmt.Fprintf(&b, "tree=%s\n", m.Tree)
	fmt.Fprintf(&b, "message=%s", m.Message)
	return []byte(b.String())
}

// DecodeMeta parses data produced by Encode.
func DecodeMeta(data []byte) (*Meta, error) {
	m := &Meta{}
	rest := string(data)
	for rest != "" {
		line, tail, _ := strings.Cut(rest, "\n")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("metadata line %q: %w", line, vcserr.ErrCorruptStore)
		}
		switch key {
		case "parent":
			if value != "" {
				m.Parents = strings.Split(value, ",")
			}
		case "date":
			t, err := time.Parse(dateLayout, value)
			if err != nil {
				return nil, fmt.Errorf("metadata date %q: %w", value, vcserr.ErrCorruptStore)
			}
			m.Date = t
		case "tree":
			m.Tree = value
		case "message":
			// the message owns everything to the end of the record
			m.Message = value
			if tail != "" {
				m.Message += "\n" + tail
			}
			return m, nil
		default:
			return nil, fmt.Errorf("metadata key %q: %w", key, vcserr.ErrCorruptStore)
		}
		rest = tail
	}
	return m, nil
}

// WriteMeta persists the metadata record for id atomically.
func (s *Store) WriteMeta(id string, m *Meta) error {
	if err := util.WriteFileAtomic(s.fsys, s.cfg.MetaFile(id), m.Encode()); err != nil {
		return fmt.Errorf("write metadata for %q: %w", id, err)
	}
	return nil
}

// ReadMeta loads the metadata record for id.
func (s *Store) ReadMeta(id string) (*Meta, error) {
	data, err := s.fsys.ReadFile(s.cfg.MetaFile(id))
	if err != nil {
		if !s.fsys.Exists(s.cfg.MetaFile(id)) {
			return nil, fmt.Errorf("commit %q: %w", id, vcserr.ErrUnknownCommit)
		}
		return nil, fmt.Errorf("read metadata for %q: %w", id, err)
	}
	m, err := DecodeMeta(data)
	if err != nil {
		return nil, fmt.Errorf("commit %q: %w", id, err)
	}
	return m, nil
}

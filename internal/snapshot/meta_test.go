package snapshot

import (
	"errors"
	"testing"
	"time"

	"github.com/witvcs/wit/internal/vcserr"
)

func TestMetaRoundtrip(t *testing.T) {
	date, _ := time.Parse(dateLayout, "Fri Jun 26 21:30:00 2020 +0300")
	m := &Meta{
		Parents: []string{"aaa", "bbb"},
		Date:    date,
		Message: "Merge branch 'feature' into 'master'",
		Tree:    "deadbeef",
	}

	got, err := DecodeMeta(m.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Parents) != 2 || got.Parents[0] != "aaa" || got.Parents[1] != "bbb" {
		t.Errorf("parents: %v", got.Parents)
	}
	if !got.Date.Equal(date) {
		t.Errorf("date: got %v, want %v", got.Date, date)
	}
	if got.Message != m.Message {
		t.Errorf("message: %q", got.Message)
	}
	if got.Tree != "deadbeef" {
		t.Errorf("tree: %q", got.Tree)
	}
}

func TestMetaRootCommit(t *testing.T) {
	m := &Meta{Date: time.Now().Truncate(time.Second), Message: "initial"}
	got, err := DecodeMeta(m.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Parents) != 0 {
		t.Errorf("root commit has parents: %v", got.Parents)
	}
}

func TestMetaMultilineMessage(t *testing.T) {
	m := &Meta{
		Date:    time.Now().Truncate(time.Second),
		Message: "subject\n\nbody line one\nbody line two",
	}
	got, err := DecodeMeta(m.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Message != m.Message {
		t.Errorf("message lost lines: %q", got.Message)
	}
}

func TestMetaDecodeCorrupt(t *testing.T) {
	for _, data := range []string{
		"no separator here",
		"unknownkey=value\nmessage=x",
		"parent=a\ndate=not a date\nmessage=x",
	} {
		if _, err := DecodeMeta([]byte(data)); !errors.Is(err, vcserr.ErrCorruptStore) {
			t.Errorf("decode %q: got %v, want ErrCorruptStore", data, err)
		}
	}
}

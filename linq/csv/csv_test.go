package csv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lguimbarda/min-linq/linq/core"
)

func sameRecords(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.Join(a[i], "\x00") != strings.Join(b[i], "\x00") {
			return false
		}
	}
	return true
}

func TestReadRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "people.csv")
	content := "name,age\nalice,30\nbob,25\ncarol,35\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	p := ReadRecords(path).Skip(1)
	want := [][]string{{"alice", "30"}, {"bob", "25"}, {"carol", "35"}}

	for pass := 0; pass < 2; pass++ {
		got, err := p.ToList()
		if err != nil {
			t.Fatalf("pass %d: unexpected error: %v", pass, err)
		}
		if !sameRecords(got, want) {
			t.Errorf("pass %d: got %v, want %v", pass, got, want)
		}
	}

	first, err := p.Take(1).ToList()
	if err != nil || !sameRecords(first, want[:1]) {
		t.Errorf("Take(1) = (%v, %v)", first, err)
	}
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.csv")).ToList()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestReadRecordsFromWithOptions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []ReaderOption
		want  [][]string
	}{
		{
			name:  "semicolon",
			input: "a;b\nc;d\n",
			opts:  []ReaderOption{WithComma(';')},
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "comments and spaces",
			input: "# header\na, b\n",
			opts:  []ReaderOption{WithComment('#'), WithTrimLeadingSpace(true)},
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "variable fields",
			input: "a\nb,c\n",
			opts:  []ReaderOption{WithFieldsPerRecord(-1)},
			want:  [][]string{{"a"}, {"b", "c"}},
		},
		{
			name:  "lazy quotes",
			input: "a \"quoted\" word,b\n",
			opts:  []ReaderOption{WithLazyQuotes(true)},
			want:  [][]string{{"a \"quoted\" word", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadRecordsFrom(strings.NewReader(tt.input), tt.opts...).ToList()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !sameRecords(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadRecordsFromMalformed(t *testing.T) {
	_, err := ReadRecordsFrom(strings.NewReader("a,b\nc\n")).ToList()
	if err == nil {
		t.Errorf("expected field count error")
	}
}

func TestReadRecordsFromResumes(t *testing.T) {
	p := ReadRecordsFrom(strings.NewReader("1\n2\n3\n4\n"))

	first, _ := p.Take(1).ToList()
	rest, _ := p.ToList()
	if !sameRecords(first, [][]string{{"1"}}) {
		t.Errorf("first = %v", first)
	}
	// the take pass read "2" before stopping, so the reader resumes at "3"
	if !sameRecords(rest, [][]string{{"3"}, {"4"}}) {
		t.Errorf("rest = %v", rest)
	}
}

func TestReadMapsFrom(t *testing.T) {
	p := ReadMapsFrom(strings.NewReader("id,city\n1,Oslo\n2,Lima\n3\n"), WithFieldsPerRecord(-1))
	rows, err := core.MapTo(p, func(row map[string]string) string {
		return row["id"] + ":" + row["city"]
	}).ToList()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"1:Oslo", "2:Lima", "3:"}; strings.Join(rows, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", rows, want)
	}
}

func TestWriteRecords(t *testing.T) {
	src := ReadRecordsFrom(strings.NewReader("a,1\nb,2\nc,3\n"))
	filtered := src.Filter(func(r []string) bool { return r[0] != "b" })

	var buf bytes.Buffer
	n, err := WriteRecords(&buf, filtered, WithWriterComma('|'), WithUseCRLF(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("written = %d, want 2", n)
	}
	if got, want := buf.String(), "a|1\r\nc|3\r\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

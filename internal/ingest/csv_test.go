package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadDocuments_SelectsColumnByName(t *testing.T) {
	path := writeTempCSV(t, "id,text\n1,hello world\n2,second doc\n")
	docs, err := ReadDocuments(path, "text", ',')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"hello world", "second doc"}
	if len(docs) != len(want) {
		t.Fatalf("expected %v, got %v", want, docs)
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, docs)
		}
	}
}

func TestReadDocuments_ColumnMatchIsCaseInsensitive(t *testing.T) {
	path := writeTempCSV(t, "ID,TEXT\n1,hello\n")
	docs, err := ReadDocuments(path, "text", ',')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0] != "hello" {
		t.Fatalf("got %v", docs)
	}
}

func TestReadDocuments_SkipsBlankValues(t *testing.T) {
	path := writeTempCSV(t, "id,text\n1,hello\n2,\n3,world\n")
	docs, err := ReadDocuments(path, "text", ',')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"hello", "world"}
	if len(docs) != len(want) {
		t.Fatalf("expected %v, got %v", want, docs)
	}
}

func TestReadDocuments_StripsBOMFromHeader(t *testing.T) {
	path := writeTempCSV(t, "\ufefftext\nhello\n")
	docs, err := ReadDocuments(path, "text", ',')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0] != "hello" {
		t.Fatalf("got %v", docs)
	}
}

func TestReadDocuments_UnknownColumnFails(t *testing.T) {
	path := writeTempCSV(t, "id,text\n1,hello\n")
	if _, err := ReadDocuments(path, "missing", ','); err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestReadDocuments_MissingFileFails(t *testing.T) {
	if _, err := ReadDocuments("/no/such/file.csv", "text", ','); err == nil {
		t.Fatal("expected error for missing file")
	}
}

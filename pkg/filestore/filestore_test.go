package filestore

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/service"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store/memstore"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), memstore.New().Stores().Files, zap.NewNop())
}

func TestUploadRejectsEmptyContent(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Upload(context.Background(), nil, "report.pdf")
	if service.KindOf(err) != service.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"setup.exe", "noextension", "archive.EXE"} {
		_, err := s.Upload(context.Background(), []byte("payload"), name)
		if service.KindOf(err) != service.KindValidation {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestUploadSanitizesAndTimestampsName(t *testing.T) {
	s := newTestStore(t)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	meta, err := s.Upload(context.Background(), []byte("payload"), "my report (v2).PDF")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	want := "my_report__v2__PDF-1700000000000.pdf"
	if meta.Filename != want {
		t.Fatalf("stored name = %q, want %q", meta.Filename, want)
	}

	data, err := os.ReadFile(meta.FilePath)
	if err != nil {
		t.Fatalf("blob not on disk: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("blob content = %q", data)
	}
}

func TestUploadTwiceYieldsDistinctNames(t *testing.T) {
	s := newTestStore(t)
	ts := int64(1700000000000)
	s.now = func() time.Time {
		ts++
		return time.UnixMilli(ts)
	}

	first, err := s.Upload(context.Background(), []byte("one"), "data.csv")
	if err != nil {
		t.Fatalf("first upload failed: %v", err)
	}
	second, err := s.Upload(context.Background(), []byte("two"), "data.csv")
	if err != nil {
		t.Fatalf("second upload failed: %v", err)
	}
	if first.Filename == second.Filename {
		t.Fatalf("expected distinct stored names, both %q", first.Filename)
	}
	if !strings.HasSuffix(first.Filename, ".csv") || !strings.HasSuffix(second.Filename, ".csv") {
		t.Fatalf("extension not preserved: %q, %q", first.Filename, second.Filename)
	}
}

func TestDownloadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	meta, err := s.Upload(context.Background(), []byte("payload"), "notes.txt")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	got, err := s.Download(context.Background(), meta.Filename)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if got.FilePath != meta.FilePath {
		t.Fatalf("path mismatch: %q vs %q", got.FilePath, meta.FilePath)
	}
}

func TestDownloadUnknownFilename(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Download(context.Background(), "never-uploaded.txt")
	if service.KindOf(err) != service.KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDownloadMissingBlob(t *testing.T) {
	s := newTestStore(t)

	meta, err := s.Upload(context.Background(), []byte("payload"), "notes.txt")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if err := os.Remove(meta.FilePath); err != nil {
		t.Fatalf("failed to remove blob: %v", err)
	}

	_, err = s.Download(context.Background(), meta.Filename)
	if service.KindOf(err) != service.KindNotFound {
		t.Fatalf("expected not-found when blob is gone, got %v", err)
	}
}

package cache

import (
	"testing"
)

func TestFSStore_PutGet(t *testing.T) {
	store := NewFSStore(t.TempDir())

	entry := Entry{Body: []byte("body { margin: 0 }"), ContentType: "text/css"}
	if err := store.Put("v1", "https://cdn.example.com/app.css", entry); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, found, err := store.Get("v1", "https://cdn.example.com/app.css")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() did not find stored entry")
	}
	if string(got.Body) != string(entry.Body) || got.ContentType != entry.ContentType {
		t.Errorf("Get() = %+v, want %+v", got, entry)
	}
}

func TestFSStore_GetMissing(t *testing.T) {
	store := NewFSStore(t.TempDir())

	_, found, err := store.Get("v1", "https://example.com/missing.js")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found an entry that was never put")
	}
}

func TestFSStore_PutReplaces(t *testing.T) {
	store := NewFSStore(t.TempDir())
	url := "https://example.com/app.js"

	if err := store.Put("v1", url, Entry{Body: []byte("old")}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put("v1", url, Entry{Body: []byte("new")}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, _, err := store.Get("v1", url)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got.Body) != "new" {
		t.Errorf("Get() body = %q, want replaced value", got.Body)
	}
}

func TestFSStore_Versions(t *testing.T) {
	store := NewFSStore(t.TempDir())

	versions, err := store.Versions()
	if err != nil {
		t.Fatalf("Versions() on empty root error = %v", err)
	}
	if len(versions) != 0 {
		t.Errorf("Versions() = %v, want none", versions)
	}

	store.Put("v1", "https://example.com/a", Entry{Body: []byte("a")})
	store.Put("v2", "https://example.com/a", Entry{Body: []byte("a")})

	versions, err = store.Versions()
	if err != nil {
		t.Fatalf("Versions() error = %v", err)
	}
	if len(versions) != 2 {
		t.Errorf("Versions() = %v, want v1 and v2", versions)
	}
}

func TestFSStore_DeleteVersion(t *testing.T) {
	store := NewFSStore(t.TempDir())
	url := "https://example.com/a"

	store.Put("v1", url, Entry{Body: []byte("a")})
	store.Put("v2", url, Entry{Body: []byte("a")})

	if err := store.DeleteVersion("v1"); err != nil {
		t.Fatalf("DeleteVersion() error = %v", err)
	}
	// Deleting a version that is already gone is fine
	if err := store.DeleteVersion("v1"); err != nil {
		t.Fatalf("DeleteVersion() of absent version error = %v", err)
	}

	if _, found, _ := store.Get("v1", url); found {
		t.Error("entry survived version delete")
	}
	if _, found, _ := store.Get("v2", url); !found {
		t.Error("delete of v1 removed v2's entry")
	}
}

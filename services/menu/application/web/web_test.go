package web

import (
	"bytes"
	"testing"
)

func TestAdminPage(t *testing.T) {
	for _, want := range []string{
		"<!DOCTYPE html>",
		"fetch('/api/menu')",
		"POLL_INTERVAL_MS = 30000",
		"function updateItem(",
		"function deleteItem(",
		"function addItem(",
	} {
		if !bytes.Contains(AdminPage, []byte(want)) {
			t.Errorf("admin page missing %q", want)
		}
	}
}

package domain

import "testing"

func TestUnread(t *testing.T) {
	t.Parallel()
	items := []Notification{{ID: "a"}, {ID: "b", Read: true}, {ID: "c"}}
	if got := Unread(items); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}
	if got := Unread(nil); got != 0 {
		t.Fatalf("expected 0 unread for nil, got %d", got)
	}
}

package domain_test

import (
	"testing"

	"sabalabor/internal/modules/navigation/domain"
)

func TestSelect(t *testing.T) {
	t.Parallel()
	if domain.Select(true) != domain.MainTree {
		t.Fatalf("present session should select main tree")
	}
	if domain.Select(false) != domain.AuthTree {
		t.Fatalf("absent session should select auth tree")
	}
}

func TestRoutesAreDisjoint(t *testing.T) {
	t.Parallel()
	auth := domain.RouteFor(domain.AuthTree)
	main := domain.RouteFor(domain.MainTree)
	if auth.Initial != domain.ScreenWelcome || main.Initial != domain.ScreenHome {
		t.Fatalf("unexpected initial screens %s %s", auth.Initial, main.Initial)
	}
	for _, s := range auth.Screens {
		if main.Contains(s) {
			t.Fatalf("screen %s must not appear in both trees", s)
		}
	}
	if !main.Contains(domain.ScreenCreateJob) || auth.Contains(domain.ScreenProfile) {
		t.Fatalf("unexpected tree membership")
	}
}

func TestHomeFor(t *testing.T) {
	t.Parallel()
	if domain.HomeFor("worker") != domain.HomeAvailableJobs {
		t.Fatalf("workers should see available jobs")
	}
	if domain.HomeFor("client") != domain.HomePostJob {
		t.Fatalf("clients should see post a job")
	}
}

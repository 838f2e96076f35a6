package trackfilter

import (
	"testing"

	"github.com/rotblauer/trackfilter/types/waypoint"
)

func TestApplyTitleLiteral(t *testing.T) {
	s := buildStore([]*waypoint.Waypoint{wp(1, 1, 0)})
	idx, err := buildIndex(s, Options{Title: strPtr("my ride")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := applyTitle(idx, Options{Title: strPtr("my ride")}); err != nil {
		t.Fatal(err)
	}
	if s.Tracks()[0].Name != "my ride" {
		t.Errorf("got %q", s.Tracks()[0].Name)
	}
}

func TestApplyTitleStrftime(t *testing.T) {
	s := buildStore([]*waypoint.Waypoint{wp(1, 1, 0)})
	opts := Options{Title: strPtr("ride-%Y%m%d")}
	idx, err := buildIndex(s, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := applyTitle(idx, opts); err != nil {
		t.Fatal(err)
	}
	if got, want := s.Tracks()[0].Name, "ride-20240101"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyTitleRejectsEmpty(t *testing.T) {
	s := buildStore([]*waypoint.Waypoint{wp(1, 1, 0)})
	opts := Options{Title: strPtr("")}
	idx, err := buildIndex(s, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := applyTitle(idx, opts); err == nil {
		t.Fatal("want error for empty title")
	}
}

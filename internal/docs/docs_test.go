package docs

import (
	"errors"
	"strings"
	"testing"
)

func TestTopics_ListsEmbeddedContentWithTitles(t *testing.T) {
	topics := Topics()
	var names, titles []string
	for _, tp := range topics {
		names = append(names, tp.Name)
		titles = append(titles, tp.Title)
	}
	if got := strings.Join(names, ","); got != "catalog,config,keys" {
		t.Fatalf("unexpected topics %q", got)
	}
	if got := strings.Join(titles, "|"); got != "Catalog format|Configuration|Keys" {
		t.Fatalf("unexpected titles %q", got)
	}
}

func TestLookup(t *testing.T) {
	tp, body, err := Lookup(" Catalog ")
	if err != nil || tp.Name != "catalog" || !strings.HasPrefix(body, "# Catalog format") {
		t.Fatalf("expected catalog topic, got %+v err=%v", tp, err)
	}

	tp, body, err = Lookup("KEY")
	if err != nil || tp.Name != "keys" || !strings.HasPrefix(body, "# Keys") {
		t.Fatalf("expected prefix to find keys, got %+v err=%v", tp, err)
	}

	_, _, err = Lookup("c")
	if !errors.Is(err, ErrUnknownTopic) || !strings.Contains(err.Error(), "catalog, config") {
		t.Fatalf("expected ambiguous prefix error, got %v", err)
	}
	for _, q := range []string{"nope", "../docs", ""} {
		if _, _, err := Lookup(q); !errors.Is(err, ErrUnknownTopic) {
			t.Fatalf("expected %q to miss, got %v", q, err)
		}
	}
}

package infosystem

import (
	"testing"

	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/tasks"
)

func TestKindSpecs(t *testing.T) {
	kinds := services.AllKinds()
	if len(kindSpecs) != len(kinds) {
		t.Errorf("dispatch table has %d entries, want %d", len(kindSpecs), len(kinds))
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			spec, ok := lookupKind(kind)
			if !ok {
				t.Fatal("missing dispatch entry")
			}
			if spec.send == (spec.fetch != nil) {
				t.Errorf("send = %v with fetch set = %v", spec.send, spec.fetch != nil)
			}
			if spec.send && (spec.convert != nil || spec.fill != nil || spec.identity) {
				t.Error("send kinds carry no resolve steps")
			}
		})
	}
}

func TestKindSpecs_Priority(t *testing.T) {
	for kind, spec := range kindSpecs {
		want := tasks.PriorityLow
		if kind == services.KindArtistsTopHits {
			want = tasks.PriorityHigh
		}
		if spec.priority != want {
			t.Errorf("%s priority = %s, want %s", kind, spec.priority, want)
		}
	}
}

func TestKindSpecs_IdentityScoped(t *testing.T) {
	scoped := map[Kind]bool{
		services.KindUsersSelf:       true,
		services.KindUsersPlaylists:  true,
		services.KindUsersLovedItems: true,
	}
	for kind, spec := range kindSpecs {
		if spec.identity != scoped[kind] {
			t.Errorf("%s identity = %v, want %v", kind, spec.identity, scoped[kind])
		}
	}
}

package usecase

import (
	"errors"
	"testing"

	"github.com/aalvaropc/byobox/internal/domain"
)

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec, f.force = spec, force
	return f.err
}

func TestInitWorkspace_PassesRootAndForce(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/shop", true); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if fi.spec.Root != "/tmp/shop" || !fi.force {
		t.Fatalf("unexpected call: %+v force=%v", fi.spec, fi.force)
	}

	fi.err = errors.New("denied")
	if err := NewInitWorkspace(fi).Execute("/x", false); !errors.Is(err, fi.err) {
		t.Fatalf("expected initializer error, got %v", err)
	}
}

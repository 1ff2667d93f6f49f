package core

import "testing"

func TestMergedWithGlobalWinsOnCollision(t *testing.T) {
	local := Properties{"plan": "free", "source": "app"}
	global := Properties{"plan": "pro"}

	merged := local.MergedWith(global)

	if merged["plan"] != "pro" {
		t.Errorf(`merged["plan"] = %q, want %q`, merged["plan"], "pro")
	}
	if merged["source"] != "app" {
		t.Errorf(`merged["source"] = %q, want %q`, merged["source"], "app")
	}
}

func TestMergedWithDisjointKeysIsUnion(t *testing.T) {
	local := Properties{"a": "1", "b": "2"}
	global := Properties{"c": "3"}

	merged := local.MergedWith(global)

	if len(merged) != 3 {
		t.Fatalf("len(merged) = %d, want 3", len(merged))
	}
	for k, want := range map[string]string{"a": "1", "b": "2", "c": "3"} {
		if merged[k] != want {
			t.Errorf("merged[%q] = %q, want %q", k, merged[k], want)
		}
	}
}

func TestMergedWithNilReceiverReturnsGlobalVerbatim(t *testing.T) {
	var local Properties
	global := Properties{"env": "prod"}

	merged := local.MergedWith(global)

	if len(merged) != 1 || merged["env"] != "prod" {
		t.Errorf("merged = %v, want %v", merged, global)
	}

	// The result must be a copy, not the global set itself.
	merged["env"] = "staging"
	if global["env"] != "prod" {
		t.Error("mutating the merged set changed the global set")
	}
}

func TestMergedWithDoesNotMutateInputs(t *testing.T) {
	local := Properties{"plan": "free"}
	global := Properties{"plan": "pro"}

	_ = local.MergedWith(global)

	if local["plan"] != "free" {
		t.Errorf(`local["plan"] = %q, want %q`, local["plan"], "free")
	}
	if global["plan"] != "pro" {
		t.Errorf(`global["plan"] = %q, want %q`, global["plan"], "pro")
	}
}

func TestCloneNilSet(t *testing.T) {
	var p Properties
	clone := p.Clone()

	if clone == nil {
		t.Fatal("Clone() of nil set = nil, want empty set")
	}
	if len(clone) != 0 {
		t.Errorf("len(clone) = %d, want 0", len(clone))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := Properties{"k": "v"}
	clone := p.Clone()

	clone["k"] = "other"
	if p["k"] != "v" {
		t.Error("mutating the clone changed the original set")
	}
}

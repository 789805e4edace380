package videos

import "testing"

func TestLibrary(t *testing.T) {
	l := Default()
	list := l.List()
	if len(list) != 10 {
		t.Fatalf("len: got=%d want=10", len(list))
	}
	for _, v := range list {
		if v.Name == "" || v.Description == "" || len(v.Shots) == 0 {
			t.Fatalf("video type %q incomplete", v.Key)
		}
		shots, ok := l.Shots(v.Key)
		if !ok || len(shots) != len(v.Shots) {
			t.Fatalf("shots %q: ok=%v len=%d", v.Key, ok, len(shots))
		}
	}
}

func TestUnknownTypeHasNoShots(t *testing.T) {
	shots, ok := Default().Shots("hologram")
	if ok {
		t.Fatalf("unknown type reported as found")
	}
	if shots == nil || len(shots) != 0 {
		t.Fatalf("shots: got=%v want empty non-nil", shots)
	}
}

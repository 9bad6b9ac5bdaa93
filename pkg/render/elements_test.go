package render

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		method string
		void   bool
	}{
		{"plain", "div", "Div", false},
		{"void", "img", "Img", true},
		{"dashed", "turbo-frame", "TurboFrame", false},
		{"underscore spelling", "turbo_stream", "TurboStream", false},
		{"heading", "h3", "H3", false},
		{"wbr", "wbr", "Wbr", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := Lookup(tt.tag)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.tag)
			}
			if e.Method != tt.method || e.Void != tt.void {
				t.Errorf("Lookup(%q) = %+v", tt.tag, e)
			}
		})
	}

	if _, ok := Lookup("blink"); ok {
		t.Error("Lookup(blink) found an element")
	}
}

func TestVoidElements(t *testing.T) {
	want := map[string]bool{
		"area": true, "base": true, "br": true, "col": true, "embed": true,
		"hr": true, "img": true, "input": true, "link": true, "meta": true,
		"param": true, "source": true, "track": true, "wbr": true,
	}
	for _, e := range Elements() {
		if e.Void != want[e.Name] {
			t.Errorf("<%s> void = %v, want %v", e.Name, e.Void, want[e.Name])
		}
		if IsVoid(e.Name) != e.Void {
			t.Errorf("IsVoid(%q) disagrees with the table", e.Name)
		}
	}
}

func TestElementTableUnique(t *testing.T) {
	names := map[string]bool{}
	methods := map[string]bool{}
	for _, e := range Elements() {
		if names[e.Name] {
			t.Errorf("duplicate element %q", e.Name)
		}
		if methods[e.Method] {
			t.Errorf("duplicate method %q", e.Method)
		}
		names[e.Name], methods[e.Method] = true, true
	}
}

func TestElementsReturnsCopy(t *testing.T) {
	els := Elements()
	els[0].Void = !els[0].Void
	if Elements()[0].Void == els[0].Void {
		t.Error("Elements() exposes the table")
	}
}

func TestVoidNeverCloses(t *testing.T) {
	for _, e := range Elements() {
		if !e.Void {
			continue
		}
		e := e
		t.Run(e.Name, func(t *testing.T) {
			got := render(t, nil, func(r *Renderer) { r.Emit(e.Name, nil) })
			if want := "<" + e.Name + " />"; got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

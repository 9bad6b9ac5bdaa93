package attr

import (
	stderrors "errors"
	"net/url"
	"strings"
	"testing"
	"time"
)

type role string

type size int

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want string
	}{
		{
			name: "empty set",
			set:  nil,
			want: "",
		},
		{
			name: "single attribute",
			set:  New("class", "container"),
			want: ` class="container"`,
		},
		{
			name: "insertion order kept",
			set:  New("src", "a.jpg", "alt", "An image"),
			want: ` src="a.jpg" alt="An image"`,
		},
		{
			name: "nil omitted",
			set:  New("id", nil, "class", "x"),
			want: ` class="x"`,
		},
		{
			name: "typed nil stringer omitted",
			set:  New("href", (*url.URL)(nil), "class", "x"),
			want: ` class="x"`,
		},
		{
			name: "false omitted",
			set:  New("disabled", false),
			want: "",
		},
		{
			name: "true is valueless",
			set:  New("type", "checkbox", "checked", true),
			want: ` type="checkbox" checked`,
		},
		{
			name: "numbers",
			set:  New("width", 640, "height", int64(480), "step", 0.5, "max", uint(9)),
			want: ` width="640" height="480" step="0.5" max="9"`,
		},
		{
			name: "named scalar types",
			set:  New("role", role("dialog"), "size", size(3)),
			want: ` role="dialog" size="3"`,
		},
		{
			name: "stringer",
			set:  New("data-ttl", 90*time.Second),
			want: ` data-ttl="1m30s"`,
		},
		{
			name: "values escaped",
			set:  New("title", `Tom & "Jerry" <3 'em`),
			want: ` title="Tom &amp; &quot;Jerry&quot; &lt;3 &#39;em"`,
		},
		{
			name: "helpers",
			set:  Set{ID("main"), Class("a", "", "b"), Data("id", 7), Aria("hidden", "true"), Disabled()},
			want: ` id="main" class="a b" data-id="7" aria-hidden="true" disabled`,
		},
		{
			name: "empty attr ignored",
			set:  Set{ClassIf(false, "x"), If(true, Href("/"))},
			want: ` href="/"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.set)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerializeMalformed(t *testing.T) {
	tests := []struct {
		name string
		set  Set
	}{
		{"slice value", New("class", []string{"a", "b"})},
		{"map value", New("data", map[string]string{})},
		{"func value", New("onclick", func() {})},
		{"quote in name", New(`x"onload`, "y")},
		{"space in name", New("a b", "c")},
		{"closing bracket in name", New("a>", "c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Serialize(tt.set)
			if !stderrors.Is(err, ErrMalformedAttribute) {
				t.Errorf("Serialize() error = %v, want ErrMalformedAttribute", err)
			}
		})
	}
}

// A value containing quotes must not close the attribute early.
func TestSerializeQuotedValueRoundTrip(t *testing.T) {
	out, err := Serialize(New("title", `say "hi" and leave`, "id", "next"))
	if err != nil {
		t.Fatal(err)
	}
	value := extractAttrValue(t, out, "title")
	if strings.Contains(value, `"`) {
		t.Errorf("raw quote inside value: %q", value)
	}
	if value != "say &quot;hi&quot; and leave" {
		t.Errorf("title value = %q", value)
	}
	if extractAttrValue(t, out, "id") != "next" {
		t.Errorf("following attribute damaged: %q", out)
	}
}

func TestSetOperations(t *testing.T) {
	s := New("a", 1, "b", 2)
	s.Set("a", 3)
	if got, _ := Serialize(s); got != ` a="3" b="2"` {
		t.Errorf("replace should keep position, got %q", got)
	}

	s.Add(Attr{Key: "c", Value: "x"}, Attr{Key: "b", Value: nil})
	if got, _ := Serialize(s); got != ` a="3" c="x"` {
		t.Errorf("after Add got %q", got)
	}

	s.Delete("a")
	if _, ok := s.Get("a"); ok {
		t.Error("a should be deleted")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	c := s.Clone()
	c.Set("c", "y")
	if v, _ := s.Get("c"); v != "x" {
		t.Error("Clone shares storage with original")
	}
}

func TestNewTrailingKey(t *testing.T) {
	got, err := Serialize(New("type", "text", "required"))
	if err != nil {
		t.Fatal(err)
	}
	if got != ` type="text" required` {
		t.Errorf("got %q", got)
	}
}

func extractAttrValue(t *testing.T, s string, attr string) string {
	t.Helper()

	needle := attr + `="`
	idx := strings.Index(s, needle)
	if idx == -1 {
		t.Fatalf("expected %q in %q", needle, s)
	}
	start := idx + len(needle)
	end := strings.IndexByte(s[start:], '"')
	if end == -1 {
		t.Fatalf("unterminated attribute %q in %q", attr, s)
	}
	return s[start : start+end]
}

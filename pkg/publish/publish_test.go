package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/server"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

type memSink struct {
	mu   sync.Mutex
	docs map[string]string
}

func (s *memSink) Put(ctx context.Context, key, html string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs == nil {
		s.docs = make(map[string]string)
	}
	s.docs[key] = html
	return nil
}

func TestBuild(t *testing.T) {
	site := &server.Site{Dir: writeFiles(t, map[string]string{
		"index.json":      `["p", {"call": "get", "args": ["path"]}]`,
		"about.json":      `["h1", "About"]`,
		"docs/index.json": `["h1", "Docs"]`,
	})}
	sink := &memSink{}

	res, err := Build(context.Background(), site, sink, BuildOptions{Concurrency: 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"about.html", "docs/index.html", "index.html"}
	if !reflect.DeepEqual(res.Keys, want) {
		t.Errorf("Keys = %v, want %v", res.Keys, want)
	}
	if !strings.HasSuffix(sink.docs["index.html"], "<body><p>/</p></body></html>") {
		t.Errorf("index.html = %q", sink.docs["index.html"])
	}
	total := 0
	for _, doc := range sink.docs {
		total += len(doc)
	}
	if res.Bytes != total {
		t.Errorf("Bytes = %d, want %d", res.Bytes, total)
	}
}

func TestBuild_ReportsEveryFailure(t *testing.T) {
	site := &server.Site{Dir: writeFiles(t, map[string]string{
		"good.json": `["p", "ok"]`,
		"void.json": `["br", "x"]`,
		"bad.json":  `["p", `,
	})}
	sink := &memSink{}

	res, err := Build(context.Background(), site, sink, BuildOptions{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, render.ErrVoidContent) {
		t.Errorf("err = %v, want it to include ErrVoidContent", err)
	}
	for _, route := range []string{"/void", "/bad"} {
		if !strings.Contains(err.Error(), route+":") {
			t.Errorf("error does not name %s: %v", route, err)
		}
	}
	if !reflect.DeepEqual(res.Keys, []string{"good.html"}) {
		t.Errorf("Keys = %v", res.Keys)
	}
}

func TestBuild_Canceled(t *testing.T) {
	site := &server.Site{Dir: writeFiles(t, map[string]string{"index.json": `["p"]`})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, site, &memSink{}, BuildOptions{Concurrency: 1}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestDiskSink(t *testing.T) {
	dir := t.TempDir()
	sink := NewDiskSink(dir)
	ctx := context.Background()

	if err := sink.Put(ctx, "docs/index.html", "<p>x</p>"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "docs", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<p>x</p>" {
		t.Errorf("got %q", data)
	}

	if err := sink.Put(ctx, "docs/index.html", "<p>y</p>"); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(filepath.Join(dir, "docs", "index.html"))
	if string(data) != "<p>y</p>" {
		t.Errorf("overwrite: got %q", data)
	}

	entries, _ := os.ReadDir(filepath.Join(dir, "docs"))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"index.html", "index.html", true},
		{"a/./b.html", "a/b.html", true},
		{"", "", false},
		{"/etc/passwd", "", false},
		{"../x.html", "", false},
		{"a/../../x.html", "", false},
		{"a\\b.html", "", false},
	}
	for _, tt := range tests {
		got, err := cleanKey(tt.key)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("cleanKey(%q) = %q, %v; want %q, ok=%v", tt.key, got, err, tt.want, tt.ok)
		}
	}
}

type fakeS3 struct {
	mu     sync.Mutex
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, nil
}

func TestS3Sink(t *testing.T) {
	client := &fakeS3{}
	sink := NewS3Sink(client, "bucket", "/site")
	sink.CacheControl = "max-age=60"

	if err := sink.Put(context.Background(), "docs/index.html", "<p>x</p>"); err != nil {
		t.Fatal(err)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("got %d puts", len(client.inputs))
	}
	in := client.inputs[0]
	if got := aws.ToString(in.Bucket); got != "bucket" {
		t.Errorf("Bucket = %q", got)
	}
	if got := aws.ToString(in.Key); got != "site/docs/index.html" {
		t.Errorf("Key = %q", got)
	}
	if got := aws.ToString(in.ContentType); got != ContentType {
		t.Errorf("ContentType = %q", got)
	}
	if got := aws.ToString(in.CacheControl); got != "max-age=60" {
		t.Errorf("CacheControl = %q", got)
	}
	if client.bodies[0] != "<p>x</p>" {
		t.Errorf("Body = %q", client.bodies[0])
	}
}

func TestS3Sink_Errors(t *testing.T) {
	boom := errors.New("boom")
	sink := NewS3Sink(&fakeS3{err: boom}, "bucket", "")
	err := sink.Put(context.Background(), "index.html", "")
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "index.html") {
		t.Errorf("err = %v", err)
	}
	if err := sink.Put(context.Background(), "../x", ""); err == nil {
		t.Error("expected invalid key error")
	}
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "")
	creds, err := envCredentials{}.Retrieve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if creds.AccessKeyID != "id" || creds.SecretAccessKey != "secret" {
		t.Errorf("creds = %+v", creds)
	}

	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	if _, err := (envCredentials{}).Retrieve(context.Background()); err == nil {
		t.Error("expected error without a secret")
	}
}

func TestNewS3Client(t *testing.T) {
	client := NewS3Client(S3Config{Region: "eu-west-1", Endpoint: "http://localhost:9000"})
	opts := client.Options()
	if opts.Region != "eu-west-1" || aws.ToString(opts.BaseEndpoint) != "http://localhost:9000" || !opts.UsePathStyle {
		t.Errorf("options = region %q endpoint %q path-style %v", opts.Region, aws.ToString(opts.BaseEndpoint), opts.UsePathStyle)
	}
}

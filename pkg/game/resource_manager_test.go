package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

// encodePNG 生成一张纯色测试图片
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

const testManifest = `
version: "1.0"
base_path: assets
groups:
  sprites:
    images:
      - id: player
        path: images/player
      - id: enemy1
        path: images/enemy1.png
      - id: enemy2
        path: images/missing
`

func TestParseResourceConfig(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantErr     bool
		errContains string
	}{
		{name: "valid manifest", content: testManifest},
		{
			name: "duplicate id",
			content: `
groups:
  a:
    images:
      - {id: player, path: a.png}
  b:
    images:
      - {id: player, path: b.png}
`,
			wantErr:     true,
			errContains: "duplicate",
		},
		{
			name:        "empty id",
			content:     "groups:\n  a:\n    images:\n      - {path: a.png}\n",
			wantErr:     true,
			errContains: "empty id",
		},
		{name: "malformed", content: "groups: [", wantErr: true, errContains: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResourceConfig([]byte(tt.content))
			if tt.wantErr {
				if err == nil || !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestImagePaths(t *testing.T) {
	cfg, err := ParseResourceConfig([]byte(testManifest))
	if err != nil {
		t.Fatalf("ParseResourceConfig error: %v", err)
	}

	paths := cfg.ImagePaths()
	want := map[string]string{
		"player": "assets/images/player.png",
		"enemy1": "assets/images/enemy1.png",
		"enemy2": "assets/images/missing.png",
	}
	for id, p := range want {
		if paths[id] != p {
			t.Errorf("path[%s] = %q, want %q", id, paths[id], p)
		}
	}
}

// 缺失的资源也计为完成，future 仍然会结束
func TestLoadAllCountsFailuresAsLoaded(t *testing.T) {
	fsys := fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testManifest)},
		"assets/images/player.png":     {Data: encodePNG(t, 50, 50)},
		"assets/images/enemy1.png":     {Data: []byte("not a png")},
	}

	rm := NewResourceManager(fsys.ReadFile)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig error: %v", err)
	}

	future := rm.LoadAll()
	select {
	case <-future.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("LoadAll did not resolve")
	}

	finished, failed, total := future.Progress()
	if finished != 3 || failed != 2 || total != 3 {
		t.Errorf("Progress() = (%d, %d, %d), want (3, 2, 3)", finished, failed, total)
	}

	img, ok := rm.Decoded("player")
	if !ok {
		t.Fatal("player image should be decoded")
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("player image size = %dx%d, want 50x50", b.Dx(), b.Dy())
	}
	if _, ok := rm.Decoded("enemy1"); ok {
		t.Error("corrupt image should not be decoded")
	}

	if rm.LoadAll() != future {
		t.Error("LoadAll should return the same future on repeated calls")
	}
}

func TestLoadAllWithoutManifest(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}.ReadFile)

	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err == nil {
		t.Error("expected error for missing manifest")
	}
	if !rm.LoadAll().Ready() {
		t.Error("LoadAll without a manifest should resolve immediately")
	}
}

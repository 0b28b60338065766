package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

// initTestFS 用内存文件系统初始化，测试结束后复位
func initTestFS(t *testing.T) {
	t.Helper()
	Init(
		fstest.MapFS{"assets/images/player.png": {Data: []byte("png")}},
		fstest.MapFS{"data/game.yaml": {Data: []byte("canvas:\n  width: 800\n")}},
	)
	t.Cleanup(func() { Init(nil, nil) })
}

func TestNotInitialized(t *testing.T) {
	Init(nil, nil)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	if _, err := ReadFile("data/game.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, want ErrNotInitialized", err)
	}
	if _, err := Open("assets/images/player.png"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() error = %v, want ErrNotInitialized", err)
	}
	if Exists("assets/images/player.png") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

func TestReadFileRouting(t *testing.T) {
	initTestFS(t)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"assets prefix", "assets/images/player.png", "png", false},
		{"data prefix", "data/game.yaml", "canvas:\n  width: 800\n", false},
		{"dot slash stripped", "./data/game.yaml", "canvas:\n  width: 800\n", false},
		{"unknown prefix", "images/player.png", "", true},
		{"missing file", "assets/images/boss.png", "", true},
		{"data path not in assets", "assets/game.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestUnknownPrefixMessage(t *testing.T) {
	initTestFS(t)

	_, err := Open("invalid/path/test.png")
	want := "unknown resource path prefix: invalid/path/test.png (must start with 'assets/' or 'data/')"
	if err == nil || err.Error() != want {
		t.Errorf("Open() error = %v, want %q", err, want)
	}
}

func TestExists(t *testing.T) {
	initTestFS(t)

	if !Exists("assets/images/player.png") {
		t.Error("Expected player.png to exist")
	}
	if Exists("assets/images/enemy1.png") {
		t.Error("Expected enemy1.png to be missing")
	}
}

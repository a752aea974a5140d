package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []FontName{Regular, Bold, Title, Small} {
		if face := name.Get(); face == nil {
			t.Errorf("Expected face for %s", name)
		}
	}

	if Title.Get().Metrics().Height <= Small.Get().Metrics().Height {
		t.Error("Expected title face to be taller than small face")
	}
}

func TestLoadFont_InvalidData(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("Expected error for invalid TTF data")
	}

	if err := LoadFont("custom", goregular.TTF); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGet_UnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}

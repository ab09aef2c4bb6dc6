package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 50)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 50 {
		t.Errorf("Height() = %d, expected 50", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, ColorYellow, ColorBlack, '@')
	cell := s.GetCell(5, 5)
	if cell.Rune != '@' || cell.Fg != ColorYellow || cell.Bg != ColorBlack {
		t.Errorf("GetCell(5, 5) = %+v, expected '@' yellow on black", cell)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, ColorRed, ColorBlack, 'A')  // Should not panic
	s.SetCell(100, 0, ColorRed, ColorBlack, 'A') // Should not panic
	s.SetCell(0, -1, ColorRed, ColorBlack, 'A')  // Should not panic
	s.SetCell(0, 100, ColorRed, ColorBlack, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, ColorRed, ColorBlack, 'X')
		}
	}

	s.Clear(ColorNavy)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, cell.Rune)
			}
			if cell.Bg != ColorNavy {
				t.Errorf("After Clear, expected navy background at (%d, %d), got %d", x, y, cell.Bg)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, cell.Rune)
		}
		if cell.Fg != TextForeground || cell.Bg != TextBackground {
			t.Errorf("DrawText: unexpected colors %d/%d at (%d, 1)", cell.Fg, cell.Bg, 2+i)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	// Out of bounds row
	outOfBounds := s.Row(-1)
	if outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Clear(ColorNavy)
	r.SetCell(0, 3, ColorYellow, ColorBlack, '@')
	r.DrawText(0, 0, "hi")
	r.DrawTextCentered(5, "menu")

	if len(r.Commands) != 4 {
		t.Fatalf("expected 4 commands, got %d: %v", len(r.Commands), r.Commands)
	}
	if r.Commands[1] != `cell 0,3 fg=4 bg=1 '@'` {
		t.Errorf("unexpected cell command %q", r.Commands[1])
	}

	r.Reset()
	if len(r.Commands) != 0 {
		t.Errorf("Reset should drop commands, got %v", r.Commands)
	}
}

package buffer

import (
	"errors"
	"testing"

	rterrors "github.com/wippyai/rtbase/errors"
)

func checkInvariant(t *testing.T, d Dynamic) {
	t.Helper()
	if err := Check(d); err != nil {
		t.Fatalf("invariant broken: %v", err)
	}
}

func TestHeader_Validate(t *testing.T) {
	tests := []struct {
		name string
		h    Header
		ok   bool
	}{
		{"empty", Header{}, true},
		{"partial", Header{Len: 3, Cap: 5}, true},
		{"full", Header{Len: 5, Cap: 5}, true},
		{"len_exceeds_cap", Header{Len: 6, Cap: 5}, false},
		{"negative_len", Header{Len: -1, Cap: 5}, false},
		{"negative_cap", Header{Len: 0, Cap: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.h.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok {
				var rerr *rterrors.Error
				if !errors.As(err, &rerr) || rerr.Kind != rterrors.KindInvariantViolated {
					t.Errorf("expected invariant violation, got %v", err)
				}
			}
		})
	}
}

func TestNewText(t *testing.T) {
	s, err := NewText(8)
	if err != nil {
		t.Fatal(err)
	}
	checkInvariant(t, s)
	if s.Len != 0 || s.Cap != 8 {
		t.Errorf("header = %+v, want {0 8}", s.Header)
	}
	for i, b := range s.Region() {
		if b != 0 {
			t.Errorf("region[%d] = %d, want 0", i, b)
		}
	}

	if _, err := NewText(-1); err == nil {
		t.Error("negative capacity should fail")
	}
}

func TestLiteral(t *testing.T) {
	s := Literal("hello")
	checkInvariant(t, s)
	if s.Len != 5 || s.Cap != 5 {
		t.Errorf("header = %+v, want {5 5}", s.Header)
	}
	if s.String() != "hello" {
		t.Errorf("String() = %q", s.String())
	}
	if Remaining(s) != 0 {
		t.Errorf("Remaining = %d, want 0", Remaining(s))
	}

	empty := Literal("")
	checkInvariant(t, empty)
	if empty.Len != 0 || empty.Cap != 0 {
		t.Errorf("empty literal header = %+v", empty.Header)
	}
}

func TestText_Append(t *testing.T) {
	s, _ := NewText(8)
	if err := s.AppendString("abc"); err != nil {
		t.Fatal(err)
	}
	checkInvariant(t, s)
	if err := s.Append([]byte("defgh")); err != nil {
		t.Fatal(err)
	}
	checkInvariant(t, s)
	if s.String() != "abcdefgh" {
		t.Errorf("String() = %q", s.String())
	}

	err := s.AppendString("x")
	if !errors.Is(err, &rterrors.Error{Phase: rterrors.PhaseLayout, Kind: rterrors.KindOutOfBounds}) {
		t.Errorf("append past capacity: got %v", err)
	}
	if s.String() != "abcdefgh" {
		t.Errorf("failed append modified text: %q", s.String())
	}

	lit := Literal("full")
	if err := lit.AppendString("!"); err == nil {
		t.Error("append to full literal should fail")
	}
}

func TestText_Clone(t *testing.T) {
	s := Literal("hello")
	c := s.Clone()
	checkInvariant(t, c)
	if !c.Equal(s) {
		t.Fatal("clone differs")
	}

	Clear(c)
	if s.Len != 5 || s.String() != "hello" {
		t.Errorf("clearing the clone changed the original: %+v", s.Header)
	}
	c.Region()[0] = 'j'
	if s.Region()[0] != 'h' {
		t.Error("clone shares its region")
	}
}

func TestText_Equal(t *testing.T) {
	a := Literal("abc")
	b, _ := NewText(10)
	_ = b.AppendString("abc")
	if !a.Equal(b) {
		t.Error("equal contents with different capacity should be equal")
	}
	_ = b.AppendString("d")
	if a.Equal(b) {
		t.Error("different lengths should differ")
	}
	var n *Text
	if a.Equal(n) || !n.Equal(nil) {
		t.Error("nil comparison")
	}
}

func TestClearSetLenRemaining(t *testing.T) {
	s, _ := NewText(4)
	_ = s.AppendString("ab")

	if Remaining(s) != 2 {
		t.Errorf("Remaining = %d, want 2", Remaining(s))
	}
	if err := SetLen(s, 4); err != nil {
		t.Fatal(err)
	}
	checkInvariant(t, s)
	if err := SetLen(s, 5); err == nil {
		t.Error("SetLen beyond capacity should fail")
	}
	if err := SetLen(s, -1); err == nil {
		t.Error("negative SetLen should fail")
	}
	if s.Len != 4 {
		t.Errorf("failed SetLen changed length to %d", s.Len)
	}

	Clear(s)
	checkInvariant(t, s)
	if s.Len != 0 || s.Cap != 4 {
		t.Errorf("after Clear header = %+v", s.Header)
	}
}

func TestCheck_RegionMismatch(t *testing.T) {
	txt, err := NewText(4)
	if err != nil {
		t.Fatal(err)
	}
	txt.Hdr().Cap = 100

	err = SetLen(txt, 50)
	var rerr *rterrors.Error
	if !errors.As(err, &rerr) || rerr.Kind != rterrors.KindInvariantViolated {
		t.Fatalf("SetLen over a widened header: got %v", err)
	}
	if txt.Len != 0 {
		t.Errorf("SetLen changed the length to %d", txt.Len)
	}
	if Remaining(txt) != 0 {
		t.Errorf("Remaining = %d on inconsistent header", Remaining(txt))
	}
	if err := txt.AppendString("abcdef"); err == nil {
		t.Error("Append must refuse an inconsistent header")
	}

	txt.Len = 50
	if got := len(txt.Bytes()); got != 4 {
		t.Errorf("Bytes length = %d, want region length 4", got)
	}
	if txt.String() != "\x00\x00\x00\x00" {
		t.Errorf("String = %q", txt.String())
	}
	if txt.Clone().RegionLen() != 4 {
		t.Error("Clone must copy the real region")
	}

	seq := SeqOf(1, 2, 3)
	seq.Hdr().Len = 9
	if err := Check(seq); err == nil {
		t.Error("Check must report length beyond capacity")
	}
	if len(seq.Items()) != 3 {
		t.Errorf("Items length = %d", len(seq.Items()))
	}
	if _, err := seq.At(5); err == nil {
		t.Error("At beyond the region must fail")
	}
	if err := seq.Set(3, 0); err == nil {
		t.Error("Set beyond the region must fail")
	}
	if err := seq.Append(4); err == nil {
		t.Error("Append must refuse an inconsistent header")
	}
}

func TestSeq(t *testing.T) {
	s, err := NewSeq[int64](3)
	if err != nil {
		t.Fatal(err)
	}
	checkInvariant(t, s)

	if err := s.Append(10, 20); err != nil {
		t.Fatal(err)
	}
	checkInvariant(t, s)
	if v, err := s.At(1); err != nil || v != 20 {
		t.Errorf("At(1) = %d, %v", v, err)
	}
	if _, err := s.At(2); err == nil {
		t.Error("At past length should fail")
	}
	if err := s.Set(0, 11); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(5, 1); err == nil {
		t.Error("Set past length should fail")
	}
	if err := s.Append(30, 40); err == nil {
		t.Error("append past capacity should fail")
	}
	if s.Len != 2 {
		t.Errorf("failed append changed length to %d", s.Len)
	}

	c := s.Clone()
	_ = c.Set(0, 99)
	if v, _ := s.At(0); v != 11 {
		t.Errorf("clone shares region, original[0] = %d", v)
	}

	s.Reset()
	checkInvariant(t, s)
	_ = SetLen(s, 2)
	for i, v := range s.Items() {
		if v != 0 {
			t.Errorf("after Reset item %d = %d", i, v)
		}
	}
}

func TestSeqOf(t *testing.T) {
	items := []string{"a", "b"}
	s := SeqOf(items...)
	checkInvariant(t, s)
	if s.Len != 2 || s.Cap != 2 {
		t.Errorf("header = %+v", s.Header)
	}
	items[0] = "z"
	if v, _ := s.At(0); v != "a" {
		t.Error("SeqOf must copy its input")
	}
}

func TestZeroMem(t *testing.T) {
	b := []byte{1, 2, 3}
	ZeroMem(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("b[%d] = %d", i, v)
		}
	}
	ZeroMem(nil)
}

func TestEqualMem(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		n    int
		want bool
	}{
		{"zero_length_equal", "abc", "xyz", 0, true},
		{"zero_length_empty", "", "", 0, true},
		{"prefix_equal", "abcd", "abce", 3, true},
		{"prefix_differs", "abcd", "abce", 4, false},
		{"beyond_a", "ab", "abc", 3, false},
		{"beyond_b", "abc", "ab", 3, false},
		{"negative", "abc", "abc", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualMem([]byte(tt.a), []byte(tt.b), tt.n); got != tt.want {
				t.Errorf("EqualMem(%q, %q, %d) = %v, want %v", tt.a, tt.b, tt.n, got, tt.want)
			}
		})
	}
}

func TestHelloScenario(t *testing.T) {
	lit := Literal("hello")
	if lit.Len != 5 || lit.Cap != 5 {
		t.Fatalf("literal header = %+v", lit.Header)
	}

	same, _ := NewText(5)
	_ = same.AppendString("hello")
	other, _ := NewText(5)
	_ = other.AppendString("hullo")

	if !EqualMem(lit.Region(), same.Region(), 5) {
		t.Error(`"hello" should equal "hello"`)
	}
	if EqualMem(lit.Region(), other.Region(), 5) {
		t.Error(`"hello" should differ from "hullo"`)
	}
}

package layout

import (
	"errors"
	"testing"

	"go.bytecodealliance.org/wit"

	rterrors "github.com/wippyai/rtbase/errors"
)

func mustCalc(t *testing.T, c *Calculator, typ wit.Type) Info {
	t.Helper()
	info, err := c.Calculate(typ)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return info
}

func TestCalculatePrimitives(t *testing.T) {
	tests := []struct {
		typ      wit.Type
		name     string
		ptrSize  uint32
		maxAlign uint32
		size     uint32
		align    uint32
	}{
		{wit.Bool{}, "bool", 8, 8, 1, 1},
		{wit.U8{}, "u8", 8, 8, 1, 1},
		{wit.S16{}, "s16", 8, 8, 2, 2},
		{wit.U32{}, "u32", 8, 8, 4, 4},
		{wit.F32{}, "f32", 8, 8, 4, 4},
		{wit.Char{}, "char", 8, 8, 4, 4},
		{wit.U64{}, "u64", 8, 8, 8, 8},
		{wit.F64{}, "f64", 8, 8, 8, 8},
		{wit.S64{}, "s64_i386", 4, 4, 8, 4},
		{wit.String{}, "string_64", 8, 8, 8, 8},
		{wit.String{}, "string_32", 4, 8, 4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := mustCalc(t, NewCalculator(tc.ptrSize, tc.maxAlign), tc.typ)
			if info.Size != tc.size {
				t.Errorf("size: got %d, want %d", info.Size, tc.size)
			}
			if info.Align != tc.align {
				t.Errorf("align: got %d, want %d", info.Align, tc.align)
			}
		})
	}
}

func TestCalculateRecord(t *testing.T) {
	c := NewCalculator(8, 8)

	t.Run("empty", func(t *testing.T) {
		info := mustCalc(t, c, &wit.TypeDef{Kind: &wit.Record{}})
		if info.Size != 0 || info.Align != 1 {
			t.Errorf("got size %d align %d, want 0/1", info.Size, info.Align)
		}
	})

	t.Run("mixed_alignment", func(t *testing.T) {
		record := &wit.Record{
			Fields: []wit.Field{
				{Name: "a", Type: wit.U8{}},
				{Name: "b", Type: wit.U32{}},
				{Name: "c", Type: wit.U8{}},
			},
		}
		info := mustCalc(t, c, &wit.TypeDef{Kind: record})
		if info.FieldOffs["b"] != 4 {
			t.Errorf("field b offset: got %d, want 4", info.FieldOffs["b"])
		}
		if info.FieldOffs["c"] != 8 {
			t.Errorf("field c offset: got %d, want 8", info.FieldOffs["c"])
		}
		if info.Size != 12 {
			t.Errorf("size: got %d, want 12", info.Size)
		}
	})

	t.Run("u64_on_i386", func(t *testing.T) {
		record := &wit.Record{
			Fields: []wit.Field{
				{Name: "a", Type: wit.U32{}},
				{Name: "b", Type: wit.U64{}},
			},
		}
		info := mustCalc(t, NewCalculator(4, 4), &wit.TypeDef{Kind: record})
		if info.FieldOffs["b"] != 4 {
			t.Errorf("field b offset: got %d, want 4", info.FieldOffs["b"])
		}
		if info.Size != 12 || info.Align != 4 {
			t.Errorf("got size %d align %d, want 12/4", info.Size, info.Align)
		}
	})

	t.Run("text_field_is_pointer", func(t *testing.T) {
		record := &wit.Record{
			Fields: []wit.Field{
				{Name: "tag", Type: wit.U8{}},
				{Name: "name", Type: wit.String{}},
			},
		}
		info := mustCalc(t, c, &wit.TypeDef{Kind: record})
		if info.FieldOffs["name"] != 8 {
			t.Errorf("field name offset: got %d, want 8", info.FieldOffs["name"])
		}
		if info.Size != 16 {
			t.Errorf("size: got %d, want 16", info.Size)
		}
	})
}

func TestCalculateList(t *testing.T) {
	list := &wit.TypeDef{Kind: &wit.List{Type: wit.U64{}}}
	for _, ptr := range []uint32{4, 8} {
		info := mustCalc(t, NewCalculator(ptr, 8), list)
		if info.Size != ptr || info.Align != ptr {
			t.Errorf("ptr %d: got size %d align %d", ptr, info.Size, info.Align)
		}
	}
}

func TestCalculateTuple(t *testing.T) {
	c := NewCalculator(8, 8)
	tuple := &wit.Tuple{Types: []wit.Type{wit.U8{}, wit.U64{}, wit.U16{}}}
	info := mustCalc(t, c, &wit.TypeDef{Kind: tuple})
	if info.Size != 24 || info.Align != 8 {
		t.Errorf("got size %d align %d, want 24/8", info.Size, info.Align)
	}

	empty := mustCalc(t, c, &wit.TypeDef{Kind: &wit.Tuple{}})
	if empty.Size != 0 {
		t.Errorf("empty tuple size: got %d", empty.Size)
	}
}

func TestCalculateEnum(t *testing.T) {
	c := NewCalculator(8, 8)

	tests := []struct {
		name      string
		numCases  int
		wantSize  uint32
		wantAlign uint32
	}{
		{"1_case", 1, 1, 1},
		{"256_cases", 256, 1, 1},
		{"257_cases", 257, 2, 2},
		{"65536_cases", 65536, 2, 2},
		{"65537_cases", 65537, 4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cases := make([]wit.EnumCase, tc.numCases)
			for i := range cases {
				cases[i] = wit.EnumCase{Name: "case"}
			}
			info := mustCalc(t, c, &wit.TypeDef{Kind: &wit.Enum{Cases: cases}})
			if info.Size != tc.wantSize {
				t.Errorf("size: got %d, want %d", info.Size, tc.wantSize)
			}
			if info.Align != tc.wantAlign {
				t.Errorf("align: got %d, want %d", info.Align, tc.wantAlign)
			}
		})
	}
}

func TestCalculateFlags(t *testing.T) {
	c := NewCalculator(8, 8)

	tests := []struct {
		name      string
		numFlags  int
		wantSize  uint32
		wantAlign uint32
	}{
		{"0_flags", 0, 0, 1},
		{"8_flags", 8, 1, 1},
		{"9_flags", 9, 2, 2},
		{"17_flags", 17, 4, 4},
		{"33_flags", 33, 8, 8},
		{"64_flags", 64, 8, 8},
		{"65_flags", 65, 12, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flags := make([]wit.Flag, tc.numFlags)
			for i := range flags {
				flags[i] = wit.Flag{Name: "flag"}
			}
			info := mustCalc(t, c, &wit.TypeDef{Kind: &wit.Flags{Flags: flags}})
			if info.Size != tc.wantSize {
				t.Errorf("size: got %d, want %d", info.Size, tc.wantSize)
			}
			if info.Align != tc.wantAlign {
				t.Errorf("align: got %d, want %d", info.Align, tc.wantAlign)
			}
		})
	}
}

func TestCalculateTagged(t *testing.T) {
	c := NewCalculator(8, 8)

	t.Run("option_u32", func(t *testing.T) {
		info := mustCalc(t, c, &wit.TypeDef{Kind: &wit.Option{Type: wit.U32{}}})
		if info.Size != 8 || info.Align != 4 {
			t.Errorf("got size %d align %d, want 8/4", info.Size, info.Align)
		}
	})

	t.Run("result_u32_string", func(t *testing.T) {
		info := mustCalc(t, c, &wit.TypeDef{Kind: &wit.Result{OK: wit.U32{}, Err: wit.String{}}})
		if info.Size != 16 || info.Align != 8 {
			t.Errorf("got size %d align %d, want 16/8", info.Size, info.Align)
		}
	})

	t.Run("result_unit_unit", func(t *testing.T) {
		info := mustCalc(t, c, &wit.TypeDef{Kind: &wit.Result{}})
		if info.Size != 1 || info.Align != 1 {
			t.Errorf("got size %d align %d, want 1/1", info.Size, info.Align)
		}
	})
}

func TestCalculateVariant(t *testing.T) {
	c := NewCalculator(8, 8)

	variant := &wit.Variant{
		Cases: []wit.Case{
			{Name: "none", Type: nil},
			{Name: "some", Type: wit.U32{}},
		},
	}
	info := mustCalc(t, c, &wit.TypeDef{Kind: variant})
	if info.Size != 8 || info.Align != 4 {
		t.Errorf("got size %d align %d, want 8/4", info.Size, info.Align)
	}
}

func TestCalculateUnsupported(t *testing.T) {
	c := NewCalculator(8, 8)
	_, err := c.Calculate(&wit.TypeDef{Kind: &wit.Own{}})
	var rerr *rterrors.Error
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if rerr.Kind != rterrors.KindUnsupportedElement {
		t.Errorf("kind: got %s", rerr.Kind)
	}

	// Unsupported nested fields surface from the enclosing record.
	record := &wit.Record{Fields: []wit.Field{{Name: "h", Type: &wit.TypeDef{Kind: &wit.Borrow{}}}}}
	if _, err := c.Calculate(&wit.TypeDef{Kind: record}); err == nil {
		t.Error("expected error for record with handle field")
	}
}

func TestCaching(t *testing.T) {
	c := NewCalculator(8, 8)
	typedef := &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{{Name: "x", Type: wit.U32{}}}}}

	info1 := mustCalc(t, c, typedef)
	info2 := mustCalc(t, c, typedef)
	if info1.Size != info2.Size {
		t.Error("cached results should be identical")
	}
	if _, ok := c.cache[typedef]; !ok {
		t.Error("typedef not cached")
	}
}

func TestNestedTypes(t *testing.T) {
	c := NewCalculator(8, 8)

	inner := &wit.TypeDef{Kind: &wit.Record{
		Fields: []wit.Field{
			{Name: "a", Type: wit.U32{}},
			{Name: "b", Type: wit.U64{}},
		},
	}}
	outer := &wit.TypeDef{Kind: &wit.Record{
		Fields: []wit.Field{
			{Name: "inner", Type: inner},
			{Name: "flag", Type: wit.Bool{}},
		},
	}}

	info := mustCalc(t, c, outer)
	if info.FieldOffs["flag"] != 16 {
		t.Errorf("flag offset: got %d, want 16", info.FieldOffs["flag"])
	}
	if info.Size != 24 {
		t.Errorf("size: got %d, want 24", info.Size)
	}
}

func TestTypeAlias(t *testing.T) {
	info := mustCalc(t, NewCalculator(8, 8), &wit.TypeDef{Kind: wit.U32{}})
	if info.Size != 4 || info.Align != 4 {
		t.Errorf("got size %d align %d, want 4/4", info.Size, info.Align)
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct{ off, align, want uint32 }{
		{0, 4, 0}, {1, 4, 4}, {4, 4, 4}, {5, 8, 8}, {7, 0, 7},
	}
	for _, tt := range tests {
		if got := AlignTo(tt.off, tt.align); got != tt.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tt.off, tt.align, got, tt.want)
		}
	}
}

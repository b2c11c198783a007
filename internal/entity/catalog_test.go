package entity

import (
	"testing"

	"github.com/dusk-indust/irvec/internal/ir"
)

func TestIRCatalog_Layout(t *testing.T) {
	c := NewIRCatalog()

	wantLen := len(irOpcodes) + len(irTypeKinds) + len(irOperandKinds)
	if c.Len() != wantLen {
		t.Fatalf("Len = %d, want %d", c.Len(), wantLen)
	}

	// Opcodes first, then types, then operand kinds.
	if name := c.Name(0); name != "Ret" {
		t.Errorf("Name(0) = %q, want Ret", name)
	}
	if name := c.Name(len(irOpcodes)); name != "VoidTy" {
		t.Errorf("first type entity = %q, want VoidTy", name)
	}
	if name := c.Name(len(irOpcodes) + len(irTypeKinds)); name != "Function" {
		t.Errorf("first operand entity = %q, want Function", name)
	}
}

func TestIRCatalog_Stable(t *testing.T) {
	// Two catalogs built independently must agree on every id: entity_id
	// assignment is part of the vocabulary contract.
	a := NewIRCatalog()
	b := NewIRCatalog()
	for id := 0; id < a.Len(); id++ {
		if a.Name(id) != b.Name(id) {
			t.Fatalf("id %d: %q != %q", id, a.Name(id), b.Name(id))
		}
	}
}

func TestCatalog_LookupRoundtrip(t *testing.T) {
	c := NewIRCatalog()
	for id := 0; id < c.Len(); id++ {
		name := c.Name(id)
		got, ok := c.Lookup(name)
		if !ok || got != id {
			t.Fatalf("Lookup(%q) = %d/%v, want %d", name, got, ok, id)
		}
	}
	if _, ok := c.Lookup("NoSuchEntity"); ok {
		t.Error("Lookup of unknown name should fail")
	}
	if c.Name(-1) != "" || c.Name(c.Len()) != "" {
		t.Error("out-of-range Name should be empty")
	}
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	if _, err := NewCatalog([]string{"A", "B", "A"}); err == nil {
		t.Fatal("expected duplicate error")
	}
}

func TestMachineCatalog(t *testing.T) {
	layout := &ir.TargetLayout{
		Name:            "demo64",
		Opcodes:         []string{"MOVri", "ADDrr", "RET"},
		RegisterClasses: []string{"GPR32", "GPR64"},
	}
	c, err := NewMachineCatalog(layout)
	if err != nil {
		t.Fatalf("NewMachineCatalog: %v", err)
	}

	// opcodes + classes + NoClass + machine operand kinds
	wantLen := 3 + 2 + 1 + len(machineOperandKinds)
	if c.Len() != wantLen {
		t.Fatalf("Len = %d, want %d", c.Len(), wantLen)
	}
	if id, ok := c.Lookup("ADDrr"); !ok || id != 1 {
		t.Errorf("Lookup(ADDrr) = %d/%v, want 1", id, ok)
	}
	if _, ok := c.Lookup("NoClass"); !ok {
		t.Error("NoClass entity missing")
	}
	if _, ok := c.Lookup("Register"); !ok {
		t.Error("Register operand entity missing")
	}
}

func TestMachineCatalog_RequiresLayout(t *testing.T) {
	if _, err := NewMachineCatalog(nil); err == nil {
		t.Fatal("expected error for nil layout")
	}
	if _, err := NewMachineCatalog(&ir.TargetLayout{}); err == nil {
		t.Fatal("expected error for empty layout")
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	c := NewIRCatalog()
	names := c.Names()
	names[0] = "clobbered"
	if c.Name(0) == "clobbered" {
		t.Fatal("Names must not alias internal storage")
	}
}

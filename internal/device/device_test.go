package device

import (
	"errors"
	"testing"
)

func TestMock(t *testing.T) {
	devs := Mock()
	if len(devs) != 3 {
		t.Fatalf("expected 3 mock devices, got %d", len(devs))
	}
	want := []string{"iJustine's iPhone", "iJustine's iPad", "iJustine's Watch Ultra"}
	for i, d := range devs {
		if d.Name != want[i] {
			t.Errorf("device %d: expected %q, got %q", i, want[i], d.Name)
		}
		if d.Location != "Home" || d.Distance != "0 km" {
			t.Errorf("device %d: unexpected location/distance %q/%q", i, d.Location, d.Distance)
		}
	}
}

func TestCatalog_Add(t *testing.T) {
	c := NewCatalog(Mock())
	d, err := c.Add("  Living room TV ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if d.Name != "Living room TV" {
		t.Errorf("expected trimmed name, got %q", d.Name)
	}
	if c.Len() != 4 {
		t.Errorf("expected 4 devices after add, got %d", c.Len())
	}
	if got := c.List()[3].Name; got != "Living room TV" {
		t.Errorf("expected new device last, got %q", got)
	}
}

func TestCatalog_AddEmpty(t *testing.T) {
	c := NewCatalog(nil)
	_, err := c.Add("   ")
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty catalog, got %d", c.Len())
	}
}

func TestCatalog_SeedIsCopied(t *testing.T) {
	seed := Mock()
	c := NewCatalog(seed)
	seed[0].Name = "changed"
	if c.List()[0].Name == "changed" {
		t.Error("catalog should not alias its seed slice")
	}
	list := c.List()
	list[1].Name = "changed"
	if c.List()[1].Name == "changed" {
		t.Error("List should return a copy")
	}
}

func TestKindIcon_Plain(t *testing.T) {
	for _, k := range []Kind{KindPhone, KindTablet, KindWatch, KindOther} {
		if k.Icon(false) == k.Icon(true) {
			t.Errorf("kind %s: plain and unicode icons should differ", k)
		}
	}
}

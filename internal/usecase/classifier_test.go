package usecase

import (
	"testing"

	"github.com/labelsort/backend/internal/domain"
)

func TestDetectCourier(t *testing.T) {
	c := NewClassifier(DefaultRegistry())

	t.Run("finds courier case-insensitively", func(t *testing.T) {
		if got := c.DetectCourier("Pickup via SHADOWFAX hub"); got != "Shadowfax" {
			t.Errorf("DetectCourier = %q, want Shadowfax", got)
		}
	})

	t.Run("respects priority order on multi-courier text", func(t *testing.T) {
		if got := c.DetectCourier("Delhivery surface, rerouted from Valmo"); got != "Delhivery" {
			t.Errorf("DetectCourier = %q, want Delhivery", got)
		}
	})

	t.Run("matches as substring even inside another word", func(t *testing.T) {
		// Couriers are substring matches, unlike styles and sizes.
		if got := c.DetectCourier("xValmoy"); got != "Valmo" {
			t.Errorf("DetectCourier = %q, want Valmo", got)
		}
	})

	t.Run("returns UNKNOWN when nothing matches", func(t *testing.T) {
		if got := c.DetectCourier("random label text"); got != domain.CourierUnknown {
			t.Errorf("DetectCourier = %q, want UNKNOWN", got)
		}
	})

	t.Run("returns UNKNOWN for empty text", func(t *testing.T) {
		if got := c.DetectCourier(""); got != domain.CourierUnknown {
			t.Errorf("DetectCourier = %q, want UNKNOWN", got)
		}
	})
}

func TestDetectStyle(t *testing.T) {
	c := NewClassifier(DefaultRegistry())

	t.Run("maps keyword to canonical name", func(t *testing.T) {
		if got := c.DetectStyle("Meesho order Zeme-01 black"); got != "Jumpsuit" {
			t.Errorf("DetectStyle = %q, want Jumpsuit", got)
		}
	})

	t.Run("whole-word only, no substring match", func(t *testing.T) {
		if got := c.DetectStyle("the videotaped parcel"); got != domain.StyleOther {
			t.Errorf("DetectStyle = %q, want Other", got)
		}
	})

	t.Run("keyword bounded by punctuation matches", func(t *testing.T) {
		if got := c.DetectStyle("2-TAPE dress, wine"); got != "Tape Pant" {
			t.Errorf("DetectStyle = %q, want Tape Pant", got)
		}
	})

	t.Run("earlier group wins on overlap", func(t *testing.T) {
		if got := c.DetectStyle("crop zeme-01 combo"); got != "Crop Hoodie" {
			t.Errorf("DetectStyle = %q, want Crop Hoodie", got)
		}
	})

	t.Run("short generic keyword shadows later groups", func(t *testing.T) {
		// "of" belongs to the Tape Pant group and precedes the Jumpsuit
		// group, so it shadows zeme-01. Registry order is the only
		// tie-break; this is documented behavior.
		if got := c.DetectStyle("pack of zeme-01"); got != "Tape Pant" {
			t.Errorf("DetectStyle = %q, want Tape Pant", got)
		}
	})

	t.Run("returns Other when nothing matches", func(t *testing.T) {
		if got := c.DetectStyle("random label text"); got != domain.StyleOther {
			t.Errorf("DetectStyle = %q, want Other", got)
		}
	})
}

func TestDetectSize(t *testing.T) {
	c := NewClassifier(DefaultRegistry())

	t.Run("finds whole token", func(t *testing.T) {
		if got := c.DetectSize("Size: XL Qty 1"); got != "XL" {
			t.Errorf("DetectSize = %q, want XL", got)
		}
	})

	t.Run("search order prefers smaller size", func(t *testing.T) {
		if got := c.DetectSize("M L XS mixed listing"); got != "XS" {
			t.Errorf("DetectSize = %q, want XS", got)
		}
	})

	t.Run("case-insensitive", func(t *testing.T) {
		if got := c.DetectSize("size: m"); got != "M" {
			t.Errorf("DetectSize = %q, want M", got)
		}
	})

	t.Run("does not match inside alphanumeric runs", func(t *testing.T) {
		// SKU codes must not leak a size token.
		if got := c.DetectSize("SKU-AXL9 B07XS4"); got != domain.SizeNA {
			t.Errorf("DetectSize = %q, want NA", got)
		}
	})

	t.Run("returns NA when nothing matches", func(t *testing.T) {
		if got := c.DetectSize("random label text"); got != domain.SizeNA {
			t.Errorf("DetectSize = %q, want NA", got)
		}
	})
}

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultRegistry())

	t.Run("full triple from one label", func(t *testing.T) {
		got := c.Classify("Shadowfax Pickup Zeme-01 Black Size: M")
		want := domain.Classification{Courier: "Shadowfax", Style: "Jumpsuit", Size: "M"}
		if got != want {
			t.Errorf("Classify = %+v, want %+v", got, want)
		}
	})

	t.Run("unmatched text is fully sentinel and unparsed", func(t *testing.T) {
		got := c.Classify("random label text")
		want := domain.Classification{Courier: domain.CourierUnknown, Style: domain.StyleOther, Size: domain.SizeNA}
		if got != want {
			t.Errorf("Classify = %+v, want %+v", got, want)
		}
		if !got.Unparsed() {
			t.Error("Unparsed() = false, want true")
		}
	})

	t.Run("empty text is unparsed", func(t *testing.T) {
		if !c.Classify("").Unparsed() {
			t.Error("Classify(\"\").Unparsed() = false, want true")
		}
	})

	t.Run("partial match is not unparsed", func(t *testing.T) {
		got := c.Classify("Valmo something unreadable")
		if got.Courier != "Valmo" {
			t.Errorf("Courier = %q, want Valmo", got.Courier)
		}
		if got.Unparsed() {
			t.Error("Unparsed() = true, want false")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		text := "Xpress Bees crop top Size: S"
		if c.Classify(text) != c.Classify(text) {
			t.Error("Classify is not deterministic")
		}
	})
}

func TestRegistryDefaults(t *testing.T) {
	t.Run("empty config falls back to defaults", func(t *testing.T) {
		r := NewRegistry(RegistryConfig{})
		if len(r.Couriers()) != 4 {
			t.Errorf("Couriers = %v, want 4 entries", r.Couriers())
		}
		if got := r.Sizes(); len(got) != 6 || got[0] != "XS" || got[5] != "XXL" {
			t.Errorf("Sizes = %v, want XS..XXL", got)
		}
	})

	t.Run("NA always trails the size order", func(t *testing.T) {
		r := NewRegistry(RegistryConfig{SizeOrder: []string{"S", "M"}})
		got := r.SizeOrderWithNA()
		if len(got) != 3 || got[2] != domain.SizeNA {
			t.Errorf("SizeOrderWithNA = %v, want [S M NA]", got)
		}
	})

	t.Run("custom tables override defaults", func(t *testing.T) {
		r := NewRegistry(RegistryConfig{
			CourierPriority: []string{"Ecom Express"},
			StyleGroups:     []StyleGroup{{Name: "Kurti", Keywords: []string{"kurti"}}},
		})
		c := NewClassifier(r)
		if got := c.DetectCourier("via Ecom Express"); got != "Ecom Express" {
			t.Errorf("DetectCourier = %q, want Ecom Express", got)
		}
		if got := c.DetectStyle("blue kurti M"); got != "Kurti" {
			t.Errorf("DetectStyle = %q, want Kurti", got)
		}
		if got := c.DetectStyle("zeme-01"); got != domain.StyleOther {
			t.Errorf("DetectStyle = %q, want Other with custom groups", got)
		}
	})

	t.Run("blank keywords are dropped", func(t *testing.T) {
		r := NewRegistry(RegistryConfig{
			StyleGroups: []StyleGroup{
				{Name: "Empty", Keywords: []string{"  ", ""}},
				{Name: "Kurti", Keywords: []string{"kurti"}},
			},
		})
		if got := r.StyleNames(); len(got) != 1 || got[0] != "Kurti" {
			t.Errorf("StyleNames = %v, want [Kurti]", got)
		}
	})
}

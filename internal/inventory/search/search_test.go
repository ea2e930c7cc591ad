package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
)

// names mirror the default generator templates, in the same order
var catalogNames = []string{
	"laptop", "monitor", "tablet", "smartphone", "impresora", "router_wifi",
	"mouse", "teclado", "auriculares", "webcam", "micrófono", "altavoces", "mousepad", "soporte_monitor",
	"disco_ssd", "memoria_ram", "disco_externo",
	"cable_hdmi", "hub_usb", "cargador_usb", "cable_ethernet",
	"antivirus", "office_suite", "adobe_creative",
	"gamepad", "headset_gaming", "silla_gaming",
}

func templateCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	products := make([]model.Product, 0, len(catalogNames))
	for _, n := range catalogNames {
		products = append(products, model.Product{Name: n, Price: 100, Stock: 10})
	}
	c, err := model.NewCatalog(products)
	require.NoError(t, err)
	return c
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Mouse", "mouse"},
		{"Cable HDMI", "cable_hdmi"},
		{"hub-usb", "hub_usb"},
		{"  Silla Gaming ", "silla_gaming"},
		{"MICRÓFONO", "micrófono"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestFuzzy(t *testing.T) {
	c := templateCatalog(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"exact key", "mouse", []string{"mouse"}},
		{"prefix shorter names first", "mous", []string{"mouse", "mousepad"}},
		{"shared word", "cable", []string{"cable_hdmi", "cable_ethernet"}},
		{"suffix word", "usb", []string{"hub_usb", "cargador_usb"}},
		{"length breaks count ties", "gaming", []string{"silla_gaming", "headset_gaming"}},
		{"more contained words rank first", "gaming_headset", []string{"headset_gaming", "silla_gaming"}},
		{"catalog order breaks full ties", "monitor_usb", []string{"monitor", "hub_usb", "cargador_usb", "soporte_monitor"}},
		{"name inside query", "disco_ssd_externo", []string{"disco_ssd", "disco_externo"}},
		{"accented word", "micró", []string{"micrófono"}},
		{"no match", "xyz", nil},
		{"blank query", "", nil},
		{"stray separators ignored", "_hdmi_", []string{"cable_hdmi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fuzzy(c, tt.query))
		})
	}
}

func TestAlternatives(t *testing.T) {
	c, err := model.NewCatalog([]model.Product{
		{Name: "laptop", Category: "electronica", Price: 800, Stock: 3, Rating: 4.0},
		{Name: "monitor", Category: "electronica", Price: 500, Stock: 10, Rating: 4.5},
		{Name: "tablet", Category: "electronica", Price: 450, Stock: 20, Rating: 4.5},
		{Name: "smartphone", Category: "electronica", Price: 1300, Stock: 40, Rating: 4.9},
		{Name: "impresora", Category: "electronica", Price: 700, Stock: 0, Rating: 4.8},
		{Name: "router_wifi", Category: "electronica", Price: 1000, Stock: 20, Rating: 4.5},
		{Name: "ereader", Category: "electronica", Price: 1200, Stock: 20, Rating: 4.9},
		{Name: "proyector", Category: "electronica", Price: 850, Stock: 50, Rating: 3.0},
		{Name: "mouse", Category: "accesorios", Price: 790, Stock: 50, Rating: 4.9},
	})
	require.NoError(t, err)

	t.Run("ranked and capped", func(t *testing.T) {
		assert.Equal(t, []string{"router_wifi", "tablet", "monitor"}, Alternatives(c, "laptop"))
	})

	t.Run("never suggests itself", func(t *testing.T) {
		assert.NotContains(t, Alternatives(c, "monitor"), "monitor")
	})

	t.Run("unknown product", func(t *testing.T) {
		assert.Empty(t, Alternatives(c, "nope"))
	})

	t.Run("lonely category", func(t *testing.T) {
		alts := Alternatives(c, "mouse")
		assert.NotNil(t, alts)
		assert.Empty(t, alts)
	})
}

package generator

// Template describes how one catalog product is generated.
type Template struct {
	Name      string
	BasePrice int
	Category  string
	MinWeight float64
	MaxWeight float64
}

// Templates is the default product set. Software has a zero weight range.
var Templates = []Template{
	// electronics
	{Name: "laptop", BasePrice: 800, Category: "electronica", MinWeight: 2.0, MaxWeight: 4.5},
	{Name: "monitor", BasePrice: 300, Category: "electronica", MinWeight: 3.0, MaxWeight: 8.0},
	{Name: "tablet", BasePrice: 400, Category: "electronica", MinWeight: 0.5, MaxWeight: 1.2},
	{Name: "smartphone", BasePrice: 600, Category: "electronica", MinWeight: 0.15, MaxWeight: 0.25},
	{Name: "impresora", BasePrice: 150, Category: "electronica", MinWeight: 5.0, MaxWeight: 15.0},
	{Name: "router_wifi", BasePrice: 80, Category: "electronica", MinWeight: 0.8, MaxWeight: 2.0},

	// accessories
	{Name: "mouse", BasePrice: 25, Category: "accesorios", MinWeight: 0.1, MaxWeight: 0.3},
	{Name: "teclado", BasePrice: 60, Category: "accesorios", MinWeight: 0.8, MaxWeight: 1.5},
	{Name: "auriculares", BasePrice: 80, Category: "accesorios", MinWeight: 0.2, MaxWeight: 0.5},
	{Name: "webcam", BasePrice: 70, Category: "accesorios", MinWeight: 0.1, MaxWeight: 0.3},
	{Name: "micrófono", BasePrice: 90, Category: "accesorios", MinWeight: 0.3, MaxWeight: 1.0},
	{Name: "altavoces", BasePrice: 100, Category: "accesorios", MinWeight: 1.0, MaxWeight: 3.0},
	{Name: "mousepad", BasePrice: 20, Category: "accesorios", MinWeight: 0.2, MaxWeight: 0.8},
	{Name: "soporte_monitor", BasePrice: 45, Category: "accesorios", MinWeight: 2.0, MaxWeight: 5.0},

	// storage
	{Name: "disco_ssd", BasePrice: 120, Category: "almacenamiento", MinWeight: 0.1, MaxWeight: 0.2},
	{Name: "memoria_ram", BasePrice: 80, Category: "almacenamiento", MinWeight: 0.05, MaxWeight: 0.1},
	{Name: "disco_externo", BasePrice: 90, Category: "almacenamiento", MinWeight: 0.5, MaxWeight: 1.0},

	// cables
	{Name: "cable_hdmi", BasePrice: 15, Category: "cables", MinWeight: 0.1, MaxWeight: 0.3},
	{Name: "hub_usb", BasePrice: 35, Category: "cables", MinWeight: 0.2, MaxWeight: 0.5},
	{Name: "cargador_usb", BasePrice: 18, Category: "cables", MinWeight: 0.1, MaxWeight: 0.4},
	{Name: "cable_ethernet", BasePrice: 12, Category: "cables", MinWeight: 0.2, MaxWeight: 0.5},

	// software
	{Name: "antivirus", BasePrice: 50, Category: "software"},
	{Name: "office_suite", BasePrice: 120, Category: "software"},
	{Name: "adobe_creative", BasePrice: 300, Category: "software"},

	// gaming
	{Name: "gamepad", BasePrice: 55, Category: "gaming", MinWeight: 0.3, MaxWeight: 0.8},
	{Name: "headset_gaming", BasePrice: 120, Category: "gaming", MinWeight: 0.4, MaxWeight: 0.9},
	{Name: "silla_gaming", BasePrice: 250, Category: "gaming", MinWeight: 15.0, MaxWeight: 25.0},
}

var (
	Brands         = []string{"TechPro", "EliteGear", "PowerMax", "UltraSpeed", "ProWork", "Innovation", "DuraTech"}
	Colors         = []string{"Negro", "Blanco", "Gris", "Azul", "Rojo"}
	Discounts      = []int{0, 5, 10, 15, 20, 25}
	DeliveryDays   = []int{1, 2, 3, 5, 7, 10}
	WarrantyMonths = []int{6, 12, 24, 36}

	volumeExtraDiscounts  = []int{5, 10, 15}
	volumeMinQuantities   = []int{5, 10, 20}
	defaultExtraDiscounts = []int{10, 15, 20, 25, 30}
)

const (
	minStock      = 5
	minRestock    = 5
	maxRestock    = 30
	onlineChances = 4 // available online in 3 out of 4 draws
)

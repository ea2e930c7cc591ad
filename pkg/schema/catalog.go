package schema

import "time"

const SnapshotSchemaTextV1 = `{
	"type": "record",
	"namespace": "inventory",
	"name": "snapshot",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "generated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "products", "type": {"type": "array", "items": {
			"type": "record",
			"name": "product",
			"fields": [
				{"name": "nombre", "type": "string"},
				{"name": "precio", "type": "long"},
				{"name": "stock", "type": "long"},
				{"name": "categoria", "type": "string"},
				{"name": "marca", "type": "string"},
				{"name": "rating", "type": "double"},
				{"name": "descuento", "type": "long"},
				{"name": "tiempo_entrega", "type": "long"},
				{"name": "garantia_meses", "type": "long"},
				{"name": "peso_kg", "type": "double"},
				{"name": "popularidad", "type": "long"},
				{"name": "color", "type": "string"},
				{"name": "disponible_online", "type": "boolean"},
				{"name": "envio_gratis", "type": "boolean"},
				{"name": "fecha_lanzamiento", "type": "string"}
			]
		}}}
	]
}`

type (
	// SnapshotV1 is the cached catalog. Products keep catalog order.
	SnapshotV1 struct {
		ID          string      `avro:"id"`
		GeneratedAt time.Time   `avro:"generated_at"`
		Products    []ProductV1 `avro:"products"`
	}

	ProductV1 struct {
		Name            string  `avro:"nombre"`
		Price           int     `avro:"precio"`
		Stock           int     `avro:"stock"`
		Category        string  `avro:"categoria"`
		Brand           string  `avro:"marca"`
		Rating          float64 `avro:"rating"`
		Discount        int     `avro:"descuento"`
		DeliveryDays    int     `avro:"tiempo_entrega"`
		WarrantyMonths  int     `avro:"garantia_meses"`
		WeightKg        float64 `avro:"peso_kg"`
		Popularity      int     `avro:"popularidad"`
		Color           string  `avro:"color"`
		AvailableOnline bool    `avro:"disponible_online"`
		FreeShipping    bool    `avro:"envio_gratis"`
		LaunchDate      string  `avro:"fecha_lanzamiento"`
	}
)

package config

type Kafka struct {
	Enabled      bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Addresses    []string `env:"KAFKA_ADDRESSES" envDefault:"localhost:9092" envSeparator:","`
	Group        string   `env:"KAFKA_GROUP" envDefault:"inventory-hub"`
	ChangesTopic string   `env:"KAFKA_CHANGES_TOPIC" envDefault:"inventory.product.changes"`
	StockTopic   string   `env:"KAFKA_STOCK_TOPIC" envDefault:"inventory.stock.adjust"`
}

package cmd

import "time"

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	FCMProjectID           string
	FCMCredentialsFile     string
	FreeShippingThreshold  int64
	FlatDeliveryFee        int64
	BanThreshold           int
	OperationTimeout       time.Duration
}

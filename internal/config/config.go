package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName string `mapstructure:"service_name"`

	Server struct {
		Port int    `mapstructure:"port"`
		Mode string `mapstructure:"mode"`
	} `mapstructure:"server"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	AWS struct {
		Region           string `mapstructure:"region"`
		AccessKeyID      string `mapstructure:"access_key_id"`
		SecretAccessKey  string `mapstructure:"secret_access_key"`
		DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
		S3Endpoint       string `mapstructure:"s3_endpoint"`
	} `mapstructure:"aws"`

	Tables Tables `mapstructure:"tables"`

	Storage struct {
		Bucket        string `mapstructure:"bucket"`
		PublicBaseURL string `mapstructure:"public_base_url"`
	} `mapstructure:"storage"`

	SMS struct {
		AccountSID string `mapstructure:"account_sid"`
		AuthToken  string `mapstructure:"auth_token"`
		FromNumber string `mapstructure:"from_number"`
	} `mapstructure:"sms"`

	MercadoPago struct {
		AccessToken     string `mapstructure:"access_token"`
		Mock            bool   `mapstructure:"mock"`
		TestPayerEmail  string `mapstructure:"test_payer_email"`
		TestPayerUserID string `mapstructure:"test_payer_user_id"`
	} `mapstructure:"mercadopago"`

	Session struct {
		TTL          time.Duration `mapstructure:"ttl"`
		NameCacheTTL time.Duration `mapstructure:"name_cache_ttl"`
	} `mapstructure:"session"`
}

// Tables holds the DynamoDB table names, one per record kind.
type Tables struct {
	Devices            string `mapstructure:"devices"`
	Transitions        string `mapstructure:"transitions"`
	Remarks            string `mapstructure:"remarks"`
	Payments           string `mapstructure:"payments"`
	Attachments        string `mapstructure:"attachments"`
	Ratings            string `mapstructure:"ratings"`
	AuditLogs          string `mapstructure:"audit_logs"`
	PointsTransactions string `mapstructure:"points_transactions"`
	SMSLogs            string `mapstructure:"sms_logs"`
	Users              string `mapstructure:"users"`
}

// envBindings keeps the env names the service has always used.
var envBindings = map[string]string{
	"server.port":                    "PORT",
	"aws.region":                     "AWS_REGION",
	"aws.access_key_id":              "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":          "AWS_SECRET_ACCESS_KEY",
	"aws.dynamodb_endpoint":          "DYNAMODB_ENDPOINT",
	"aws.s3_endpoint":                "S3_ENDPOINT",
	"tables.devices":                 "DEVICES_TABLE",
	"tables.transitions":             "TRANSITIONS_TABLE",
	"tables.remarks":                 "REMARKS_TABLE",
	"tables.payments":                "PAYMENTS_TABLE",
	"tables.attachments":             "ATTACHMENTS_TABLE",
	"tables.ratings":                 "RATINGS_TABLE",
	"tables.audit_logs":              "AUDIT_LOGS_TABLE",
	"tables.points_transactions":     "POINTS_TRANSACTIONS_TABLE",
	"tables.sms_logs":                "SMS_LOGS_TABLE",
	"tables.users":                   "USERS_TABLE",
	"storage.bucket":                 "ATTACHMENTS_BUCKET",
	"storage.public_base_url":        "ATTACHMENTS_PUBLIC_BASE_URL",
	"sms.account_sid":                "TWILIO_ACCOUNT_SID",
	"sms.auth_token":                 "TWILIO_AUTH_TOKEN",
	"sms.from_number":                "TWILIO_FROM_NUMBER",
	"mercadopago.access_token":       "MERCADOPAGO_ACCESS_TOKEN",
	"mercadopago.mock":               "PAYMENT_GATEWAY_MOCK",
	"mercadopago.test_payer_email":   "MERCADOPAGO_TEST_PAYER_EMAIL",
	"mercadopago.test_payer_user_id": "MERCADOPAGO_TEST_PAYER_USER_ID",
}

// Load reads configs/config.yaml when present, then .env, then the environment.
func Load() *Config {
	_ = godotenv.Load()
	return load("configs/config.yaml")
}

func load(path string) *Config {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[config] no config file at %s, using defaults", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("[config] unmarshal error: %v", err)
	}
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "repair-desk")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("aws.region", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("aws.dynamodb_endpoint", "")
	v.SetDefault("aws.s3_endpoint", "")

	v.SetDefault("tables.devices", "devices")
	v.SetDefault("tables.transitions", "device_transitions")
	v.SetDefault("tables.remarks", "device_remarks")
	v.SetDefault("tables.payments", "customer_payments")
	v.SetDefault("tables.attachments", "device_attachments")
	v.SetDefault("tables.ratings", "device_ratings")
	v.SetDefault("tables.audit_logs", "audit_logs")
	v.SetDefault("tables.points_transactions", "points_transactions")
	v.SetDefault("tables.sms_logs", "sms_logs")
	v.SetDefault("tables.users", "auth_users")

	v.SetDefault("storage.bucket", "device-attachments")
	v.SetDefault("storage.public_base_url", "")

	v.SetDefault("sms.account_sid", "")
	v.SetDefault("sms.auth_token", "")
	v.SetDefault("sms.from_number", "")

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.mock", false)
	v.SetDefault("mercadopago.test_payer_email", "")
	v.SetDefault("mercadopago.test_payer_user_id", "")

	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.name_cache_ttl", "10m")
}

package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// ChartCodes maps the accounting roles the engine posts against to
	// moein codes in the tenant chart of accounts. Startup fails when a
	// configured code does not exist in the database.
	ChartCodes map[string]string
}

// Chart role keys understood by ChartCodes. Each has a default moein code
// that matches the seed migration.
const (
	ChartKeyCash                = "CASH"
	ChartKeyBank                = "BANK"
	ChartKeyPosFloat            = "POS_FLOAT"
	ChartKeyCustomerReceivable  = "CUSTOMER_RECEIVABLE"
	ChartKeyChequesInHand       = "CHEQUES_IN_HAND"
	ChartKeyChequesInCollection = "CHEQUES_IN_COLLECTION"
	ChartKeyPayableCheques      = "PAYABLE_CHEQUES"
	ChartKeyOpeningEquity       = "OPENING_EQUITY"
	ChartKeyVAT                 = "VAT"
	ChartKeyWarehousingIncome   = "WAREHOUSING_INCOME"
	ChartKeyLoadingIncome       = "LOADING_INCOME"
	ChartKeyUnloadingIncome     = "UNLOADING_INCOME"
	ChartKeyFreightIncome       = "FREIGHT_INCOME"
	ChartKeyReturnFreightIncome = "RETURN_FREIGHT_INCOME"
	ChartKeyMiscIncome          = "MISC_INCOME"
)

var defaultChartCodes = map[string]string{
	ChartKeyCash:                "101001",
	ChartKeyBank:                "102001",
	ChartKeyPosFloat:            "102002",
	ChartKeyCustomerReceivable:  "103001",
	ChartKeyChequesInHand:       "104001",
	ChartKeyChequesInCollection: "104002",
	ChartKeyPayableCheques:      "201001",
	ChartKeyVAT:                 "211001",
	ChartKeyOpeningEquity:       "301001",
	ChartKeyWarehousingIncome:   "401001",
	ChartKeyLoadingIncome:       "401002",
	ChartKeyUnloadingIncome:     "401003",
	ChartKeyFreightIncome:       "401004",
	ChartKeyReturnFreightIncome: "401005",
	ChartKeyMiscIncome:          "401006",
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	for key, code := range defaultChartCodes {
		viper.SetDefault("CHART_CODE_"+key, code)
	}

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.ChartCodes = make(map[string]string, len(defaultChartCodes))
	for key := range defaultChartCodes {
		cfg.ChartCodes[key] = viper.GetString("CHART_CODE_" + key)
	}

	return cfg, nil
}

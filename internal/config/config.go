package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config carries the CLI's settings: where to fetch orders from, where to
// write reports, and the optional company branding for the document header.
type Config struct {
	API     APIConfig
	Output  OutputConfig
	Company CompanyConfig
}

type APIConfig struct {
	BaseURL string
	Cookie  string // session cookie header value for the admin API
}

type OutputConfig struct {
	Dir string
}

// CompanyConfig mirrors the optional companyInfo block. Empty fields fall
// back to the report's built-in defaults.
type CompanyConfig struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Website  string
	LogoPath string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	viper.SetDefault("API_BASE_URL", "http://localhost:5000")
	viper.SetDefault("API_COOKIE", "")
	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("COMPANY_NAME", "")
	viper.SetDefault("COMPANY_ADDRESS", "")
	viper.SetDefault("COMPANY_PHONE", "")
	viper.SetDefault("COMPANY_EMAIL", "")
	viper.SetDefault("COMPANY_WEBSITE", "")
	viper.SetDefault("COMPANY_LOGO", "")

	return &Config{
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Cookie:  viper.GetString("API_COOKIE"),
		},
		Output: OutputConfig{
			Dir: viper.GetString("OUTPUT_DIR"),
		},
		Company: CompanyConfig{
			Name:     viper.GetString("COMPANY_NAME"),
			Address:  viper.GetString("COMPANY_ADDRESS"),
			Phone:    viper.GetString("COMPANY_PHONE"),
			Email:    viper.GetString("COMPANY_EMAIL"),
			Website:  viper.GetString("COMPANY_WEBSITE"),
			LogoPath: viper.GetString("COMPANY_LOGO"),
		},
	}
}
